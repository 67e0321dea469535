package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/ndmitriev/gatekeeper/internal/proto"
	"github.com/ndmitriev/gatekeeper/internal/server/auth"
	"github.com/ndmitriev/gatekeeper/internal/shared"
)

func userToPb(u *auth.UserView) *pb.User {
	return &pb.User{
		Id:            u.ID,
		FullName:      u.FullName,
		Email:         u.Email,
		Role:          u.Role,
		CreatedAtUnix: u.CreatedAt.Unix(),
	}
}

// mapAuthError translates the service error taxonomy into gRPC status codes.
// The message of the incoming sentinel is reused so that, e.g., bad
// credentials stay deliberately generic.
func mapAuthError(err error) error {
	switch {
	case errors.Is(err, shared.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, shared.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, shared.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, shared.ErrorNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, shared.ErrorSessionExpired):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, shared.ErrorCodeNotFound),
		errors.Is(err, shared.ErrorCodeExpired),
		errors.Is(err, shared.ErrorCodeMismatch):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {

	s.logger.Info(ctx, "Registration request")

	user, err := s.auth.Register(ctx, req.FullName, req.Email, req.Password)
	if err != nil {
		return nil, mapAuthError(err)
	}

	s.logger.Info(ctx, "Registered", "email", user.Email)
	return &pb.RegisterResponse{User: userToPb(user)}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	result, err := s.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, mapAuthError(err)
	}

	return &pb.LoginResponse{
		User:          userToPb(&result.User),
		SessionId:     result.SessionID,
		ExpiresAtUnix: result.ExpiresAt.Unix(),
	}, nil
}

func (s *GRPCServer) SendResetCode(ctx context.Context, req *pb.SendResetCodeRequest) (*pb.SendResetCodeResponse, error) {

	delivery, err := s.auth.SendResetCode(ctx, req.Email)
	if err != nil {
		return nil, mapAuthError(err)
	}

	return &pb.SendResetCodeResponse{
		Channel:       delivery.Channel,
		Code:          delivery.Code,
		ExpiresAtUnix: delivery.ExpiresAt.Unix(),
	}, nil
}

func (s *GRPCServer) VerifyResetCode(ctx context.Context, req *pb.VerifyResetCodeRequest) (*pb.VerifyResetCodeResponse, error) {

	if err := s.auth.VerifyResetCode(ctx, req.Email, req.Code); err != nil {
		return nil, mapAuthError(err)
	}

	return &pb.VerifyResetCodeResponse{}, nil
}

func (s *GRPCServer) ResetPassword(ctx context.Context, req *pb.ResetPasswordRequest) (*pb.ResetPasswordResponse, error) {

	if err := s.auth.ResetPassword(ctx, req.Email, req.Code, req.NewPassword); err != nil {
		return nil, mapAuthError(err)
	}

	s.logger.Info(ctx, "Password reset", "email", auth.NormalizeEmail(req.Email))
	return &pb.ResetPasswordResponse{}, nil
}

func (s *GRPCServer) Me(ctx context.Context, req *pb.MeRequest) (*pb.MeResponse, error) {

	sessionID := sessionIDFromContext(ctx)
	if sessionID == "" {
		return nil, status.Error(codes.InvalidArgument, "missing session id")
	}

	identity, err := s.auth.ValidateSession(ctx, sessionID)
	if err != nil {
		// unknown and expired sessions both mean "not authenticated" here
		if errors.Is(err, shared.ErrorNotFound) || errors.Is(err, shared.ErrorSessionExpired) {
			return nil, status.Error(codes.Unauthenticated, "invalid session")
		}
		return nil, mapAuthError(err)
	}

	return &pb.MeResponse{
		UserId:        identity.UserID,
		Email:         identity.Email,
		Role:          identity.Role,
		ExpiresAtUnix: identity.ExpiresAt.Unix(),
	}, nil
}

func (s *GRPCServer) Logout(ctx context.Context, req *pb.LogoutRequest) (*pb.LogoutResponse, error) {

	// always succeeds, even for unknown or absent session ids
	s.auth.Logout(ctx, sessionIDFromContext(ctx))

	return &pb.LogoutResponse{}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil
}
