package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	pb "github.com/ndmitriev/gatekeeper/internal/proto"
	"github.com/ndmitriev/gatekeeper/internal/shared"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// GRPCClient talks to the Gatekeeper server over gRPC. After a successful
// Login it remembers the session id and attaches it to every outgoing call
// through sessionInterceptor until Logout. Safe for concurrent use; the
// session id is guarded because the interceptor reads it on every call.
type GRPCClient struct {
	endpointURL    string
	requestTimeout time.Duration
	conn           *grpc.ClientConn
	client         pb.GatekeeperServiceClient

	mu        sync.Mutex
	sessionID string
}

func (s *GRPCClient) setSessionID(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessionID = id
}

func (s *GRPCClient) getSessionID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionID
}

func withSessionID(ctx context.Context, sessionID string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(shared.SessionIDHeaderName)
	md.Set(shared.SessionIDHeaderName, sessionID)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) sessionInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if id := s.getSessionID(); id != "" {
		ctx = withSessionID(ctx, id)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewGatekeeperClientService(endpointURL string, requestTimeout time.Duration) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, requestTimeout: requestTimeout}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithUnaryInterceptor(s.sessionInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewGatekeeperServiceClient(conn)
	return nil
}

func (s *GRPCClient) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.requestTimeout)
}

func accountFromPb(u *pb.User) *Account {
	if u == nil {
		return nil
	}
	return &Account{ID: u.Id, FullName: u.FullName, Email: u.Email, Role: u.Role}
}

func (s *GRPCClient) Register(ctx context.Context, fullName, email, password string) (*Account, error) {

	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	req := &pb.RegisterRequest{FullName: fullName, Email: email, Password: password}

	resp, err := s.client.Register(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	return accountFromPb(resp.User), nil
}

func (s *GRPCClient) Login(ctx context.Context, email, password string) (*Account, error) {

	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	req := &pb.LoginRequest{Email: email, Password: password}

	resp, err := s.client.Login(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	s.setSessionID(resp.SessionId)

	return accountFromPb(resp.User), nil
}

func (s *GRPCClient) SendResetCode(ctx context.Context, email string) (*ResetCodeInfo, error) {

	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.SendResetCode(ctx, &pb.SendResetCodeRequest{Email: email})
	if err != nil {
		return nil, s.mapError(err)
	}

	return &ResetCodeInfo{
		Channel:   resp.Channel,
		Code:      resp.Code,
		ExpiresAt: time.Unix(resp.ExpiresAtUnix, 0),
	}, nil
}

func (s *GRPCClient) VerifyResetCode(ctx context.Context, email, code string) error {

	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	_, err := s.client.VerifyResetCode(ctx, &pb.VerifyResetCodeRequest{Email: email, Code: code})
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) ResetPassword(ctx context.Context, email, code, newPassword string) error {

	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	req := &pb.ResetPasswordRequest{Email: email, Code: code, NewPassword: newPassword}

	_, err := s.client.ResetPassword(ctx, req)
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) Me(ctx context.Context) (*Account, error) {

	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	resp, err := s.client.Me(ctx, &pb.MeRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	return &Account{ID: resp.UserId, Email: resp.Email, Role: resp.Role}, nil
}

func (s *GRPCClient) Logout(ctx context.Context) error {

	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	_, err := s.client.Logout(ctx, &pb.LogoutRequest{})

	// the session is gone locally no matter what the server said
	s.setSessionID("")

	if err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	_, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) IsLoggedIn() bool {
	return s.getSessionID() != ""
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.NotFound:
		return ErrNotFound
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
