package grpc

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/ndmitriev/gatekeeper/internal/cryptox"
	"github.com/ndmitriev/gatekeeper/internal/logging"
	pb "github.com/ndmitriev/gatekeeper/internal/proto"
	"github.com/ndmitriev/gatekeeper/internal/server/auth"
	"github.com/ndmitriev/gatekeeper/internal/server/otp"
	"github.com/ndmitriev/gatekeeper/internal/server/sessions"
	"github.com/ndmitriev/gatekeeper/internal/server/users"
	"github.com/ndmitriev/gatekeeper/internal/shared"
)

var grpcUnaryInfo = grpc.UnaryServerInfo{
	FullMethod: "/gatekeeper.service.GatekeeperService/Me",
}

// ---- in-memory user repository ----

type memRepo struct {
	byEmail map[string]*users.User
}

func newMemRepo() *memRepo {
	return &memRepo{byEmail: make(map[string]*users.User)}
}

func (m *memRepo) Create(ctx context.Context, u *users.User) (*users.User, error) {
	if _, ok := m.byEmail[u.Email]; ok {
		return nil, shared.ErrorAlreadyExists
	}
	u.CreatedAt = time.Now()
	m.byEmail[u.Email] = u
	return u, nil
}

func (m *memRepo) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return nil, shared.ErrorNotFound
	}
	copy := *u
	return &copy, nil
}

func (m *memRepo) UpdatePassword(ctx context.Context, email string, hash string) error {
	u, ok := m.byEmail[email]
	if !ok {
		return shared.ErrorNotFound
	}
	u.PasswordHash = hash
	return nil
}

func newTestServer(t *testing.T) *GRPCServer {
	t.Helper()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	svc := auth.NewService(
		newMemRepo(),
		otp.NewRegistry(10*time.Minute),
		sessions.NewRegistry(24*time.Hour),
		nil,
		logger,
	)

	s, err := NewGRPCServer(":0", logger, svc)
	require.NoError(t, err)
	return s
}

func sessionCtx(sessionID string) context.Context {
	return context.WithValue(context.Background(), sessionIDKey, sessionID)
}

func register(t *testing.T, s *GRPCServer) *pb.User {
	t.Helper()
	resp, err := s.Register(context.Background(), &pb.RegisterRequest{
		FullName: "Ann",
		Email:    "a@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	return resp.User
}

func TestRegister_ReturnsSanitizedUser(t *testing.T) {
	s := newTestServer(t)

	u := register(t, s)
	assert.NotEmpty(t, u.Id)
	assert.Equal(t, "Ann", u.FullName)
	assert.Equal(t, "a@x.com", u.Email)
	assert.Equal(t, users.RoleUser, u.Role)
	assert.NotZero(t, u.CreatedAtUnix)
}

func TestRegister_ErrorCodes(t *testing.T) {
	s := newTestServer(t)
	register(t, s)

	tests := []struct {
		name string
		req  *pb.RegisterRequest
		code codes.Code
	}{
		{
			name: "duplicate email",
			req:  &pb.RegisterRequest{FullName: "Ann", Email: "a@x.com", Password: "secret1"},
			code: codes.AlreadyExists,
		},
		{
			name: "short password",
			req:  &pb.RegisterRequest{FullName: "Bob", Email: "b@x.com", Password: "short"},
			code: codes.InvalidArgument,
		},
		{
			name: "missing email",
			req:  &pb.RegisterRequest{FullName: "Bob", Email: "", Password: "secret1"},
			code: codes.InvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Register(context.Background(), tt.req)
			assert.Equal(t, tt.code, status.Code(err))
		})
	}
}

func TestLogin_InvalidCredentialsAreIndistinguishable(t *testing.T) {
	s := newTestServer(t)
	register(t, s)

	_, errWrongPass := s.Login(context.Background(), &pb.LoginRequest{Email: "a@x.com", Password: "wrongpass"})
	_, errNoUser := s.Login(context.Background(), &pb.LoginRequest{Email: "nobody@x.com", Password: "secret1"})

	require.Error(t, errWrongPass)
	require.Error(t, errNoUser)
	assert.Equal(t, codes.Unauthenticated, status.Code(errWrongPass))
	assert.Equal(t, codes.Unauthenticated, status.Code(errNoUser))
	assert.Equal(t, status.Convert(errWrongPass).Message(), status.Convert(errNoUser).Message())
}

func TestSessionScenario(t *testing.T) {
	s := newTestServer(t)
	register(t, s)

	login, err := s.Login(context.Background(), &pb.LoginRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	require.NotEmpty(t, login.SessionId)

	me, err := s.Me(sessionCtx(login.SessionId), &pb.MeRequest{})
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", me.Email)

	_, err = s.Logout(sessionCtx(login.SessionId), &pb.LogoutRequest{})
	require.NoError(t, err)

	_, err = s.Me(sessionCtx(login.SessionId), &pb.MeRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestMe_MissingSessionID(t *testing.T) {
	s := newTestServer(t)

	_, err := s.Me(context.Background(), &pb.MeRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestLogout_WithoutSessionSucceeds(t *testing.T) {
	s := newTestServer(t)

	_, err := s.Logout(context.Background(), &pb.LogoutRequest{})
	assert.NoError(t, err)
}

func TestResetScenario(t *testing.T) {
	s := newTestServer(t)
	register(t, s)

	sent, err := s.SendResetCode(context.Background(), &pb.SendResetCodeRequest{Email: "a@x.com"})
	require.NoError(t, err)
	assert.Equal(t, auth.ChannelMock, sent.Channel, "no mailer configured, code must come back on the mock channel")
	require.Len(t, sent.Code, 6)

	_, err = s.ResetPassword(context.Background(), &pb.ResetPasswordRequest{
		Email:       "a@x.com",
		Code:        sent.Code,
		NewPassword: "newpass1",
	})
	require.NoError(t, err)

	_, err = s.Login(context.Background(), &pb.LoginRequest{Email: "a@x.com", Password: "newpass1"})
	assert.NoError(t, err)
	_, err = s.Login(context.Background(), &pb.LoginRequest{Email: "a@x.com", Password: "secret1"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestSendResetCode_ErrorCodes(t *testing.T) {
	s := newTestServer(t)

	_, err := s.SendResetCode(context.Background(), &pb.SendResetCodeRequest{Email: "nobody@x.com"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = s.SendResetCode(context.Background(), &pb.SendResetCodeRequest{Email: ""})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestVerifyResetCode_ErrorCodes(t *testing.T) {
	s := newTestServer(t)
	register(t, s)

	// no code issued yet: a bad request, not a missing resource
	_, err := s.VerifyResetCode(context.Background(), &pb.VerifyResetCodeRequest{Email: "a@x.com", Code: "123456"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	sent, err := s.SendResetCode(context.Background(), &pb.SendResetCodeRequest{Email: "a@x.com"})
	require.NoError(t, err)

	wrong := "000000"
	if wrong == sent.Code {
		wrong = "000001"
	}
	_, err = s.VerifyResetCode(context.Background(), &pb.VerifyResetCodeRequest{Email: "a@x.com", Code: wrong})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = s.VerifyResetCode(context.Background(), &pb.VerifyResetCodeRequest{Email: "a@x.com", Code: sent.Code})
	assert.NoError(t, err)

	// the successful check consumed the code
	_, err = s.VerifyResetCode(context.Background(), &pb.VerifyResetCodeRequest{Email: "a@x.com", Code: sent.Code})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestPing(t *testing.T) {
	s := newTestServer(t)

	resp, err := s.Ping(context.Background(), &pb.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", resp.Status)
}

func TestSessionInterceptor_ExtractsMetadata(t *testing.T) {
	s := newTestServer(t)

	md := metadata.New(map[string]string{shared.SessionIDHeaderName: "abc123"})
	ctx := metadata.NewIncomingContext(context.Background(), md)

	var seen string
	_, err := s.sessionInterceptor(ctx, nil, &grpcUnaryInfo, func(ctx context.Context, req interface{}) (interface{}, error) {
		seen = sessionIDFromContext(ctx)
		return nil, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "abc123", seen)
}

func TestSessionInterceptor_NoMetadata(t *testing.T) {
	s := newTestServer(t)

	var seen string
	_, err := s.sessionInterceptor(context.Background(), nil, &grpcUnaryInfo, func(ctx context.Context, req interface{}) (interface{}, error) {
		seen = sessionIDFromContext(ctx)
		return nil, nil
	})
	require.NoError(t, err)
	assert.Equal(t, "", seen)
}

// stored password hashes must never round-trip through the API
func TestRegister_StoredHashIsNotPlaintext(t *testing.T) {
	repo := newMemRepo()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	svc := auth.NewService(repo, otp.NewRegistry(10*time.Minute), sessions.NewRegistry(24*time.Hour), nil, logger)
	s, err := NewGRPCServer(":0", logger, svc)
	require.NoError(t, err)

	register(t, s)

	stored := repo.byEmail["a@x.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.True(t, cryptox.CheckPassword("secret1", stored.PasswordHash))
}
