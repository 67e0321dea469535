package grpc

import (
	"context"

	"github.com/ndmitriev/gatekeeper/internal/shared"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

type ctxKey string

const sessionIDKey ctxKey = "sessionID"

// sessionInterceptor copies the session id from incoming metadata into the
// request context. Validation happens in the handlers; Logout must succeed
// even without a session and Me reports its own status codes.
func (s *GRPCServer) sessionInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(shared.SessionIDHeaderName)
		if len(values) > 0 {
			ctx = context.WithValue(ctx, sessionIDKey, values[0])
		}
	}

	return handler(ctx, req)
}

func sessionIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(sessionIDKey).(string); ok {
		return v
	}
	return ""
}
