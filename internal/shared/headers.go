package shared

// SessionIDHeaderName is the gRPC metadata key carrying the session id on
// requests to session-bound methods. Both the server interceptor and the
// client use it.
const SessionIDHeaderName = "session_id"

// Delivery channels reported in SendResetCode responses. ChannelMock means no
// mail gateway handled the code and it is disclosed in the response instead.
const (
	ChannelEmail = "email"
	ChannelMock  = "mock"
)
