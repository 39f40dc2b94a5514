package hermes

import (
	"context"

	"github.com/hermetic-ai/hermes/messages"
)

// Client is the capability surface a transport must provide for the
// messages API. Implementations own every transport mechanic: endpoints,
// headers, authentication, retries. Cancellation and deadlines ride the
// context so the interface shape stays fixed no matter how an
// implementation handles them.
//
// A nil params value is a legal call on both operations; what it means is
// up to the transport.
//
// Failures surface as *RequestError when the request never completed at the
// transport level and *APIError when the service answered with a failure.
// Malformed response bodies decode into *messages.DecodeError, which a
// transport should return as-is rather than coerce.
type Client interface {
	// CreateMessage sends a conversation and returns the model's reply.
	CreateMessage(ctx context.Context, params *messages.CreateMessageParams) (*messages.CreateMessageResponse, error)

	// CountTokens reports how many input tokens the given messages consume.
	CountTokens(ctx context.Context, params *messages.CountMessageTokensParams) (*messages.CountMessageTokensResponse, error)
}
