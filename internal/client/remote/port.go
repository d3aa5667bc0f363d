package remote

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/iudanet/gophsave/pkg/api"
)

//go:generate moq -out port_mock.go . Port

// ErrOriginMismatch возвращается, если получатель не совпадает с хостом порта
var ErrOriginMismatch = errors.New("target origin does not match port origin")

// Envelope is an inbound message together with the origin of its sender.
// The origin is stamped by the port, never taken from the payload.
type Envelope struct {
	Origin  string
	Message api.InboundMessage
}

// Port carries outbound messages to the embedding host.
// Inbound messages are pushed by the port implementation into a handler
// given at construction.
type Port interface {
	// Post sends msg to the host if it lives at targetOrigin
	Post(ctx context.Context, msg api.OutboundMessage, targetOrigin string) error
}

// OriginFromURL returns the scheme://host[:port] origin of a host URL.
// WebSocket schemes map to their HTTP counterparts.
func OriginFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse host url: %w", err)
	}

	scheme := strings.ToLower(u.Scheme)
	switch scheme {
	case "ws":
		scheme = "http"
	case "wss":
		scheme = "https"
	case "http", "https":
	default:
		return "", fmt.Errorf("unsupported host url scheme %q", u.Scheme)
	}

	if u.Host == "" {
		return "", fmt.Errorf("host url %q has no host", rawURL)
	}

	return scheme + "://" + strings.ToLower(u.Host), nil
}
