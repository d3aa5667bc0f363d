package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/coder/websocket"

	"github.com/iudanet/gophsave/pkg/api"
)

const writeTimeout = 5 * time.Second

// WebSocketPort is a Port backed by a WebSocket connection to the host.
// Every inbound message is stamped with the origin derived from the dialed URL.
type WebSocketPort struct {
	conn    *websocket.Conn
	logger  *slog.Logger
	handler func(Envelope)
	cancel  context.CancelFunc
	done    chan struct{}
	origin  string
}

// DialWebSocket connects to the host endpoint at rawURL and starts the read loop.
// If token is not empty it is sent as a bearer token.
func DialWebSocket(ctx context.Context, rawURL, token string, handler func(Envelope), logger *slog.Logger) (*WebSocketPort, error) {
	origin, err := OriginFromURL(rawURL)
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	if token != "" {
		header.Set("Authorization", "Bearer "+token)
	}

	conn, resp, err := websocket.Dial(ctx, rawURL, &websocket.DialOptions{HTTPHeader: header})
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to dial host: %w", err)
	}

	readCtx, cancel := context.WithCancel(context.Background())
	p := &WebSocketPort{
		conn:    conn,
		logger:  logger,
		handler: handler,
		cancel:  cancel,
		done:    make(chan struct{}),
		origin:  origin,
	}

	go p.readLoop(readCtx)

	logger.Info("Connected to host", "origin", origin)
	return p, nil
}

// Origin returns the origin of the connected host
func (p *WebSocketPort) Origin() string {
	return p.origin
}

// Post sends msg if targetOrigin is the origin of the connected host
func (p *WebSocketPort) Post(ctx context.Context, msg api.OutboundMessage, targetOrigin string) error {
	if targetOrigin != p.origin {
		return fmt.Errorf("%w: %s", ErrOriginMismatch, targetOrigin)
	}

	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	if err := p.conn.Write(ctx, websocket.MessageText, data); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	return nil
}

// Close closes the connection and waits for the read loop to exit
func (p *WebSocketPort) Close() error {
	err := p.conn.Close(websocket.StatusNormalClosure, "")
	p.cancel()
	<-p.done

	if err != nil {
		// Хост мог закрыть соединение первым
		p.logger.Debug("Host connection close", "error", err)
	}
	return nil
}

func (p *WebSocketPort) readLoop(ctx context.Context) {
	defer close(p.done)

	for {
		_, data, err := p.conn.Read(ctx)
		if err != nil {
			if ctx.Err() == nil && websocket.CloseStatus(err) == -1 {
				p.logger.Warn("Host connection lost", "error", err)
			}
			return
		}

		var msg api.InboundMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			p.logger.Warn("Ignoring malformed message from host", "error", err)
			continue
		}

		p.handler(Envelope{Origin: p.origin, Message: msg})
	}
}
