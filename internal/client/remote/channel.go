// Package remote implements the request/response protocol with the cloud-save
// host of the embedding platform.
//
// The host is reachable only through asynchronous messages. A Load posts a
// request and waits for the matching save_content message. Correlation is
// implicit: at most one Load may be pending, and a save_content message that
// arrives while nothing is pending is ignored. A Load that timed out keeps
// listening until the next Load. Messages from any origin other
// than the trusted one are dropped.
package remote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/iudanet/gophsave/internal/models"
	"github.com/iudanet/gophsave/pkg/api"
)

// DefaultTimeout bounds the wait for a save_content answer
const DefaultTimeout = time.Second

var (
	// ErrLoadInFlight is returned when a Load is issued while another is pending
	ErrLoadInFlight = errors.New("load request already in flight")
	// ErrNotAttached is returned when no port has been attached to the channel
	ErrNotAttached = errors.New("remote channel has no port")
)

// Outcome classifies the answer to a Load request
type Outcome int

const (
	OutcomeContent Outcome = iota // хост вернул содержимое слота (возможно пустое)
	OutcomeError                  // хост вернул ошибку
	OutcomeTimeout                // ответа не было в пределах таймаута
)

// String returns a human-readable representation of the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeContent:
		return "content"
	case OutcomeError:
		return "error"
	case OutcomeTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// LoadResult is the answer to one Load request
type LoadResult struct {
	Content models.SaveBlob // пусто, если слот пуст или пришла ошибка
	Message string          // текст ошибки хоста для OutcomeError
	Outcome Outcome
}

// Benign reports whether an error outcome only means there is nothing stored
// remotely (no account, empty slot).
func (r LoadResult) Benign() bool {
	return r.Outcome == OutcomeError && api.IsBenignError(r.Message)
}

// Config holds the channel settings
type Config struct {
	TrustedOrigin string
	Timeout       time.Duration
	// OnPlatform is the initial guess whether the widget runs embedded in the
	// platform. It is upgraded once a trusted message is observed.
	OnPlatform bool
}

// pendingLoad ожидающий ответа запрос; done буферизован, чтобы Deliver не блокировался.
// expired выставляется по таймауту: запрос ещё ловит ответ, но новый Load разрешён.
type pendingLoad struct {
	done    chan api.InboundMessage
	slot    int
	expired bool
}

// Channel is the remote sync channel
type Channel struct {
	port        Port
	logger      *slog.Logger
	pending     *pendingLoad
	onSaveError func(message string)
	cfg         Config
	mu          sync.Mutex
	onPlatform  atomic.Bool
}

// NewChannel creates a channel without a port.
// Attach a port before issuing requests.
func NewChannel(cfg Config, logger *slog.Logger) *Channel {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	c := &Channel{
		cfg:    cfg,
		logger: logger,
	}
	c.onPlatform.Store(cfg.OnPlatform)
	return c
}

// Attach sets the port used for outbound messages
func (c *Channel) Attach(port Port) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.port = port
}

// OnSaveError registers the handler called when the host reports a failed save.
// The handler runs on the delivering goroutine and must not block for long.
func (c *Channel) OnSaveError(handler func(message string)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onSaveError = handler
}

// OnPlatform reports whether the widget is considered embedded in the platform
func (c *Channel) OnPlatform() bool {
	return c.onPlatform.Load()
}

// Load asks the host for the content of slot and waits for the answer.
// The pending resolver is registered before the request is posted, so an
// answer that arrives at any time afterwards is captured. When no answer
// arrives within the timeout the result is OutcomeTimeout and the resolver
// stays registered: an answer that comes in while the caller decides whether
// to retry is kept, and the next Load for the same slot returns it without
// posting again.
func (c *Channel) Load(ctx context.Context, slot int) (LoadResult, error) {
	c.mu.Lock()
	port := c.port
	if port == nil {
		c.mu.Unlock()
		return LoadResult{}, ErrNotAttached
	}
	p := c.pending
	switch {
	case p != nil && !p.expired:
		c.mu.Unlock()
		return LoadResult{}, ErrLoadInFlight
	case p != nil && p.slot == slot:
		p.expired = false
	default:
		p = &pendingLoad{
			slot: slot,
			done: make(chan api.InboundMessage, 1),
		}
		c.pending = p
	}
	c.mu.Unlock()

	select {
	case msg := <-p.done:
		c.clearPending(p)
		c.logger.Info("Using answer that arrived after timeout", "slot", slot)
		return resultFromMessage(msg), nil
	default:
	}

	req := api.OutboundMessage{Action: api.ActionLoad, Slot: slot}
	if err := port.Post(ctx, req, c.cfg.TrustedOrigin); err != nil {
		c.clearPending(p)
		return LoadResult{}, fmt.Errorf("failed to post load request: %w", err)
	}

	c.logger.Debug("Load request posted", "slot", slot, "timeout", c.cfg.Timeout)

	timer := time.NewTimer(c.cfg.Timeout)
	defer timer.Stop()

	select {
	case msg := <-p.done:
		c.clearPending(p)
		return resultFromMessage(msg), nil
	case <-timer.C:
		c.expirePending(p)
		c.logger.Warn("Load request timed out", "slot", slot, "timeout", c.cfg.Timeout)
		return LoadResult{Outcome: OutcomeTimeout}, nil
	case <-ctx.Done():
		c.clearPending(p)
		return LoadResult{}, ctx.Err()
	}
}

// Save posts the content of slot. It does not wait for the host: a failure is
// reported later through the OnSaveError handler.
func (c *Channel) Save(ctx context.Context, slot int, label string, blob models.SaveBlob) error {
	c.mu.Lock()
	port := c.port
	c.mu.Unlock()

	if port == nil {
		return ErrNotAttached
	}

	req := api.OutboundMessage{
		Action: api.ActionSave,
		Slot:   slot,
		Label:  label,
		Data:   blob.String(),
	}
	if err := port.Post(ctx, req, c.cfg.TrustedOrigin); err != nil {
		return fmt.Errorf("failed to post save request: %w", err)
	}
	return nil
}

// Deliver handles an inbound message. Ports call it from their read loop.
func (c *Channel) Deliver(env Envelope) {
	if env.Origin != c.cfg.TrustedOrigin {
		c.logger.Debug("Ignoring message from untrusted origin", "origin", env.Origin)
		return
	}

	if !c.onPlatform.Swap(true) {
		c.logger.Info("Trusted host detected, enabling cloud saves", "origin", env.Origin)
	}

	msg := env.Message
	switch msg.Type {
	case api.TypeSaveContent:
		c.mu.Lock()
		p := c.pending
		c.mu.Unlock()

		if p == nil {
			c.logger.Debug("Ignoring save_content without pending load")
			return
		}

		select {
		case p.done <- msg:
		default:
			// На этот запрос уже пришёл ответ
			c.logger.Debug("Ignoring duplicate save_content", "slot", p.slot)
		}

	case api.TypeSaved:
		if !msg.Error {
			c.logger.Debug("Cloud save acknowledged")
			return
		}

		c.logger.Warn("Cloud save failed", "message", msg.Message)
		c.mu.Lock()
		handler := c.onSaveError
		c.mu.Unlock()
		if handler != nil {
			handler(msg.Message)
		}

	default:
		c.logger.Debug("Ignoring message of unknown type", "type", msg.Type)
	}
}

func (c *Channel) expirePending(p *pendingLoad) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending == p {
		p.expired = true
	}
}

func (c *Channel) clearPending(p *pendingLoad) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending == p {
		c.pending = nil
	}
}

func resultFromMessage(msg api.InboundMessage) LoadResult {
	if msg.Error {
		return LoadResult{Outcome: OutcomeError, Message: msg.Message}
	}

	result := LoadResult{Outcome: OutcomeContent}
	if msg.Content != nil {
		result.Content = models.SaveBlob(*msg.Content)
	}
	return result
}
