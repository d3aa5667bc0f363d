package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/coder/websocket"

	"github.com/iudanet/gophsave/internal/models"
	"github.com/iudanet/gophsave/internal/server/storage"
	"github.com/iudanet/gophsave/pkg/api"
)

const (
	// readLimit максимальный размер одного кадра от виджета
	readLimit = 1 << 20
	// writeTimeout ограничивает отправку одного ответа
	writeTimeout = 5 * time.Second
)

// SlotHandler serves the platform side of the cloud-save protocol over
// a WebSocket: every inbound frame is one request, every request gets
// exactly one reply.
type SlotHandler struct {
	logger  *slog.Logger
	storage storage.SlotStorage
	now     func() time.Time
	accept  *websocket.AcceptOptions
}

// NewSlotHandler creates a new slot handler.
// originPatterns lists browser origins allowed to connect besides the
// request host itself.
func NewSlotHandler(logger *slog.Logger, slots storage.SlotStorage, originPatterns []string) *SlotHandler {
	return &SlotHandler{
		logger:  logger,
		storage: slots,
		now:     time.Now,
		accept:  &websocket.AcceptOptions{OriginPatterns: originPatterns},
	}
}

// OriginPatterns converts configured origins ("https://host:port") into
// the host patterns the WebSocket handshake matches against.
// Values without a scheme are taken as patterns already.
func OriginPatterns(origins ...string) []string {
	var patterns []string
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if u, err := url.Parse(origin); err == nil && u.Host != "" {
			origin = u.Host
		}
		patterns = append(patterns, origin)
	}
	return patterns
}

// HandleWebSocket обрабатывает GET /api/v1/ws
func (h *SlotHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, h.accept)
	if err != nil {
		// Accept уже записал ответ клиенту
		h.logger.WarnContext(r.Context(), "websocket handshake failed", slog.Any("error", err))
		return
	}
	defer conn.CloseNow()
	conn.SetReadLimit(readLimit)

	ctx := r.Context()
	accountID, _ := GetAccountID(ctx)
	logger := h.logger.With(slog.String("account_id", accountID), slog.String("remote_addr", r.RemoteAddr))
	logger.DebugContext(ctx, "widget connected")

	for {
		_, frame, err := conn.Read(ctx)
		if err != nil {
			h.logClosed(ctx, logger, err)
			return
		}

		reply := h.reply(ctx, logger, accountID, frame)
		if err := h.write(ctx, conn, reply); err != nil {
			logger.WarnContext(ctx, "failed to write reply", slog.Any("error", err))
			return
		}
	}
}

func (h *SlotHandler) logClosed(ctx context.Context, logger *slog.Logger, err error) {
	if ctx.Err() != nil || websocket.CloseStatus(err) != -1 {
		logger.DebugContext(ctx, "widget disconnected", slog.Any("reason", err))
		return
	}
	logger.WarnContext(ctx, "websocket read failed", slog.Any("error", err))
}

func (h *SlotHandler) write(ctx context.Context, conn *websocket.Conn, msg api.InboundMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()
	return conn.Write(ctx, websocket.MessageText, data)
}

// reply разбирает кадр и формирует ответ. Кадр, который не удалось
// разобрать, получает save_content с invalid_request, чтобы ожидающий
// load не висел до таймаута.
func (h *SlotHandler) reply(ctx context.Context, logger *slog.Logger, accountID string, frame []byte) api.InboundMessage {
	var msg api.OutboundMessage
	if err := json.Unmarshal(frame, &msg); err != nil {
		logger.WarnContext(ctx, "malformed request", slog.Any("error", err))
		return failure(api.TypeSaveContent, api.MessageInvalidRequest)
	}
	return h.Handle(ctx, accountID, msg)
}

// Handle answers one request on behalf of the account.
// An empty accountID means the widget is not logged in.
func (h *SlotHandler) Handle(ctx context.Context, accountID string, msg api.OutboundMessage) api.InboundMessage {
	switch msg.Action {
	case api.ActionLoad:
		return h.load(ctx, accountID, msg.Slot)
	case api.ActionSave:
		return h.save(ctx, accountID, msg)
	default:
		h.logger.WarnContext(ctx, "unknown action", slog.String("action", string(msg.Action)))
		return failure(api.TypeSaveContent, api.MessageInvalidRequest)
	}
}

func (h *SlotHandler) load(ctx context.Context, accountID string, slot int) api.InboundMessage {
	switch {
	case slot < 0:
		return failure(api.TypeSaveContent, api.MessageInvalidRequest)
	case accountID == "":
		return failure(api.TypeSaveContent, api.MessageNoAccount)
	}

	stored, err := h.storage.GetSlot(ctx, accountID, slot)
	if errors.Is(err, storage.ErrSlotNotFound) || (err == nil && stored.Data.IsEmpty()) {
		return failure(api.TypeSaveContent, api.MessageEmptySlot)
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load slot",
			slog.String("account_id", accountID),
			slog.Int("slot", slot),
			slog.Any("error", err))
		return failure(api.TypeSaveContent, api.MessageServerError)
	}

	content := stored.Data.String()
	return api.InboundMessage{Type: api.TypeSaveContent, Content: &content}
}

func (h *SlotHandler) save(ctx context.Context, accountID string, msg api.OutboundMessage) api.InboundMessage {
	switch {
	case msg.Slot < 0:
		return failure(api.TypeSaved, api.MessageInvalidRequest)
	case accountID == "":
		return failure(api.TypeSaved, api.MessageNoAccount)
	}

	err := h.storage.SaveSlot(ctx, &models.SaveSlot{
		AccountID: accountID,
		Slot:      msg.Slot,
		Label:     msg.Label,
		Data:      models.SaveBlob(msg.Data),
		UpdatedAt: h.now().UTC(),
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to save slot",
			slog.String("account_id", accountID),
			slog.Int("slot", msg.Slot),
			slog.Any("error", err))
		return failure(api.TypeSaved, api.MessageServerError)
	}

	h.logger.DebugContext(ctx, "slot saved", slog.String("account_id", accountID), slog.Int("slot", msg.Slot))
	return api.InboundMessage{Type: api.TypeSaved}
}

func failure(typ api.MessageType, message string) api.InboundMessage {
	return api.InboundMessage{Type: typ, Error: true, Message: message}
}
