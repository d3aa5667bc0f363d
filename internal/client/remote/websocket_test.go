package remote

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/gophsave/internal/models"
	"github.com/iudanet/gophsave/pkg/api"
)

// newEchoHost поднимает хост, который на load отвечает содержимым content,
// а на save присылает saved с ошибкой
func newEchoHost(t *testing.T, content string, gotAuth chan<- string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gotAuth != nil {
			gotAuth <- r.Header.Get("Authorization")
		}

		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		defer func() { _ = conn.Close(websocket.StatusNormalClosure, "") }()

		ctx := r.Context()
		for {
			_, data, err := conn.Read(ctx)
			if err != nil {
				return
			}

			var req api.OutboundMessage
			if err := json.Unmarshal(data, &req); err != nil {
				_ = conn.Write(ctx, websocket.MessageText, []byte("not json"))
				continue
			}

			var reply api.InboundMessage
			switch req.Action {
			case api.ActionLoad:
				reply = api.InboundMessage{Type: api.TypeSaveContent, Content: &content}
			case api.ActionSave:
				reply = api.InboundMessage{Type: api.TypeSaved, Error: true, Message: "read only"}
			}

			out, _ := json.Marshal(reply)
			if err := conn.Write(ctx, websocket.MessageText, out); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestWebSocketPort_LoadAndSave(t *testing.T) {
	gotAuth := make(chan string, 1)
	srv := newEchoHost(t, "4,5,6", gotAuth)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	origin, err := OriginFromURL(wsURL(srv))
	require.NoError(t, err)

	ch := NewChannel(Config{TrustedOrigin: origin, Timeout: 2 * time.Second}, logger)

	saveErrors := make(chan string, 1)
	ch.OnSaveError(func(message string) {
		saveErrors <- message
	})

	ctx := context.Background()
	port, err := DialWebSocket(ctx, wsURL(srv), "secret", ch.Deliver, logger)
	require.NoError(t, err)
	defer func() { _ = port.Close() }()
	ch.Attach(port)

	assert.Equal(t, "Bearer secret", <-gotAuth)
	assert.Equal(t, origin, port.Origin())

	result, err := ch.Load(ctx, api.DefaultSlot)
	require.NoError(t, err)
	assert.Equal(t, OutcomeContent, result.Outcome)
	assert.Equal(t, models.SaveBlob("4,5,6"), result.Content)
	assert.True(t, ch.OnPlatform())

	require.NoError(t, ch.Save(ctx, api.DefaultSlot, api.DefaultLabel, "1"))

	select {
	case msg := <-saveErrors:
		assert.Equal(t, "read only", msg)
	case <-time.After(2 * time.Second):
		t.Fatal("saved error was not delivered")
	}
}

func TestWebSocketPort_OriginMismatch(t *testing.T) {
	srv := newEchoHost(t, "", nil)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	port, err := DialWebSocket(context.Background(), wsURL(srv), "", func(Envelope) {}, logger)
	require.NoError(t, err)
	defer func() { _ = port.Close() }()

	err = port.Post(context.Background(), api.OutboundMessage{Action: api.ActionLoad}, "https://www.desmos.com")
	assert.ErrorIs(t, err, ErrOriginMismatch)
}

func TestDialWebSocket_Errors(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := DialWebSocket(context.Background(), "ftp://example.com", "", func(Envelope) {}, logger)
	assert.Error(t, err)

	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err = DialWebSocket(context.Background(), wsURL(srv), "", func(Envelope) {}, logger)
	assert.Error(t, err)
}
