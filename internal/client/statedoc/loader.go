// Package statedoc loads the initial widget state document.
package statedoc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"
)

// MaxStateSize bounds the state document read from a file or URL
const MaxStateSize = 16 << 20

var (
	// ErrStartupFetch означает, что виджет нельзя запустить без начального состояния
	ErrStartupFetch = errors.New("failed to fetch initial state")
	// ErrStateTooLarge is returned for documents over the size limit
	ErrStateTooLarge = errors.New("state document too large")
)

// FetchError describes a failed state document fetch.
// It matches both ErrStartupFetch and the underlying cause.
type FetchError struct {
	Err        error
	Source     string
	Status     string
	StatusCode int
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: HTTP %s", e.Source, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrStartupFetch}
	}
	return []error{ErrStartupFetch, e.Err}
}

// Loader fetches the state document from an HTTP(S) URL or a local file
type Loader struct {
	httpClient *http.Client
	logger     *slog.Logger
	maxSize    int64
}

// NewLoader создает новый загрузчик
func NewLoader(logger *slog.Logger) *Loader {
	return &Loader{
		logger:  logger,
		maxSize: MaxStateSize,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				return nil
			},
		},
	}
}

// Load returns the state document found at source.
// Doubled backslashes are collapsed into single ones, the document is stored
// with its LaTeX escaped twice.
func (l *Loader) Load(ctx context.Context, source string) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	if isURL(source) {
		data, err = l.fetch(ctx, source)
	} else {
		data, err = l.readFile(source)
	}
	if err != nil {
		return nil, err
	}

	l.logger.Debug("Initial state loaded", "source", source, "bytes", len(data))
	return bytes.ReplaceAll(data, []byte(`\\`), []byte(`\`)), nil
}

// fetch выполняет HTTP запрос
func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Source: url, Err: err}
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Source: url, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &FetchError{Source: url, Status: resp.Status, StatusCode: resp.StatusCode}
	}

	body, err := l.readLimited(resp.Body)
	if err != nil {
		return nil, &FetchError{Source: url, Err: fmt.Errorf("failed to read response body: %w", err)}
	}
	return body, nil
}

func (l *Loader) readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FetchError{Source: path, Err: err}
	}
	defer func() {
		_ = f.Close()
	}()

	data, err := l.readLimited(f)
	if err != nil {
		return nil, &FetchError{Source: path, Err: err}
	}
	return data, nil
}

// readLimited читает не больше maxSize байт, лишний байт означает превышение
func (l *Loader) readLimited(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, l.maxSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > l.maxSize {
		return nil, fmt.Errorf("%w: limit is %d bytes", ErrStateTooLarge, l.maxSize)
	}
	return data, nil
}

func isURL(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
