package iocli

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Проверяем что NewStdio возвращает валидный объект
func TestNewStdio(t *testing.T) {
	stdio := NewStdio()
	assert.NotNil(t, stdio)
}

func TestPrintlnAndPrintf(t *testing.T) {
	var out bytes.Buffer
	stdio := NewStdioWith(strings.NewReader(""), &out, true)

	stdio.Println("hello", "world")
	stdio.Printf("test %d %s", 1, "abc")

	assert.Equal(t, "hello world\ntest 1 abc", out.String())
}

// Тест ReadInput: читаем из pipe вместо os.Stdin
func TestReadInput(t *testing.T) {
	input := "user input\n"
	r, w, err := os.Pipe()
	require.NoError(t, err)

	go func() {
		_, _ = w.Write([]byte(input))
		_ = w.Close()
	}()

	var out bytes.Buffer
	stdio := NewStdioWith(r, &out, true)
	result, err := stdio.ReadInput("Prompt: ")
	require.NoError(t, err)
	assert.Equal(t, strings.TrimSpace(input), result)
	assert.Equal(t, "Prompt: ", out.String())
}

func TestReadInput_LastLineWithoutNewline(t *testing.T) {
	stdio := NewStdioWith(strings.NewReader("tail"), &bytes.Buffer{}, true)

	result, err := stdio.ReadInput("")
	require.NoError(t, err)
	assert.Equal(t, "tail", result)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "yes", input: "y\n", want: true},
		{name: "full yes", input: "YES\n", want: true},
		{name: "no", input: "n\n", want: false},
		{name: "empty answer", input: "\n", want: false},
		{name: "eof", input: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			stdio := NewStdioWith(strings.NewReader(tt.input), &out, true)

			got, err := stdio.Confirm(context.Background(), "Load from cloud?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Load from cloud? [y/N]")
		})
	}
}

func TestConfirm_NotInteractive(t *testing.T) {
	var out bytes.Buffer
	stdio := NewStdioWith(strings.NewReader("y\n"), &out, false)

	got, err := stdio.Confirm(context.Background(), "Retry?")
	require.NoError(t, err)
	assert.False(t, got)
	assert.Contains(t, out.String(), "no terminal")
}

func TestConfirm_ContextCancelled(t *testing.T) {
	// Pipe без данных: чтение блокируется, пока не отменят контекст
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer func() {
		_ = w.Close()
		_ = r.Close()
	}()

	stdio := NewStdioWith(r, &bytes.Buffer{}, true)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = stdio.Confirm(ctx, "Retry?")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestConfirm_AnswerAfterCancelKept(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer func() {
		_ = w.Close()
		_ = r.Close()
	}()

	stdio := NewStdioWith(r, &bytes.Buffer{}, true)
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = stdio.Confirm(ctx, "Retry?")
	require.ErrorIs(t, err, context.DeadlineExceeded)

	// Строка, набранная после отмены, достаётся следующему вопросу
	_, err = w.Write([]byte("y\n"))
	require.NoError(t, err)

	ok, err := stdio.Confirm(context.Background(), "Use local save?")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestReadInput_EndOfInput(t *testing.T) {
	stdio := NewStdioWith(strings.NewReader("first\n"), &bytes.Buffer{}, true)

	line, err := stdio.ReadInput("")
	require.NoError(t, err)
	assert.Equal(t, "first", line)

	_, err = stdio.ReadInput("")
	assert.ErrorIs(t, err, io.EOF)
	_, err = stdio.ReadInput("")
	assert.ErrorIs(t, err, io.EOF, "end of input is sticky")
}

func TestPrompt(t *testing.T) {
	ctx := context.Background()

	stdio := NewStdioWith(strings.NewReader("4,5,6\n"), &bytes.Buffer{}, true)
	answer, ok, err := stdio.Prompt(ctx, "Import Save", "1,2,3")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "4,5,6", answer)

	// Пустой ввод возвращает значение по умолчанию
	stdio = NewStdioWith(strings.NewReader("\n"), &bytes.Buffer{}, true)
	answer, ok, err = stdio.Prompt(ctx, "Import Save", "1,2,3")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1,2,3", answer)

	// EOF означает отмену
	stdio = NewStdioWith(strings.NewReader(""), &bytes.Buffer{}, true)
	_, ok, err = stdio.Prompt(ctx, "Import Save", "1,2,3")
	require.NoError(t, err)
	assert.False(t, ok)

	stdio = NewStdioWith(strings.NewReader("4\n"), &bytes.Buffer{}, false)
	_, ok, err = stdio.Prompt(ctx, "Import Save", "1,2,3")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNotify(t *testing.T) {
	var out bytes.Buffer
	stdio := NewStdioWith(strings.NewReader(""), &out, true)

	stdio.Notify("Your save is invalid, your game will be reset.")
	assert.Equal(t, "! Your save is invalid, your game will be reset.\n", out.String())
}
