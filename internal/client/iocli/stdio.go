package iocli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// Stdio implements IO over a terminal.
// Without a terminal every question is declined instead of waiting for input.
//
// Input is read by a single goroutine started on the first read. A line typed
// after a cancelled question is kept for the next one.
type Stdio struct {
	out         io.Writer
	reader      *bufio.Reader
	readErr     error
	lines       chan string
	readOnce    sync.Once
	interactive bool
}

// NewStdio returns IO bound to the process stdin/stdout
func NewStdio() IO {
	return NewStdioWith(os.Stdin, os.Stdout, term.IsTerminal(int(os.Stdin.Fd())))
}

// NewStdioWith returns IO over arbitrary streams
func NewStdioWith(in io.Reader, out io.Writer, interactive bool) *Stdio {
	return &Stdio{
		out:         out,
		reader:      bufio.NewReader(in),
		lines:       make(chan string),
		interactive: interactive,
	}
}

func (s *Stdio) Println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

func (s *Stdio) ReadInput(prompt string) (string, error) {
	return s.readLine(context.Background(), prompt)
}

func (s *Stdio) Confirm(ctx context.Context, message string) (bool, error) {
	if !s.interactive {
		s.Printf("%s [y/N] n (no terminal)\n", message)
		return false, nil
	}

	answer, err := s.readLine(ctx, message+" [y/N] ")
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, err
	}

	switch strings.ToLower(answer) {
	case "y", "yes", "д", "да":
		return true, nil
	default:
		return false, nil
	}
}

func (s *Stdio) Prompt(ctx context.Context, message, def string) (string, bool, error) {
	if !s.interactive {
		s.Printf("%s (no terminal, cancelled)\n", message)
		return "", false, nil
	}

	s.Println(message)
	if def != "" {
		s.Printf("[%s]\n", def)
	}

	answer, err := s.readLine(ctx, "> ")
	if err != nil {
		if errors.Is(err, io.EOF) {
			// Ctrl-D работает как кнопка "Отмена"
			return "", false, nil
		}
		return "", false, err
	}

	if answer == "" {
		return def, true, nil
	}
	return answer, true, nil
}

func (s *Stdio) Notify(message string) {
	s.Printf("! %s\n", message)
}

// readLine ждёт следующую строку ввода или отмены ctx
func (s *Stdio) readLine(ctx context.Context, prompt string) (string, error) {
	s.readOnce.Do(func() {
		go s.readLoop()
	})
	s.Printf("%s", prompt)

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-s.lines:
		if !ok {
			return "", s.readErr
		}
		return line, nil
	}
}

// readLoop отдаёт строки по одной; после ошибки чтения канал закрывается
func (s *Stdio) readLoop() {
	for {
		input, err := s.reader.ReadString('\n')
		if input != "" {
			s.lines <- strings.TrimSpace(input)
		}
		if err != nil {
			s.readErr = err
			close(s.lines)
			return
		}
	}
}
