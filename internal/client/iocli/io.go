package iocli

import "context"

//go:generate moq -out io_mock.go . IO

// IO is the console of the client and the user-decision port of the
// save reconciler. Confirm, Prompt and Notify block until the user answers.
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	Write(p []byte) (n int, err error)

	// Confirm asks a yes/no question. Cancel or no answer is false.
	Confirm(ctx context.Context, message string) (bool, error)

	// Prompt asks for a line of text pre-filled with def.
	// ok is false when the user cancelled the prompt.
	Prompt(ctx context.Context, message, def string) (answer string, ok bool, err error)

	// Notify shows a message the user has to see
	Notify(message string)
}
