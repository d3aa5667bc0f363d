package storage

import "errors"

// Common storage errors
var (
	// ErrAccountNotFound indicates that account was not found in storage
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountAlreadyExists indicates that account with this name already exists
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrSlotNotFound indicates that the account has nothing stored in the slot
	ErrSlotNotFound = errors.New("slot not found")
)
