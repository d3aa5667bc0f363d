// Package widget describes the contract of the embedded calculator widget
// and provides an in-process expression store implementing it.
package widget

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/tidwall/gjson"
)

var (
	// ErrInvalidState возвращается, если документ состояния не является JSON
	ErrInvalidState = errors.New("invalid widget state document")
	// ErrEmptyExpressionID возвращается при попытке записать выражение без id
	ErrEmptyExpressionID = errors.New("expression id is empty")
)

// Expression is a single keyed expression of the widget
type Expression struct {
	ID    string `json:"id"`
	Type  string `json:"type,omitempty"`
	Latex string `json:"latex,omitempty"`
}

// StateOptions mirrors the options accepted when a full snapshot is applied
type StateOptions struct {
	RemapColors bool
}

// Calculator is the part of the widget API the save layer consumes.
// The widget is treated as an opaque key-value store of expressions.
type Calculator interface {
	// Expressions returns all expressions in widget order
	Expressions(ctx context.Context) ([]Expression, error)

	// SetExpression creates or overwrites the expression with expr.ID
	SetExpression(ctx context.Context, expr Expression) error

	// SetState replaces the whole widget state with a snapshot document
	SetState(ctx context.Context, state []byte, opts StateOptions) error
}

// Store is an in-memory Calculator.
// Expressions keep insertion order, like the widget expression list.
type Store struct {
	exprs map[string]Expression
	order []string
	mu    sync.RWMutex
}

// NewStore creates an empty expression store
func NewStore() *Store {
	return &Store{
		exprs: make(map[string]Expression),
	}
}

// Expressions returns a copy of all expressions in order
func (s *Store) Expressions(ctx context.Context) ([]Expression, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Expression, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.exprs[id])
	}
	return result, nil
}

// SetExpression overwrites the latex of an existing expression or appends a new one
func (s *Store) SetExpression(ctx context.Context, expr Expression) error {
	if expr.ID == "" {
		return ErrEmptyExpressionID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.exprs[expr.ID]
	if !ok {
		if expr.Type == "" {
			expr.Type = "expression"
		}
		s.exprs[expr.ID] = expr
		s.order = append(s.order, expr.ID)
		return nil
	}

	// Тип выражения сохраняем, если его не передали
	if expr.Type == "" {
		expr.Type = existing.Type
	}
	s.exprs[expr.ID] = expr
	return nil
}

// SetState loads the expression list of a widget state document
// ({"expressions":{"list":[{"id":..,"latex":..}]}}).
// Colors are not tracked by the store, so RemapColors has no effect here.
func (s *Store) SetState(ctx context.Context, state []byte, opts StateOptions) error {
	if !gjson.ValidBytes(state) {
		return ErrInvalidState
	}

	list := gjson.GetBytes(state, "expressions.list")
	if list.Exists() && !list.IsArray() {
		return fmt.Errorf("%w: expressions.list is not an array", ErrInvalidState)
	}

	exprs := make(map[string]Expression)
	order := make([]string, 0)

	for _, item := range list.Array() {
		id := item.Get("id").String()
		if id == "" {
			continue
		}
		if _, dup := exprs[id]; dup {
			return fmt.Errorf("%w: duplicate expression id %q", ErrInvalidState, id)
		}
		exprs[id] = Expression{
			ID:    id,
			Type:  item.Get("type").String(),
			Latex: item.Get("latex").String(),
		}
		order = append(order, id)
	}

	s.mu.Lock()
	s.exprs = exprs
	s.order = order
	s.mu.Unlock()

	return nil
}
