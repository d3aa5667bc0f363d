// Package bridge translates between the widget expression store and the flat
// save blob.
//
// Two expressions are load-bearing: the data holder, a list assignment
// `d_{ata}=\left[...\right]` holding the canonical blob, and the manifest,
// a function definition `f_{save}\left(\right)=d_{ata}\to\left[a,b,...\right]`
// listing which widget variables map to which blob position.
package bridge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iudanet/gophsave/internal/client/widget"
	"github.com/iudanet/gophsave/internal/models"
)

// ErrBridgeFormat is the sentinel behind every BridgeFormatError
var ErrBridgeFormat = errors.New("unexpected widget expression format")

// BridgeFormatError reports a load-bearing expression with an unexpected shape
type BridgeFormatError struct {
	Cause  error
	ExprID string
	Latex  string
}

func (e *BridgeFormatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("expression %s: %v: %v", e.ExprID, ErrBridgeFormat, e.Cause)
	}
	return fmt.Sprintf("expression %s: %v", e.ExprID, ErrBridgeFormat)
}

func (e *BridgeFormatError) Unwrap() error {
	return ErrBridgeFormat
}

var errExpressionNotFound = errors.New("expression not found")

// Config names the load-bearing expressions
type Config struct {
	DataID       string // id выражения с каноническим списком данных
	ManifestID   string // id выражения с порядком полей
	DataVariable string // имя переменной списка, d_{ata}
	ManifestFunc string // имя функции манифеста, f_{save}
}

// DefaultConfig returns the ids used by the shipped game state
func DefaultConfig() Config {
	return Config{
		DataID:       "583",
		ManifestID:   "585",
		DataVariable: "d_{ata}",
		ManifestFunc: "f_{save}",
	}
}

// Bridge reads and writes save data through the widget
type Bridge struct {
	calc   widget.Calculator
	logger *slog.Logger
	cfg    Config
}

// New creates a bridge over calc
func New(calc widget.Calculator, cfg Config, logger *slog.Logger) *Bridge {
	return &Bridge{
		calc:   calc,
		cfg:    cfg,
		logger: logger,
	}
}

// ReadBlob returns the payload of the data holder expression.
// Fails with *BridgeFormatError if the expression is missing or is not a
// bracketed list assignment to the data variable.
func (b *Bridge) ReadBlob(ctx context.Context) (models.SaveBlob, error) {
	exprs, err := b.calc.Expressions(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get expressions: %w", err)
	}

	expr, ok := findByID(exprs, b.cfg.DataID)
	if !ok {
		return "", &BridgeFormatError{ExprID: b.cfg.DataID, Cause: errExpressionNotFound}
	}

	name, payload, err := parseList(expr.Latex)
	if err != nil {
		return "", &BridgeFormatError{ExprID: expr.ID, Latex: expr.Latex, Cause: err}
	}
	if name != b.cfg.DataVariable {
		return "", &BridgeFormatError{
			ExprID: expr.ID,
			Latex:  expr.Latex,
			Cause:  fmt.Errorf("list assigned to %q, want %q", name, b.cfg.DataVariable),
		}
	}

	return models.SaveBlob(payload), nil
}

// WriteBlob overwrites the data holder with the bracketed form of blob
func (b *Bridge) WriteBlob(ctx context.Context, blob models.SaveBlob) error {
	expr := widget.Expression{
		ID:    b.cfg.DataID,
		Latex: formatList(b.cfg.DataVariable, blob.String()),
	}
	if err := b.calc.SetExpression(ctx, expr); err != nil {
		return fmt.Errorf("failed to set data expression: %w", err)
	}
	return nil
}

// manifest returns the ordered field identifiers of the manifest expression
func (b *Bridge) manifest(exprs []widget.Expression) ([]string, error) {
	expr, ok := findByID(exprs, b.cfg.ManifestID)
	if !ok {
		return nil, &BridgeFormatError{ExprID: b.cfg.ManifestID, Cause: errExpressionNotFound}
	}

	def, fields, err := parseManifest(expr.Latex)
	if err != nil {
		return nil, &BridgeFormatError{ExprID: expr.ID, Latex: expr.Latex, Cause: err}
	}
	if def.Func != b.cfg.ManifestFunc || def.Target != b.cfg.DataVariable {
		want := formatManifest(b.cfg.ManifestFunc, b.cfg.DataVariable, fields)
		return nil, &BridgeFormatError{
			ExprID: expr.ID,
			Latex:  expr.Latex,
			Cause:  fmt.Errorf("manifest %q targets %q, want %s", def.Func, def.Target, want),
		}
	}

	return fields, nil
}

// ExportFields collects the values of the manifest fields, in manifest order.
// A manifest entry without a matching expression is skipped, which shifts
// every later value one position left.
func (b *Bridge) ExportFields(ctx context.Context) (models.SaveBlob, error) {
	exprs, err := b.calc.Expressions(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get expressions: %w", err)
	}

	fields, err := b.manifest(exprs)
	if err != nil {
		return "", err
	}

	values := make([]string, 0, len(fields))
	for _, field := range fields {
		expr, ok := findByName(exprs, field)
		if !ok {
			b.logger.Warn("Manifest field has no expression, skipping", "field", field)
			continue
		}
		_, value, _ := splitAssignment(expr.Latex)
		values = append(values, value)
	}

	return models.JoinFields(values), nil
}

// ImportFields writes blob values back into the manifest fields.
// Entries past the end of blob, with an empty value, or without a matching
// expression are left untouched.
func (b *Bridge) ImportFields(ctx context.Context, blob models.SaveBlob) error {
	exprs, err := b.calc.Expressions(ctx)
	if err != nil {
		return fmt.Errorf("failed to get expressions: %w", err)
	}

	fields, err := b.manifest(exprs)
	if err != nil {
		return err
	}

	values := blob.Fields()
	for i, field := range fields {
		if i >= len(values) || values[i] == "" {
			continue
		}

		expr, ok := findByName(exprs, field)
		if !ok {
			b.logger.Warn("Manifest field has no expression, skipping", "field", field)
			continue
		}

		update := widget.Expression{ID: expr.ID, Latex: formatAssignment(field, values[i])}
		if err := b.calc.SetExpression(ctx, update); err != nil {
			return fmt.Errorf("failed to set field %s: %w", field, err)
		}
	}

	return nil
}

func findByID(exprs []widget.Expression, id string) (widget.Expression, bool) {
	for _, e := range exprs {
		if e.ID == id {
			return e, true
		}
	}
	return widget.Expression{}, false
}

// findByName ищет первое выражение, левая часть которого совпадает с name
func findByName(exprs []widget.Expression, name string) (widget.Expression, bool) {
	if name == "" {
		return widget.Expression{}, false
	}
	for _, e := range exprs {
		if e.Latex == "" {
			continue
		}
		lhs, _, ok := splitAssignment(e.Latex)
		if ok && lhs == name {
			return e, true
		}
	}
	return widget.Expression{}, false
}
