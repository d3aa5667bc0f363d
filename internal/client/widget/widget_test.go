package widget

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testState = `{
  "version": 10,
  "expressions": {
    "list": [
      {"type": "expression", "id": "583", "latex": "d_{ata}=\\left[1,2,3\\right]"},
      {"type": "folder", "id": "10", "title": "game"},
      {"type": "expression", "id": "12", "latex": "m_{oney}=5"}
    ]
  }
}`

func TestStore_SetState(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	require.NoError(t, store.SetState(ctx, []byte(testState), StateOptions{RemapColors: true}))

	exprs, err := store.Expressions(ctx)
	require.NoError(t, err)
	require.Len(t, exprs, 3)

	assert.Equal(t, "583", exprs[0].ID)
	assert.Equal(t, `d_{ata}=\left[1,2,3\right]`, exprs[0].Latex)
	assert.Equal(t, "folder", exprs[1].Type)
	assert.Empty(t, exprs[1].Latex)
	assert.Equal(t, "m_{oney}=5", exprs[2].Latex)
}

func TestStore_SetState_Invalid(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	err := store.SetState(ctx, []byte(`{"expressions":`), StateOptions{})
	assert.ErrorIs(t, err, ErrInvalidState)

	err = store.SetState(ctx, []byte(`{"expressions":{"list":{"id":"1"}}}`), StateOptions{})
	assert.ErrorIs(t, err, ErrInvalidState)

	err = store.SetState(ctx, []byte(`{"expressions":{"list":[{"id":"1"},{"id":"1"}]}}`), StateOptions{})
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestStore_SetExpression(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	require.NoError(t, store.SetState(ctx, []byte(testState), StateOptions{}))

	// Перезапись существующего выражения не меняет порядок и тип
	require.NoError(t, store.SetExpression(ctx, Expression{ID: "12", Latex: "m_{oney}=99"}))
	// Новое выражение добавляется в конец
	require.NoError(t, store.SetExpression(ctx, Expression{ID: "544", Latex: "r_{unning}=1"}))

	exprs, err := store.Expressions(ctx)
	require.NoError(t, err)
	require.Len(t, exprs, 4)
	assert.Equal(t, Expression{ID: "12", Type: "expression", Latex: "m_{oney}=99"}, exprs[2])
	assert.Equal(t, Expression{ID: "544", Type: "expression", Latex: "r_{unning}=1"}, exprs[3])

	assert.ErrorIs(t, store.SetExpression(ctx, Expression{Latex: "x=1"}), ErrEmptyExpressionID)
}

func TestStore_ExpressionsReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	require.NoError(t, store.SetExpression(ctx, Expression{ID: "1", Latex: "a=1"}))

	exprs, err := store.Expressions(ctx)
	require.NoError(t, err)
	exprs[0].Latex = "a=2"

	again, err := store.Expressions(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a=1", again[0].Latex)
}
