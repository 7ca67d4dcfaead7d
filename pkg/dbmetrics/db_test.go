package dbmetrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeTx struct{ DBExecutor }

func (fakeTx) Commit() error   { return nil }
func (fakeTx) Rollback() error { return nil }

func TestGetExecutor_PrefersTransaction(t *testing.T) {
	fallback := &DB{}
	tx := fakeTx{}

	assert.Same(t, fallback, GetExecutor(context.Background(), fallback))
	assert.False(t, IsInTransaction(context.Background()))

	ctx := WithTx(context.Background(), tx)
	assert.True(t, IsInTransaction(ctx))
	assert.Equal(t, tx, GetExecutor(ctx, fallback))
}

func TestOperation(t *testing.T) {
	assert.Equal(t, "select", operation("  SELECT id FROM bookings"))
	assert.Equal(t, "insert", operation("INSERT INTO bookings"))
	assert.Equal(t, "unknown", operation(""))
}
