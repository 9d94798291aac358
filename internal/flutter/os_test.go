package flutter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOSToolchain_WithContext(t *testing.T) {
	type ctxKey struct{}
	ctx := context.WithValue(context.Background(), ctxKey{}, "marker")

	toolchain := NewOSToolchain().WithContext(ctx)

	bound, ok := toolchain.(*OSToolchain)
	require.True(t, ok)
	require.Equal(t, ctx, bound.ctx)
}

func TestOSToolchain_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewOSToolchain().WithContext(ctx).Doctor()
	require.Error(t, err)
}
