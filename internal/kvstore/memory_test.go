package kvstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zumanm1/ospf-netplan/internal/kvstore"
)

func TestMemoryGetPutDelete(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()

	_, err := store.Get(ctx, "scenarios", "missing")
	require.ErrorIs(t, err, kvstore.ErrNotFound)

	require.NoError(t, store.Put(ctx, "scenarios", "s1", []byte("payload")))
	got, err := store.Get(ctx, "scenarios", "s1")
	require.NoError(t, err)
	require.Equal(t, []byte("payload"), got)

	keys, err := store.List(ctx, "scenarios")
	require.NoError(t, err)
	require.Equal(t, []string{"s1"}, keys)

	require.NoError(t, store.Delete(ctx, "scenarios", "s1"))
	_, err = store.Get(ctx, "scenarios", "s1")
	require.ErrorIs(t, err, kvstore.ErrNotFound)
}

func TestMemoryNamespacesAreIsolated(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	require.NoError(t, store.Put(ctx, "a", "k", []byte("1")))
	require.NoError(t, store.Put(ctx, "b", "k", []byte("2")))

	got, err := store.Get(ctx, "a", "k")
	require.NoError(t, err)
	require.Equal(t, []byte("1"), got)
}
