package kvstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zumanm1/ospf-netplan/internal/kvstore"
)

func TestSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := kvstore.OpenSQLite(":memory:")
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Put(ctx, "scenarios", "s1", []byte(`{"foo":1}`)))
	got, err := store.Get(ctx, "scenarios", "s1")
	require.NoError(t, err)
	require.Equal(t, []byte(`{"foo":1}`), got)

	require.NoError(t, store.Put(ctx, "scenarios", "s1", []byte(`{"foo":2}`)))
	got, err = store.Get(ctx, "scenarios", "s1")
	require.NoError(t, err)
	require.Equal(t, []byte(`{"foo":2}`), got)

	require.NoError(t, store.Delete(ctx, "scenarios", "s1"))
	_, err = store.Get(ctx, "scenarios", "s1")
	require.ErrorIs(t, err, kvstore.ErrNotFound)
}
