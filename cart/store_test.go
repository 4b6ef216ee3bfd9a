package cart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSessionRoundTrip(t *testing.T) {
	store := NewStore(time.Minute)

	token := store.NewSession()
	require.NotEmpty(t, token)

	crt, ok := store.Get(token)
	require.True(t, ok)
	crt.Add(Item{ProductID: "p1", Name: "Bolo", Price: 10})

	again, ok := store.Get(token)
	require.True(t, ok)
	assert.Equal(t, 1, again.Len())
}

func TestStoreUnknownToken(t *testing.T) {
	store := NewStore(time.Minute)

	_, ok := store.Get("nope")
	assert.False(t, ok)
}

func TestStoreDelete(t *testing.T) {
	store := NewStore(time.Minute)
	token := store.NewSession()

	store.Delete(token)

	_, ok := store.Get(token)
	assert.False(t, ok)
}

func TestStoreExpiry(t *testing.T) {
	store := NewStore(time.Millisecond)
	token := store.NewSession()

	time.Sleep(5 * time.Millisecond)

	_, ok := store.Get(token)
	assert.False(t, ok)
}

func TestStorePurgeExpired(t *testing.T) {
	store := NewStore(time.Millisecond)
	store.NewSession()
	store.NewSession()

	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, 2, store.PurgeExpired())
	assert.Equal(t, 0, store.PurgeExpired())
}
