package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storelens/internal/dataset"
)

func TestStoreCreateAndGet(t *testing.T) {
	store := NewStore(time.Hour, nil)

	sess := store.Create()
	assert.NotEmpty(t, sess.ID)
	assert.NotNil(t, sess.Stopwords)

	got, ok := store.Get(sess.ID)
	require.True(t, ok)
	assert.Same(t, sess, got)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestStoreSessionsAreIsolated(t *testing.T) {
	store := NewStore(time.Hour, nil)
	a := store.Create()
	b := store.Create()

	a.Stopwords.Add("테스트")
	assert.False(t, b.Stopwords.Contains("테스트"))

	a.SetTable(dataset.KindReviews, dataset.Table{Columns: []string{dataset.ColText}})
	_, ok := b.Table(dataset.KindReviews)
	assert.False(t, ok)
}

func TestSessionTableReplacement(t *testing.T) {
	store := NewStore(time.Hour, nil)
	sess := store.Create()

	sess.SetTable(dataset.KindSales, dataset.Table{Columns: []string{"a"}})
	sess.SetTable(dataset.KindSales, dataset.Table{Columns: []string{"b"}})

	got, ok := sess.Table(dataset.KindSales)
	require.True(t, ok)
	assert.Equal(t, []string{"b"}, got.Columns)
}

func TestStoreDelete(t *testing.T) {
	store := NewStore(time.Hour, nil)
	sess := store.Create()

	store.Delete(sess.ID)
	_, ok := store.Get(sess.ID)
	assert.False(t, ok)
	assert.Zero(t, store.Len())
}

func TestStoreSweepRemovesExpired(t *testing.T) {
	store := NewStore(time.Minute, nil)
	stale := store.Create()
	fresh := store.Create()

	// Keep fresh alive past the sweep horizon.
	future := time.Now().Add(2 * time.Minute)
	fresh.touch(future)

	store.sweep(future)

	_, ok := store.Get(stale.ID)
	assert.False(t, ok)
	_, ok = store.Get(fresh.ID)
	assert.True(t, ok)
}
