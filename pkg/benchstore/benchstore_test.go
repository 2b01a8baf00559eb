package benchstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(filepath.Join(dir, "db"))
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Set([]byte("k1"), []byte("v1")))
	got, err := s.Get([]byte("k1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), got)

	require.NoError(t, s.Set([]byte("k1"), []byte("v2")))
	got, err = s.Get([]byte("k1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), got)

	require.NoError(t, s.Delete([]byte("k1")))
	_, err = s.Get([]byte("k1"))
	assert.Error(t, err)
}

func TestStoreIterOrder(t *testing.T) {
	dir := t.TempDir()
	s, err := Open(filepath.Join(dir, "db"))
	require.NoError(t, err)
	defer s.Close()

	for _, k := range []string{"banana", "apple", "cherry"} {
		require.NoError(t, s.Set([]byte(k), []byte(k)))
	}

	iter, err := s.NewIter()
	require.NoError(t, err)
	defer iter.Close()

	var got []string
	for iter.First(); iter.Valid(); iter.Next() {
		got = append(got, string(iter.Key()))
	}
	assert.Equal(t, []string{"apple", "banana", "cherry"}, got)
}
