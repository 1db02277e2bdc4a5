package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBadgerStoreRoundTrip(t *testing.T) {
	s, err := NewInMemoryStore()
	require.NoError(t, err)
	defer s.Close()

	// sin snapshot guardado: found=false, sin error
	_, found, err := s.Load()
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Save([]byte(`{"products":[]}`)))

	data, found, err := s.Load()
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []byte(`{"products":[]}`), data)

	// Delete vuelve al estado "nunca guardado"
	require.NoError(t, s.Delete())
	_, found, err = s.Load()
	require.NoError(t, err)
	assert.False(t, found)
}

func TestBadgerStoreOverwrite(t *testing.T) {
	s, err := NewInMemoryStore()
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Save([]byte(`v1`)))
	require.NoError(t, s.Save([]byte(`v2`)))

	data, found, err := s.Load()
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []byte(`v2`), data)
}
