package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityNamesMergesSets(t *testing.T) {
	store := NewActivityNames()

	store.Add("Lisbon", []string{"Belem Tower"}, time.Minute)
	store.Add("Lisbon", []string{"Belem Tower", "Alfama Walk"}, time.Minute)

	names, ok := store.Get("Lisbon")
	require.True(t, ok)
	assert.ElementsMatch(t, []string{"Belem Tower", "Alfama Walk"}, names)
}

func TestActivityNamesKeysByCity(t *testing.T) {
	store := NewActivityNames()

	store.Add("Lisbon", []string{"Belem Tower"}, time.Minute)

	_, ok := store.Get("Porto")
	assert.False(t, ok)
}

func TestActivityNamesExpire(t *testing.T) {
	store := NewActivityNames()

	store.Add("Lisbon", []string{"Belem Tower"}, -time.Second)

	_, ok := store.Get("Lisbon")
	assert.False(t, ok)

	// A fresh add after expiry replaces the old set instead of merging.
	store.Add("Lisbon", []string{"Alfama Walk"}, time.Minute)
	names, ok := store.Get("Lisbon")
	require.True(t, ok)
	assert.Equal(t, []string{"Alfama Walk"}, names)
}
