package auth

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "session.json"))
}

func TestStore_NotSignedInByDefault(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Current()
	assert.ErrorIs(t, err, ErrNotSignedIn)
}

func TestStore_SetAndCurrent(t *testing.T) {
	store := newTestStore(t)

	identity := Identity{Kind: KindParent, ID: 7, Name: "Lakshmi"}
	require.NoError(t, store.Set(identity))

	got, err := store.Current()
	require.NoError(t, err)
	assert.Equal(t, identity, *got)
}

func TestStore_SetReplacesPreviousLogin(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set(Identity{Kind: KindParent, ID: 7, Name: "Lakshmi"}))
	require.NoError(t, store.Set(Identity{Kind: KindAdmin, ID: 1, Name: "Administrator"}))

	got, err := store.Current()
	require.NoError(t, err)
	assert.Equal(t, KindAdmin, got.Kind)
	assert.EqualValues(t, 1, got.ID)
}

func TestStore_Clear(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Set(Identity{Kind: KindStaff, ID: 3, Name: "Nurse Rao"}))
	require.NoError(t, store.Clear())

	_, err := store.Current()
	assert.ErrorIs(t, err, ErrNotSignedIn)

	// Clearing again is not an error
	require.NoError(t, store.Clear())
}

func TestStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	require.NoError(t, NewStore(path).Set(Identity{Kind: KindParent, ID: 7, Name: "Lakshmi"}))

	// A new store over the same file, as after an app restart
	got, err := NewStore(path).Current()
	require.NoError(t, err)
	assert.Equal(t, KindParent, got.Kind)
	assert.EqualValues(t, 7, got.ID)
}
