package stores

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anggasct/junction"
)

func openTestBadger(t *testing.T) *BadgerStore {
	t.Helper()

	store, err := OpenBadger(InMemoryBadgerConfig())
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func TestBadgerStore_RequiresPath(t *testing.T) {
	_, err := OpenBadger(BadgerConfig{})
	require.Error(t, err)
}

func TestBadgerStore_EmptyLoad(t *testing.T) {
	store := openTestBadger(t)

	lights, err := store.LoadState()
	require.NoError(t, err)
	assert.Nil(t, lights)
}

func TestBadgerStore_RoundTrip(t *testing.T) {
	store := openTestBadger(t)

	require.NoError(t, store.SaveState(sampleLights(t)))

	loaded, err := store.LoadState()
	require.NoError(t, err)
	require.Len(t, loaded, 4)
	assert.Equal(t, junction.Yellow, loaded[junction.North].Color())
	assert.Len(t, loaded[junction.North].History(), 2)
}

func TestBadgerStore_OverwritesPreviousState(t *testing.T) {
	store := openTestBadger(t)

	require.NoError(t, store.SaveState(sampleLights(t)))

	controller, err := junction.NewController(store, nil)
	require.NoError(t, err)
	require.NoError(t, controller.ChangeLight(junction.North, junction.Red))

	loaded, err := store.LoadState()
	require.NoError(t, err)
	assert.Equal(t, junction.Red, loaded[junction.North].Color())
	assert.Len(t, loaded[junction.North].History(), 3)
}

func TestBadgerStore_OnDisk(t *testing.T) {
	dir := t.TempDir()

	store, err := OpenBadger(DefaultBadgerConfig(dir))
	require.NoError(t, err)
	require.NoError(t, store.SaveState(sampleLights(t)))
	require.NoError(t, store.Close())

	reopened, err := OpenBadger(DefaultBadgerConfig(dir))
	require.NoError(t, err)
	defer func() {
		require.NoError(t, reopened.Close())
	}()

	loaded, err := reopened.LoadState()
	require.NoError(t, err)
	assert.Equal(t, junction.Yellow, loaded[junction.North].Color())
}
