package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLocalImageStore(t *testing.T) {
	store, err := NewLocalImageStore(t.TempDir(), zap.NewNop())
	require.NoError(t, err, "NewLocalImageStore() returned an error")

	t.Run("GenerateID", func(t *testing.T) {
		first := store.GenerateID()
		second := store.GenerateID()
		assert.Len(t, first, 12)
		assert.NotEqual(t, first, second)
	})

	t.Run("SaveAndResolve", func(t *testing.T) {
		contents := []byte("not really a png")
		id := store.GenerateID()

		path, err := store.Save(id, contents, ".png")
		require.NoError(t, err)
		assert.Equal(t, ".png", filepath.Ext(path))

		resolved, ok := store.Resolve(id)
		require.True(t, ok, "Resolve() did not find a saved image")
		assert.Equal(t, path, resolved)

		onDisk, err := os.ReadFile(resolved)
		require.NoError(t, err)
		assert.Equal(t, contents, onDisk)
	})

	t.Run("Info", func(t *testing.T) {
		contents := []byte("jpeg bytes go here")
		id := store.GenerateID()
		_, err := store.Save(id, contents, ".jpg")
		require.NoError(t, err)

		info, ok := store.Info(id)
		require.True(t, ok)
		assert.Equal(t, id, info.ImageID)
		assert.Equal(t, id+".jpg", info.Filename)
		assert.Equal(t, int64(len(contents)), info.SizeBytes)
		assert.Equal(t, ".jpg", info.Extension)
		assert.False(t, info.CreatedAt.IsZero())
	})

	t.Run("ResolveAbsent", func(t *testing.T) {
		_, ok := store.Resolve("never-saved")
		assert.False(t, ok)
		_, ok = store.Info("never-saved")
		assert.False(t, ok)
	})

	t.Run("ProbeOrder", func(t *testing.T) {
		// .jpg wins over .png when both exist for one id
		id := "probe-order"
		_, err := store.Save(id, []byte("png"), ".png")
		require.NoError(t, err)
		_, err = store.Save(id, []byte("jpg"), ".jpg")
		require.NoError(t, err)

		resolved, ok := store.Resolve(id)
		require.True(t, ok)
		assert.Equal(t, ".jpg", filepath.Ext(resolved))
	})

	t.Run("SaveOverwrites", func(t *testing.T) {
		id := store.GenerateID()
		_, err := store.Save(id, []byte("first"), ".png")
		require.NoError(t, err)
		path, err := store.Save(id, []byte("second"), ".png")
		require.NoError(t, err)

		onDisk, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []byte("second"), onDisk)
	})
}
