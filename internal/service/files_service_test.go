package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"redditstage/internal/staging"
)

func TestFilesService_Discard(t *testing.T) {
	areas := testAreas(t)
	files := NewFilesService(staging.NewMover(), areas)
	ctx := context.Background()

	t.Run("moves the file to the discarded area", func(t *testing.T) {
		stageFile(t, areas.Images, "alice_1750000001.jpg")

		err := files.Discard(ctx, "alice_1750000001.jpg", TypeImages)

		require.NoError(t, err)
		assert.False(t, staging.Exists(areas.Images, "alice_1750000001.jpg"))
		assert.True(t, staging.Exists(areas.Deleted, "alice_1750000001.jpg"))
	})

	t.Run("second discard reports not found", func(t *testing.T) {
		err := files.Discard(ctx, "alice_1750000001.jpg", TypeImages)

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("missing file is not found, not an error class", func(t *testing.T) {
		err := files.Discard(ctx, "ghost.jpg", TypeImages)

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("accepts the legacy singular type values", func(t *testing.T) {
		stageFile(t, areas.Videos, "bob_1750000002.mp4")

		err := files.Discard(ctx, "bob_1750000002.mp4", "video")

		require.NoError(t, err)
		assert.True(t, staging.Exists(areas.Deleted, "bob_1750000002.mp4"))
	})

	t.Run("rejects unknown types", func(t *testing.T) {
		err := files.Discard(ctx, "whatever.jpg", "documents")

		assert.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("rejects empty filename", func(t *testing.T) {
		err := files.Discard(ctx, "", TypeImages)

		assert.ErrorIs(t, err, ErrInvalidRequest)
	})
}
