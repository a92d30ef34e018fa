package staging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("data"), 0o644))
}

func TestMover_Move(t *testing.T) {
	mover := NewMover()

	t.Run("moves the file and creates the destination", func(t *testing.T) {
		from := t.TempDir()
		to := filepath.Join(t.TempDir(), "published")
		writeFile(t, from, "alice_1750000001.jpg")

		moved, err := mover.Move("alice_1750000001.jpg", from, to)

		assert.NoError(t, err)
		assert.True(t, moved)
		assert.False(t, Exists(from, "alice_1750000001.jpg"))
		assert.True(t, Exists(to, "alice_1750000001.jpg"))
	})

	t.Run("missing source is not an error", func(t *testing.T) {
		from := t.TempDir()
		to := t.TempDir()

		moved, err := mover.Move("ghost.jpg", from, to)

		assert.NoError(t, err)
		assert.False(t, moved)
	})

	t.Run("second move of the same file reports not moved", func(t *testing.T) {
		from := t.TempDir()
		to := t.TempDir()
		writeFile(t, from, "bob_1750000002.jpg")

		moved, err := mover.Move("bob_1750000002.jpg", from, to)
		require.NoError(t, err)
		require.True(t, moved)

		moved, err = mover.Move("bob_1750000002.jpg", from, to)
		assert.NoError(t, err)
		assert.False(t, moved)
	})

	t.Run("rejects names that escape the area", func(t *testing.T) {
		from := t.TempDir()
		to := t.TempDir()

		_, err := mover.Move("../escape.jpg", from, to)
		assert.Error(t, err)

		_, err = mover.Move("sub/escape.jpg", from, to)
		assert.Error(t, err)
	})
}

func TestMover_WithLock(t *testing.T) {
	mover := NewMover()
	from := t.TempDir()
	to := t.TempDir()
	writeFile(t, from, "alice_1750000001.jpg")

	// Two goroutines race to claim the same file; exactly one wins.
	results := make(chan bool, 2)
	for i := 0; i < 2; i++ {
		go func() {
			_ = mover.WithLock(from, func() error {
				moved, err := mover.Move("alice_1750000001.jpg", from, to)
				if err != nil {
					return err
				}
				results <- moved
				return nil
			})
		}()
	}

	first, second := <-results, <-results
	assert.True(t, first != second, "exactly one claim must win")
}
