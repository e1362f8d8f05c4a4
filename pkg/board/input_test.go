package board

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	assert.Nil(t, os.WriteFile(path, []byte(content), 0666))
	return path
}

func TestFromFile(t *testing.T) {
	t.Run("One row per line", func(t *testing.T) {
		// Arrange
		path := writeFile(t, "layout.txt", "2\n0\n3\n1\n")

		// Act
		layout, err := FromFile(path)

		// Assert
		assert.Nil(t, err)
		assert.Equal(t, Layout{2, 0, 3, 1}, layout)
		assert.Equal(t, 4, layout.Size())
	})

	t.Run("Whitespace and trailing blank lines are tolerated", func(t *testing.T) {
		// Arrange
		path := writeFile(t, "layout.txt", " 5\n7 \n\n1\n\n")

		// Act
		layout, err := FromFile(path)

		// Assert
		assert.Nil(t, err)
		assert.Equal(t, Layout{5, 7, 1}, layout)
	})

	t.Run("Invalid row value", func(t *testing.T) {
		// Arrange
		path := writeFile(t, "layout.txt", "1\nqueen\n3\n")

		// Act
		_, err := FromFile(path)

		// Assert
		assert.ErrorContains(t, err, "line 2")
	})

	t.Run("Missing file", func(t *testing.T) {
		// Act
		_, err := FromFile(filepath.Join(t.TempDir(), "missing.txt"))

		// Assert
		assert.NotNil(t, err)
	})
}

func TestFromJSON(t *testing.T) {
	t.Run("Valid layout", func(t *testing.T) {
		// Arrange
		path := writeFile(t, "layout.json", `{"queens": [3, 1, 4, 1, 5]}`)

		// Act
		layout, err := FromJSON(path)

		// Assert
		assert.Nil(t, err)
		assert.Equal(t, Layout{3, 1, 4, 1, 5}, layout)
	})

	t.Run("Missing queens key", func(t *testing.T) {
		// Arrange
		path := writeFile(t, "layout.json", `{"rows": [1, 2]}`)

		// Act
		_, err := FromJSON(path)

		// Assert
		assert.ErrorContains(t, err, "no queens")
	})

	t.Run("Malformed JSON", func(t *testing.T) {
		// Arrange
		path := writeFile(t, "layout.json", `{"queens": [`)

		// Act
		_, err := FromJSON(path)

		// Assert
		assert.NotNil(t, err)
	})
}

func TestRandom(t *testing.T) {
	for _, n := range []int{1, 10, 100} {
		// Act
		layout := Random(n)

		// Assert
		assert.Equal(t, n, layout.Size())
		for _, row := range layout {
			assert.GreaterOrEqual(t, row, 0)
			assert.Less(t, row, n)
		}
	}
}
