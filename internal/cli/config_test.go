package cli

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults when no file exists", func(t *testing.T) {
		// Arrange
		t.Chdir(t.TempDir())

		// Act
		config, err := loadConfig()

		// Assert
		assert.Nil(t, err)
		assert.Equal(t, defaultConfig(), config)
	})

	t.Run("File overrides defaults", func(t *testing.T) {
		// Arrange
		t.Chdir(t.TempDir())
		content := "min_size = 10\nmax_size = 200\nstrategy = \"sequential\"\n"
		assert.Nil(t, os.WriteFile(configFile, []byte(content), 0666))

		// Act
		config, err := loadConfig()

		// Assert
		assert.Nil(t, err)
		assert.Equal(t, Config{MinSize: 10, MaxSize: 200, Strategy: "sequential"}, config)
	})

	t.Run("Partial file keeps remaining defaults", func(t *testing.T) {
		// Arrange
		t.Chdir(t.TempDir())
		assert.Nil(t, os.WriteFile(configFile, []byte("max_size = 64\n"), 0666))

		// Act
		config, err := loadConfig()

		// Assert
		assert.Nil(t, err)
		assert.Equal(t, 1, config.MinSize)
		assert.Equal(t, 64, config.MaxSize)
		assert.Equal(t, "mrv-lcv", config.Strategy)
	})

	t.Run("Invalid bounds", func(t *testing.T) {
		// Arrange
		t.Chdir(t.TempDir())
		assert.Nil(t, os.WriteFile(configFile, []byte("min_size = 50\nmax_size = 10\n"), 0666))

		// Act
		_, err := loadConfig()

		// Assert
		assert.ErrorContains(t, err, "size bounds")
	})

	t.Run("Malformed TOML", func(t *testing.T) {
		// Arrange
		t.Chdir(t.TempDir())
		assert.Nil(t, os.WriteFile(configFile, []byte("min_size = =\n"), 0666))

		// Act
		_, err := loadConfig()

		// Assert
		assert.NotNil(t, err)
	})
}
