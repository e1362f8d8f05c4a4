// Package board is the I/O boundary around the CSP engine: it reads board
// layouts from files, generates random starting layouts and formats
// solutions. Layout row values are informational only; the engine consumes
// nothing from a layout beyond its size.
package board

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

// Layout holds one starting row per column. Its length determines the board
// size n handed to the engine.
type Layout []int

// Size returns the board size the layout describes.
func (layout Layout) Size() int {
	return len(layout)
}

// FromFile reads a layout from a plain-text file with one row index per
// line. The number of lines determines the board size. A trailing blank line
// is tolerated.
func FromFile(path string) (Layout, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read layout file: %w", err)
	}

	lines := lo.Filter(strings.Split(string(content), "\n"), func(line string, _ int) bool {
		return strings.TrimSpace(line) != ""
	})

	layout := make(Layout, 0, len(lines))
	for i, line := range lines {
		row, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return nil, fmt.Errorf("invalid row value on line %v: %w", i+1, err)
		}
		layout = append(layout, row)
	}
	return layout, nil
}

type rawLayout struct {
	Queens []int
}

// FromJSON reads a layout from a JSON file of the form {"queens": [...]}.
func FromJSON(path string) (Layout, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read layout file: %w", err)
	}

	var layoutJson map[string]any
	if err := json.Unmarshal(content, &layoutJson); err != nil {
		return nil, fmt.Errorf("cannot parse layout file: %w", err)
	}

	var raw rawLayout
	if err := mapstructure.Decode(layoutJson, &raw); err != nil {
		return nil, fmt.Errorf("cannot decode layout file: %w", err)
	}
	if len(raw.Queens) == 0 {
		return nil, fmt.Errorf("layout file declares no queens")
	}
	return Layout(raw.Queens), nil
}

// Random generates a layout with one queen on a uniformly random row of each
// column.
func Random(n int) Layout {
	layout := make(Layout, n)
	for column := range n {
		layout[column] = rand.Intn(n)
	}
	return layout
}
