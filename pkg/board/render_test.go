package board

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nqueens/pkg/csp"
)

var fourQueens = csp.Solution{
	Feasible:   true,
	Assignment: csp.Assignment{0: 1, 1: 3, 2: 0, 3: 2},
}

func TestRender(t *testing.T) {
	t.Run("Feasible solution as 1-indexed pairs", func(t *testing.T) {
		assert.Equal(t, "(1, 2)\n(2, 4)\n(3, 1)\n(4, 3)", Render(fourQueens))
	})

	t.Run("Infeasible solution", func(t *testing.T) {
		assert.Equal(t, "No solution found", Render(csp.Solution{}))
	})
}

func TestGrid(t *testing.T) {
	t.Run("Feasible solution as ASCII board", func(t *testing.T) {
		expected := "0 0 1 0\n" +
			"1 0 0 0\n" +
			"0 0 0 1\n" +
			"0 1 0 0"
		assert.Equal(t, expected, Grid(fourQueens))
	})

	t.Run("Infeasible solution", func(t *testing.T) {
		assert.Equal(t, "No solution found", Grid(csp.Solution{}))
	})
}
