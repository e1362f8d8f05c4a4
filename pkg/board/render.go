package board

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"nqueens/pkg/csp"
)

// Render formats a solution as one 1-indexed (column, row) pair per line,
// or the no-solution message when the solution is infeasible.
func Render(solution csp.Solution) string {
	if !solution.Feasible {
		return "No solution found"
	}

	lines := lo.Map(solution.Rows(), func(row int, column int) string {
		return fmt.Sprintf("(%v, %v)", column+1, row+1)
	})
	return strings.Join(lines, "\n")
}

// Grid formats a solution as an ASCII board with one line per row, a 1
// marking a queen and a 0 an empty square:
//
//	0 1 0 0
//	0 0 0 1
//	1 0 0 0
//	0 0 1 0
func Grid(solution csp.Solution) string {
	if !solution.Feasible {
		return "No solution found"
	}

	rows := solution.Rows()
	n := len(rows)

	var builder strings.Builder
	for row := range n {
		cells := make([]string, n)
		for column := range n {
			if rows[column] == row {
				cells[column] = "1"
			} else {
				cells[column] = "0"
			}
		}
		builder.WriteString(strings.Join(cells, " "))
		if row < n-1 {
			builder.WriteString("\n")
		}
	}
	return builder.String()
}
