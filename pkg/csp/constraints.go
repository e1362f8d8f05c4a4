// Package csp implements the N-Queens placement problem as a binary
// constraint satisfaction problem: one variable per board column, candidate
// values are rows, and a non-attack constraint between every pair of columns.
package csp

// Compatible checks whether placing a queen on row valueI of column variableI
// and a queen on row valueJ of column variableJ leaves the two unable to
// attack each other (i.e. distinct rows and distinct diagonals). The check is
// symmetric in its two pairs.
func Compatible(variableI, valueI, variableJ, valueJ int) bool {
	if valueI == valueJ {
		return false
	}
	return abs(valueI-valueJ) != abs(variableI-variableJ)
}

// An arc is an ordered pair of distinct variables. The constraint graph is
// complete, so the arcs of an n-variable problem are all n*(n-1) ordered
// pairs.
type arc struct {
	from int
	to   int
}

func allArcs(variables int) []arc {
	arcs := make([]arc, 0, variables*variables)
	for i := range variables {
		for j := range variables {
			if i != j {
				arcs = append(arcs, arc{from: i, to: j})
			}
		}
	}
	return arcs
}

func abs(value int) int {
	if value < 0 {
		return -value
	}
	return value
}
