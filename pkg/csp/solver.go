package csp

// Stats reports how much work a solve performed.
type Stats struct {
	ValuesPruned uint64 // Domain values removed by arc consistency
	SearchNodes  uint64 // Backtracking nodes visited; zero when filtering already proved infeasibility
}

// Solution is the outcome of one solve: either a complete assignment
// (Feasible is true) or an explicit no-solution marker (Feasible is false,
// Assignment is nil). "No solution" is a regular result, not an error.
type Solution struct {
	Assignment Assignment
	Feasible   bool
	Stats      Stats
}

// Rows returns the assignment as a slice indexed by column, or nil when the
// solution is infeasible.
func (solution Solution) Rows() []int {
	if !solution.Feasible {
		return nil
	}
	rows := make([]int, len(solution.Assignment))
	for variable, value := range solution.Assignment {
		rows[variable] = value
	}
	return rows
}

// Solver ties the consistency filter and the searcher together. A Solver
// instance runs one solve at a time; callers that need parallel solves must
// create independent instances.
type Solver interface {
	// Solve finds a non-attacking placement of n queens on an n-by-n board,
	// or reports that none exists. It errs only on invalid input (n < 1);
	// an unsolvable board is a feasible==false Solution, not an error.
	Solve(n int) (Solution, error)

	// Verify checks a solution against every pairwise constraint. It accepts
	// exactly the complete, non-attacking assignments.
	Verify(solution Solution) bool
}

// NewSolver creates a solver from the given filter and searcher.
func NewSolver(filter ConsistencyFilter, searcher Searcher) Solver {
	return &cspSolver{filter: filter, searcher: searcher}
}

// NewDefaultSolver creates a solver with AC-3 filtering and MRV/LCV-guided
// backtracking.
func NewDefaultSolver() Solver {
	return NewSolver(NewConsistencyFilter(), NewBacktrackingSearcher())
}
