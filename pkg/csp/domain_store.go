package csp

import "fmt"

// InvalidVariableError indicates a variable index outside [0, n). It points at
// a defect in the caller, not at a property of the puzzle instance.
type InvalidVariableError struct {
	Variable  int
	Variables int
}

func (err InvalidVariableError) Error() string {
	return fmt.Sprintf("variable %v is outside the valid range [0, %v)", err.Variable, err.Variables)
}

// DomainStore holds, for every column variable, the ordered set of candidate
// rows that is still available to it. Domains start as 0..n-1 and only ever
// shrink; the order of the remaining values is preserved and used for
// deterministic tie-breaking downstream.
//
// A DomainStore belongs to a single solve invocation and must not be shared
// between concurrent solves.
type DomainStore interface {
	// Get returns the current domain of the variable. The returned slice is
	// owned by the store and must not be mutated by the caller.
	Get(variable int) ([]int, error)

	// Remove deletes one value from the variable's domain, preserving the
	// order of the remaining values. Removing an absent value is a no-op.
	Remove(variable, value int)

	// IsEmpty checks whether the variable's domain has been exhausted.
	IsEmpty(variable int) bool

	// Size returns the number of values remaining in the variable's domain.
	Size(variable int) int

	// Variables returns the number of variables the store was created with.
	Variables() int

	// Clone returns an independent deep copy of the store.
	Clone() DomainStore
}

// NewDomainStore creates a store of n variables, each with the full domain
// 0..n-1.
func NewDomainStore(n int) DomainStore {
	return newSliceDomainStore(n)
}
