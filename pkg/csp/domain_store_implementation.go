package csp

import "slices"

type sliceDomainStore struct {
	domains [][]int
}

func newSliceDomainStore(n int) *sliceDomainStore {
	domains := make([][]int, n)
	for variable := range n {
		domains[variable] = make([]int, n)
		for value := range n {
			domains[variable][value] = value
		}
	}
	return &sliceDomainStore{domains: domains}
}

func (store *sliceDomainStore) Get(variable int) ([]int, error) {
	if variable < 0 || variable >= len(store.domains) {
		return nil, InvalidVariableError{Variable: variable, Variables: len(store.domains)}
	}
	return store.domains[variable], nil
}

func (store *sliceDomainStore) Remove(variable, value int) {
	store.check(variable)
	index := slices.Index(store.domains[variable], value)
	if index == -1 {
		return
	}
	store.domains[variable] = slices.Delete(store.domains[variable], index, index+1)
}

func (store *sliceDomainStore) IsEmpty(variable int) bool {
	store.check(variable)
	return len(store.domains[variable]) == 0
}

func (store *sliceDomainStore) Size(variable int) int {
	store.check(variable)
	return len(store.domains[variable])
}

func (store *sliceDomainStore) Variables() int {
	return len(store.domains)
}

func (store *sliceDomainStore) Clone() DomainStore {
	domains := make([][]int, len(store.domains))
	for variable, domain := range store.domains {
		domains[variable] = slices.Clone(domain)
	}
	return &sliceDomainStore{domains: domains}
}

func (store *sliceDomainStore) check(variable int) {
	if variable < 0 || variable >= len(store.domains) {
		panic(InvalidVariableError{Variable: variable, Variables: len(store.domains)})
	}
}

// mustGet is the engine-internal accessor for paths where the variable index
// comes from the store itself and cannot be out of range.
func mustGet(store DomainStore, variable int) []int {
	domain, err := store.Get(variable)
	if err != nil {
		panic(err)
	}
	return domain
}
