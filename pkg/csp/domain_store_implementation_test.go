package csp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainStoreInitialization(t *testing.T) {
	for _, n := range []int{1, 4, 8, 20} {
		// Arrange
		store := NewDomainStore(n)

		// Assert
		assert.Equal(t, n, store.Variables())
		for variable := range n {
			domain, err := store.Get(variable)
			assert.Nil(t, err)
			assert.Len(t, domain, n)
			for value := range n {
				assert.Equal(t, value, domain[value])
			}
		}
	}
}

func TestDomainStoreRemove(t *testing.T) {
	t.Run("Preserves order of remaining values", func(t *testing.T) {
		// Arrange
		store := NewDomainStore(5)

		// Act
		store.Remove(2, 1)
		store.Remove(2, 3)

		// Assert
		domain, err := store.Get(2)
		assert.Nil(t, err)
		assert.Equal(t, []int{0, 2, 4}, domain)
	})

	t.Run("Absent value is a no-op", func(t *testing.T) {
		// Arrange
		store := NewDomainStore(3)
		store.Remove(0, 1)

		// Act
		store.Remove(0, 1)
		store.Remove(0, 7)

		// Assert
		domain, err := store.Get(0)
		assert.Nil(t, err)
		assert.Equal(t, []int{0, 2}, domain)
	})

	t.Run("Emptied domain is reported empty", func(t *testing.T) {
		// Arrange
		store := NewDomainStore(2)

		// Act
		store.Remove(1, 0)
		store.Remove(1, 1)

		// Assert
		assert.True(t, store.IsEmpty(1))
		assert.False(t, store.IsEmpty(0))
		assert.Equal(t, 0, store.Size(1))
	})
}

func TestDomainStoreInvalidVariable(t *testing.T) {
	// Arrange
	store := NewDomainStore(4)

	// Act
	_, err := store.Get(4)

	// Assert
	var invalid InvalidVariableError
	assert.ErrorAs(t, err, &invalid)
	assert.Equal(t, 4, invalid.Variable)
	_, err = store.Get(-1)
	assert.NotNil(t, err)

	assert.Panics(t, func() { store.Remove(4, 0) })
	assert.Panics(t, func() { store.IsEmpty(-1) })
	assert.Panics(t, func() { store.Size(10) })
}

func TestDomainStoreClone(t *testing.T) {
	// Arrange
	store := NewDomainStore(4)
	store.Remove(0, 2)

	// Act
	clone := store.Clone()
	clone.Remove(0, 3)
	clone.Remove(1, 1)

	// Assert
	original, err := store.Get(0)
	assert.Nil(t, err)
	assert.Equal(t, []int{0, 1, 3}, original)
	assert.Equal(t, 4, store.Size(1))

	cloned, err := clone.Get(0)
	assert.Nil(t, err)
	assert.Equal(t, []int{0, 1}, cloned)
	assert.Equal(t, 3, clone.Size(1))
}
