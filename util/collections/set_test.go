package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetMembership(t *testing.T) {
	set := NewSet(1, 2, 3)
	assert.True(t, set.Contains(2))

	set.Remove(2)
	set.Remove(7)
	assert.False(t, set.Contains(2))
	assert.Len(t, set, 2)

	set.Add(4)
	assert.True(t, set.Equal(NewSet(1, 3, 4)))
	assert.False(t, set.Equal(NewSet(1, 3)))
	assert.False(t, set.Equal(NewSet(1, 3, 5)))
}

func TestSetOperations(t *testing.T) {
	left := NewSet("a", "b", "c")
	right := NewSet("b", "c", "d")

	assert.Equal(t, NewSet("a"), left.Difference(right))
	assert.Equal(t, NewSet("b", "c"), left.Intersection(right))

	intersection, isSubset := NewSet("b", "c").IntersectionEx(left)
	assert.True(t, isSubset)
	assert.Equal(t, NewSet("b", "c"), intersection)

	_, isSubset = left.IntersectionEx(right)
	assert.False(t, isSubset)
}
