package rect_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/strawberryfields/greenhouse/rect"
)

func TestSpan_SetTestClear(t *testing.T) {
	s := rect.NewSpan(130) // spans more than two words
	require.True(t, s.IsZero())

	s.Set(0)
	s.Set(63)
	s.Set(64)
	s.Set(129)
	require.True(t, s.Test(0))
	require.True(t, s.Test(63))
	require.True(t, s.Test(64))
	require.True(t, s.Test(129))
	require.False(t, s.Test(1))
	require.False(t, s.IsZero())

	s.Clear()
	require.True(t, s.IsZero())
}

func TestSpan_SetAlgebra(t *testing.T) {
	a := rect.NewSpan(8)
	b := rect.NewSpan(8)
	for _, i := range []int{0, 1, 2, 3} {
		a.Set(i)
	}
	for _, i := range []int{2, 3, 4, 5} {
		b.Set(i)
	}

	and := a.And(b)
	for i := 0; i < 8; i++ {
		require.Equal(t, i == 2 || i == 3, and.Test(i), "bit %d", i)
	}

	or := a.Or(b)
	for i := 0; i < 8; i++ {
		require.Equal(t, i <= 5, or.Test(i), "bit %d", i)
	}

	andNot := a.AndNot(b)
	for i := 0; i < 8; i++ {
		require.Equal(t, i == 0 || i == 1, andNot.Test(i), "bit %d", i)
	}

	require.True(t, a.Intersects(b))
	require.False(t, a.IsSubsetOf(b))

	sub := rect.NewSpan(8)
	sub.Set(2)
	require.True(t, sub.IsSubsetOf(a))
	require.True(t, sub.IsSubsetOf(b))
}

func TestSpan_OrIntoAndNotInto(t *testing.T) {
	mask := rect.NewSpan(8)
	add := rect.NewSpan(8)
	add.Set(1)
	add.Set(5)

	mask.OrInto(add)
	require.True(t, mask.Test(1))
	require.True(t, mask.Test(5))

	remove := rect.NewSpan(8)
	remove.Set(1)
	mask.AndNotInto(remove)
	require.False(t, mask.Test(1))
	require.True(t, mask.Test(5))
}

func TestSpan_EqualAndClone(t *testing.T) {
	a := rect.NewSpan(16)
	a.Set(3)
	a.Set(9)
	b := a.Clone()
	require.True(t, a.Equal(b))

	b.Set(10)
	require.False(t, a.Equal(b))
	// Clone must not alias the original's backing words.
	require.False(t, a.Test(10))
}

func TestSpan_NextSetScansAscending(t *testing.T) {
	s := rect.NewSpan(70)
	s.Set(5)
	s.Set(64)
	s.Set(69)

	idx, ok := s.FirstSet()
	require.True(t, ok)
	require.Equal(t, 5, idx)

	idx, ok = s.NextSet(6)
	require.True(t, ok)
	require.Equal(t, 64, idx)

	idx, ok = s.NextSet(65)
	require.True(t, ok)
	require.Equal(t, 69, idx)

	_, ok = s.NextSet(70)
	require.False(t, ok)
}
