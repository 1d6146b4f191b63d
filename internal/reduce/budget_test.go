package reduce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistributeBudget(t *testing.T) {
	t.Parallel()

	t.Run("empty weights", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, distributeBudget(nil, 100, 1))
	})

	t.Run("everything fits keeps natural costs", func(t *testing.T) {
		t.Parallel()

		shares := distributeBudget([]int{10, 20, 30}, 100, 1)
		assert.Equal(t, []int{10, 20, 30}, shares)
	})

	t.Run("shares proportional to weight under pressure", func(t *testing.T) {
		t.Parallel()

		shares := distributeBudget([]int{10, 30}, 20, 1)
		require.Len(t, shares, 2)
		assert.Less(t, shares[0], shares[1])
		assert.GreaterOrEqual(t, shares[0], 1)
	})

	t.Run("floor applies to tiny shares", func(t *testing.T) {
		t.Parallel()

		shares := distributeBudget([]int{1, 1000}, 10, 1)
		assert.GreaterOrEqual(t, shares[0], 1)
	})

	t.Run("no share exceeds its natural cost", func(t *testing.T) {
		t.Parallel()

		shares := distributeBudget([]int{5, 100}, 1000, 1)
		assert.LessOrEqual(t, shares[0], 5)
		assert.LessOrEqual(t, shares[1], 100)
	})

	t.Run("zero available still floors", func(t *testing.T) {
		t.Parallel()

		shares := distributeBudget([]int{10, 10}, 0, 1)
		assert.Equal(t, []int{1, 1}, shares)
	})

	t.Run("all-zero weights split evenly", func(t *testing.T) {
		t.Parallel()

		shares := distributeBudget([]int{0, 0, 0, 0}, 20, 1)
		assert.Equal(t, []int{5, 5, 5, 5}, shares)
	})

	t.Run("slack redistributed toward deficits", func(t *testing.T) {
		t.Parallel()

		// First pass: 30*10/40=7, 30*30/40=22 -> used 29, slack 1 goes to
		// whichever child is still below its natural cost.
		shares := distributeBudget([]int{10, 30}, 30, 1)
		total := shares[0] + shares[1]
		assert.LessOrEqual(t, total, 30)
		assert.GreaterOrEqual(t, total, 29)
	})

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()

		a := distributeBudget([]int{7, 13, 29}, 31, 1)
		b := distributeBudget([]int{7, 13, 29}, 31, 1)
		assert.Equal(t, a, b)
	})
}
