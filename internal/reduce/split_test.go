package reduce

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/headsonhq/headson/internal/style"
)

func TestKeepSpan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		total, keep  int
		skew         style.Skew
		wantHead     int
		wantTail     int
	}{
		{"keep all", 5, 5, style.Balanced, 5, 0},
		{"keep more than total clamps", 5, 9, style.Head, 5, 0},
		{"keep none", 5, 0, style.Balanced, 0, 0},
		{"negative keep", 5, -1, style.Tail, 0, 0},
		{"head keeps head", 10, 4, style.Head, 4, 0},
		{"tail keeps tail", 10, 4, style.Tail, 0, 4},
		{"balanced even split", 10, 4, style.Balanced, 2, 2},
		{"balanced odd favors head", 10, 5, style.Balanced, 3, 2},
		{"balanced keep one goes to head", 10, 1, style.Balanced, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			head, tail := keepSpan(tt.total, tt.keep, tt.skew)
			assert.Equal(t, tt.wantHead, head)
			assert.Equal(t, tt.wantTail, tail)
		})
	}
}

func TestKeepSpanSumsToKeep(t *testing.T) {
	t.Parallel()

	for total := 0; total <= 8; total++ {
		for keep := 0; keep <= total; keep++ {
			for _, skew := range []style.Skew{style.Balanced, style.Head, style.Tail} {
				head, tail := keepSpan(total, keep, skew)
				assert.Equal(t, keep, head+tail, "total=%d keep=%d skew=%s", total, keep, skew)
				assert.GreaterOrEqual(t, head, 0)
				assert.GreaterOrEqual(t, tail, 0)
			}
		}
	}
}
