// Package reduce implements the pruning that shrinks a Value Tree until its
// measured cost fits a character budget, per the skew policy that decides
// which end of each container survives. Each container tries keep counts
// from all of its children downward and takes the first candidate that
// fits; there is no priority queue across containers.
package reduce

import "github.com/headsonhq/headson/internal/style"

// keepSpan returns how many of a container's total children to keep from
// the head and from the tail respectively, for a target keep count of
// keep out of total, under skew. The two counts always sum to keep, and the
// span between them (if any) is the single contiguous run that collapses
// into one Omitted marker.
//
// balanced keeps one more at the head on ties. This is the one place that
// decision is made, so every balanced reduction (arrays, objects, and text
// lines) goes through here and agrees.
func keepSpan(total, keep int, skew style.Skew) (headKeep, tailKeep int) {
	if keep >= total {
		return total, 0
	}
	if keep <= 0 {
		return 0, 0
	}
	switch skew {
	case style.Head:
		return keep, 0
	case style.Tail:
		return 0, keep
	default: // Balanced
		headKeep = (keep + 1) / 2
		tailKeep = keep - headKeep
		return headKeep, tailKeep
	}
}
