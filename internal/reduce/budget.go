package reduce

// distributeBudget splits available characters across children weighted by
// their uncompressed cost: a child's target share of the parent budget is
// proportional to its uncompressed cost share. A share is raised to floor
// (enough to emit a marker or a single placeholder character) and then
// capped at the child's natural cost (there is no point budgeting more than
// a child would ever spend). Two cases bypass these bounds: when available
// is zero or negative every child gets exactly floor, and when every weight
// is zero available is split evenly.
//
// A proportional first pass rarely sums to exactly available because of
// integer rounding; the second pass hands the remainder to whichever
// children are still below their natural cost, proportional to how far
// below they are. Reclaiming whole items is the outer keep-count scan's
// job; this only settles the leftover characters.
func distributeBudget(weights []int, available, floor int) []int {
	n := len(weights)
	if n == 0 {
		return nil
	}
	shares := make([]int, n)
	if available <= 0 {
		for i := range shares {
			shares[i] = floor
		}
		return shares
	}

	sum := 0
	for _, w := range weights {
		sum += w
	}
	if sum == 0 {
		base := available / n
		for i := range shares {
			shares[i] = base
		}
		return shares
	}

	used := 0
	for i, w := range weights {
		s := available * w / sum
		if s < floor {
			s = floor
		}
		if s > w {
			s = w
		}
		shares[i] = s
		used += s
	}

	slack := available - used
	if slack > 0 {
		deficitSum := 0
		deficits := make([]int, n)
		for i, w := range weights {
			if d := w - shares[i]; d > 0 {
				deficits[i] = d
				deficitSum += d
			}
		}
		if deficitSum > 0 {
			for i, d := range deficits {
				if d == 0 {
					continue
				}
				add := slack * d / deficitSum
				if add > d {
					add = d
				}
				shares[i] += add
			}
		}
	}
	return shares
}
