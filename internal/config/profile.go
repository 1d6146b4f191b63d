package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// maxInheritanceDepth is the maximum chain length before a warning is emitted.
// Chains deeper than this are still resolved; only a warning is logged.
const maxInheritanceDepth = 3

// ProfileResolution is the result of resolving a profile with full inheritance
// chain flattened into a single Profile value.
type ProfileResolution struct {
	// Profile is the fully merged profile with all parent values applied.
	// The Extends field is always nil (cleared after resolution).
	Profile *Profile

	// Chain is the ordered list of profile names in the inheritance chain,
	// from the requested profile to the ultimate ancestor. For example,
	// ["ci", "base", "default"]. Useful for debugging.
	Chain []string
}

// ResolveProfile resolves the named profile by following its inheritance chain
// and deep-merging parent values beneath child values.
//
// The built-in "default" profile is always available as a base even if it is
// not explicitly defined in the profiles map. It is synthesized from
// DefaultProfile() when needed.
//
// Merge rules (child always wins):
//   - String scalars: child overrides if non-empty.
//   - Int scalars: child overrides if non-zero.
//   - Slices (Include, Exclude): child replaces parent entirely when
//     non-nil and non-empty.
//
// Error conditions:
//   - Profile not found (and is not "default"): returns descriptive error.
//   - Circular inheritance detected: returns the full cycle path in the error.
//   - Self-referential extends: detected as circular.
//
// The returned ProfileResolution.Profile always has Extends == nil.
func ResolveProfile(name string, profiles map[string]*Profile) (*ProfileResolution, error) {
	chain, err := collectChain(name, profiles)
	if err != nil {
		return nil, err
	}

	if len(chain) > maxInheritanceDepth {
		slog.Warn("deep profile inheritance chain",
			"profile", name,
			"depth", len(chain),
			"chain", strings.Join(chain, " -> "),
		)
	}

	// Merge from the ultimate ancestor down to the requested profile so
	// that each child overrides its parent. The built-in defaults sit
	// beneath the entire chain.
	merged := DefaultProfile()
	for i := len(chain) - 1; i >= 0; i-- {
		p := profiles[chain[i]]
		if p == nil {
			// Only reachable for a synthesized "default" ancestor.
			continue
		}
		merged = mergeProfile(merged, p)
	}

	return &ProfileResolution{Profile: merged, Chain: chain}, nil
}

// collectChain walks the Extends links from name outward, returning the chain
// in child-first order and rejecting cycles.
func collectChain(name string, profiles map[string]*Profile) ([]string, error) {
	var chain []string
	seen := make(map[string]bool)

	current := name
	for {
		if seen[current] {
			return nil, fmt.Errorf("circular profile inheritance: %s", strings.Join(append(chain, current), " -> "))
		}
		seen[current] = true
		chain = append(chain, current)

		p, ok := profiles[current]
		if !ok {
			if current == "default" {
				// Synthesized from DefaultProfile(); end of chain.
				return chain, nil
			}
			available := profileNames(profiles)
			return nil, fmt.Errorf("profile %q not found (available: %s)", current, strings.Join(available, ", "))
		}
		if p.Extends == nil || *p.Extends == "" {
			return chain, nil
		}
		current = *p.Extends
	}
}

// profileNames returns the sorted list of defined profile names, with
// "default" always listed even when only synthesized.
func profileNames(profiles map[string]*Profile) []string {
	names := make([]string, 0, len(profiles)+1)
	hasDefault := false
	for n := range profiles {
		if n == "default" {
			hasDefault = true
		}
		names = append(names, n)
	}
	if !hasDefault {
		names = append(names, "default")
	}
	sortStrings(names)
	return names
}

// sortStrings is a tiny insertion sort; profile maps hold a handful of
// entries at most.
func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		key := s[i]
		j := i - 1
		for j >= 0 && s[j] > key {
			s[j+1] = s[j]
			j--
		}
		s[j+1] = key
	}
}
