package config

// mergeProfile creates a new Profile by applying override on top of base.
// The merge rules are:
//   - String scalars: use override if non-empty; otherwise keep base.
//   - Int scalars: use override if non-zero; otherwise keep base.
//   - Slice fields (Include, Exclude): use override slice if it is non-nil
//     and non-empty; otherwise keep base slice.
//
// Neither base nor override is mutated. A fresh Profile is always returned.
// The Extends field is always cleared on the returned profile.
func mergeProfile(base, override *Profile) *Profile {
	return &Profile{
		InputFormat:     mergeString(base.InputFormat, override.InputFormat),
		Format:          mergeString(base.Format, override.Format),
		Style:           mergeString(base.Style, override.Style),
		Skew:            mergeString(base.Skew, override.Skew),
		Tokenizer:       mergeString(base.Tokenizer, override.Tokenizer),
		CharacterBudget: mergeInt(base.CharacterBudget, override.CharacterBudget),
		Include:         mergeSlice(base.Include, override.Include),
		Exclude:         mergeSlice(base.Exclude, override.Exclude),

		// Extends is always cleared after merge (profile is fully resolved)
		Extends: nil,
	}
}

// mergeString returns override if non-empty, otherwise base.
func mergeString(base, override string) string {
	if override != "" {
		return override
	}
	return base
}

// mergeInt returns override if non-zero, otherwise base.
func mergeInt(base, override int) int {
	if override != 0 {
		return override
	}
	return base
}

// mergeSlice returns a copy of override when it is non-nil and non-empty,
// otherwise a copy of base. The child slice replaces the parent entirely;
// slices are never concatenated.
func mergeSlice(base, override []string) []string {
	src := base
	if len(override) > 0 {
		src = override
	}
	if src == nil {
		return nil
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}
