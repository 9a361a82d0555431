package recommend

import "strings"

// Filter keeps the candidates that satisfy every hard filter that is set.
func Filter(f Filters, candidates []Candidate) []Candidate {
	out := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if passesFilters(f, c) {
			out = append(out, c)
		}
	}
	return out
}

func passesFilters(f Filters, c Candidate) bool {
	if len(f.BedTypes) > 0 && !contains(f.BedTypes, c.BedType) {
		return false
	}
	if len(f.ViewTypes) > 0 && !contains(f.ViewTypes, c.ViewType) {
		return false
	}
	if f.RequireAccessible && !c.Accessible {
		return false
	}
	if f.SmokingAllowed != nil && *f.SmokingAllowed != c.SmokingAllowed {
		return false
	}
	if f.MinSizeSqm > 0 && c.SizeSqm < f.MinSizeSqm {
		return false
	}
	if len(f.Amenities) > 0 {
		have := make(map[string]struct{}, len(c.Amenities))
		for _, a := range c.Amenities {
			have[normalize(a)] = struct{}{}
		}
		for _, req := range f.Amenities {
			r := normalize(req)
			if r == "" {
				continue
			}
			if _, ok := have[r]; !ok {
				return false
			}
		}
	}
	return true
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
