package recommend

import (
	"sort"
)

// Score weights.
const (
	WeightBedType       = 5
	WeightViewType      = 5
	WeightFloor         = 3
	WeightAccessibility = 4
	WeightSmoking       = 3
	WeightBalcony       = 2
	WeightSoundproof    = 2
	WeightAirPurifier   = 2

	MaxScore = WeightBedType + WeightViewType + WeightFloor + WeightAccessibility +
		WeightSmoking + WeightBalcony + WeightSoundproof + WeightAirPurifier
)

// Score returns how well a room fits the preferences. It depends only on its arguments.
func Score(p Preferences, c Candidate) int {
	score := 0

	if p.BedType != "" && p.BedType == c.BedType {
		score += WeightBedType
	}
	if p.ViewType != "" && p.ViewType == c.ViewType {
		score += WeightViewType
	}
	if p.Floor != nil && *p.Floor == c.Floor {
		score += WeightFloor
	}
	if len(p.AccessibilityNeeds) > 0 && c.Accessible {
		score += WeightAccessibility
	}

	switch p.Smoking {
	case SmokingRoom:
		if c.SmokingAllowed {
			score += WeightSmoking
		}
	case NonSmoking:
		if !c.SmokingAllowed {
			score += WeightSmoking
		}
	}

	if p.WantsBalcony && c.Balcony {
		score += WeightBalcony
	}
	if p.WantsSoundproof && c.Soundproof {
		score += WeightSoundproof
	}
	if p.WantsAirPurifier && c.AirPurifier {
		score += WeightAirPurifier
	}
	return score
}

// ScoreAndRank scores every candidate and orders them best first.
// Rooms with equal scores keep their input order.
func ScoreAndRank(p Preferences, candidates []Candidate) []ScoredRoom {
	out := make([]ScoredRoom, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, ScoredRoom{Candidate: c, Score: Score(p, c)})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// Recommend applies the hard filters, ranks what is left and keeps at most limit rooms.
// A limit <= 0 keeps every room.
func Recommend(p Preferences, f Filters, candidates []Candidate, limit int) []ScoredRoom {
	ranked := ScoreAndRank(p, Filter(f, candidates))
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
