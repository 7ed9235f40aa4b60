package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Points derives total points scored: two-point field goals, three-pointers,
// and free throws. Threes are included in FGM, so they are split back out.
func (s StatSet) Points() int {
	twos := s.FGM - s.TPM
	return twos*2 + s.TPM*3 + s.FTM
}

// Rebounds derives total rebounds.
func (s StatSet) Rebounds() int {
	return s.OREB + s.DREB
}

// FieldGoalPct returns the field goal percentage, or 0 when no attempts.
func (s StatSet) FieldGoalPct() float64 {
	if s.FGA == 0 {
		return 0
	}
	return float64(s.FGM) / float64(s.FGA) * 100
}

// FreeThrowPct returns the free throw percentage, or 0 when no attempts.
func (s StatSet) FreeThrowPct() float64 {
	if s.FTA == 0 {
		return 0
	}
	return float64(s.FTM) / float64(s.FTA) * 100
}

// String renders the delta in canonical key order, e.g. "fgm+1 fga+1".
func (d StatDelta) String() string {
	if len(d) == 0 {
		return ""
	}
	parts := make([]string, 0, len(d))
	for _, key := range StatKeys {
		v, ok := d[key]
		if !ok {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s%+d", key, v))
	}
	// Unknown keys render last so nothing is silently dropped.
	var extra []string
	for key, v := range d {
		if !key.Valid() {
			extra = append(extra, fmt.Sprintf("%s%+d", key, v))
		}
	}
	sort.Strings(extra)
	return strings.Join(append(parts, extra...), " ")
}
