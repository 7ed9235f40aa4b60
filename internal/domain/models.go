package domain

// StatKey identifies one counter in the box-score line.
type StatKey string

const (
	FieldGoalsMade       StatKey = "fgm"
	FieldGoalsAttempted  StatKey = "fga"
	ThreePointsMade      StatKey = "tpm"
	ThreePointsAttempted StatKey = "tpa"
	FreeThrowsMade       StatKey = "ftm"
	FreeThrowsAttempted  StatKey = "fta"
	OffensiveRebounds    StatKey = "oreb"
	DefensiveRebounds    StatKey = "dreb"
	Assists              StatKey = "ast"
	Steals               StatKey = "stl"
	Blocks               StatKey = "blk"
	Turnovers            StatKey = "tov"
	PersonalFouls        StatKey = "pf"
)

// StatKeys lists every counter in canonical order, used for deterministic
// CSV columns and delta rendering.
var StatKeys = []StatKey{
	FieldGoalsMade,
	FieldGoalsAttempted,
	ThreePointsMade,
	ThreePointsAttempted,
	FreeThrowsMade,
	FreeThrowsAttempted,
	OffensiveRebounds,
	DefensiveRebounds,
	Assists,
	Steals,
	Blocks,
	Turnovers,
	PersonalFouls,
}

// Valid reports whether the key names a known counter.
func (k StatKey) Valid() bool {
	switch k {
	case FieldGoalsMade, FieldGoalsAttempted,
		ThreePointsMade, ThreePointsAttempted,
		FreeThrowsMade, FreeThrowsAttempted,
		OffensiveRebounds, DefensiveRebounds,
		Assists, Steals, Blocks, Turnovers, PersonalFouls:
		return true
	}
	return false
}

// StatDelta is a partial StatSet: only the counters an action affects,
// each with a signed adjustment.
type StatDelta map[StatKey]int

// Clone returns an independent copy of the delta.
func (d StatDelta) Clone() StatDelta {
	if d == nil {
		return nil
	}
	out := make(StatDelta, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// StatSet is the fixed box-score counter line for one player.
// Values are plain integers; nothing keeps them non-negative or mutually
// consistent (FGM may exceed FGA under pathological input).
type StatSet struct {
	FGM  int `json:"fgm"`
	FGA  int `json:"fga"`
	TPM  int `json:"tpm"`
	TPA  int `json:"tpa"`
	FTM  int `json:"ftm"`
	FTA  int `json:"fta"`
	OREB int `json:"oreb"`
	DREB int `json:"dreb"`
	AST  int `json:"ast"`
	STL  int `json:"stl"`
	BLK  int `json:"blk"`
	TOV  int `json:"tov"`
	PF   int `json:"pf"`
}

func (s *StatSet) counter(key StatKey) *int {
	switch key {
	case FieldGoalsMade:
		return &s.FGM
	case FieldGoalsAttempted:
		return &s.FGA
	case ThreePointsMade:
		return &s.TPM
	case ThreePointsAttempted:
		return &s.TPA
	case FreeThrowsMade:
		return &s.FTM
	case FreeThrowsAttempted:
		return &s.FTA
	case OffensiveRebounds:
		return &s.OREB
	case DefensiveRebounds:
		return &s.DREB
	case Assists:
		return &s.AST
	case Steals:
		return &s.STL
	case Blocks:
		return &s.BLK
	case Turnovers:
		return &s.TOV
	case PersonalFouls:
		return &s.PF
	}
	return nil
}

// Get returns the value of a single counter; unknown keys read as zero.
func (s StatSet) Get(key StatKey) int {
	if c := s.counter(key); c != nil {
		return *c
	}
	return 0
}

// Add applies the delta to each affected counter. Unknown keys are ignored.
func (s *StatSet) Add(delta StatDelta) {
	for key, v := range delta {
		if c := s.counter(key); c != nil {
			*c += v
		}
	}
}

// Subtract reverses a previously applied delta.
func (s *StatSet) Subtract(delta StatDelta) {
	for key, v := range delta {
		if c := s.counter(key); c != nil {
			*c -= v
		}
	}
}

// IsZero reports whether every counter is zero.
func (s StatSet) IsZero() bool {
	return s == StatSet{}
}

// LogEntry is one recorded, undoable action and its effect on the stats.
type LogEntry struct {
	ID         string    `json:"id"`
	RecordedAt string    `json:"recordedAt"`
	Label      string    `json:"label"`
	Delta      StatDelta `json:"delta"`
}

// GameState is the full ledger for one game session: matchup header, the
// derived counter line, and the backing action log (most-recent-first).
type GameState struct {
	Player   string     `json:"player"`
	Opponent string     `json:"opponent"`
	Date     string     `json:"date"`
	Stats    StatSet    `json:"stats"`
	Log      []LogEntry `json:"log"`
}

// Clone returns a deep copy so callers cannot mutate shared state.
func (g GameState) Clone() GameState {
	out := g
	if g.Log != nil {
		out.Log = make([]LogEntry, len(g.Log))
		for i, e := range g.Log {
			e.Delta = e.Delta.Clone()
			out.Log[i] = e
		}
	}
	return out
}

// SumDeltas recomputes a StatSet from scratch by summing every delta still
// present in the log. The ledger keeps Stats equal to this by construction.
func SumDeltas(log []LogEntry) StatSet {
	var s StatSet
	for _, e := range log {
		s.Add(e.Delta)
	}
	return s
}
