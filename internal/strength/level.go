package strength

// Level represents the qualitative strength of a password
type Level int

const (
	// LevelNoPassword is the sentinel for an empty password
	LevelNoPassword Level = iota

	// LevelVeryWeak is the lowest strength band
	LevelVeryWeak

	// LevelWeak means the password is easily guessable
	LevelWeak

	// LevelFair means the password offers moderate resistance
	LevelFair

	// LevelGood means the password is reasonably strong
	LevelGood

	// LevelStrong means the password is strong
	LevelStrong

	// LevelVeryStrong is the highest strength band
	LevelVeryStrong
)

// String returns the canonical token for the level
func (l Level) String() string {
	switch l {
	case LevelNoPassword:
		return "NoPassword"
	case LevelVeryWeak:
		return "VeryWeak"
	case LevelWeak:
		return "Weak"
	case LevelFair:
		return "Fair"
	case LevelGood:
		return "Good"
	case LevelStrong:
		return "Strong"
	case LevelVeryStrong:
		return "VeryStrong"
	}
	return "Unknown"
}

// Thresholds holds the five ascending cut-points separating the six levels.
// A score below Thresholds[i] maps to the level at index i; a score at or
// above every cut-point maps to VeryStrong.
type Thresholds [5]float64

// DefaultThresholds returns the standard cut-points
func DefaultThresholds() Thresholds {
	return Thresholds{20, 40, 60, 80, 95}
}

// Valid reports whether the cut-points are ascending and within [0, 100]
func (t Thresholds) Valid() bool {
	prev := 0.0
	for _, c := range t {
		if c < prev || c > MaxScore {
			return false
		}
		prev = c
	}
	return true
}

// LevelForScore maps a score to its level using strict less-than comparisons
// against each cut-point. It never returns LevelNoPassword; an empty password
// is a property of the input text, not of the score.
func LevelForScore(score float64, cuts Thresholds) Level {
	score = ClampScore(score)
	for i, c := range cuts {
		if score < c {
			return LevelVeryWeak + Level(i)
		}
	}
	return LevelVeryStrong
}

// ClampScore clamps a score to [0, 100]
func ClampScore(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}
