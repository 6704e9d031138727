package strength

import (
	"math"
	"unicode"
)

// Score bounds
const (
	MinScore = 0.0
	MaxScore = 100.0
)

// Scoring system constants
const (
	LengthBonusPerRune = 4.0
	LengthBonusCap     = 40.0

	LowercaseBonus = 10.0
	UppercaseBonus = 10.0
	DigitBonus     = 10.0
	SymbolBonus    = 15.0
	VarietyBonus   = 5.0

	RepeatPenaltyPerRune   = 3.0
	SequencePenaltyPerRune = 3.0
)

// MinSequenceRun is the shortest ascending/descending run that is penalized
const MinSequenceRun = 3

// Evaluate computes a strength score in [0, 100] for the given password.
// The score rises with length and character-class diversity and falls with
// repeated or sequential runes. The empty string scores 0. The function is
// deterministic and never retains its input.
func Evaluate(password string) float64 {
	if password == "" {
		return MinScore
	}

	runes := []rune(password)

	score := math.Min(float64(len(runes))*LengthBonusPerRune, LengthBonusCap)
	score += classBonus(runes)
	score -= repeatPenalty(runes)
	score -= sequencePenalty(runes)

	return ClampScore(score)
}

// classBonus awards points for each character class present, with an extra
// bonus when three or more classes are mixed
func classBonus(runes []rune) float64 {
	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range runes {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	bonus := 0.0
	classes := 0
	if hasLower {
		bonus += LowercaseBonus
		classes++
	}
	if hasUpper {
		bonus += UppercaseBonus
		classes++
	}
	if hasDigit {
		bonus += DigitBonus
		classes++
	}
	if hasSymbol {
		bonus += SymbolBonus
		classes++
	}
	if classes >= 3 {
		bonus += VarietyBonus
	}
	return bonus
}

// repeatPenalty charges for every rune that merely extends a run of the same
// rune, e.g. "aaab" pays for two of the three a's
func repeatPenalty(runes []rune) float64 {
	penalty := 0.0
	for i := 1; i < len(runes); i++ {
		if runes[i] == runes[i-1] {
			penalty += RepeatPenaltyPerRune
		}
	}
	return penalty
}

// sequencePenalty charges for ascending or descending code-point runs of
// MinSequenceRun or longer ("abc", "321"); each rune beyond the first two of
// a run is penalized
func sequencePenalty(runes []rune) float64 {
	penalty := 0.0
	ascending, descending := 1, 1
	for i := 1; i < len(runes); i++ {
		if runes[i] == runes[i-1]+1 {
			ascending++
		} else {
			ascending = 1
		}
		if runes[i] == runes[i-1]-1 {
			descending++
		} else {
			descending = 1
		}
		if ascending >= MinSequenceRun || descending >= MinSequenceRun {
			penalty += SequencePenaltyPerRune
		}
	}
	return penalty
}
