package domain

import (
	"math"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// PlayerRecord is one player's win/loss tally within a channel.
// (ChannelID, PlayerName) is unique. The three counters are independently
// settable; no relation between Games and Win+Lose is enforced.
type PlayerRecord struct {
	ID         int64
	ChannelID  string
	PlayerName string
	Win        int
	Lose       int
	Games      int
}

// WinRate returns the win percentage rounded to one decimal place.
// Defined as 0 when no decided games exist (avoids division by zero).
func (r PlayerRecord) WinRate() float64 {
	decided := r.Win + r.Lose
	if decided == 0 {
		return 0
	}
	rate := float64(r.Win) / float64(decided) * PercentScale
	return math.Round(rate*WinRatePrecision) / WinRatePrecision
}

// NormalizePlayerName canonicalizes a player name for keying. NFKC folds
// full-width/half-width variants onto one form so "ﾀﾛｳ" and "タロウ" share a
// record; surrounding whitespace is dropped.
func NormalizePlayerName(name string) string {
	return strings.TrimSpace(norm.NFKC.String(name))
}
