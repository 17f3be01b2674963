package domain

// Win rate presentation
const (
	// PercentScale converts a ratio to a percentage
	PercentScale = 100

	// WinRatePrecision keeps one decimal place when rounding win rates
	WinRatePrecision = 10
)
