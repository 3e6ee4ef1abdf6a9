package models

// ============================================================================
// POSITION CONSTANTS
// ============================================================================

// PositionSpacing is the gap left between sibling positions so that a
// moved item can usually be given an integer strictly between its new
// neighbors without touching other rows
const PositionSpacing = 1000

// ============================================================================
// CARD COLOR CONSTANTS
// ============================================================================

// Card colors form a fixed palette; the color column stores one of
// these strings or NULL for an uncolored card
const (
	ColorRed    = "red"
	ColorOrange = "orange"
	ColorYellow = "yellow"
	ColorGreen  = "green"
	ColorBlue   = "blue"
	ColorPurple = "purple"
	ColorGray   = "gray"
)

// CardColors lists every valid card color for validation and pickers
var CardColors = []string{
	ColorRed,
	ColorOrange,
	ColorYellow,
	ColorGreen,
	ColorBlue,
	ColorPurple,
	ColorGray,
}

// ValidCardColor reports whether color is part of the palette
func ValidCardColor(color string) bool {
	for _, c := range CardColors {
		if c == color {
			return true
		}
	}
	return false
}
