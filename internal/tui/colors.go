package tui

// Color constants for the kmc TUI theme
const (
	// Base Colors
	ColorAppBackground  = ""        // Use terminal default background
	ColorCardBackground = "#0F1F1C" // Dark teal
	ColorBorder         = "#3A5550" // Grey-green

	// Text Colors
	ColorPrimaryText   = "#E8F0EE" // Primary text (labels, values, titles)
	ColorSecondaryText = "#AFC4BF" // Secondary text - muted sea-grey
	ColorDisabledText  = "#6D8380" // Disabled/muted text
	ColorHelpText      = "240"     // Dark grey for help text

	// Accent Colors (Teal theme)
	ColorAccentMain   = "#14B8A6" // Accent elements, active borders
	ColorAccentBright = "#5EEAD4" // Highlights, the running clock

	// State Colors
	ColorError   = "#EF4444" // Validation errors, low-KMC rows
	ColorSuccess = "#22C55E" // Success, confirmations
	ColorWarning = "#F59E0B" // Warnings
)
