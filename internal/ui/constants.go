package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPaste    = "📋"
	IconCookie   = "🍪"
	IconError    = "❌"
	IconClose    = "×"
	IconList     = "≡"
	IconRefresh  = "↻"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Layout sizing
const (
	FormatListMinHeight float32 = 260
	CookieEntryMinLines         = 3
)

// Audio quality levels offered by the audio options editor ("0" = best)
var AudioQualityLevels = []string{"0", "2", "5", "7", "9"}
