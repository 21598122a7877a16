package constants

// Application
const (
	AppID      = "com.conservelee.zoot"
	AppName    = "Zoot"
	AppVersion = "0.1.0"
)

// Window Chrome
const (
	TitleBarHeight       = 40 // Height of the custom title bar
	TitleBarPaddingMacOS = 80 // Leaves room for the native traffic-light buttons
	TitleBarPadding      = 12 // Left padding on every other platform
	TitleBarPaddingRight = 12
	ControlIconSize      = 32 // Square hit area of a window control
	ControlIconGap       = 4  // Gap between window controls

	HoverTintAmount  = 0.1 // Relative lightness change for control hover color
	HoverTintOpacity = 0.8
)

// Window Defaults
const (
	DefaultWindowWidth  = 1080
	DefaultWindowHeight = 720
	MinWindowWidth      = 640
	MinWindowHeight     = 480
)

// Logging
const (
	MaxLogLines = 100 // Lines kept in the UI log before the oldest are dropped
)

// Assets
const (
	TemplateDir = "assets/templates" // Recognition templates saved by the capture tool
)
