package titlebar

import "runtime"

// Platform selects the window-chrome policy
type Platform int

const (
	PlatformOther Platform = iota
	PlatformMacOS
	PlatformLinux
	PlatformWindows
)

// CurrentPlatform returns the platform the binary was built for
func CurrentPlatform() Platform {
	return platformFor(runtime.GOOS)
}

func platformFor(goos string) Platform {
	switch goos {
	case "darwin":
		return PlatformMacOS
	case "linux":
		return PlatformLinux
	case "windows":
		return PlatformWindows
	default:
		return PlatformOther
	}
}

func (p Platform) String() string {
	switch p {
	case PlatformMacOS:
		return "macos"
	case PlatformLinux:
		return "linux"
	case PlatformWindows:
		return "windows"
	default:
		return "other"
	}
}
