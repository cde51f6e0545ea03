package installer

import (
	"errors"
	"fmt"
)

// Platform identifies which job supervisor the host uses.
type Platform string

const (
	MacOS Platform = "macos" // launchd agents
	Linux Platform = "linux" // cron table
)

// ErrUnsupportedPlatform is returned by Detect for any host other than macOS or Linux.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// Detect maps a GOOS value onto a Platform.
func Detect(goos string) (Platform, error) {
	switch goos {
	case "darwin":
		return MacOS, nil
	case "linux":
		return Linux, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedPlatform, goos)
	}
}

// DisplayName returns the human-readable OS name, e.g. "macOS".
func (p Platform) DisplayName() string {
	switch p {
	case MacOS:
		return "macOS"
	case Linux:
		return "Linux"
	default:
		return string(p)
	}
}
