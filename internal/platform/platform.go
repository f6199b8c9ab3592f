package platform

import (
	"fmt"
	"strings"

	"github.com/mj1618/a11y-bridge/internal/host"
	"github.com/mj1618/a11y-bridge/internal/trace"
)

// Kind identifies a native platform.
type Kind string

const (
	Android Kind = "android"
	IOS     Kind = "ios"
)

// Kinds lists the supported platforms.
var Kinds = []Kind{Android, IOS}

// ParseKind converts a string flag value to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "android":
		return Android, nil
	case "ios":
		return IOS, nil
	default:
		return "", fmt.Errorf("unknown platform: %q (expected android or ios)", s)
	}
}

// Env carries what a platform bridge needs from its surroundings.
type Env struct {
	// System is the platform's native system handle (android.System or
	// ios.System).
	System any
	Views  host.Views
	App    host.App
	Sink   *trace.Sink
}
