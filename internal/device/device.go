// Package device classifies the visitor's run-time environment as mobile or
// desktop from its user-agent string. The result decides whether "View in AR"
// activates AR in place or hands off to another device via QR code.
package device

import "strings"

// Class is the capability class of the current session.
type Class int

const (
	Desktop Class = iota
	Mobile
)

func (c Class) String() string {
	if c == Mobile {
		return "mobile"
	}
	return "desktop"
}

// Environment supplies the ambient values the probe reads. Handlers back it
// with the HTTP request; tests script it.
type Environment interface {
	// UserAgent returns the environment's identifying string.
	UserAgent() string
	// HasInteractiveContext reports whether a windowed/document context
	// exists. False covers non-interactive render passes.
	HasInteractiveContext() bool
}

// Substrings that indicate a mobile environment, matched case-insensitively.
var mobileMarkers = []string{
	"mobi",
	"android",
	"iphone",
	"ipad",
	"ipod",
	"opera mini",
	"iemobile",
	"wpdesktop",
}

// Classify returns Mobile when the user-agent string carries any of the known
// mobile markers, Desktop otherwise. Without an interactive context it always
// returns Desktop, the safe side-effect-free default. Pure: no caching, no
// I/O, never panics.
func Classify(env Environment) Class {
	if env == nil || !env.HasInteractiveContext() {
		return Desktop
	}
	ua := strings.ToLower(env.UserAgent())
	for _, marker := range mobileMarkers {
		if strings.Contains(ua, marker) {
			return Mobile
		}
	}
	return Desktop
}
