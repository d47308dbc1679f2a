// Package device provides the read-only device signals the analytics tracker
// uses to default screen resolution, viewport size and user language.
package device

import "strconv"

const (
	// DefaultLanguage is reported when the environment gives no language.
	DefaultLanguage = "en-US"
	// UnknownResolution is reported when the environment gives no size.
	UnknownResolution = "0x0"
)

// Environment exposes the window/screen/locale signals of the host.
type Environment interface {
	// OuterSize returns the outer window dimensions, if known.
	OuterSize() (width, height int, ok bool)
	// ScreenSize returns the screen dimensions, if known.
	ScreenSize() (width, height int, ok bool)
	// Language returns a BCP 47 language tag, or "" when unknown.
	Language() string
}

// FormatSize renders dimensions in the "<width>x<height>" form used by the
// sr and vp parameters.
func FormatSize(width, height int) string {
	return strconv.Itoa(width) + "x" + strconv.Itoa(height)
}

// Resolution prefers the outer window size, then the screen size.
func Resolution(env Environment) string {
	if env == nil {
		return UnknownResolution
	}
	if w, h, ok := env.OuterSize(); ok {
		return FormatSize(w, h)
	}
	if w, h, ok := env.ScreenSize(); ok {
		return FormatSize(w, h)
	}
	return UnknownResolution
}

func UserLanguage(env Environment) string {
	if env == nil {
		return DefaultLanguage
	}
	if lang := env.Language(); lang != "" {
		return lang
	}
	return DefaultLanguage
}
