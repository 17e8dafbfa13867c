package i18n

// Locale is a supported site language code.
type Locale string

const (
	Turkish Locale = "tr"
	English Locale = "en"
	Arabic  Locale = "ar"

	// Default is the canonical locale used when a caller omits or sends
	// an unsupported locale code.
	Default = Turkish
)

// Supported lists all locales the portal serves, default first.
var Supported = []Locale{Turkish, English, Arabic}

func IsSupported(locale string) bool {
	for _, l := range Supported {
		if string(l) == locale {
			return true
		}
	}
	return false
}

// Normalize maps an arbitrary locale string onto a supported Locale,
// falling back to Default. All locale handling goes through here so the
// fallback rule lives in exactly one place.
func Normalize(locale string) Locale {
	if IsSupported(locale) {
		return Locale(locale)
	}
	return Default
}

func (l Locale) String() string {
	return string(l)
}
