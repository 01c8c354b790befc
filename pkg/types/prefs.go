package types

// Theme values.
const (
	ThemeSystem = "system"
	ThemeLight  = "light"
	ThemeDark   = "dark"
)

// Density values.
const (
	DensityRegular = "regular"
	DensityCompact = "compact"
)

// validThemes is the set of recognized theme values.
var validThemes = map[string]bool{
	ThemeSystem: true,
	ThemeLight:  true,
	ThemeDark:   true,
}

// validDensities is the set of recognized density values.
var validDensities = map[string]bool{
	DensityRegular: true,
	DensityCompact: true,
}

// Preferences is the singleton user-settings record.
type Preferences struct {
	Theme   string `json:"theme"`
	Density string `json:"density"`
}

// PreferencesPatch describes a partial update to Preferences.
// Nil fields are left unchanged.
type PreferencesPatch struct {
	Theme   *string
	Density *string
}

// DefaultPreferences returns the preferences used when no record has
// been persisted yet.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:   ThemeSystem,
		Density: DensityRegular,
	}
}

// ValidTheme reports whether s is a recognized theme value.
func ValidTheme(s string) bool {
	return validThemes[s]
}

// ValidDensity reports whether s is a recognized density value.
func ValidDensity(s string) bool {
	return validDensities[s]
}
