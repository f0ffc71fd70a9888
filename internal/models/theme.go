package models

// Theme is the persisted UI theme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ValidTheme reports whether t is one of the known theme values.
func ValidTheme(t Theme) bool {
	return t == ThemeLight || t == ThemeDark
}
