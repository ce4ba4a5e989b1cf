package settings

import (
	"time"
)

// Setting groups.
const (
	GroupAppearance = "appearance"
	GroupGeneral    = "general"
	GroupSocial     = "social"
)

// ValidGroup reports whether g is a known setting group.
func ValidGroup(g string) bool {
	return g == GroupAppearance || g == GroupGeneral || g == GroupSocial
}

// Setting is one key/value configuration row.
type Setting struct {
	Key       string    `json:"key" db:"key"`
	Value     string    `json:"value" db:"value"`
	Group     string    `json:"group" db:"group_name"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Appearance keys with built-in defaults. Unset keys fall back to these
// so the theme is always fully populated.
var appearanceDefaults = map[string]string{
	"primary_color":    "#1a1a2e",
	"secondary_color":  "#16213e",
	"accent_color":     "#e94560",
	"header_bg_color":  "#0f0f1a",
	"footer_bg_color":  "#0f0f1a",
	"site_title":       "Meme PMW",
	"site_description": "",
}

// Theme is the typed appearance view consumed by the compose endpoint.
type Theme struct {
	PrimaryColor    string `json:"primary_color"`
	SecondaryColor  string `json:"secondary_color"`
	AccentColor     string `json:"accent_color"`
	HeaderBgColor   string `json:"header_bg_color"`
	FooterBgColor   string `json:"footer_bg_color"`
	SiteTitle       string `json:"site_title"`
	SiteDescription string `json:"site_description"`
}

// ThemeFromMap builds a Theme from the appearance key map, filling
// missing keys from defaults.
func ThemeFromMap(m map[string]string) *Theme {
	get := func(key string) string {
		if v, ok := m[key]; ok && v != "" {
			return v
		}
		return appearanceDefaults[key]
	}

	return &Theme{
		PrimaryColor:    get("primary_color"),
		SecondaryColor:  get("secondary_color"),
		AccentColor:     get("accent_color"),
		HeaderBgColor:   get("header_bg_color"),
		FooterBgColor:   get("footer_bg_color"),
		SiteTitle:       get("site_title"),
		SiteDescription: get("site_description"),
	}
}
