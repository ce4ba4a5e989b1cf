package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestThemeFromMapFillsDefaults(t *testing.T) {
	theme := ThemeFromMap(nil)

	assert.Equal(t, "#1a1a2e", theme.PrimaryColor)
	assert.Equal(t, "#e94560", theme.AccentColor)
	assert.Equal(t, "Meme PMW", theme.SiteTitle)
}

func TestThemeFromMapOverrides(t *testing.T) {
	theme := ThemeFromMap(map[string]string{
		"primary_color": "#ff0000",
		"site_title":    "Portal de Memes",
	})

	assert.Equal(t, "#ff0000", theme.PrimaryColor)
	assert.Equal(t, "Portal de Memes", theme.SiteTitle)
	// Untouched keys keep their defaults.
	assert.Equal(t, "#16213e", theme.SecondaryColor)
}

func TestThemeFromMapIgnoresEmptyValues(t *testing.T) {
	theme := ThemeFromMap(map[string]string{"primary_color": ""})

	assert.Equal(t, "#1a1a2e", theme.PrimaryColor)
}

func TestValidGroup(t *testing.T) {
	assert.True(t, ValidGroup(GroupAppearance))
	assert.True(t, ValidGroup(GroupGeneral))
	assert.True(t, ValidGroup(GroupSocial))
	assert.False(t, ValidGroup("seo"))
}
