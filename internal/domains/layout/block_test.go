package layout

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveLimitDefaults(t *testing.T) {
	cases := []struct {
		blockType BlockType
		want      int
	}{
		{TypeFeatured, 3},
		{TypeGrid, 6},
		{TypeCategory, 4},
		{TypeSidebar, 5},
	}

	for _, tc := range cases {
		b := Block{Type: tc.blockType}
		assert.Equal(t, tc.want, b.EffectiveLimit(), "type %s", tc.blockType)
	}
}

func TestEffectiveLimitExplicitWins(t *testing.T) {
	b := Block{Type: TypeGrid, Settings: Settings{Limit: 12}}
	assert.Equal(t, 12, b.EffectiveLimit())
}

func TestEffectiveColumns(t *testing.T) {
	assert.Equal(t, 3, Block{Type: TypeGrid}.EffectiveColumns())
	assert.Equal(t, 4, Block{Type: TypeGrid, Settings: Settings{Columns: 4}}.EffectiveColumns())
	// Category blocks always render two columns.
	assert.Equal(t, 2, Block{Type: TypeCategory, Settings: Settings{Columns: 5}}.EffectiveColumns())
}

func TestEffectiveGridLayoutFallsBackToStandard(t *testing.T) {
	assert.Equal(t, GridStandard, Block{Type: TypeGrid}.EffectiveGridLayout())
	assert.Equal(t, GridHorizontal, Block{Type: TypeGrid, Settings: Settings{GridLayout: GridHorizontal}}.EffectiveGridLayout())
	assert.Equal(t, GridStandard, Block{Type: TypeGrid, Settings: Settings{GridLayout: "diagonal"}}.EffectiveGridLayout())
}

func TestCategoryFilterAllMeansNoFilter(t *testing.T) {
	assert.Empty(t, Block{Settings: Settings{Category: "all"}}.CategoryFilter())
	assert.Empty(t, Block{Settings: Settings{Category: "ALL"}}.CategoryFilter())
	assert.Empty(t, Block{}.CategoryFilter())
	assert.Equal(t, "Esportes", Block{Settings: Settings{Category: " Esportes "}}.CategoryFilter())
}

func TestResolveSlotExplicitWins(t *testing.T) {
	b := Block{Type: TypeSidebar, Slot: SlotMain, Settings: Settings{Title: TitleMostRead}}
	assert.Equal(t, SlotMain, b.ResolveSlot())
}

func TestResolveSlotLegacyInference(t *testing.T) {
	assert.Equal(t, SlotFull,
		Block{Type: TypeGrid, Settings: Settings{FullWidth: true}}.ResolveSlot())

	assert.Equal(t, SlotSidebar,
		Block{Type: TypeSidebar, Settings: Settings{Title: TitleMostRead}}.ResolveSlot())
	assert.Equal(t, SlotSidebar,
		Block{Type: TypeSidebar, Settings: Settings{Title: TitleMostCommented}}.ResolveSlot())

	// The legacy rule is an exact title match: a renamed sidebar block
	// drops into the main column.
	assert.Equal(t, SlotMain,
		Block{Type: TypeSidebar, Settings: Settings{Title: "mais lidos"}}.ResolveSlot())
	assert.Equal(t, SlotMain,
		Block{Type: TypeGrid, Settings: Settings{Title: TitleMostRead}}.ResolveSlot())
	assert.Equal(t, SlotMain, Block{Type: TypeGrid}.ResolveSlot())
}

func TestBlockJSONRoundTrip(t *testing.T) {
	e := NewEditor(nil)
	e.AddBlock(TypeFeatured)
	e.AddBlock(TypeGrid)
	e.AddBlock(TypeSidebar)

	title := "Memes"
	category := "memes"
	e.UpdateBlock(1, SettingsPatch{Title: &title, Category: &category})

	data, err := json.Marshal(e.Blocks)
	require.NoError(t, err)

	var decoded []Block
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, e.Blocks, decoded)
}

func TestBlockDecodeIgnoresUnknownKeys(t *testing.T) {
	raw := `{
    "id": "abc123",
    "type": "grid",
    "legacyField": true,
    "settings": {"title": "Notícias", "limit": 4, "animation": "fade"}
  }`

	var b Block
	require.NoError(t, json.Unmarshal([]byte(raw), &b))

	assert.Equal(t, "abc123", b.ID)
	assert.Equal(t, TypeGrid, b.Type)
	assert.Equal(t, "Notícias", b.Settings.Title)
	assert.Equal(t, 4, b.Settings.Limit)
}
