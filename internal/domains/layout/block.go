package layout

import (
	"strings"

	"github.com/rs/xid"
)

// BlockType enumerates the closed set of layout block types.
type BlockType string

const (
	TypeFeatured BlockType = "featured"
	TypeGrid     BlockType = "grid"
	TypeCategory BlockType = "category"
	TypeSidebar  BlockType = "sidebar"
)

// ValidBlockType reports whether t is a known block type.
func ValidBlockType(t BlockType) bool {
	switch t {
	case TypeFeatured, TypeGrid, TypeCategory, TypeSidebar:
		return true
	}
	return false
}

// Grid sub-layouts.
const (
	GridStandard   = "standard"
	GridFeatured   = "featured"
	GridHorizontal = "horizontal"
	GridVertical   = "vertical"
)

// Slot places a block into one of the page's structural zones.
// SlotAuto keeps the legacy derived placement so stored layouts from
// before the slot field keep rendering in the same zones.
type Slot string

const (
	SlotAuto    Slot = "auto"
	SlotFull    Slot = "full"
	SlotMain    Slot = "main"
	SlotSidebar Slot = "sidebar"
)

// Sidebar titles the legacy placement rule keys on.
const (
	TitleMostRead      = "Mais Lidos"
	TitleMostCommented = "Mais Comentados"
)

// Settings holds the per-block configuration. Every key is optional;
// missing or zero values fall back to the per-type defaults at render
// time, never at edit time. Unknown JSON keys are ignored on decode.
type Settings struct {
	Title      string `json:"title,omitempty"`
	Columns    int    `json:"columns,omitempty"`
	Category   string `json:"category,omitempty"`
	Limit      int    `json:"limit,omitempty"`
	ShowImage  *bool  `json:"showImage,omitempty"`
	GridLayout string `json:"gridLayout,omitempty"`
	FullWidth  bool   `json:"fullWidth,omitempty"`
}

// SettingsPatch is a partial settings update; nil fields are left
// untouched by the merge.
type SettingsPatch struct {
	Title      *string `json:"title"`
	Columns    *int    `json:"columns"`
	Category   *string `json:"category"`
	Limit      *int    `json:"limit"`
	ShowImage  *bool   `json:"showImage"`
	GridLayout *string `json:"gridLayout"`
	FullWidth  *bool   `json:"fullWidth"`
}

// Block is one configurable section of a composed page.
type Block struct {
	ID       string    `json:"id"`
	Type     BlockType `json:"type"`
	Slot     Slot      `json:"slot,omitempty"`
	Settings Settings  `json:"settings"`
}

// blockDefaults is the single per-type defaults table, consulted at
// block creation and again on the render path so the editor and the
// renderer never disagree about a default.
var blockDefaults = map[BlockType]Settings{
	TypeFeatured: {Title: "Destaques", Limit: 3, Category: "all"},
	TypeGrid:     {Title: "Últimas Notícias", Limit: 6, Columns: 3, Category: "all", GridLayout: GridStandard},
	TypeCategory: {Title: "Categoria", Limit: 4, Columns: 2},
	TypeSidebar:  {Title: TitleMostRead, Limit: 5, ShowImage: boolPtr(true)},
}

func boolPtr(b bool) *bool { return &b }

// NewBlock builds a block of the given type with a fresh id and the
// type's default settings.
func NewBlock(t BlockType) Block {
	defaults := blockDefaults[t]
	if defaults.ShowImage != nil {
		v := *defaults.ShowImage
		defaults.ShowImage = &v
	}

	return Block{
		ID:       xid.New().String(),
		Type:     t,
		Slot:     SlotAuto,
		Settings: defaults,
	}
}

// EffectiveTitle returns the configured title or the type default.
func (b Block) EffectiveTitle() string {
	if b.Settings.Title != "" {
		return b.Settings.Title
	}
	return blockDefaults[b.Type].Title
}

// EffectiveLimit returns the configured limit or the type default.
func (b Block) EffectiveLimit() int {
	if b.Settings.Limit > 0 {
		return b.Settings.Limit
	}
	if d := blockDefaults[b.Type].Limit; d > 0 {
		return d
	}
	return 4
}

// EffectiveColumns returns the configured column count or the type
// default. Category blocks always render two columns.
func (b Block) EffectiveColumns() int {
	if b.Type == TypeCategory {
		return 2
	}
	if b.Settings.Columns > 0 {
		return b.Settings.Columns
	}
	if d := blockDefaults[b.Type].Columns; d > 0 {
		return d
	}
	return 3
}

// EffectiveGridLayout returns the configured grid sub-layout or standard.
func (b Block) EffectiveGridLayout() string {
	switch b.Settings.GridLayout {
	case GridStandard, GridFeatured, GridHorizontal, GridVertical:
		return b.Settings.GridLayout
	}
	return GridStandard
}

// EffectiveShowImage returns the thumbnail flag, defaulting to true.
func (b Block) EffectiveShowImage() bool {
	if b.Settings.ShowImage != nil {
		return *b.Settings.ShowImage
	}
	return true
}

// CategoryFilter returns the category filter value, empty when the
// block shows all categories.
func (b Block) CategoryFilter() string {
	c := strings.TrimSpace(b.Settings.Category)
	if c == "" || strings.EqualFold(c, "all") {
		return ""
	}
	return c
}

// ResolveSlot returns the zone the block renders into. An explicit
// slot wins; SlotAuto falls back to the legacy derived rule: fullWidth
// blocks go to the full-width band, sidebar-typed blocks titled
// exactly "Mais Lidos" or "Mais Comentados" go to the sidebar column,
// everything else goes to the main column.
func (b Block) ResolveSlot() Slot {
	switch b.Slot {
	case SlotFull, SlotMain, SlotSidebar:
		return b.Slot
	}

	if b.Settings.FullWidth {
		return SlotFull
	}
	if b.Type == TypeSidebar {
		title := b.Settings.Title
		if title == TitleMostRead || title == TitleMostCommented {
			return SlotSidebar
		}
	}
	return SlotMain
}
