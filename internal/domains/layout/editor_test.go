package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBlocks(n int) []Block {
	blocks := make([]Block, 0, n)
	for i := 0; i < n; i++ {
		blocks = append(blocks, NewBlock(TypeGrid))
	}
	return blocks
}

func blockIDs(blocks []Block) []string {
	ids := make([]string, 0, len(blocks))
	for _, b := range blocks {
		ids = append(ids, b.ID)
	}
	return ids
}

func TestAddBlockSelectsNewBlock(t *testing.T) {
	e := NewEditor(nil)
	assert.Equal(t, NoSelection, e.Selected)

	e.AddBlock(TypeFeatured)
	require.Len(t, e.Blocks, 1)
	assert.Equal(t, 0, e.Selected)
	assert.Equal(t, TypeFeatured, e.Blocks[0].Type)
	assert.NotEmpty(t, e.Blocks[0].ID)

	e.AddBlock(TypeSidebar)
	require.Len(t, e.Blocks, 2)
	assert.Equal(t, 1, e.Selected)
}

func TestAddBlockAppliesTypeDefaults(t *testing.T) {
	e := NewEditor(nil)
	e.AddBlock(TypeGrid)

	b := e.Blocks[0]
	assert.Equal(t, 6, b.Settings.Limit)
	assert.Equal(t, 3, b.Settings.Columns)
	assert.Equal(t, GridStandard, b.Settings.GridLayout)
}

func TestAddBlockGeneratesUniqueIDs(t *testing.T) {
	e := NewEditor(nil)
	for i := 0; i < 50; i++ {
		e.AddBlock(TypeGrid)
	}

	seen := map[string]bool{}
	for _, b := range e.Blocks {
		assert.False(t, seen[b.ID], "duplicate id %s", b.ID)
		seen[b.ID] = true
	}
}

func TestUpdateBlockMergesPartialSettings(t *testing.T) {
	e := NewEditor(testBlocks(2))

	title := "Esportes"
	limit := 9
	e.UpdateBlock(1, SettingsPatch{Title: &title, Limit: &limit})

	assert.Equal(t, "Esportes", e.Blocks[1].Settings.Title)
	assert.Equal(t, 9, e.Blocks[1].Settings.Limit)
	// Unspecified keys stay untouched.
	assert.Equal(t, 3, e.Blocks[1].Settings.Columns)
	// Other blocks stay untouched.
	assert.Equal(t, "Últimas Notícias", e.Blocks[0].Settings.Title)
}

func TestUpdateBlockOutOfRangeIsNoop(t *testing.T) {
	e := NewEditor(testBlocks(1))
	before := e.Blocks[0].Settings

	title := "x"
	e.UpdateBlock(5, SettingsPatch{Title: &title})
	e.UpdateBlock(-1, SettingsPatch{Title: &title})

	assert.Equal(t, before, e.Blocks[0].Settings)
}

func TestDeleteBlockShrinksByOneAndKeepsOtherIDs(t *testing.T) {
	e := NewEditor(testBlocks(4))
	before := blockIDs(e.Blocks)

	e.DeleteBlock(1)

	require.Len(t, e.Blocks, 3)
	after := blockIDs(e.Blocks)
	assert.Equal(t, []string{before[0], before[2], before[3]}, after)
}

func TestDeleteSelectedBlockClearsSelection(t *testing.T) {
	e := NewEditor(testBlocks(3))
	e.SelectBlock(1)

	e.DeleteBlock(1)

	assert.Equal(t, NoSelection, e.Selected)
}

func TestDeleteBeforeSelectionDecrementsSelection(t *testing.T) {
	e := NewEditor(testBlocks(3))
	e.SelectBlock(2)
	selectedID := e.Blocks[2].ID

	e.DeleteBlock(0)

	assert.Equal(t, 1, e.Selected)
	assert.Equal(t, selectedID, e.Blocks[e.Selected].ID)
}

func TestDeleteAfterSelectionKeepsSelection(t *testing.T) {
	e := NewEditor(testBlocks(3))
	e.SelectBlock(0)

	e.DeleteBlock(2)

	assert.Equal(t, 0, e.Selected)
}

func TestMoveBlockIsItsOwnInverse(t *testing.T) {
	e := NewEditor(testBlocks(4))
	e.SelectBlock(2)
	order := blockIDs(e.Blocks)
	selected := e.Selected

	e.MoveBlock(2, MoveUp)
	e.MoveBlock(1, MoveDown)

	assert.Equal(t, order, blockIDs(e.Blocks))
	assert.Equal(t, selected, e.Selected)

	e.MoveBlock(1, MoveDown)
	e.MoveBlock(2, MoveUp)

	assert.Equal(t, order, blockIDs(e.Blocks))
	assert.Equal(t, selected, e.Selected)
}

func TestMoveBlockSwapsNeighborsAndSelectionFollows(t *testing.T) {
	e := NewEditor(testBlocks(3))
	e.SelectBlock(1)
	first, second := e.Blocks[0].ID, e.Blocks[1].ID

	e.MoveBlock(1, MoveUp)

	assert.Equal(t, second, e.Blocks[0].ID)
	assert.Equal(t, first, e.Blocks[1].ID)
	assert.Equal(t, 0, e.Selected)
}

func TestMoveBlockSelectionOnOtherSwappedPosition(t *testing.T) {
	e := NewEditor(testBlocks(3))
	e.SelectBlock(0)

	e.MoveBlock(1, MoveUp)

	// The selected block was pushed down by the swap.
	assert.Equal(t, 1, e.Selected)
}

func TestMoveBlockBoundaryIsNoop(t *testing.T) {
	e := NewEditor(testBlocks(3))
	e.SelectBlock(0)
	order := blockIDs(e.Blocks)

	e.MoveBlock(0, MoveUp)
	assert.Equal(t, order, blockIDs(e.Blocks))
	assert.Equal(t, 0, e.Selected)

	e.MoveBlock(2, MoveDown)
	assert.Equal(t, order, blockIDs(e.Blocks))
}

func TestSelectBlockOutOfRangeClears(t *testing.T) {
	e := NewEditor(testBlocks(2))
	e.SelectBlock(1)
	require.Equal(t, 1, e.Selected)

	e.SelectBlock(7)
	assert.Equal(t, NoSelection, e.Selected)
}
