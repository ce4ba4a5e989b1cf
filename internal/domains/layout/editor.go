package layout

// NoSelection means no block is selected for editing.
const NoSelection = -1

// Move directions for Editor.MoveBlock.
const (
	MoveUp   = "up"
	MoveDown = "down"
)

// Editor is the in-memory editing state for a block sequence: the
// ordered blocks plus the index of the block selected for editing.
// All mutations are synchronous; nothing here touches storage.
type Editor struct {
	Blocks   []Block `json:"blocks"`
	Selected int     `json:"selected"`
}

// NewEditor wraps an existing block sequence with no selection.
func NewEditor(blocks []Block) *Editor {
	if blocks == nil {
		blocks = []Block{}
	}
	return &Editor{Blocks: blocks, Selected: NoSelection}
}

// AddBlock appends a new block of the given type with default settings.
// The new block becomes the selected one.
func (e *Editor) AddBlock(t BlockType) {
	e.Blocks = append(e.Blocks, NewBlock(t))
	e.Selected = len(e.Blocks) - 1
}

// UpdateBlock merges a partial settings patch into the block at index,
// leaving unspecified keys untouched. Out-of-range indexes are a no-op;
// values are not validated here, the render path falls back to defaults.
func (e *Editor) UpdateBlock(index int, patch SettingsPatch) {
	if index < 0 || index >= len(e.Blocks) {
		return
	}

	s := &e.Blocks[index].Settings
	if patch.Title != nil {
		s.Title = *patch.Title
	}
	if patch.Columns != nil {
		s.Columns = *patch.Columns
	}
	if patch.Category != nil {
		s.Category = *patch.Category
	}
	if patch.Limit != nil {
		s.Limit = *patch.Limit
	}
	if patch.ShowImage != nil {
		v := *patch.ShowImage
		s.ShowImage = &v
	}
	if patch.GridLayout != nil {
		s.GridLayout = *patch.GridLayout
	}
	if patch.FullWidth != nil {
		s.FullWidth = *patch.FullWidth
	}
}

// DeleteBlock removes the block at index. Deleting the selected block
// clears the selection; a selection past the removed index shifts down
// by one so it keeps pointing at the same logical block.
func (e *Editor) DeleteBlock(index int) {
	if index < 0 || index >= len(e.Blocks) {
		return
	}

	e.Blocks = append(e.Blocks[:index], e.Blocks[index+1:]...)

	switch {
	case e.Selected == index:
		e.Selected = NoSelection
	case e.Selected > index:
		e.Selected--
	}
}

// MoveBlock swaps the block at index with its neighbor in the given
// direction. Moves past either boundary are a no-op. The selection
// follows if it pointed at either swapped position.
func (e *Editor) MoveBlock(index int, direction string) {
	if index < 0 || index >= len(e.Blocks) {
		return
	}

	target := index - 1
	if direction == MoveDown {
		target = index + 1
	}
	if target < 0 || target >= len(e.Blocks) {
		return
	}

	e.Blocks[index], e.Blocks[target] = e.Blocks[target], e.Blocks[index]

	switch e.Selected {
	case index:
		e.Selected = target
	case target:
		e.Selected = index
	}
}

// SelectBlock sets the selection; out-of-range indexes clear it.
func (e *Editor) SelectBlock(index int) {
	if index < 0 || index >= len(e.Blocks) {
		e.Selected = NoSelection
		return
	}
	e.Selected = index
}
