package layout

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"memepmw-backend/internal/domains/settings"
)

type CreateLayoutReq struct {
	Name     string  `json:"name" binding:"required"`
	Blocks   []Block `json:"blocks"`
	IsActive bool    `json:"is_active"`
}

func (r CreateLayoutReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 100),
		),
	)
}

type UpdateLayoutReq struct {
	Name   *string `json:"name"`
	Blocks []Block `json:"blocks"`
}

func (r UpdateLayoutReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.NilOrNotEmpty, validation.Length(1, 100)),
	)
}

// Editor op names for ApplyOpReq.
const (
	OpAdd    = "add"
	OpUpdate = "update"
	OpDelete = "delete"
	OpMove   = "move"
	OpSelect = "select"
)

// ApplyOpReq carries one editor operation plus the editor state it
// applies to. The endpoint is stateless: the client round-trips the
// state with every op.
type ApplyOpReq struct {
	Blocks    []Block        `json:"blocks"`
	Selected  int            `json:"selected"`
	Op        string         `json:"op" binding:"required"`
	Type      BlockType      `json:"type,omitempty"`
	Index     int            `json:"index"`
	Direction string         `json:"direction,omitempty"`
	Patch     *SettingsPatch `json:"patch,omitempty"`
}

func (r ApplyOpReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Op,
			validation.Required.Error("op is required"),
			validation.In(OpAdd, OpUpdate, OpDelete, OpMove, OpSelect).Error("unknown editor operation"),
		),
		validation.Field(&r.Direction,
			validation.In(MoveUp, MoveDown).Error("unknown move direction"),
		),
	)
}

// EditorStateResp is the editor state after an op.
type EditorStateResp struct {
	Blocks   []Block `json:"blocks"`
	Selected int     `json:"selected"`
}

type LayoutResp struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Blocks    []Block   `json:"blocks"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func LayoutToResp(l *PageLayout) *LayoutResp {
	blocks := l.Blocks
	if blocks == nil {
		blocks = []Block{}
	}

	return &LayoutResp{
		ID:        l.ID,
		Name:      l.Name,
		Blocks:    blocks,
		IsActive:  l.IsActive,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

// ComposeResp is the public home composition: the rendered zones plus
// the typed theme derived from appearance settings.
type ComposeResp struct {
	Zones *Zones          `json:"zones"`
	Theme *settings.Theme `json:"theme"`
}
