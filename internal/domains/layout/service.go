package layout

import (
	"context"

	"github.com/google/uuid"

	"memepmw-backend/internal/domains/settings"
)

// ThemeSource supplies the typed theme for the compose response.
// Satisfied by the settings service.
type ThemeSource interface {
	ActiveTheme(ctx context.Context) (*settings.Theme, error)
}

// Service defines business operations for the layout domain.
type Service interface {
	// Active returns the active layout or ErrNoActiveLayout.
	Active(ctx context.Context) (*LayoutResp, error)

	List(ctx context.Context) ([]*LayoutResp, error)
	GetByID(ctx context.Context, id uuid.UUID) (*LayoutResp, error)
	Create(ctx context.Context, userID uuid.UUID, req *CreateLayoutReq) (*LayoutResp, error)
	Update(ctx context.Context, id uuid.UUID, userID uuid.UUID, req *UpdateLayoutReq) (*LayoutResp, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Activate(ctx context.Context, id uuid.UUID) (*LayoutResp, error)

	// ApplyOp runs one stateless editor operation against the supplied
	// editor state and returns the resulting state.
	ApplyOp(ctx context.Context, req *ApplyOpReq) (*EditorStateResp, error)

	// ComposeHome renders the active layout into zones plus theme.
	// No active layout yields empty zones, never an error.
	ComposeHome(ctx context.Context) (*ComposeResp, error)
}
