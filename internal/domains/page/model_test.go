package page

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPageStartsAsDraft(t *testing.T) {
	admin := uuid.New()

	p, err := NewPage("Política de Privacidade", "<p>...</p>", admin)
	require.NoError(t, err)

	assert.Equal(t, "politica-de-privacidade", p.Slug)
	assert.Equal(t, StatusDraft, p.Status)
	assert.False(t, p.IsPublished())
	require.NotNil(t, p.CreatedBy)
	assert.Equal(t, admin, *p.CreatedBy)
}

func TestRetitleRegeneratesSlug(t *testing.T) {
	p, err := NewPage("Sobre", "", uuid.New())
	require.NoError(t, err)

	require.NoError(t, p.Retitle("Quem Somos Nós"))
	assert.Equal(t, "Quem Somos Nós", p.Title)
	assert.Equal(t, "quem-somos-nos", p.Slug)

	assert.ErrorIs(t, p.Retitle("   "), ErrInvalidTitle)
	assert.Equal(t, "quem-somos-nos", p.Slug)
}
