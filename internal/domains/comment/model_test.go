package comment

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCommentStartsPending(t *testing.T) {
	articleID := uuid.New()

	c, err := NewComment(articleID, "  João  ", "  Muito bom! ")
	require.NoError(t, err)

	assert.Equal(t, articleID, c.ArticleID)
	assert.Equal(t, "João", c.AuthorName)
	assert.Equal(t, "Muito bom!", c.Content)
	assert.Equal(t, StatusPending, c.Status)
}

func TestNewCommentValidation(t *testing.T) {
	id := uuid.New()

	_, err := NewComment(id, "", "conteúdo")
	assert.ErrorIs(t, err, ErrInvalidAuthorName)

	_, err = NewComment(id, strings.Repeat("a", 81), "conteúdo")
	assert.ErrorIs(t, err, ErrInvalidAuthorName)

	_, err = NewComment(id, "João", "   ")
	assert.ErrorIs(t, err, ErrInvalidContent)

	_, err = NewComment(id, "João", strings.Repeat("a", 2001))
	assert.ErrorIs(t, err, ErrInvalidContent)
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusPending))
	assert.True(t, ValidStatus(StatusApproved))
	assert.True(t, ValidStatus(StatusRejected))
	assert.False(t, ValidStatus("spam"))
}
