package provider

import (
	"context"

	"github.com/google/uuid"

	"memepmw-backend/internal/domains/article"
	"memepmw-backend/internal/domains/layout"
)

// articleProvider adapts the article repository to the composer's
// provider contract.
type articleProvider struct {
	repo article.Repository
}

func NewArticleProvider(repo article.Repository) layout.ArticleProvider {
	return &articleProvider{repo: repo}
}

func (p *articleProvider) Fetch(ctx context.Context, page, limit int) ([]layout.Article, error) {
	q := &article.ListQuery{Page: page, Limit: limit}
	q.Normalize()

	articles, _, err := p.repo.ListPublished(ctx, q)
	if err != nil {
		return nil, err
	}

	return toCards(articles), nil
}

func (p *articleProvider) FetchByIDs(ctx context.Context, ids []uuid.UUID) ([]layout.Article, error) {
	articles, err := p.repo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	return toCards(articles), nil
}

func toCards(articles []*article.Article) []layout.Article {
	cards := make([]layout.Article, 0, len(articles))
	for _, a := range articles {
		card := layout.Article{
			ID:            a.ID,
			Title:         a.Title,
			Slug:          a.Slug,
			Author:        a.AuthorName,
			PublishedAt:   a.PublishedAt,
			ViewCount:     a.ViewCount,
			CommentCount:  a.CommentCount,
			ReactionCount: a.ReactionCount,
		}
		if a.Summary != nil {
			card.Summary = *a.Summary
		}
		if a.CategoryName != nil {
			card.Category = *a.CategoryName
		}
		if a.ImageURL != nil {
			card.ImageURL = *a.ImageURL
		}
		cards = append(cards, card)
	}

	return cards
}
