package layout

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"memepmw-backend/pkg/logger"
)

// articlePool is the minimum number of articles the composer fetches
// up front to materialize every block from one provider call. The
// fetch grows when a block asks for more.
const articlePool = 30

// Article is the card-level view of an article as the composer renders
// it. It carries only what block rendering needs.
type Article struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Summary       string     `json:"summary"`
	Category      string     `json:"category"`
	ImageURL      string     `json:"image_url,omitempty"`
	Author        string     `json:"author"`
	PublishedAt   *time.Time `json:"published_at,omitempty"`
	ViewCount     int        `json:"view_count"`
	CommentCount  int        `json:"comment_count"`
	ReactionCount int        `json:"reaction_count"`
}

// ArticleProvider supplies published articles to the composer.
type ArticleProvider interface {
	// Fetch returns page p of up to n published articles, newest first.
	Fetch(ctx context.Context, page, limit int) ([]Article, error)

	// FetchByIDs returns published articles preserving the id order.
	FetchByIDs(ctx context.Context, ids []uuid.UUID) ([]Article, error)
}

// TrendingSource supplies the most-read / most-commented id lists
// maintained by the worker. A nil slice means the list is not warm.
type TrendingSource interface {
	MostRead(ctx context.Context) ([]uuid.UUID, error)
	MostCommented(ctx context.Context) ([]uuid.UUID, error)
}

// Section is one rendered block: its resolved presentation settings
// plus the articles selected for it.
type Section struct {
	BlockID    string    `json:"block_id"`
	Type       BlockType `json:"type"`
	Title      string    `json:"title"`
	Columns    int       `json:"columns"`
	GridLayout string    `json:"grid_layout,omitempty"`
	ShowImage  bool      `json:"show_image"`
	Articles   []Article `json:"articles"`
}

// Zones is the final page partition. Each zone preserves the relative
// order of its own blocks.
type Zones struct {
	Full    []Section `json:"full"`
	Main    []Section `json:"main"`
	Sidebar []Section `json:"sidebar"`
}

// Composer turns a block sequence into rendered zones against live
// article data. Provider failures degrade to the built-in sample set
// so the page never renders empty.
type Composer struct {
	provider ArticleProvider
	trending TrendingSource
}

func NewComposer(provider ArticleProvider, trending TrendingSource) *Composer {
	return &Composer{provider: provider, trending: trending}
}

// Compose renders the block sequence into zones.
func (c *Composer) Compose(ctx context.Context, blocks []Block) (*Zones, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pool := c.fetchPool(ctx, poolSize(blocks))

	zones := &Zones{
		Full:    []Section{},
		Main:    []Section{},
		Sidebar: []Section{},
	}

	for _, b := range blocks {
		if !ValidBlockType(b.Type) {
			continue
		}

		section := c.renderBlock(ctx, b, pool)

		switch b.ResolveSlot() {
		case SlotFull:
			zones.Full = append(zones.Full, section)
		case SlotSidebar:
			zones.Sidebar = append(zones.Sidebar, section)
		default:
			zones.Main = append(zones.Main, section)
		}
	}

	return zones, nil
}

// poolSize returns the fetch size covering the largest block limit,
// never below articlePool.
func poolSize(blocks []Block) int {
	size := articlePool
	for _, b := range blocks {
		if !ValidBlockType(b.Type) {
			continue
		}
		if limit := b.EffectiveLimit(); limit > size {
			size = limit
		}
	}

	return size
}

// fetchPool loads the shared article pool, substituting sample data on
// provider failure. The failure is logged and never propagated.
func (c *Composer) fetchPool(ctx context.Context, limit int) []Article {
	articles, err := c.provider.Fetch(ctx, 1, limit)
	if err != nil {
		logger.Warn("Article fetch failed, using sample data", map[string]interface{}{
			"error": NewFetchError(err).Error(),
		})
		return SampleArticles()
	}
	if len(articles) == 0 {
		return SampleArticles()
	}

	return articles
}

func (c *Composer) renderBlock(ctx context.Context, b Block, pool []Article) Section {
	section := Section{
		BlockID:   b.ID,
		Type:      b.Type,
		Title:     b.EffectiveTitle(),
		Columns:   b.EffectiveColumns(),
		ShowImage: b.EffectiveShowImage(),
	}
	if b.Type == TypeGrid {
		section.GridLayout = b.EffectiveGridLayout()
	}

	articles := pool
	if b.Type == TypeSidebar {
		if trending := c.trendingArticles(ctx, b); trending != nil {
			articles = trending
		}
	}

	selected, matched := selectArticles(articles, b.CategoryFilter(), b.EffectiveLimit())
	section.Articles = selected

	// A concrete category gets its name appended to the section title
	// when the filter actually matched.
	if filter := b.CategoryFilter(); filter != "" && matched {
		section.Title = section.Title + " - " + filter
	}

	return section
}

// trendingArticles resolves a sidebar block against the trending lists
// when its title names one. Returns nil to fall back to recency order.
func (c *Composer) trendingArticles(ctx context.Context, b Block) []Article {
	var (
		ids []uuid.UUID
		err error
	)

	switch b.Settings.Title {
	case TitleMostRead:
		ids, err = c.trending.MostRead(ctx)
	case TitleMostCommented:
		ids, err = c.trending.MostCommented(ctx)
	default:
		return nil
	}
	if err != nil || len(ids) == 0 {
		return nil
	}

	articles, err := c.provider.FetchByIDs(ctx, ids)
	if err != nil || len(articles) == 0 {
		logger.Debug("Trending lookup failed, falling back to recency", map[string]interface{}{
			"title": b.Settings.Title,
		})
		return nil
	}

	return articles
}

// selectArticles applies the case-insensitive category filter and the
// limit. Zero matches fall back silently to the full unfiltered set so
// a section never renders empty; matched reports whether the filter
// took effect. Shortfalls are returned as-is, never padded.
func selectArticles(pool []Article, categoryFilter string, limit int) (selected []Article, matched bool) {
	articles := pool

	if categoryFilter != "" {
		var filtered []Article
		for _, a := range pool {
			if strings.EqualFold(a.Category, categoryFilter) {
				filtered = append(filtered, a)
			}
		}
		if len(filtered) > 0 {
			articles = filtered
			matched = true
		}
	}

	if len(articles) > limit {
		articles = articles[:limit]
	}

	// Copy so callers never alias the shared pool.
	selected = make([]Article, len(articles))
	copy(selected, articles)
	return selected, matched
}
