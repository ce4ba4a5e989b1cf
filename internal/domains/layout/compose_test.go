package layout

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	articles []Article
	err      error
}

func (p *fakeProvider) Fetch(ctx context.Context, page, limit int) ([]Article, error) {
	if p.err != nil {
		return nil, p.err
	}
	if len(p.articles) > limit {
		return p.articles[:limit], nil
	}
	return p.articles, nil
}

func (p *fakeProvider) FetchByIDs(ctx context.Context, ids []uuid.UUID) ([]Article, error) {
	if p.err != nil {
		return nil, p.err
	}
	byID := make(map[uuid.UUID]Article, len(p.articles))
	for _, a := range p.articles {
		byID[a.ID] = a
	}
	var out []Article
	for _, id := range ids {
		if a, ok := byID[id]; ok {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeTrending struct {
	mostRead      []uuid.UUID
	mostCommented []uuid.UUID
}

func (t *fakeTrending) MostRead(ctx context.Context) ([]uuid.UUID, error) {
	return t.mostRead, nil
}

func (t *fakeTrending) MostCommented(ctx context.Context) ([]uuid.UUID, error) {
	return t.mostCommented, nil
}

func makeArticles(n int, category string) []Article {
	articles := make([]Article, 0, n)
	for i := 0; i < n; i++ {
		articles = append(articles, Article{
			ID:       uuid.New(),
			Title:    fmt.Sprintf("%s article %d", category, i+1),
			Category: category,
		})
	}
	return articles
}

func newTestComposer(articles []Article) *Composer {
	return NewComposer(&fakeProvider{articles: articles}, &fakeTrending{})
}

func TestComposeGridScenario(t *testing.T) {
	// 8 available articles, grid limit 6, 3 columns.
	composer := newTestComposer(makeArticles(8, "Geral"))

	blocks := []Block{{
		ID:       "g1",
		Type:     TypeGrid,
		Settings: Settings{Limit: 6, Columns: 3},
	}}

	zones, err := composer.Compose(context.Background(), blocks)
	require.NoError(t, err)
	require.Len(t, zones.Main, 1)

	section := zones.Main[0]
	assert.Len(t, section.Articles, 6)
	assert.Equal(t, 3, section.Columns)
	assert.Equal(t, GridStandard, section.GridLayout)
}

func TestComposeShortfallNeverPads(t *testing.T) {
	composer := newTestComposer(makeArticles(2, "Geral"))

	blocks := []Block{{ID: "f1", Type: TypeFeatured}}

	zones, err := composer.Compose(context.Background(), blocks)
	require.NoError(t, err)
	require.Len(t, zones.Main, 1)
	assert.Len(t, zones.Main[0].Articles, 2)
}

func TestComposeDefaultLimitsPerType(t *testing.T) {
	pool := makeArticles(10, "Geral")
	composer := newTestComposer(pool)

	blocks := []Block{
		{ID: "f", Type: TypeFeatured},
		{ID: "g", Type: TypeGrid},
		{ID: "c", Type: TypeCategory},
		{ID: "s", Type: TypeSidebar, Settings: Settings{Title: "Links"}},
	}

	zones, err := composer.Compose(context.Background(), blocks)
	require.NoError(t, err)
	require.Len(t, zones.Main, 4)

	assert.Len(t, zones.Main[0].Articles, 3)
	assert.Len(t, zones.Main[1].Articles, 6)
	assert.Len(t, zones.Main[2].Articles, 4)
	assert.Len(t, zones.Main[3].Articles, 5)
}

func TestComposeCategoryFilterMatches(t *testing.T) {
	pool := append(makeArticles(3, "Esportes"), makeArticles(5, "Memes")...)
	composer := newTestComposer(pool)

	blocks := []Block{{
		ID:       "c1",
		Type:     TypeCategory,
		Settings: Settings{Title: "Seção", Category: "esportes", Limit: 10},
	}}

	zones, err := composer.Compose(context.Background(), blocks)
	require.NoError(t, err)
	require.Len(t, zones.Main, 1)

	section := zones.Main[0]
	// Case-insensitive match against the resolved category name.
	require.Len(t, section.Articles, 3)
	for _, a := range section.Articles {
		assert.Equal(t, "Esportes", a.Category)
	}
	assert.Equal(t, "Seção - esportes", section.Title)
}

func TestComposeCategoryFallbackEqualsUnfilteredTopN(t *testing.T) {
	pool := makeArticles(8, "Geral")
	composer := newTestComposer(pool)

	blocks := []Block{{
		ID:       "c1",
		Type:     TypeCategory,
		Settings: Settings{Title: "Seção", Category: "doesnotexist", Limit: 4},
	}}

	zones, err := composer.Compose(context.Background(), blocks)
	require.NoError(t, err)
	require.Len(t, zones.Main, 1)

	section := zones.Main[0]
	require.Len(t, section.Articles, 4)
	for i, a := range section.Articles {
		assert.Equal(t, pool[i].ID, a.ID)
	}
	// No category suffix when the filter did not take effect.
	assert.Equal(t, "Seção", section.Title)
}

func TestComposeZonePartitionPreservesRelativeOrder(t *testing.T) {
	composer := newTestComposer(makeArticles(10, "Geral"))

	blocks := []Block{
		{ID: "m1", Type: TypeGrid},
		{ID: "f1", Type: TypeGrid, Settings: Settings{FullWidth: true}},
		{ID: "s1", Type: TypeSidebar, Settings: Settings{Title: TitleMostRead}},
		{ID: "m2", Type: TypeFeatured},
		{ID: "s2", Type: TypeSidebar, Settings: Settings{Title: TitleMostCommented}},
		{ID: "f2", Type: TypeCategory, Settings: Settings{FullWidth: true}},
	}

	zones, err := composer.Compose(context.Background(), blocks)
	require.NoError(t, err)

	sectionIDs := func(sections []Section) []string {
		ids := make([]string, 0, len(sections))
		for _, s := range sections {
			ids = append(ids, s.BlockID)
		}
		return ids
	}

	assert.Equal(t, []string{"f1", "f2"}, sectionIDs(zones.Full))
	assert.Equal(t, []string{"m1", "m2"}, sectionIDs(zones.Main))
	assert.Equal(t, []string{"s1", "s2"}, sectionIDs(zones.Sidebar))
}

func TestComposeExplicitSlotOverridesInference(t *testing.T) {
	composer := newTestComposer(makeArticles(5, "Geral"))

	blocks := []Block{{
		ID:       "s1",
		Type:     TypeGrid,
		Slot:     SlotSidebar,
		Settings: Settings{Title: "Qualquer"},
	}}

	zones, err := composer.Compose(context.Background(), blocks)
	require.NoError(t, err)
	assert.Empty(t, zones.Main)
	require.Len(t, zones.Sidebar, 1)
	assert.Equal(t, "s1", zones.Sidebar[0].BlockID)
}

func TestComposeProviderFailureUsesSamples(t *testing.T) {
	composer := NewComposer(&fakeProvider{err: errors.New("connection refused")}, &fakeTrending{})

	blocks := []Block{{ID: "g1", Type: TypeGrid}}

	zones, err := composer.Compose(context.Background(), blocks)
	require.NoError(t, err)
	require.Len(t, zones.Main, 1)
	// The page never renders empty.
	assert.NotEmpty(t, zones.Main[0].Articles)
}

func TestComposeEmptyPoolUsesSamples(t *testing.T) {
	composer := newTestComposer(nil)

	blocks := []Block{{ID: "f1", Type: TypeFeatured}}

	zones, err := composer.Compose(context.Background(), blocks)
	require.NoError(t, err)
	require.Len(t, zones.Main, 1)
	assert.NotEmpty(t, zones.Main[0].Articles)
}

func TestComposeTrendingSidebarUsesTrendingOrder(t *testing.T) {
	pool := makeArticles(6, "Geral")
	trendingIDs := []uuid.UUID{pool[4].ID, pool[1].ID, pool[3].ID}

	composer := NewComposer(
		&fakeProvider{articles: pool},
		&fakeTrending{mostRead: trendingIDs},
	)

	blocks := []Block{{
		ID:       "s1",
		Type:     TypeSidebar,
		Settings: Settings{Title: TitleMostRead},
	}}

	zones, err := composer.Compose(context.Background(), blocks)
	require.NoError(t, err)
	require.Len(t, zones.Sidebar, 1)

	got := zones.Sidebar[0].Articles
	require.Len(t, got, 3)
	for i, id := range trendingIDs {
		assert.Equal(t, id, got[i].ID)
	}
}

func TestComposeTrendingAbsentFallsBackToRecency(t *testing.T) {
	pool := makeArticles(6, "Geral")
	composer := newTestComposer(pool)

	blocks := []Block{{
		ID:       "s1",
		Type:     TypeSidebar,
		Settings: Settings{Title: TitleMostCommented},
	}}

	zones, err := composer.Compose(context.Background(), blocks)
	require.NoError(t, err)
	require.Len(t, zones.Sidebar, 1)

	got := zones.Sidebar[0].Articles
	require.Len(t, got, 5)
	for i := range got {
		assert.Equal(t, pool[i].ID, got[i].ID)
	}
}

func TestComposeSkipsUnknownBlockTypes(t *testing.T) {
	composer := newTestComposer(makeArticles(3, "Geral"))

	blocks := []Block{
		{ID: "x1", Type: BlockType("carousel")},
		{ID: "g1", Type: TypeGrid},
	}

	zones, err := composer.Compose(context.Background(), blocks)
	require.NoError(t, err)
	require.Len(t, zones.Main, 1)
	assert.Equal(t, "g1", zones.Main[0].BlockID)
}

func TestComposePoolGrowsToLargestLimit(t *testing.T) {
	composer := newTestComposer(makeArticles(50, "Geral"))

	blocks := []Block{{
		ID:       "g1",
		Type:     TypeGrid,
		Settings: Settings{Limit: 45},
	}}

	zones, err := composer.Compose(context.Background(), blocks)
	require.NoError(t, err)
	require.Len(t, zones.Main, 1)
	assert.Len(t, zones.Main[0].Articles, 45)
}

func TestPoolSize(t *testing.T) {
	assert.Equal(t, articlePool, poolSize(nil))
	assert.Equal(t, articlePool, poolSize([]Block{
		{ID: "f1", Type: TypeFeatured},
		{ID: "g1", Type: TypeGrid, Settings: Settings{Limit: 12}},
	}))
	assert.Equal(t, 45, poolSize([]Block{
		{ID: "g1", Type: TypeGrid, Settings: Settings{Limit: 45}},
		{ID: "x1", Type: BlockType("hero"), Settings: Settings{Limit: 99}},
	}))
}

func TestComposeCancelledContext(t *testing.T) {
	composer := newTestComposer(makeArticles(3, "Geral"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := composer.Compose(ctx, []Block{{ID: "g1", Type: TypeGrid}})
	assert.Error(t, err)
}
