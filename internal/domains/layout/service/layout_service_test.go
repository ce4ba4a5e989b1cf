package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memepmw-backend/internal/domains/layout"
	"memepmw-backend/internal/domains/settings"
)

// fakeRepo is an in-memory layout.Repository mirroring the exclusive
// activation semantics of the real store.
type fakeRepo struct {
	layouts map[uuid.UUID]*layout.PageLayout
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{layouts: map[uuid.UUID]*layout.PageLayout{}}
}

func (r *fakeRepo) Create(ctx context.Context, l *layout.PageLayout) (*layout.PageLayout, error) {
	stored := *l
	stored.ID = uuid.New()
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt

	if stored.IsActive {
		for _, other := range r.layouts {
			other.IsActive = false
		}
	}

	r.layouts[stored.ID] = &stored
	return &stored, nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*layout.PageLayout, error) {
	l, ok := r.layouts[id]
	if !ok {
		return nil, layout.ErrLayoutNotFound
	}
	return l, nil
}

func (r *fakeRepo) GetActive(ctx context.Context) (*layout.PageLayout, error) {
	for _, l := range r.layouts {
		if l.IsActive {
			return l, nil
		}
	}
	return nil, layout.ErrNoActiveLayout
}

func (r *fakeRepo) List(ctx context.Context) ([]*layout.PageLayout, error) {
	out := make([]*layout.PageLayout, 0, len(r.layouts))
	for _, l := range r.layouts {
		out = append(out, l)
	}
	return out, nil
}

func (r *fakeRepo) Update(ctx context.Context, l *layout.PageLayout) (*layout.PageLayout, error) {
	stored, ok := r.layouts[l.ID]
	if !ok {
		return nil, layout.ErrLayoutNotFound
	}
	stored.Name = l.Name
	stored.Blocks = l.Blocks
	stored.UpdatedBy = l.UpdatedBy
	stored.UpdatedAt = time.Now()
	return stored, nil
}

func (r *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := r.layouts[id]; !ok {
		return layout.ErrLayoutNotFound
	}
	delete(r.layouts, id)
	return nil
}

func (r *fakeRepo) Activate(ctx context.Context, id uuid.UUID) (*layout.PageLayout, error) {
	target, ok := r.layouts[id]
	if !ok {
		return nil, layout.ErrLayoutNotFound
	}
	for _, l := range r.layouts {
		l.IsActive = false
	}
	target.IsActive = true
	return target, nil
}

func (r *fakeRepo) activeCount() int {
	n := 0
	for _, l := range r.layouts {
		if l.IsActive {
			n++
		}
	}
	return n
}

// fakeCache always misses; writes and deletes are accepted silently.
type fakeCache struct{}

func (fakeCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	return false, nil
}
func (fakeCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}
func (fakeCache) Delete(ctx context.Context, keys ...string) error { return nil }

func (fakeCache) DeletePattern(ctx context.Context, pattern string) error { return nil }

func (fakeCache) Increment(ctx context.Context, key string) (int64, error) { return 0, nil }

func (fakeCache) Exists(ctx context.Context, key string) (bool, error) { return false, nil }

func (fakeCache) Expire(ctx context.Context, key string, ttl time.Duration) error { return nil }

func (fakeCache) Ping(ctx context.Context) error { return nil }

type fakeThemes struct{}

func (fakeThemes) ActiveTheme(ctx context.Context) (*settings.Theme, error) {
	return settings.ThemeFromMap(nil), nil
}

type emptyProvider struct{}

func (emptyProvider) Fetch(ctx context.Context, page, limit int) ([]layout.Article, error) {
	return nil, errors.New("provider down")
}
func (emptyProvider) FetchByIDs(ctx context.Context, ids []uuid.UUID) ([]layout.Article, error) {
	return nil, errors.New("provider down")
}

type noTrending struct{}

func (noTrending) MostRead(ctx context.Context) ([]uuid.UUID, error)      { return nil, nil }
func (noTrending) MostCommented(ctx context.Context) ([]uuid.UUID, error) { return nil, nil }

func newTestService(repo layout.Repository) layout.Service {
	composer := layout.NewComposer(emptyProvider{}, noTrending{})
	return NewLayoutService(repo, composer, fakeThemes{}, fakeCache{})
}

func TestCreateActiveDeactivatesOthers(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	admin := uuid.New()

	first, err := svc.Create(ctx, admin, &layout.CreateLayoutReq{Name: "Primeiro", IsActive: true})
	require.NoError(t, err)
	assert.True(t, first.IsActive)

	second, err := svc.Create(ctx, admin, &layout.CreateLayoutReq{Name: "Segundo", IsActive: true})
	require.NoError(t, err)
	assert.True(t, second.IsActive)

	assert.Equal(t, 1, repo.activeCount())

	active, err := svc.Active(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)
}

func TestActivateIsExclusive(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	admin := uuid.New()

	a, err := svc.Create(ctx, admin, &layout.CreateLayoutReq{Name: "A", IsActive: true})
	require.NoError(t, err)
	b, err := svc.Create(ctx, admin, &layout.CreateLayoutReq{Name: "B"})
	require.NoError(t, err)

	activated, err := svc.Activate(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, activated.IsActive)
	assert.Equal(t, 1, repo.activeCount())

	stored, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, stored.IsActive)
}

func TestActiveWithoutAnyLayout(t *testing.T) {
	svc := newTestService(newFakeRepo())

	_, err := svc.Active(context.Background())
	assert.ErrorIs(t, err, layout.ErrNoActiveLayout)
}

func TestCreateRejectsUnknownBlockType(t *testing.T) {
	svc := newTestService(newFakeRepo())

	_, err := svc.Create(context.Background(), uuid.New(), &layout.CreateLayoutReq{
		Name:   "Quebrado",
		Blocks: []layout.Block{{ID: "x", Type: layout.BlockType("hero")}},
	})
	assert.ErrorIs(t, err, layout.ErrInvalidBlockType)
}

func TestUpdateReplacesBlockSequence(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := context.Background()
	admin := uuid.New()

	created, err := svc.Create(ctx, admin, &layout.CreateLayoutReq{
		Name:   "Home",
		Blocks: []layout.Block{{ID: "a", Type: layout.TypeGrid}},
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, admin, &layout.UpdateLayoutReq{
		Blocks: []layout.Block{
			{ID: "b", Type: layout.TypeFeatured},
			{ID: "c", Type: layout.TypeSidebar},
		},
	})
	require.NoError(t, err)
	require.Len(t, updated.Blocks, 2)
	assert.Equal(t, "b", updated.Blocks[0].ID)
}

func TestApplyOpSequence(t *testing.T) {
	svc := newTestService(newFakeRepo())
	ctx := context.Background()

	state, err := svc.ApplyOp(ctx, &layout.ApplyOpReq{
		Op:       layout.OpAdd,
		Type:     layout.TypeGrid,
		Selected: layout.NoSelection,
	})
	require.NoError(t, err)
	require.Len(t, state.Blocks, 1)
	assert.Equal(t, 0, state.Selected)

	state, err = svc.ApplyOp(ctx, &layout.ApplyOpReq{
		Blocks:   state.Blocks,
		Selected: state.Selected,
		Op:       layout.OpAdd,
		Type:     layout.TypeSidebar,
	})
	require.NoError(t, err)
	require.Len(t, state.Blocks, 2)
	assert.Equal(t, 1, state.Selected)

	state, err = svc.ApplyOp(ctx, &layout.ApplyOpReq{
		Blocks:    state.Blocks,
		Selected:  state.Selected,
		Op:        layout.OpMove,
		Index:     1,
		Direction: layout.MoveUp,
	})
	require.NoError(t, err)
	assert.Equal(t, layout.TypeSidebar, state.Blocks[0].Type)
	assert.Equal(t, 0, state.Selected)

	state, err = svc.ApplyOp(ctx, &layout.ApplyOpReq{
		Blocks:   state.Blocks,
		Selected: state.Selected,
		Op:       layout.OpDelete,
		Index:    0,
	})
	require.NoError(t, err)
	require.Len(t, state.Blocks, 1)
	assert.Equal(t, layout.NoSelection, state.Selected)
}

func TestApplyOpRejectsUnknownBlockType(t *testing.T) {
	svc := newTestService(newFakeRepo())

	_, err := svc.ApplyOp(context.Background(), &layout.ApplyOpReq{
		Op:   layout.OpAdd,
		Type: layout.BlockType("hero"),
	})
	assert.ErrorIs(t, err, layout.ErrInvalidBlockType)
}

func TestComposeHomeWithoutActiveLayout(t *testing.T) {
	svc := newTestService(newFakeRepo())

	resp, err := svc.ComposeHome(context.Background())
	require.NoError(t, err)
	require.NotNil(t, resp.Zones)
	assert.Empty(t, resp.Zones.Full)
	assert.Empty(t, resp.Zones.Main)
	assert.Empty(t, resp.Zones.Sidebar)
	require.NotNil(t, resp.Theme)
	assert.NotEmpty(t, resp.Theme.PrimaryColor)
}

func TestComposeHomeDegradesToSamples(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, uuid.New(), &layout.CreateLayoutReq{
		Name:     "Home",
		Blocks:   []layout.Block{{ID: "g", Type: layout.TypeGrid}},
		IsActive: true,
	})
	require.NoError(t, err)

	resp, err := svc.ComposeHome(ctx)
	require.NoError(t, err)
	require.Len(t, resp.Zones.Main, 1)
	// Provider is down; sample data keeps the page populated.
	assert.NotEmpty(t, resp.Zones.Main[0].Articles)
}
