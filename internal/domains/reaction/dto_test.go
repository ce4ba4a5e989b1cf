package reaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReactReqValidation(t *testing.T) {
	assert.NoError(t, ReactReq{Kind: KindLike}.Validate())
	assert.NoError(t, ReactReq{Kind: KindAngry}.Validate())
	assert.Error(t, ReactReq{Kind: "thumbsdown"}.Validate())
	assert.Error(t, ReactReq{}.Validate())
}

func TestNewCountsRespZeroFillsAllKinds(t *testing.T) {
	resp := NewCountsResp(nil)

	assert.Len(t, resp.Counts, len(Kinds))
	for _, k := range Kinds {
		assert.Equal(t, 0, resp.Counts[k])
	}
	assert.Equal(t, 0, resp.Total)
}

func TestNewCountsRespTotals(t *testing.T) {
	resp := NewCountsResp([]*Reaction{
		{Kind: KindLike, Count: 7},
		{Kind: KindLaugh, Count: 3},
	})

	assert.Equal(t, 7, resp.Counts[KindLike])
	assert.Equal(t, 3, resp.Counts[KindLaugh])
	assert.Equal(t, 0, resp.Counts[KindSad])
	assert.Equal(t, 10, resp.Total)
}
