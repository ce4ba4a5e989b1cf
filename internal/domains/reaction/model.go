package reaction

import (
	"time"

	"github.com/google/uuid"
)

// Reaction kinds. The set is closed; unknown kinds are rejected.
const (
	KindLike  = "like"
	KindLove  = "love"
	KindLaugh = "laugh"
	KindWow   = "wow"
	KindSad   = "sad"
	KindAngry = "angry"
)

// Kinds lists every reaction kind in display order.
var Kinds = []string{KindLike, KindLove, KindLaugh, KindWow, KindSad, KindAngry}

// ValidKind reports whether k is a known reaction kind.
func ValidKind(k string) bool {
	for _, kind := range Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Reaction is an aggregate counter row per (article, kind).
type Reaction struct {
	ID        uuid.UUID `json:"id" db:"id"`
	ArticleID uuid.UUID `json:"article_id" db:"article_id"`
	Kind      string    `json:"kind" db:"kind"`
	Count     int       `json:"count" db:"count"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
