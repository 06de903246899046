//go:build unit

package review_test

import (
	"testing"
	"time"

	"car-rental-api/internal/domain/review"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReview(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	rating, err := review.NewRating(4)
	require.NoError(t, err)
	title, err := review.NewTitle("Solid rental")
	require.NoError(t, err)
	comment, err := review.NewComment("No complaints at all.")
	require.NoError(t, err)

	t.Run("keeps provided id", func(t *testing.T) {
		id := uuid.New()
		r := review.NewReview(id, uuid.New(), uuid.New(), uuid.New(), rating, title, comment, now)
		assert.Equal(t, id, r.ID())
		assert.Equal(t, now, r.CreatedAt())
		assert.Equal(t, 4, r.Rating().Value())
	})

	t.Run("generates id when nil", func(t *testing.T) {
		r := review.NewReview(uuid.Nil, uuid.New(), uuid.New(), uuid.New(), rating, title, comment, now)
		assert.NotEqual(t, uuid.Nil, r.ID())
	})
}
