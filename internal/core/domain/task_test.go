package domain_test

import (
	"testing"
	"time"

	"todolist/internal/core/apperr"
	"todolist/internal/core/domain"

	"github.com/stretchr/testify/assert"
)

func TestCheckDeadline_FutureIsAccepted(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	deadline := now.Add(24 * time.Hour).Unix()

	assert.NoError(t, domain.CheckDeadline(deadline, now, false))
	assert.NoError(t, domain.CheckDeadline(deadline, now, true))
}

func TestCheckDeadline_PastIsRejected(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	deadline := now.Add(-time.Hour).Unix()

	err := domain.CheckDeadline(deadline, now, false)

	assert.ErrorIs(t, err, apperr.ErrInvalidDueDate)
}

func TestCheckDeadline_UpperBoundOnlyWhenBounded(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	farFuture := time.Date(2040, 1, 1, 0, 0, 0, 0, time.UTC).Unix()

	// creation path has no upper bound
	assert.NoError(t, domain.CheckDeadline(farFuture, now, false))

	// update path enforces it
	err := domain.CheckDeadline(farFuture, now, true)
	assert.ErrorIs(t, err, apperr.ErrDeadlineTooFar)
}

func TestCheckDeadline_BoundaryValue(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	boundary := domain.DeadlineMax.Unix()

	assert.NoError(t, domain.CheckDeadline(boundary, now, true))
}

func TestHasDeadline(t *testing.T) {
	deadline := int64(1900000000)

	withDeadline := domain.Task{Deadline: &deadline}
	without := domain.Task{}

	assert.True(t, withDeadline.HasDeadline())
	assert.False(t, without.HasDeadline())
}
