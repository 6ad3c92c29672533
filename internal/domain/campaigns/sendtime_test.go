package campaigns

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedHourScorerPicksNextSlot(t *testing.T) {
	scorer := FixedHourScorer{SendHour: 10}

	// Early morning: same-day 10:00 is still ahead of the one-hour floor.
	morning := time.Date(2026, 3, 2, 7, 30, 0, 0, time.UTC)
	got := scorer.BestSendTime(100, morning)
	assert.Equal(t, time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC), got)

	// Past the window: rolls over to tomorrow.
	evening := time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)
	got = scorer.BestSendTime(100, evening)
	assert.Equal(t, time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC), got)

	// Exactly 09:00 violates the one-hour floor only at the boundary;
	// 09:30 pushes the candidate past it, so it still lands same day.
	boundary := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	got = scorer.BestSendTime(100, boundary)
	assert.Equal(t, time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC), got)
}

func TestFixedHourScorerIsDeterministic(t *testing.T) {
	scorer := DefaultScorer
	at := time.Date(2026, 5, 1, 6, 0, 0, 0, time.UTC)
	assert.Equal(t, scorer.BestSendTime(10, at), scorer.BestSendTime(10_000, at))
}
