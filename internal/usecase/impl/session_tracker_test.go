package impl

import (
	"testing"
	"time"

	"medreminder/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trackedSession(username string, issuedAt time.Time, ttl time.Duration) entity.Session {
	return entity.NewSession(entity.Customer{ID: uuid.New(), Username: username}, issuedAt, ttl)
}

func TestSessionTracker_ActiveSortedAndPruned(t *testing.T) {
	tracker := NewSessionTracker()
	tracker.Track(trackedSession("zed", baseTime, time.Hour))
	tracker.Track(trackedSession("amy", baseTime, time.Hour))
	tracker.Track(trackedSession("old", baseTime.Add(-2*time.Hour), time.Hour))

	active := tracker.Active(baseTime)

	require.Len(t, active, 2)
	assert.Equal(t, "amy", active[0].Username)
	assert.Equal(t, "zed", active[1].Username)

	// Expired sessions are gone for good.
	assert.Len(t, tracker.Active(baseTime.Add(-90*time.Minute)), 2)
}

func TestSessionTracker_TrackReplacesAndForget(t *testing.T) {
	tracker := NewSessionTracker()
	first := trackedSession("ada", baseTime, time.Hour)
	second := first
	second.ExpiresAt = baseTime.Add(3 * time.Hour)

	tracker.Track(first)
	tracker.Track(second)

	active := tracker.Active(baseTime.Add(2 * time.Hour))
	require.Len(t, active, 1)
	assert.Equal(t, second.ExpiresAt, active[0].ExpiresAt)

	tracker.Forget(first.CustomerID)
	assert.Empty(t, tracker.Active(baseTime))
}
