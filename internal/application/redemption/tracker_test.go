package redemption

import (
	"testing"

	"github.com/PavaniTiago/vior-insights-api/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerSuccessfulToggle(t *testing.T) {
	tracker := NewTracker()

	st, err := tracker.Begin("r1", false)
	require.NoError(t, err)
	assert.Equal(t, entities.StatePending, st.Status)
	assert.True(t, st.Value)

	st = tracker.Resolve("r1", true)
	assert.Equal(t, entities.StateSynced, st.Status)
	assert.True(t, st.Value)
	assert.True(t, tracker.State("r1", true).Value)
}

func TestTrackerRejectsSecondToggleWhilePending(t *testing.T) {
	tracker := NewTracker()

	_, err := tracker.Begin("r1", false)
	require.NoError(t, err)

	st, err := tracker.Begin("r1", true)
	assert.ErrorIs(t, err, entities.ErrTogglePending)
	assert.Equal(t, entities.StatePending, st.Status)

	// outro registro não é afetado
	_, err = tracker.Begin("r2", false)
	assert.NoError(t, err)
}

func TestTrackerFailureRevertsToLastGood(t *testing.T) {
	tracker := NewTracker()

	_, err := tracker.Begin("r1", true)
	require.NoError(t, err)

	st := tracker.Fail("r1")
	assert.Equal(t, entities.StateFailed, st.Status)
	assert.True(t, st.Value)
	assert.Equal(t, st, tracker.State("r1", false))

	// depois de falhar é possível tentar de novo
	_, err = tracker.Begin("r1", true)
	assert.NoError(t, err)
}

func TestTrackerStateWithoutHistory(t *testing.T) {
	tracker := NewTracker()

	st := tracker.State("r1", true)
	assert.Equal(t, entities.StateSynced, st.Status)
	assert.True(t, st.Value)
}

func TestTrackerForgetAndReset(t *testing.T) {
	tracker := NewTracker()
	_, _ = tracker.Begin("r1", false)
	_, _ = tracker.Begin("r2", false)

	tracker.Forget("r1")
	_, err := tracker.Begin("r1", false)
	assert.NoError(t, err)

	tracker.Reset()
	_, err = tracker.Begin("r2", false)
	assert.NoError(t, err)
}
