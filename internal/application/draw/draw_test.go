package draw

import (
	"testing"

	"github.com/PavaniTiago/vior-insights-api/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leads(ids ...string) []entities.Lead {
	out := make([]entities.Lead, len(ids))
	for i, id := range ids {
		out[i] = entities.Lead{ID: id, Name: "Participante " + id}
	}
	return out
}

func TestDrawSingleLeadAlwaysWins(t *testing.T) {
	drawer := NewDrawer(nil, DefaultFrames)
	pool := leads("only")

	for i := 0; i < 10; i++ {
		result, err := drawer.Draw(pool)
		require.NoError(t, err)
		assert.Equal(t, "only", result.Winner.ID)
	}
}

func TestDrawEmptyPool(t *testing.T) {
	_, err := NewDrawer(nil, DefaultFrames).Draw(nil)
	assert.ErrorIs(t, err, entities.ErrEmptyPool)
}

func TestDrawLastFrameIsWinner(t *testing.T) {
	calls := 0
	pick := func(n int) int {
		calls++
		return calls % n
	}
	drawer := NewDrawer(pick, 3)

	result, err := drawer.Draw(leads("a", "b", "c", "d"))
	require.NoError(t, err)

	require.Len(t, result.Frames, 4)
	assert.Equal(t, result.Winner, result.Frames[len(result.Frames)-1])
	// quarto sorteio: 4 % 4 = 0
	assert.Equal(t, "a", result.Winner.ID)
	assert.Equal(t, 4, calls)
}

func TestDrawWinnerBelongsToPool(t *testing.T) {
	pool := leads("a", "b", "c")
	drawer := NewDrawer(nil, 5)

	for i := 0; i < 50; i++ {
		result, err := drawer.Draw(pool)
		require.NoError(t, err)
		assert.Contains(t, pool, result.Winner)
	}
}
