package draw

import (
	"math/rand/v2"

	"github.com/PavaniTiago/vior-insights-api/internal/domain/entities"
)

// DefaultFrames é o número de quadros da animação de sorteio
const DefaultFrames = 20

// Picker escolhe um índice uniforme em [0, n)
type Picker func(n int) int

// Result é o ganhador e a sequência de leads exibida na roleta.
// O último quadro é sempre o ganhador.
type Result struct {
	Winner entities.Lead   `json:"winner"`
	Frames []entities.Lead `json:"frames"`
}

// Drawer sorteia um lead com chance igual para todos
type Drawer struct {
	pick   Picker
	frames int
}

// NewDrawer cria um sorteador; pick nil usa math/rand/v2
func NewDrawer(pick Picker, frames int) *Drawer {
	if pick == nil {
		pick = rand.IntN
	}
	if frames < 0 {
		frames = 0
	}
	return &Drawer{pick: pick, frames: frames}
}

// Draw sorteia o ganhador. Os quadros da roleta são sorteios independentes
// e não influenciam o resultado.
func (d *Drawer) Draw(leads []entities.Lead) (Result, error) {
	if len(leads) == 0 {
		return Result{}, entities.ErrEmptyPool
	}

	frames := make([]entities.Lead, 0, d.frames+1)
	for i := 0; i < d.frames; i++ {
		frames = append(frames, leads[d.pick(len(leads))])
	}

	winner := leads[d.pick(len(leads))]
	frames = append(frames, winner)

	return Result{Winner: winner, Frames: frames}, nil
}
