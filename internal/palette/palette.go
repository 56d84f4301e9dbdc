// Package palette assigns display colors to categories.
package palette

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"fjacquet/fintrack/internal/models"
)

// Palette returns the vocabulary color of known categories. Unknown
// categories get a random color the first time they are requested; the
// sequence is fixed by the seed, so identical seeds and request orders yield
// identical colors.
type Palette struct {
	mu       sync.Mutex
	rng      *rand.Rand
	assigned map[string]string
}

// New creates a palette seeded with seed.
func New(seed uint64) *Palette {
	return &Palette{
		rng:      rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)),
		assigned: make(map[string]string),
	}
}

// Color returns the "#RRGGBB" color of category.
func (p *Palette) Color(category string) string {
	if c, ok := models.CategoryColor(category); ok {
		return c
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if c, ok := p.assigned[category]; ok {
		return c
	}
	c := fmt.Sprintf("#%06X", p.rng.Uint32()&0xFFFFFF)
	p.assigned[category] = c
	return c
}
