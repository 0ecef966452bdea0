package systems

import (
	"fmt"
	"math/rand"
)

// Step runs one generation of breeding under the given gas readings.
// Only organisms present when the step starts may breed; their offspring are
// added once every parent has been visited. On error no offspring are added.
// Returns the number of births.
func (p *Population) Step(n2, co2 float64, rng *rand.Rand) (int, error) {
	p.pending = p.pending[:0]

	// The world is locked while the query runs, so offspring are buffered.
	query := p.orgFilter.Query()
	for query.Next() {
		org := query.Get()

		child, ok, err := org.Breed(n2, co2, rng)
		if err != nil {
			id := query.Entity().ID()
			query.Close()
			return 0, fmt.Errorf("breeding organism %d: %w", id, err)
		}
		if ok {
			p.pending = append(p.pending, child)
		}
	}

	for _, child := range p.pending {
		p.add(child)
	}

	return len(p.pending), nil
}
