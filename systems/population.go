package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/gasbreed/components"
)

// Population owns a growing set of organisms stored in an ECS world.
// Organisms are never removed, so iteration order is creation order.
type Population struct {
	world     *ecs.World
	orgMapper *ecs.Map1[components.Organism]
	orgFilter *ecs.Filter1[components.Organism]

	size int

	// offspring collected during a step; reused across steps
	pending []components.Organism
}

// NewPopulation creates a population of size identical organisms.
func NewPopulation(seed components.Organism, size int) *Population {
	world := ecs.NewWorld()

	p := &Population{
		world:     world,
		orgMapper: ecs.NewMap1[components.Organism](world),
		orgFilter: ecs.NewFilter1[components.Organism](world),
	}

	for i := 0; i < size; i++ {
		p.add(seed)
	}

	return p
}

// add creates an entity for org.
func (p *Population) add(org components.Organism) {
	p.orgMapper.NewEntity(&org)
	p.size++
}

// Size returns the number of organisms.
func (p *Population) Size() int {
	return p.size
}

// Traits holds the threshold columns of a population, one entry per organism.
type Traits struct {
	MinN2        []float64
	MaxCO2       []float64
	MutationProb []float64
}

// Traits returns the current organisms' thresholds in iteration order.
func (p *Population) Traits() Traits {
	t := Traits{
		MinN2:        make([]float64, 0, p.size),
		MaxCO2:       make([]float64, 0, p.size),
		MutationProb: make([]float64, 0, p.size),
	}

	query := p.orgFilter.Query()
	for query.Next() {
		org := query.Get()
		t.MinN2 = append(t.MinN2, org.MinN2)
		t.MaxCO2 = append(t.MaxCO2, org.MaxCO2)
		t.MutationProb = append(t.MutationProb, org.MutationProb)
	}

	return t
}

// Organisms returns a copy of every organism in iteration order.
func (p *Population) Organisms() []components.Organism {
	out := make([]components.Organism, 0, p.size)
	query := p.orgFilter.Query()
	for query.Next() {
		out = append(out, *query.Get())
	}
	return out
}
