package strategy

import (
	"fmt"
	"sort"
)

// Strategy decides how many times teams meet. Rounds returns the number of
// intra-division and inter-division round robins to play.
type Strategy interface {
	Name() string
	Rounds() (vsDivision, vsNonDivision int)
}

// preset is a Strategy with fixed round counts.
type preset struct {
	name          string
	vsDivision    int
	vsNonDivision int
}

func (p preset) Name() string       { return p.name }
func (p preset) Rounds() (int, int) { return p.vsDivision, p.vsNonDivision }

// division_weighted plays each intra-division opponent twice and each
// inter-division opponent once.
var presets = map[string]preset{
	"division_weighted":  {name: "division_weighted", vsDivision: 2, vsNonDivision: 1},
	"single_round_robin": {name: "single_round_robin", vsDivision: 1, vsNonDivision: 1},
	"double_round_robin": {name: "double_round_robin", vsDivision: 2, vsNonDivision: 2},
}

// Get returns a Strategy by name.
func Get(name string) (Strategy, error) {
	p, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown strategy: %q", name)
	}
	return p, nil
}

// Names lists the known strategies in sorted order.
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
