package wave

import "fmt"

// Medium is a named material preset with its refractive index at ~550 nm and
// the tint used to shade its region in the plot.
type Medium struct {
	Name  string
	Index float64
	Tint  Tint
}

// Tint is a display color for a medium region.
type Tint struct {
	R, G, B uint8
}

// Media lists the material presets in menu order.
var Media = []Medium{
	{"Air", 1.0003, Tint{230, 230, 255}},
	{"Water", 1.33, Tint{153, 204, 255}},
	{"Glass (Crown)", 1.52, Tint{204, 230, 230}},
	{"Glass (Flint)", 1.62, Tint{179, 204, 204}},
	{"Diamond", 2.42, Tint{242, 242, 255}},
	{"Acrylic", 1.49, Tint{230, 230, 179}},
	{"Glycerine", 1.47, Tint{230, 204, 230}},
	{"Ethanol", 1.36, Tint{204, 204, 230}},
	{"Quartz", 1.54, Tint{255, 255, 230}},
	{"Sapphire", 1.77, Tint{179, 179, 230}},
}

// MediumByName returns the preset with the given name, or false.
func MediumByName(name string) (Medium, bool) {
	for _, m := range Media {
		if m.Name == name {
			return m, true
		}
	}
	return Medium{}, false
}

// Scenario is a named chain of three medium presets.
type Scenario struct {
	Name    string
	Media   [3]string
	Indices [3]float64
}

// Scenarios lists the preset three-medium chains in menu order.
var Scenarios = []Scenario{
	scenario("Air → Water → Glass", "Air", "Water", "Glass (Crown)"),
	scenario("Air → Glass → Water", "Air", "Glass (Crown)", "Water"),
	scenario("Water → Air → Glass", "Water", "Air", "Glass (Crown)"),
	scenario("Air → Diamond → Glass", "Air", "Diamond", "Glass (Crown)"),
	scenario("Glass → Air → Water", "Glass (Crown)", "Air", "Water"),
}

// ScenarioByName looks a scenario up by its exact name.
func ScenarioByName(name string) (Scenario, error) {
	for _, s := range Scenarios {
		if s.Name == name {
			return s, nil
		}
	}
	return Scenario{}, fmt.Errorf("%w: %q", ErrUnknownScenario, name)
}

func scenario(name, m1, m2, m3 string) Scenario {
	s := Scenario{Name: name, Media: [3]string{m1, m2, m3}}
	for i, n := range s.Media {
		m, ok := MediumByName(n)
		if !ok {
			panic("wave: unknown medium in scenario " + name)
		}
		s.Indices[i] = m.Index
	}
	return s
}

// Apply sets the three refractive indices of p to the scenario's media.
func (s Scenario) Apply(p *Params) {
	p.N1 = s.Indices[0]
	p.N2 = s.Indices[1]
	p.N3 = s.Indices[2]
}
