package material

import "math"

// Range assigns a material to an inclusive span of group counter values.
type Range struct {
	Min, Max int
	Material Material
}

// Contains reports whether group falls inside the range.
func (r Range) Contains(group int) bool {
	return group >= r.Min && group <= r.Max
}

// Table maps group counter values to materials. Ranges are checked in order.
type Table []Range

// Lookup returns the material of the first range containing group.
// Groups past every range get the last entry's material.
func (t Table) Lookup(group int) Material {
	for _, r := range t {
		if r.Contains(group) {
			return r.Material
		}
	}
	if len(t) == 0 {
		return Material{}
	}
	return t[len(t)-1].Material
}

// cascade builds a table from ascending upper bounds. The first range is
// open below and the last range is open above.
func cascade(bounds []int, materials []Material) Table {
	t := make(Table, 0, len(materials))
	lo := math.MinInt
	for i, m := range materials {
		hi := math.MaxInt
		if i < len(bounds) {
			hi = bounds[i]
		}
		t = append(t, Range{Min: lo, Max: hi, Material: m})
		if hi != math.MaxInt {
			lo = hi + 1
		}
	}
	return t
}

// planeShininess is shared by both model tables.
const planeShininess = 100

func planeMaterial(diffuse Color) Material {
	return Material{
		Diffuse:   diffuse,
		Ambient:   Grey,
		Specular:  White,
		Shininess: planeShininess,
	}
}

func propellerMaterial(c Color) Material {
	return Material{
		Diffuse:   c,
		Ambient:   c,
		Specular:  Black,
		Shininess: planeShininess,
	}
}

// PlaneTable returns the group table of the plane model.
func PlaneTable() Table {
	return cascade(
		[]int{3, 5, 6, 7, 10, 11, 13, 25, 32},
		[]Material{
			planeMaterial(Yellow),
			planeMaterial(Black),
			planeMaterial(LightPurple),
			planeMaterial(Blue),
			planeMaterial(Yellow),
			planeMaterial(Black),
			planeMaterial(Yellow),
			planeMaterial(Blue),
			planeMaterial(Yellow),
			planeMaterial(Blue),
		},
	)
}

// PropellerTable returns the group table of the propeller model.
func PropellerTable() Table {
	return cascade(
		[]int{0, 1},
		[]Material{
			propellerMaterial(Orange),
			propellerMaterial(Red),
			propellerMaterial(Yellow),
		},
	)
}
