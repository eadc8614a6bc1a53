package material

import "testing"

func TestPlaneTable(t *testing.T) {
	table := PlaneTable()

	tests := []struct {
		group int
		want  Color
	}{
		{-1, Yellow},
		{0, Yellow},
		{3, Yellow},
		{4, Black},
		{5, Black},
		{6, LightPurple},
		{7, Blue},
		{8, Yellow},
		{10, Yellow},
		{11, Black},
		{12, Yellow},
		{13, Yellow},
		{14, Blue},
		{25, Blue},
		{26, Yellow},
		{32, Yellow},
		{33, Blue},
		{1000, Blue},
	}

	for _, tt := range tests {
		m := table.Lookup(tt.group)
		if m.Diffuse != tt.want {
			t.Errorf("group %d: expected diffuse %v, got %v", tt.group, tt.want, m.Diffuse)
		}
		if m.Ambient != Grey {
			t.Errorf("group %d: expected grey ambient, got %v", tt.group, m.Ambient)
		}
		if m.Specular != White {
			t.Errorf("group %d: expected white specular, got %v", tt.group, m.Specular)
		}
		if m.Shininess != 100 {
			t.Errorf("group %d: expected shininess 100, got %f", tt.group, m.Shininess)
		}
	}
}

func TestPropellerTable(t *testing.T) {
	table := PropellerTable()

	tests := []struct {
		group int
		want  Color
	}{
		{-1, Orange},
		{0, Orange},
		{1, Red},
		{2, Yellow},
		{50, Yellow},
	}

	for _, tt := range tests {
		m := table.Lookup(tt.group)
		if m.Diffuse != tt.want || m.Ambient != tt.want {
			t.Errorf("group %d: expected %v, got diffuse %v ambient %v", tt.group, tt.want, m.Diffuse, m.Ambient)
		}
		if m.Specular != Black {
			t.Errorf("group %d: expected no specular term, got %v", tt.group, m.Specular)
		}
	}
}

func TestTableRangesAreContiguous(t *testing.T) {
	for name, table := range map[string]Table{
		"plane":     PlaneTable(),
		"propeller": PropellerTable(),
	} {
		for i := 1; i < len(table); i++ {
			if table[i].Min != table[i-1].Max+1 {
				t.Errorf("%s: range %d starts at %d, previous ends at %d", name, i, table[i].Min, table[i-1].Max)
			}
		}
	}
}

func TestEmptyTableLookup(t *testing.T) {
	var table Table
	if m := table.Lookup(3); m != (Material{}) {
		t.Errorf("expected zero material, got %+v", m)
	}
}

func TestFlat(t *testing.T) {
	m := Flat(Red)
	if m.Diffuse != Red || m.Ambient != Red || m.Specular != Black {
		t.Errorf("unexpected flat material %+v", m)
	}
}
