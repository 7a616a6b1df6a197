package sand

import "testing"

func TestDecodeDefaultsToEmpty(t *testing.T) {
	for code := 0; code < 256; code++ {
		m := Decode(uint8(code))
		if code < MaterialCount {
			if m != Material(code) {
				t.Fatalf("Decode(%d) = %v", code, m)
			}
			continue
		}
		if m != Empty {
			t.Fatalf("Decode(%d) = %v, expected Empty", code, m)
		}
	}
}

func TestMaterialTable(t *testing.T) {
	cases := []struct {
		m     Material
		phase Phase
		dens  int8
		temp  int16
		flam  uint8
	}{
		{Empty, PhaseEmpty, 0, 20, 0},
		{Sand, PhaseSolid, 50, 20, 0},
		{Water, PhaseLiquid, 30, 20, 0},
		{Stone, PhaseStatic, 100, 20, 0},
		{Wood, PhaseStatic, 20, 20, 60},
		{Fire, PhaseGas, -10, 800, 0},
		{Steam, PhaseGas, -10, 300, 0},
		{Oil, PhaseLiquid, 10, 20, 90},
		{Acid, PhaseLiquid, 30, 20, 0},
		{Lava, PhaseLiquid, 40, 30000, 0},
		{Plant, PhaseStatic, 20, 20, 60},
		{Ice, PhaseStatic, 25, -20, 0},
		{Smoke, PhaseGas, -10, 300, 0},
		{Glass, PhaseStatic, 60, 20, 0},
		{Obsidian, PhaseStatic, 100, 20, 0},
		{Gunpowder, PhaseSolid, 45, 20, 100},
	}
	if len(cases) != MaterialCount {
		t.Fatalf("table covers %d materials, expected %d", len(cases), MaterialCount)
	}
	for _, c := range cases {
		if got := c.m.Phase(); got != c.phase {
			t.Fatalf("%v phase = %d, expected %d", c.m, got, c.phase)
		}
		if got := c.m.Density(); got != c.dens {
			t.Fatalf("%v density = %d, expected %d", c.m, got, c.dens)
		}
		if got := c.m.BaseTemperature(); got != c.temp {
			t.Fatalf("%v base temperature = %d, expected %d", c.m, got, c.temp)
		}
		if got := c.m.Flammability(); got != c.flam {
			t.Fatalf("%v flammability = %d, expected %d", c.m, got, c.flam)
		}
	}
}

func TestParseMaterial(t *testing.T) {
	for _, m := range Materials() {
		got, ok := ParseMaterial(m.String())
		if !ok || got != m {
			t.Fatalf("ParseMaterial(%q) = (%v, %v)", m.String(), got, ok)
		}
	}
	if got, ok := ParseMaterial("  gunPOWDER "); !ok || got != Gunpowder {
		t.Fatalf("case-insensitive parse returned (%v, %v)", got, ok)
	}
	if _, ok := ParseMaterial("plasma"); ok {
		t.Fatal("unknown material should not parse")
	}
}

func TestMaterialForKey(t *testing.T) {
	expects := map[rune]Material{
		'1': Sand, '2': Water, '3': Stone, '4': Wood, '5': Oil,
		'6': Acid, '7': Lava, '8': Plant, '9': Ice, '0': Gunpowder,
	}
	for r, want := range expects {
		got, ok := MaterialForKey(r)
		if !ok || got != want {
			t.Fatalf("key %q = (%v, %v), expected %v", r, got, ok, want)
		}
	}
	if _, ok := MaterialForKey('x'); ok {
		t.Fatal("unbound key should not map to a material")
	}
}

func TestPaletteCoversMaterials(t *testing.T) {
	palette := Palette()
	if len(palette) != MaterialCount {
		t.Fatalf("palette has %d entries, expected %d", len(palette), MaterialCount)
	}
	if palette[Empty].A != 0 {
		t.Fatal("empty cells should be transparent")
	}
	for i, c := range palette {
		if c.R > c.A || c.G > c.A || c.B > c.A {
			t.Fatalf("palette entry %d is not premultiplied: %+v", i, c)
		}
	}
	if Glass.Color().B != 255 {
		t.Fatalf("straight glass color lost its blue channel: %+v", Glass.Color())
	}
}
