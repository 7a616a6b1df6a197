package sand

import (
	"slices"
	"testing"
)

func TestNewStartsEmptyAtAmbient(t *testing.T) {
	u := New(12, 7)
	if u.Width() != 12 || u.Height() != 7 {
		t.Fatalf("size = %dx%d, expected 12x7", u.Width(), u.Height())
	}
	if len(u.Cells()) != 12*7 || len(u.Temps()) != 12*7 {
		t.Fatalf("buffers have %d cells and %d temps", len(u.Cells()), len(u.Temps()))
	}
	for i, c := range u.Cells() {
		if c != uint8(Empty) {
			t.Fatalf("cell %d = %d on a fresh universe", i, c)
		}
	}
	for i, temp := range u.Temps() {
		if temp != AmbientTemperature {
			t.Fatalf("temp %d = %d on a fresh universe", i, temp)
		}
	}
}

func TestPaintRadiusZeroTouchesOneCell(t *testing.T) {
	u := New(8, 8)
	u.Paint(3, 4, uint8(Stone), 0)

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			want := Empty
			if row == 3 && col == 4 {
				want = Stone
			}
			if got := u.At(row, col); got != want {
				t.Fatalf("cell (%d,%d) = %v, expected %v", row, col, got, want)
			}
			if temp := u.Temperature(row, col); temp != 20 {
				t.Fatalf("cell (%d,%d) temperature = %d, expected 20", row, col, temp)
			}
		}
	}
}

func TestPaintClipsToGrid(t *testing.T) {
	u := New(8, 8)
	u.Paint(0, 0, uint8(Lava), 2)

	census := u.Census()
	if got := census.Count(Lava); got != 6 {
		t.Fatalf("corner brush painted %d cells, expected 6", got)
	}
	if temp := u.Temperature(1, 1); temp != 30000 {
		t.Fatalf("painted lava temperature = %d, expected 30000", temp)
	}
	if u.At(2, 2) != Empty {
		t.Fatal("cell outside the circle was painted")
	}

	u.Paint(-50, 100, uint8(Sand), 3)
	if u.Census().Count(Sand) != 0 {
		t.Fatal("brush entirely outside the grid should paint nothing")
	}
	u.Paint(4, 4, uint8(Sand), -1)
	if u.Census().Count(Sand) != 0 {
		t.Fatal("negative radius should paint nothing")
	}
}

func TestPaintCircleIsInclusive(t *testing.T) {
	u := New(11, 11)
	u.Paint(5, 5, uint8(Sand), 3)
	// dx*dx+dy*dy <= 9 holds for 29 offsets.
	if got := u.Census().Count(Sand); got != 29 {
		t.Fatalf("radius 3 brush painted %d cells, expected 29", got)
	}
	if u.At(5, 8) != Sand || u.At(2, 5) != Sand {
		t.Fatal("brush boundary should be included")
	}
	if u.At(2, 2) != Empty {
		t.Fatal("corner outside the circle was painted")
	}
}

func TestPaintInvalidCodeErases(t *testing.T) {
	u := New(4, 4)
	u.Paint(1, 1, uint8(Lava), 0)
	u.Paint(1, 1, 200, 0)
	if got := u.At(1, 1); got != Empty {
		t.Fatalf("invalid code painted %v, expected Empty", got)
	}
	// Erasing keeps the previous heat; diffusion handles it from there.
	if temp := u.Temperature(1, 1); temp != 30000 {
		t.Fatalf("erased cell temperature = %d, expected 30000", temp)
	}
}

func TestClearResetsEverything(t *testing.T) {
	u := New(16, 16)
	u.Paint(8, 8, uint8(Lava), 4)
	u.Paint(2, 2, uint8(Ice), 2)
	u.Paint(0, 10, uint8(Water), 3)
	for i := 0; i < 20; i++ {
		u.Tick()
	}
	u.Clear()

	for i, c := range u.Cells() {
		if c != uint8(Empty) {
			t.Fatalf("cell %d = %d after Clear", i, c)
		}
	}
	for i, temp := range u.Temps() {
		if temp != AmbientTemperature {
			t.Fatalf("temp %d = %d after Clear", i, temp)
		}
	}
	for i, m := range u.moved {
		if m {
			t.Fatalf("moved flag %d set after Clear", i)
		}
	}
}

func TestOutOfGridQueries(t *testing.T) {
	u := New(3, 3)
	if u.At(-1, 0) != Empty || u.At(0, 3) != Empty {
		t.Fatal("out-of-grid At should report Empty")
	}
	if u.Temperature(5, 5) != AmbientTemperature {
		t.Fatal("out-of-grid Temperature should report ambient")
	}
}

func TestResetReappliesScenario(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 48
	cfg.Height = 32
	cfg.Scenario = ScenarioVolcano
	u := NewWithConfig(cfg)
	if u.Census().Occupied() != 0 {
		t.Fatal("construction should not paint the scenario")
	}

	u.Reset(0)
	initial := slices.Clone(u.Cells())
	if u.Census().Count(Lava) == 0 {
		t.Fatal("volcano scenario should contain lava")
	}

	for i := 0; i < 30; i++ {
		u.Tick()
	}
	u.Reset(0)
	if !slices.Equal(initial, u.Cells()) {
		t.Fatal("Reset with the config seed should rebuild the same start state")
	}
	if u.Generation() != 0 {
		t.Fatalf("generation = %d after Reset", u.Generation())
	}
}

func TestFactoryRegistersSand(t *testing.T) {
	sim := NewWithConfig(FromMap(map[string]string{"w": "40", "h": "30", "seed": "0x10", "scenario": "Hourglass"}))
	if sim.Name() != "sand" {
		t.Fatalf("name = %q", sim.Name())
	}
	if s := sim.Size(); s.W != 40 || s.H != 30 {
		t.Fatalf("size = %+v", s)
	}
	cfg := sim.Config()
	if cfg.Seed != 16 || cfg.Scenario != ScenarioHourglass {
		t.Fatalf("config = %+v", cfg)
	}

	bad := FromMap(map[string]string{"w": "-4", "seed": "nope", "scenario": "moon"})
	def := DefaultConfig()
	if bad != def {
		t.Fatalf("malformed values should keep defaults, got %+v", bad)
	}
}
