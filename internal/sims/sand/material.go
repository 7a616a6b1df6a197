package sand

import "strings"

// Material enumerates the cell kinds. The numeric values are the byte codes
// stored in the cell buffer.
type Material uint8

const (
	Empty Material = iota
	Sand
	Water
	Stone
	Wood
	Fire
	Steam
	Oil
	Acid
	Lava
	Plant
	Ice
	Smoke
	Glass
	Obsidian
	Gunpowder
)

// MaterialCount is the number of valid material codes.
const MaterialCount = 16

// Phase classifies how a material moves.
type Phase uint8

const (
	PhaseEmpty Phase = iota
	PhaseSolid
	PhaseLiquid
	PhaseGas
	PhaseStatic
)

// AmbientTemperature is the resting temperature of empty space.
const AmbientTemperature int16 = 20

type materialInfo struct {
	name         string
	phase        Phase
	density      int8
	baseTemp     int16
	flammability uint8
}

var materialTable = [MaterialCount]materialInfo{
	Empty:     {name: "Empty", phase: PhaseEmpty, density: 0, baseTemp: 20},
	Sand:      {name: "Sand", phase: PhaseSolid, density: 50, baseTemp: 20},
	Water:     {name: "Water", phase: PhaseLiquid, density: 30, baseTemp: 20},
	Stone:     {name: "Stone", phase: PhaseStatic, density: 100, baseTemp: 20},
	Wood:      {name: "Wood", phase: PhaseStatic, density: 20, baseTemp: 20, flammability: 60},
	Fire:      {name: "Fire", phase: PhaseGas, density: -10, baseTemp: 800},
	Steam:     {name: "Steam", phase: PhaseGas, density: -10, baseTemp: 300},
	Oil:       {name: "Oil", phase: PhaseLiquid, density: 10, baseTemp: 20, flammability: 90},
	Acid:      {name: "Acid", phase: PhaseLiquid, density: 30, baseTemp: 20},
	Lava:      {name: "Lava", phase: PhaseLiquid, density: 40, baseTemp: 30000},
	Plant:     {name: "Plant", phase: PhaseStatic, density: 20, baseTemp: 20, flammability: 60},
	Ice:       {name: "Ice", phase: PhaseStatic, density: 25, baseTemp: -20},
	Smoke:     {name: "Smoke", phase: PhaseGas, density: -10, baseTemp: 300},
	Glass:     {name: "Glass", phase: PhaseStatic, density: 60, baseTemp: 20},
	Obsidian:  {name: "Obsidian", phase: PhaseStatic, density: 100, baseTemp: 20},
	Gunpowder: {name: "Gunpowder", phase: PhaseSolid, density: 45, baseTemp: 20, flammability: 100},
}

// Decode converts a raw cell byte into a Material. Codes outside the valid
// range decode to Empty.
func Decode(code uint8) Material {
	if code >= MaterialCount {
		return Empty
	}
	return Material(code)
}

// Valid reports whether m is one of the defined materials.
func (m Material) Valid() bool { return m < MaterialCount }

func (m Material) info() materialInfo {
	if !m.Valid() {
		return materialTable[Empty]
	}
	return materialTable[m]
}

// String returns the display name of the material.
func (m Material) String() string { return m.info().name }

// Phase returns the movement class.
func (m Material) Phase() Phase { return m.info().phase }

// Density governs displacement between non-static cells.
func (m Material) Density() int8 { return m.info().density }

// BaseTemperature is the temperature a cell takes when a rule or a brush
// creates this material.
func (m Material) BaseTemperature() int16 { return m.info().baseTemp }

// Flammability is the percent chance to ignite when touching Fire or Lava.
func (m Material) Flammability() uint8 { return m.info().flammability }

// IsStatic reports whether the material never moves.
func (m Material) IsStatic() bool { return m.Phase() == PhaseStatic }

// IsLiquid reports whether the material flows sideways.
func (m Material) IsLiquid() bool { return m.Phase() == PhaseLiquid }

// IsGas reports whether the material rises.
func (m Material) IsGas() bool { return m.Phase() == PhaseGas }

// Materials lists every material in code order.
func Materials() []Material {
	out := make([]Material, MaterialCount)
	for i := range out {
		out[i] = Material(i)
	}
	return out
}

// ParseMaterial resolves a case-insensitive material name.
func ParseMaterial(name string) (Material, bool) {
	name = strings.TrimSpace(name)
	for i, info := range materialTable {
		if strings.EqualFold(info.name, name) {
			return Material(i), true
		}
	}
	return Empty, false
}

var keyMaterials = map[rune]Material{
	'1': Sand,
	'2': Water,
	'3': Stone,
	'4': Wood,
	'5': Oil,
	'6': Acid,
	'7': Lava,
	'8': Plant,
	'9': Ice,
	'0': Gunpowder,
}

// MaterialForKey maps the digit hotkeys to paintable materials.
func MaterialForKey(r rune) (Material, bool) {
	m, ok := keyMaterials[r]
	return m, ok
}
