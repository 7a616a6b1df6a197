package sand

import (
	"strconv"

	"mad-sand/internal/core"
)

// Parameters reports the world settings and live telemetry.
func (u *Universe) Parameters() core.ParameterSnapshot {
	heat := u.HeatStats()
	census := u.Census()

	counts := make([]core.Parameter, 0, MaterialCount-1)
	for _, m := range Materials() {
		if m == Empty {
			continue
		}
		counts = append(counts, intParam("count_"+m.String(), m.String(), census.Count(m)))
	}

	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", u.grid.W),
				intParam("h", "Height", u.grid.H),
				uintParam("seed", "Seed", u.cfg.Seed),
				stringParam("scenario", "Scenario", u.cfg.Scenario),
				intParam("generation", "Generation", int(u.generation)),
			},
		},
		{
			Name: "Heat",
			Params: []core.Parameter{
				intParam("temp_min", "Min temperature", int(heat.Min)),
				intParam("temp_max", "Max temperature", int(heat.Max)),
				floatParam("temp_mean", "Mean temperature", heat.Mean),
			},
		},
		{
			Name:    "Census",
			Params:  counts,
			Summary: strconv.Itoa(census.Occupied()) + " occupied cells",
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func uintParam(key, label string, value uint32) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatUint(uint64(value), 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', 2, 64),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
