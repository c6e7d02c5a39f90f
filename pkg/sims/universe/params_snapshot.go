package universe

import (
	"strconv"

	"phase-ca/pkg/core"
)

// Parameters describes the current lattice state and rule constants.
func (u *Universe) Parameters() core.ParameterSnapshot {
	params := u.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "Lattice",
			Params: []core.Parameter{
				intParam("size", "Initial size", u.cfg.Size),
				intParam("side", "Current side", u.size),
				int64Param("seed", "Seed", u.cfg.Seed),
				intParam("step", "Step", u.steps),
				intParam("expansions", "Expansions", u.expansions),
			},
		},
		{
			Name:    "Expansion",
			Summary: "Grow by zoom_padding per side when activity nears the edge.",
			Params: []core.Parameter{
				intParam("edge_threshold", "Edge threshold", params.EdgeThreshold),
				intParam("zoom_padding", "Zoom padding", params.ZoomPadding),
				intParam("window_pad", "Update window pad", params.WindowPad),
				boolParam("full_update", "Full-lattice update", params.FullUpdate),
			},
		},
		{
			Name: "Life",
			Params: []core.Parameter{
				intParam("spawn_step", "Spawn step", params.SpawnStep),
				intParam("spawn_radius", "Spawn radius", params.SpawnRadius),
				intParam("survival_min", "Survival min", params.SurvivalMin),
				intParam("survival_max", "Survival max", params.SurvivalMax),
				floatParam("birth_variance", "Birth variance", params.BirthVariance),
			},
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

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
