package array

import (
	"strconv"

	"data-array/internal/core"
	"data-array/internal/element"
)

// Parameters returns the current value of every element parameter, grouped by
// element.
func (s *Sim) Parameters() core.ParameterSnapshot {
	var snap core.ParameterSnapshot
	for _, e := range s.elems {
		params := e.Params()
		if len(params) == 0 {
			continue
		}
		group := core.ParameterGroup{Name: e.Meta().Name, Summary: e.Meta().Description}
		for _, p := range params {
			group.Params = append(group.Params, core.Parameter{
				Key:         element.ParamKey(e.Identity().Name, p.Key),
				Label:       p.Label,
				Type:        core.ParamTypeInt,
				Value:       strconv.Itoa(int(p.Value())),
				Description: p.Description,
			})
		}
		snap.Groups = append(snap.Groups, group)
	}
	return snap
}

// ParameterControls exposes every element parameter on the HUD.
func (s *Sim) ParameterControls() []core.ParameterControl {
	var controls []core.ParameterControl
	for _, e := range s.elems {
		for _, p := range e.Params() {
			controls = append(controls, core.ParameterControl{
				Key:   element.ParamKey(e.Identity().Name, p.Key),
				Label: e.Meta().Symbol + " " + p.Label,
				Type:  core.ParamTypeInt,
				Step:  int(p.Step),
				Min:   int(p.Min),
				Max:   int(p.Max),
			})
		}
	}
	return controls
}

// SetIntParameter updates an element parameter. Values outside the parameter range
// are rejected rather than clamped.
func (s *Sim) SetIntParameter(key string, value int) bool {
	p, err := s.reg.Param(key)
	if err != nil {
		return false
	}
	if value < int(p.Min) || value > int(p.Max) {
		return false
	}
	p.Set(int32(value))
	s.log.Info("parameter changed", "key", key, "value", value)
	return true
}
