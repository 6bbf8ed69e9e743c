package element

import (
	"fmt"
	"sync/atomic"
)

// Param is an integer tunable exposed by an element. The current value may be
// changed while events run; reads always see a whole value.
type Param struct {
	Key         string
	Label       string
	Description string
	Min         int32
	Max         int32
	Default     int32
	Step        int32

	value atomic.Int32
}

// NewParam returns a parameter holding its default value.
func NewParam(key, label, description string, min, def, max, step int32) *Param {
	p := &Param{
		Key:         key,
		Label:       label,
		Description: description,
		Min:         min,
		Max:         max,
		Default:     def,
		Step:        step,
	}
	p.value.Store(def)
	return p
}

// Value returns the current value.
func (p *Param) Value() int32 { return p.value.Load() }

// Set stores v clamped to [Min, Max] and returns the stored value.
func (p *Param) Set(v int32) int32 {
	if v < p.Min {
		v = p.Min
	}
	if v > p.Max {
		v = p.Max
	}
	p.value.Store(v)
	return v
}

// Reset restores the default value.
func (p *Param) Reset() { p.value.Store(p.Default) }

func (p *Param) validate() error {
	switch {
	case p.Key == "":
		return fmt.Errorf("%w: missing key", ErrInvalidParam)
	case p.Min > p.Max:
		return fmt.Errorf("%w: %s min %d above max %d", ErrInvalidParam, p.Key, p.Min, p.Max)
	case p.Default < p.Min || p.Default > p.Max:
		return fmt.Errorf("%w: %s default %d outside [%d, %d]", ErrInvalidParam, p.Key, p.Default, p.Min, p.Max)
	case p.Step <= 0:
		return fmt.Errorf("%w: %s step %d", ErrInvalidParam, p.Key, p.Step)
	}
	return nil
}
