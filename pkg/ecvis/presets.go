package ecvis

import (
	"fmt"
	"sort"
)

// Preset is a named small curve used by the visualizer.
type Preset struct {
	Key         string      `json:"key"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Params      CurveParams `json:"params"`
	P           int64       `json:"p"`
}

// The "simplified" presets keep the real curve's a and b where they fit and
// shrink p so every point can be drawn.
var presets = map[string]Preset{
	"secp256r1": {
		Key:         "secp256r1",
		Name:        "secp256r1 (simplified)",
		Description: "NIST P-256 curve used in TLS/SSL",
		Params:      CurveParams{A: -3, B: 41},
		P:           47,
	},
	"secp256k1": {
		Key:         "secp256k1",
		Name:        "secp256k1 (simplified)",
		Description: "Bitcoin and Ethereum blockchain curve",
		Params:      CurveParams{A: 0, B: 7},
		P:           43,
	},
	"example": {
		Key:         "example",
		Name:        "Example Curve",
		Description: "Simple curve for educational purposes",
		Params:      ExampleParams,
		P:           ExampleModulus,
	},
	"small": {
		Key:         "small",
		Name:        "Small Field (p=11)",
		Description: "Very small prime field for visualizing all points",
		Params:      CurveParams{A: 2, B: 3},
		P:           11,
	},
	"custom": {
		Key:         "custom",
		Name:        "Custom",
		Description: "Your own custom curve parameters",
		Params:      CurveParams{A: 0, B: 0},
		P:           23,
	},
}

// DefaultPresetKey is the preset selected when nothing else is chosen.
const DefaultPresetKey = "secp256r1"

// Presets returns all presets sorted by key.
func Presets() []Preset {
	out := make([]Preset, 0, len(presets))
	for _, p := range presets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// LookupPreset returns the preset with the given key.
func LookupPreset(key string) (Preset, error) {
	p, ok := presets[key]
	if !ok {
		return Preset{}, fmt.Errorf("unknown preset %q", key)
	}
	return p, nil
}

// ModularCurve builds the preset's curve over Z_p.
func (p Preset) ModularCurve(opts ...CurveOption) (*ModularCurve, error) {
	return NewModularCurve(p.Params, p.P, opts...)
}

// RealCurve builds the preset's curve over the reals.
func (p Preset) RealCurve(opts ...CurveOption) (*RealCurve, error) {
	return NewRealCurve(p.Params, opts...)
}
