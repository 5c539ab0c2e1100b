package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/glass"
)

// preset mirrors glass.Params for TOML decoding. All keys are optional;
// missing ones keep the library defaults.
type preset struct {
	BlurStrength        *float64 `toml:"blur_strength"`
	RefractionStrength  *float64 `toml:"refraction_strength"`
	ChromaticAberration *float64 `toml:"chromatic_aberration"`
	FresnelStrength     *float64 `toml:"fresnel_strength"`
	SpecularStrength    *float64 `toml:"specular_strength"`
	GlassOpacity        *float64 `toml:"glass_opacity"`
	EdgeThickness       *float64 `toml:"edge_thickness"`
}

func loadPreset(path string) (glass.Params, error) {
	params := glass.DefaultParams()

	data, err := os.ReadFile(path)
	if err != nil {
		return params, err
	}

	var p preset
	if err := toml.Unmarshal(data, &p); err != nil {
		return params, fmt.Errorf("parse preset %s: %w", path, err)
	}

	apply := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&params.BlurStrength, p.BlurStrength)
	apply(&params.RefractionStrength, p.RefractionStrength)
	apply(&params.ChromaticAberration, p.ChromaticAberration)
	apply(&params.FresnelStrength, p.FresnelStrength)
	apply(&params.SpecularStrength, p.SpecularStrength)
	apply(&params.GlassOpacity, p.GlassOpacity)
	apply(&params.EdgeThickness, p.EdgeThickness)

	return params, nil
}
