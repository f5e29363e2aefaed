package presets

import "github.com/samdwyer/dungeonleap/internal/world"

// PresetDef is a named set of overrides on top of world.DefaultParams.
// Zero fields keep the value they are applied to.
type PresetDef struct {
	ID     string `json:"id"`     // Unique identifier (e.g., "dense")
	Name   string `json:"name"`   // Display name (e.g., "Warrens")
	Weight int    `json:"weight"` // Relative pick frequency (higher = more common)

	CellCount            int     `json:"cellCount,omitempty"`
	ScatterRadius        int     `json:"scatterRadius,omitempty"`
	MinCellW             int     `json:"minCellW,omitempty"`
	MaxCellW             int     `json:"maxCellW,omitempty"`
	MinCellH             int     `json:"minCellH,omitempty"`
	MaxCellH             int     `json:"maxCellH,omitempty"`
	SeparationIterations int     `json:"separationIterations,omitempty"`
	Neighbors            int     `json:"neighbors,omitempty"`
	LoopRatio            float64 `json:"loopRatio,omitempty"`
	CorridorThickness    int     `json:"corridorThickness,omitempty"`
}

// Apply returns p with this preset's non-zero fields applied.
func (d *PresetDef) Apply(p world.Params) world.Params {
	setInt(&p.CellCount, d.CellCount)
	setInt(&p.ScatterRadius, d.ScatterRadius)
	setInt(&p.MinCellW, d.MinCellW)
	setInt(&p.MaxCellW, d.MaxCellW)
	setInt(&p.MinCellH, d.MinCellH)
	setInt(&p.MaxCellH, d.MaxCellH)
	setInt(&p.SeparationIterations, d.SeparationIterations)
	setInt(&p.Neighbors, d.Neighbors)
	setInt(&p.CorridorThickness, d.CorridorThickness)
	if d.LoopRatio != 0 {
		p.LoopRatio = d.LoopRatio
	}
	return p
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

// PresetsFile represents the structure of presets.json.
type PresetsFile struct {
	Presets []PresetDef `json:"presets"`
}

// LoadPresets loads preset definitions from the embedded presets.json file.
func LoadPresets() ([]PresetDef, error) {
	file, err := Load[PresetsFile]("presets.json")
	if err != nil {
		return nil, err
	}
	return file.Presets, nil
}
