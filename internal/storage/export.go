package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/convect1d/internal/field"
)

type ExportData struct {
	ID               string             `json:"id"`
	Nx               int                `json:"nx"`
	Length           float64            `json:"length"`
	Dx               float64            `json:"dx"`
	Dt               float64            `json:"dt"`
	WaveSpeed        float64            `json:"wave_speed"`
	Steps            int                `json:"steps"`
	Courant          float64            `json:"courant"`
	InitialCondition string             `json:"initial_condition"`
	Boundary         string             `json:"boundary"`
	Times            []float64          `json:"times"`
	Snapshots        [][]float64        `json:"snapshots"`
	Metrics          map[string]float64 `json:"metrics"`
}

// ExportJSON writes a full run (metadata plus snapshots) as indented JSON.
func ExportJSON(w io.Writer, meta *RunMetadata, snaps []field.Field, times []float64) error {
	data := ExportData{
		ID:               meta.ID,
		Nx:               meta.Nx,
		Length:           meta.Length,
		Dx:               meta.Dx,
		Dt:               meta.Dt,
		WaveSpeed:        meta.WaveSpeed,
		Steps:            meta.Steps,
		Courant:          meta.Courant,
		InitialCondition: meta.InitialCondition,
		Boundary:         meta.Boundary,
		Times:            times,
		Snapshots:        make([][]float64, len(snaps)),
		Metrics:          meta.Metrics,
	}

	for i, s := range snaps {
		data.Snapshots[i] = s
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
