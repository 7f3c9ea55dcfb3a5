// Package jsonrenderer is the default, concrete Renderer: it writes the
// best-so-far placement as a JSON document each time the coordinator
// reports an improvement.
package jsonrenderer

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/arl/nest/nest"
)

// bin mirrors nest.BinResult in the wire format.
type bin struct {
	Width      float64      `json:"width"`
	Height     float64      `json:"height"`
	BoundsMinX float64      `json:"boundsMinX"`
	BoundsMinY float64      `json:"boundsMinY"`
	Placements []placement `json:"placements"`
}

type placement struct {
	Source      int64   `json:"source"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	RotationDeg float64 `json:"rotationDeg"`
}

// document is the top-level JSON shape written to disk on every
// improvement.
type document struct {
	Fitness  float64 `json:"fitness"`
	Unplaced []int64 `json:"unplaced,omitempty"`
	Bins     []bin   `json:"bins"`
}

// Renderer writes the best solution seen so far to path, overwriting it on
// every call to Render.
type Renderer struct {
	path string
}

// ToFile returns a Renderer that (re)writes path on every Render call.
func ToFile(path string) *Renderer {
	return &Renderer{path: path}
}

func (r *Renderer) Render(best nest.Solution) error {
	doc := toDocument(best)
	buf, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonrenderer: %w", err)
	}
	if err := os.WriteFile(r.path, buf, 0o644); err != nil {
		return fmt.Errorf("jsonrenderer: %w", err)
	}
	return nil
}

func toDocument(sol nest.Solution) document {
	doc := document{Fitness: sol.Fitness, Unplaced: sol.Unplaced}
	for _, b := range sol.Bins {
		wb := bin{Width: b.Width, Height: b.Height, BoundsMinX: b.BoundsMinX, BoundsMinY: b.BoundsMinY}
		for _, p := range b.Placements {
			wb.Placements = append(wb.Placements, placement{
				Source:      p.PartSourceIndex,
				X:           p.X,
				Y:           p.Y,
				RotationDeg: p.RotationDeg,
			})
		}
		doc.Bins = append(doc.Bins, wb)
	}
	return doc
}
