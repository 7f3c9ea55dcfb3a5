// Package jsonsource is the default, concrete ShapeSource: it reads a JSON
// document describing the bin and the parts to be nested.
package jsonsource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/arl/nest/geom"
	"github.com/arl/nest/nest"
)

// Shape is the wire representation of one polygon: an ID of -1 marks the
// bin, any other ID marks a part (spec.md §3). Points are [x, y] pairs:
// [[x0, y0], [x1, y1], ...].
type Shape struct {
	ID     int64          `json:"id"`
	Source int64          `json:"source"`
	Outer  [][2]float64   `json:"outer"`
	Holes  [][][2]float64 `json:"holes,omitempty"`
}

// Document is the top-level JSON shape: a flat list of shapes, exactly one
// of which must carry ID -1.
type Document struct {
	Shapes []Shape `json:"shapes"`
}

// Source reads shapes from a JSON file, which is opened and decoded each
// time Shapes is called.
type Source struct {
	path string
}

// Open returns a Source that reads its document from path when Shapes is
// called.
func Open(path string) *Source {
	return &Source{path: path}
}

func (s *Source) Shapes(ctx context.Context) ([]nest.InputShape, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("jsonsource: %w", err)
	}
	defer f.Close()
	return decode(f)
}

func decode(r io.Reader) ([]nest.InputShape, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("jsonsource: decoding document: %w", err)
	}

	shapes := make([]nest.InputShape, 0, len(doc.Shapes))
	var sawBin bool
	for _, s := range doc.Shapes {
		if len(s.Outer) < 3 {
			return nil, fmt.Errorf("jsonsource: shape %d: outer contour has %d points, want >= 3", s.ID, len(s.Outer))
		}
		if s.ID == -1 {
			if sawBin {
				return nil, fmt.Errorf("jsonsource: document has more than one shape with id -1 (the bin)")
			}
			sawBin = true
		}
		shapes = append(shapes, nest.InputShape{
			ID:     s.ID,
			Source: s.Source,
			Outer:  toPoints(s.Outer),
			Holes:  toPointsSlice(s.Holes),
		})
	}
	if !sawBin {
		return nil, fmt.Errorf("jsonsource: document has no shape with id -1 (the bin)")
	}
	return shapes, nil
}

func toPoints(pairs [][2]float64) []geom.Point {
	pts := make([]geom.Point, len(pairs))
	for i, p := range pairs {
		pts[i] = geom.Pt(p[0], p[1])
	}
	return pts
}

func toPointsSlice(groups [][][2]float64) [][]geom.Point {
	if len(groups) == 0 {
		return nil
	}
	out := make([][]geom.Point, len(groups))
	for i, g := range groups {
		out[i] = toPoints(g)
	}
	return out
}
