package jsonrenderer

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/arl/nest/nest"
)

func TestRenderWritesExpectedShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	r := ToFile(path)

	sol := nest.Solution{
		Fitness:  1.5,
		Unplaced: []int64{7},
		Bins: []nest.BinResult{{
			Width: 10, Height: 20, BoundsMinX: -1, BoundsMinY: -2,
			Placements: []nest.PlacementRecord{{PartSourceIndex: 3, X: 1, Y: 2, RotationDeg: 90}},
		}},
	}
	if err := r.Render(sol); err != nil {
		t.Fatalf("Render: %v", err)
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading rendered file: %v", err)
	}
	var doc document
	if err := json.Unmarshal(buf, &doc); err != nil {
		t.Fatalf("unmarshalling rendered file: %v", err)
	}
	if doc.Fitness != 1.5 || len(doc.Bins) != 1 || doc.Bins[0].Placements[0].Source != 3 {
		t.Errorf("unexpected document: %+v", doc)
	}
}

func TestRenderOverwritesOnEachCall(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	r := ToFile(path)

	if err := r.Render(nest.Solution{Fitness: 1}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if err := r.Render(nest.Solution{Fitness: 2}); err != nil {
		t.Fatalf("Render: %v", err)
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading rendered file: %v", err)
	}
	var doc document
	if err := json.Unmarshal(buf, &doc); err != nil {
		t.Fatalf("unmarshalling rendered file: %v", err)
	}
	if doc.Fitness != 2 {
		t.Errorf("Fitness = %v, want 2 (second Render should overwrite)", doc.Fitness)
	}
}
