// Package ga implements the genetic algorithm search over (insertion order,
// rotation) individuals: Adam seeding, weighted-rank selection, single-point
// crossover, mutation, and the generation step (spec.md §4.6).
package ga

import "github.com/arl/nest/geom"

// Part is one master polygon as known to the GA. Seed-rotation fitting
// computes its rotated bounding box from Poly.
type Part struct {
	Poly *geom.Polygon
}

// Individual is one candidate solution: a permutation of part indices plus
// a per-position rotation, and an optional fitness assigned by the
// placement worker (spec.md §3).
type Individual struct {
	Placement []int
	Rotation  []float32
	Fitness   *float64
}

// Clone returns a deep copy sharing no backing arrays with ind.
func (ind Individual) Clone() Individual {
	c := Individual{
		Placement: append([]int(nil), ind.Placement...),
		Rotation:  append([]float32(nil), ind.Rotation...),
	}
	if ind.Fitness != nil {
		f := *ind.Fitness
		c.Fitness = &f
	}
	return c
}

// HasFitness reports whether ind has been evaluated.
func (ind Individual) HasFitness() bool {
	return ind.Fitness != nil
}
