package nest

import (
	"context"
	"math/rand"
	"testing"

	"github.com/arl/nest/geom"
	"github.com/arl/nest/nestcfg"
	"github.com/arl/nest/nestctx"
)

type recordingRenderer struct {
	renders []Solution
}

func (r *recordingRenderer) Render(best Solution) error {
	r.renders = append(r.renders, best)
	return nil
}

func squareShape(id int64, side float64, offsetX, offsetY float64) InputShape {
	return InputShape{
		ID:     id,
		Source: id,
		Outer: []geom.Point{
			geom.Pt(offsetX, offsetY),
			geom.Pt(offsetX+side, offsetY),
			geom.Pt(offsetX+side, offsetY+side),
			geom.Pt(offsetX, offsetY+side),
		},
	}
}

func TestPrepareRejectsMissingBin(t *testing.T) {
	cfg := nestcfg.Default()
	cfg.PopulationSize = 3
	c := NewCoordinator(cfg, nestctx.New(true), rand.New(rand.NewSource(1)))

	err := c.Prepare([]InputShape{squareShape(1, 2, 0, 0)})
	if err == nil {
		t.Fatal("expected Prepare to fail without a bin shape")
	}
}

func TestPrepareNormalizesBinToOrigin(t *testing.T) {
	cfg := nestcfg.Default()
	cfg.PopulationSize = 3
	cfg.Spacing = 0
	cfg.CurveTolerance = 0
	c := NewCoordinator(cfg, nestctx.New(true), rand.New(rand.NewSource(1)))

	bin := squareShape(-1, 10, 5, 5)
	part := squareShape(1, 2, 0, 0)

	if err := c.Prepare([]InputShape{bin, part}); err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}
	if c.bin == nil {
		t.Fatal("expected bin to be set")
	}
	origin := c.bin.At(0)
	if origin.X != 0 || origin.Y != 0 {
		t.Errorf("bin origin = %v, want (0,0)", origin)
	}
	if len(c.parts) != 1 {
		t.Fatalf("len(parts) = %d, want 1", len(c.parts))
	}
}

func TestRunWithoutPrepareReturnsNoBin(t *testing.T) {
	cfg := nestcfg.Default()
	cfg.PopulationSize = 3
	c := NewCoordinator(cfg, nestctx.New(true), rand.New(rand.NewSource(1)))

	_, err := c.Run(context.Background(), nil)
	if err == nil {
		t.Fatal("expected Run without Prepare to fail")
	}
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	cfg := nestcfg.Default()
	cfg.PopulationSize = 3
	cfg.Rotations = 1
	c := NewCoordinator(cfg, nestctx.New(true), rand.New(rand.NewSource(7)))

	bin := squareShape(-1, 20, 0, 0)
	part := squareShape(1, 2, 0, 0)
	if err := c.Prepare([]InputShape{bin, part}); err != nil {
		t.Fatalf("Prepare failed: %v", err)
	}

	runCtx, cancel := context.WithCancel(context.Background())
	cancel()

	renderer := &recordingRenderer{}
	_, err := c.Run(runCtx, renderer)
	if err == nil {
		t.Fatal("expected Run to report an error when cancelled before any individual evaluated")
	}
}
