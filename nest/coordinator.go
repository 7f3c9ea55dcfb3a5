package nest

import (
	"context"
	"math"
	"math/rand"
	"runtime"

	"github.com/arl/nest/boolean"
	"github.com/arl/nest/ga"
	"github.com/arl/nest/geom"
	"github.com/arl/nest/nestcfg"
	"github.com/arl/nest/nesterr"
	"github.com/arl/nest/nestctx"
	"github.com/arl/nest/nfp"
	"github.com/arl/nest/nfpcache"
	"github.com/arl/nest/placement"
)

// Coordinator drives the GA/NFP/placement loop (spec.md §4.7): it owns the
// normalized bin and parts, the GA population, and the NFP cache, and
// reports progress and improvements through Ctx and a Renderer.
type Coordinator struct {
	Config nestcfg.Config
	Ctx    *nestctx.Context
	// PoolSize sizes the NFP worker pool; defaults to runtime.NumCPU().
	PoolSize int

	set        *geom.Set
	bin        *geom.Polygon
	parts      []ga.Part
	population []ga.Individual
	cache      *nfpcache.Cache
	rng        *rand.Rand
}

// NewCoordinator returns a Coordinator configured by cfg, logging/timing
// through logCtx, seeded by rng.
func NewCoordinator(cfg nestcfg.Config, logCtx *nestctx.Context, rng *rand.Rand) *Coordinator {
	return &Coordinator{
		Config: cfg,
		Ctx:    logCtx,
		set:    geom.NewSet(),
		cache:  nfpcache.New(),
		rng:    rng,
	}
}

// Prepare normalizes shapes per spec.md §4.7 steps 1-3: parts are offset
// outward by spacing/2, the bin is offset by -spacing/2, the bin is
// translated to the origin with id -1 and its winding forced, and each
// part has its duplicate closing vertex removed and its winding forced
// counter-clockwise. The shape whose ID is -1 is taken as the bin; every
// other shape is a part.
func (c *Coordinator) Prepare(shapes []InputShape) error {
	scale := float64(c.Config.ClipperScale)
	offsetDist := c.Config.CurveTolerance * scale

	offset := func(pts []geom.Point, delta float64) (geom.Polygon, error) {
		return offsetContour(pts, delta, offsetDist, scale)
	}

	var binShape *InputShape
	var partShapes []InputShape
	for i := range shapes {
		if shapes[i].ID == -1 {
			binShape = &shapes[i]
			continue
		}
		partShapes = append(partShapes, shapes[i])
	}
	if binShape == nil {
		return nesterr.NoBin
	}

	bin, err := offset(binShape.Outer, -c.Config.Spacing/2)
	if err != nil {
		return err
	}
	bin.ID = -1
	bin.Source = binShape.Source
	bin.OffsetX, bin.OffsetY = 0, 0
	if geom.Area(&bin) > 0 {
		geom.Reverse(&bin)
	}
	origin := bin.At(0)
	for i := range bin.Points {
		bin.Points[i].X -= origin.X
		bin.Points[i].Y -= origin.Y
	}
	binID := c.set.Add(bin)
	c.bin = c.set.Get(binID)

	c.parts = c.parts[:0]
	for _, ps := range partShapes {
		part, err := offset(ps.Outer, c.Config.Spacing/2)
		if err != nil {
			c.Ctx.Warningf("part %d: offset failed: %v", ps.ID, err)
			continue
		}
		part.ID = ps.ID
		part.Source = ps.Source
		part.RemoveDuplicateClosingVertex()
		if geom.Area(&part) > 0 {
			geom.Reverse(&part)
		}

		id := c.set.Add(part)
		master := c.set.Get(id)
		for _, hole := range ps.Holes {
			h := geom.NewPolygon(append([]geom.Point(nil), hole...))
			if geom.Area(&h) < 0 {
				geom.Reverse(&h)
			}
			hid := c.set.Add(h)
			master.Children = append(master.Children, hid)
		}
		c.parts = append(c.parts, ga.Part{Poly: master})
	}

	if len(c.parts) == 0 {
		return nesterr.Wrap(nesterr.DegenerateInput, "no parts to nest")
	}

	c.population = ga.Seed(c.gaConfig(), c.parts, c.bin, c.rng)

	return nil
}

func offsetContour(pts []geom.Point, delta, distance, scale float64) (geom.Polygon, error) {
	path := append([]geom.Point(nil), pts...)
	if delta != 0 {
		offsetPaths, err := boolean.Offset(path, delta, scale, boolean.RoundJoin, boolean.ClosedPolygon, 2)
		if err != nil {
			return geom.Polygon{}, err
		}
		if len(offsetPaths) == 0 {
			return geom.Polygon{}, nesterr.Wrap(nesterr.DegenerateInput, "offset collapsed contour to nothing")
		}
		path = offsetPaths[0]
	}
	if distance > 0 {
		cleaned, err := boolean.Clean(path, distance, scale)
		if err == nil && len(cleaned) >= 3 {
			path = cleaned
		}
	}
	return geom.NewPolygon(path), nil
}

func (c *Coordinator) gaConfig() ga.Config {
	return ga.Config{
		PopulationSize: c.Config.PopulationSize,
		MutationRate:   float64(c.Config.MutationRate),
		Rotations:      c.Config.Rotations,
	}
}

func (c *Coordinator) poolSize() int {
	if c.PoolSize > 0 {
		return c.PoolSize
	}
	return runtime.NumCPU()
}

// Run executes the generation loop until runCtx is cancelled or
// c.Ctx.Cancel() is called, returning the best solution found (spec.md
// §4.7 step 4).
func (c *Coordinator) Run(runCtx context.Context, renderer Renderer) (Solution, error) {
	if c.bin == nil {
		return Solution{}, nesterr.NoBin
	}

	var best *Solution
	bestFitness := math.Inf(1)
	generation := 0

	for {
		select {
		case <-runCtx.Done():
			c.Ctx.Cancel()
		default:
		}
		if c.Ctx.Cancelled() {
			break
		}

		if allEvaluated(c.population) {
			c.population = ga.Generation(c.gaConfig(), c.population, c.parts, c.bin, c.rng)
			generation++
		}

		idx := firstUnevaluated(c.population)
		if idx < 0 {
			break
		}
		ind := c.population[idx]

		keys := enumerateKeys(c.bin, c.parts, ind)
		c.cache.Prune(keys)
		missing := c.cache.Missing(keys)

		jobs := c.buildJobs(ind, missing)
		opts := nfpOptions{useHoles: c.Config.UseHoles, exploreConcave: c.Config.ExploreConcave, scale: float64(c.Config.ClipperScale)}
		results := runNfpPool(c.set, jobs, c.poolSize(), opts, c.Ctx.Cancelled)
		for _, r := range results {
			if r.err != nil {
				c.Ctx.Warningf("nfp computation failed: %v", r.err)
				continue
			}
			c.cache.Set(r.key, r.value)
		}

		res := c.place(ind)
		fitness := res.Fitness
		c.population[idx].Fitness = &fitness

		c.Ctx.Progressf("generation %d: %d/%d keys computed", generation, len(results), len(keys))

		if fitness < bestFitness {
			bestFitness = fitness
			sol := decodeSolution(res)
			best = &sol
			if renderer != nil {
				if err := renderer.Render(sol); err != nil {
					c.Ctx.Errorf("render: %v", err)
				}
			}
		}
	}

	if best == nil {
		return Solution{}, nesterr.Wrap(nesterr.DegenerateInput, "cancelled before any individual was evaluated")
	}
	return *best, nil
}

func allEvaluated(population []ga.Individual) bool {
	for _, ind := range population {
		if !ind.HasFitness() {
			return false
		}
	}
	return true
}

func firstUnevaluated(population []ga.Individual) int {
	for i, ind := range population {
		if !ind.HasFitness() {
			return i
		}
	}
	return -1
}

// enumerateKeys collects the inner (bin, part) key and every outer
// (placed, part) key for each ordered pair i<j in ind's order (spec.md
// §4.4 step 1).
func enumerateKeys(bin *geom.Polygon, parts []ga.Part, ind ga.Individual) []nfp.Key {
	n := len(ind.Placement)
	keys := make([]nfp.Key, 0, n+n*(n-1)/2)
	for j := 0; j < n; j++ {
		partID := parts[ind.Placement[j]].Poly.ID
		keys = append(keys, nfp.Key{AID: bin.ID, BID: partID, Inside: true, ARot: bin.Rotation, BRot: ind.Rotation[j]})
		for i := 0; i < j; i++ {
			otherID := parts[ind.Placement[i]].Poly.ID
			keys = append(keys, nfp.Key{AID: otherID, BID: partID, Inside: false, ARot: ind.Rotation[i], BRot: ind.Rotation[j]})
		}
	}
	return keys
}

func (c *Coordinator) buildJobs(ind ga.Individual, missing []nfp.Key) []nfpJob {
	jobs := make([]nfpJob, 0, len(missing))
	for _, key := range missing {
		var a *geom.Polygon
		if key.AID == c.bin.ID {
			a = c.bin
		} else {
			a = c.rotatedCopy(key.AID, key.ARot)
		}
		b := c.rotatedCopy(key.BID, key.BRot)
		jobs = append(jobs, nfpJob{key: key, a: a, b: b})
	}
	return jobs
}

func (c *Coordinator) rotatedCopy(id int64, deg float32) *geom.Polygon {
	master := c.set.Get(geom.PolygonID(id))
	if master == nil {
		return nil
	}
	if deg == 0 {
		return master
	}
	rotated := geom.RotatePolygon(c.set, master, float64(deg))
	rotated.ID = master.ID
	return &rotated
}

func (c *Coordinator) place(ind ga.Individual) placement.Result {
	refs := make([]placement.PartRef, len(ind.Placement))
	for pos, partIdx := range ind.Placement {
		refs[pos] = placement.PartRef{Poly: c.rotatedCopy(c.parts[partIdx].Poly.ID, ind.Rotation[pos]), Rotation: ind.Rotation[pos]}
	}
	return placement.Place(c.bin, c.bin.Rotation, refs, c.cache, float64(c.Config.ClipperScale))
}
