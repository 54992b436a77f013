package renderer

import (
	"time"

	"github.com/mario007/mc-pathtracer/pkg/core"
	"github.com/mario007/mc-pathtracer/pkg/estimator"
	"github.com/mario007/mc-pathtracer/pkg/scene"
)

// EstimatorFunc is the pure (ray, scene, rng) -> color contract every
// estimator satisfies.
type EstimatorFunc func(ray core.Ray, s *scene.Scene, rng *core.PRNG) core.Color

// estimatorFor resolves the configured rendering algorithm to its
// estimator function.
func estimatorFor(algo scene.Algorithm) EstimatorFunc {
	switch algo {
	case scene.AmbientOcclusion:
		return estimator.AmbientOcclusion
	case scene.PathTracer:
		return estimator.PathTracer
	default:
		return estimator.DirectLighting
	}
}

// job is one unit of scheduled work: render every pixel of tiles[tileIdx]
// once, for spp-pass sppIdx. close, when set, tells the worker to return
// instead of rendering anything.
type job struct {
	tileIdx int
	sppIdx  int
	close   bool
}

// pixelSample is one resolved estimator sample, ready for the driver to
// fold into the shared ImageBuffer.
type pixelSample struct {
	x, y  int
	color core.Color
}

// result is a completed job's output: every pixel sample the worker
// produced, handed back as the job's single per-job heap allocation.
type result struct {
	workerID int
	samples  []pixelSample
}

// Scheduler partitions a scene's image into fixed-size tiles and drives a
// fixed pool of worker goroutines (job queue design): each worker holds
// its own job channel, every job is exactly one (tile, spp-index) pair,
// and the driver thread is the only writer to the ImageBuffer.
type Scheduler struct {
	scene     *scene.Scene
	estimator EstimatorFunc
	logger    core.Logger

	tiles       []Tile
	image       *ImageBuffer
	workerCount int

	jobChans   []chan job
	resultChan chan result
	workerJobs [][]job // fixed per-worker striping, assigned at Prepare time
	nextIdx    []int   // per-worker cursor into workerJobs
	closed     []bool
	closedN    int

	started  bool
	finished bool
}

// NewScheduler creates a scheduler for s. Neither NewScheduler nor Prepare
// starts any goroutines; the first Render call does.
func NewScheduler(s *scene.Scene, logger core.Logger) *Scheduler {
	if logger == nil {
		logger = &NopLogger{}
	}
	return &Scheduler{
		scene:     s,
		estimator: estimatorFor(s.Algorithm),
		logger:    logger,
		image:     NewImageBuffer(s.Width, s.Height),
	}
}

// Prepare partitions the image into tiles, sizes the worker pool to
// min(tiles, scene.NThreads), and builds the full (tile, spp-index) job
// list. Must be called exactly once, before the first Render.
func (sch *Scheduler) Prepare() {
	sch.tiles = NewTileGrid(sch.scene.Width, sch.scene.Height)

	sch.workerCount = sch.scene.NThreads
	if sch.workerCount <= 0 || sch.workerCount > len(sch.tiles) {
		sch.workerCount = len(sch.tiles)
	}
	if sch.workerCount == 0 {
		sch.workerCount = 1
	}

	// Each worker's job sequence is fixed at Prepare time by striding over
	// tiles: worker id handles tiles id, id+workerCount, id+2*workerCount,
	// ... for every spp pass. This keeps the tile-to-worker assignment
	// independent of goroutine scheduling, so the rendered image is
	// byte-identical across runs for a fixed worker count.
	sch.workerJobs = make([][]job, sch.workerCount)
	sch.nextIdx = make([]int, sch.workerCount)
	for id := 0; id < sch.workerCount; id++ {
		for spp := 0; spp < sch.scene.SPP; spp++ {
			for tileIdx := id; tileIdx < len(sch.tiles); tileIdx += sch.workerCount {
				sch.workerJobs[id] = append(sch.workerJobs[id], job{tileIdx: tileIdx, sppIdx: spp})
			}
		}
	}

	sch.jobChans = make([]chan job, sch.workerCount)
	sch.closed = make([]bool, sch.workerCount)
	sch.resultChan = make(chan result, sch.workerCount)
	for i := range sch.jobChans {
		sch.jobChans[i] = make(chan job, 1)
	}
}

// Render drives the scheduled jobs, feeding completed results into the
// ImageBuffer, for up to timeout (a timeout of 0 returns at once without
// consuming any result). It is cooperative and re-entrant: call it
// repeatedly until it returns finished=true.
func (sch *Scheduler) Render(timeout time.Duration) (finished bool) {
	if !sch.started {
		sch.start()
	}
	if sch.finished {
		return true
	}
	if timeout <= 0 {
		return false
	}

	deadline := time.Now().Add(timeout)
	for !sch.finished {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return false
		}
		select {
		case res := <-sch.resultChan:
			sch.handleResult(res)
		case <-time.After(remaining):
			return false
		}
	}
	return true
}

func (sch *Scheduler) start() {
	sch.started = true
	for i := 0; i < sch.workerCount; i++ {
		w := &worker{id: i, scene: sch.scene, estimator: sch.estimator, tiles: sch.tiles, in: sch.jobChans[i], out: sch.resultChan}
		go w.run()
	}

	for i := 0; i < sch.workerCount; i++ {
		sch.dispatchOrClose(i)
	}

	allEmpty := true
	for _, js := range sch.workerJobs {
		if len(js) > 0 {
			allEmpty = false
			break
		}
	}
	if allEmpty {
		sch.finished = true
	}
}

// dispatchOrClose sends workerID's next pre-assigned job, or a close
// sentinel once its fixed sequence is exhausted.
func (sch *Scheduler) dispatchOrClose(workerID int) {
	if sch.nextIdx[workerID] < len(sch.workerJobs[workerID]) {
		sch.jobChans[workerID] <- sch.workerJobs[workerID][sch.nextIdx[workerID]]
		sch.nextIdx[workerID]++
		return
	}
	if !sch.closed[workerID] {
		sch.closed[workerID] = true
		sch.closedN++
		sch.jobChans[workerID] <- job{close: true}
	}
}

// handleResult folds one worker's completed tile samples into the
// ImageBuffer (the only place the buffer is mutated) and keeps that
// worker fed with the next job, or shuts it down.
func (sch *Scheduler) handleResult(res result) {
	h := sch.scene.Height
	for _, s := range res.samples {
		sch.image.Add(s.x, h-s.y-1, s.color, 1.0)
	}
	sch.dispatchOrClose(res.workerID)
	if sch.closedN == sch.workerCount {
		sch.finished = true
	}
}

// Image returns the scheduler's ImageBuffer.
func (sch *Scheduler) Image() *ImageBuffer { return sch.image }

// worker renders whatever job arrives on in and reports the resolved
// pixel samples on out, until it receives a close job.
type worker struct {
	id        int
	scene     *scene.Scene
	estimator EstimatorFunc
	tiles     []Tile
	in        chan job
	out       chan result
}

func (w *worker) run() {
	rng := core.NewWorkerPRNG(0xf123456789012345, w.id)

	for j := range w.in {
		if j.close {
			return
		}

		tile := w.tiles[j.tileIdx]
		sampler := NewTileSampler(tile)

		samples := make([]pixelSample, 0, (tile.EndX-tile.StartX)*(tile.EndY-tile.StartY))
		for {
			img, ok := sampler.Next(rng)
			if !ok {
				break
			}
			ray := w.scene.GenerateRay(img.X, img.Y, img.Xp, img.Yp)
			color := w.estimator(ray, w.scene, rng)
			samples = append(samples, pixelSample{x: img.X, y: img.Y, color: color})
		}

		w.out <- result{workerID: w.id, samples: samples}
	}
}
