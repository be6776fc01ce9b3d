package renderer

import (
	"image"
	"runtime"
	"sync"
)

// rowTask represents one raster row for the worker pool
type rowTask struct {
	ID     int
	Pixels []Pixel     // The row's pixels, from the pixel grid
	View   ViewSetup   // Shared read-only view geometry
	Img    *image.RGBA // Shared output; rows are disjoint, so writes don't race
}

// rowResult reports a finished row
type rowResult struct {
	ID int
}

// workerPool renders raster rows in parallel. Workers share one
// raytracer because the scene is read-only for the whole render.
type workerPool struct {
	taskQueue   chan rowTask
	resultQueue chan rowResult
	raytracer   *Raytracer
	numWorkers  int
	wg          sync.WaitGroup
}

// newWorkerPool creates a pool with the given number of workers.
// Zero or negative means one worker per CPU.
func newWorkerPool(rt *Raytracer, numWorkers, maxRows int) *workerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &workerPool{
		taskQueue:   make(chan rowTask, maxRows),
		resultQueue: make(chan rowResult, maxRows),
		raytracer:   rt,
		numWorkers:  numWorkers,
	}
}

// Start begins all workers
func (wp *workerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

// Stop shuts down the pool after all submitted work finishes
func (wp *workerPool) Stop() {
	close(wp.taskQueue) // No more tasks
	wp.wg.Wait()        // Wait for workers to finish
	close(wp.resultQueue)
}

// SubmitTask submits a row task to the pool
func (wp *workerPool) SubmitTask(task rowTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed row result
func (wp *workerPool) GetResult() (rowResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *workerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop: trace each pixel of a row into its slot
func (wp *workerPool) run() {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		for _, p := range task.Pixels {
			task.Img.SetRGBA(p.X, p.Y, wp.raytracer.TracePixel(task.View, p))
		}
		wp.resultQueue <- rowResult{ID: task.ID}
	}
}
