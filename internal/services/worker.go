package services

import (
	"context"
	"log"
	"sync"

	"alfredoptarigan/loan-approval/internal/models"
)

// ScoreOutcome is the result of scoring one stored application.
type ScoreOutcome struct {
	LoanID string
	Result *models.PredictionResult
	Err    error
}

// Worker scores stored applications concurrently. The predictor is read-only,
// so all goroutines share it.
type Worker interface {
	Start(ctx context.Context)
	Stop()
	EnqueueJob(applicant models.Applicant) bool
	Results() <-chan ScoreOutcome
}

type worker struct {
	predictor   Predictor
	jobQueue    chan models.Applicant
	results     chan ScoreOutcome
	concurrency int
	wg          sync.WaitGroup
	mu          sync.RWMutex
	stopped     bool
	stopOnce    sync.Once
}

func NewWorker(predictor Predictor, concurrency int) Worker {
	if concurrency < 1 {
		concurrency = 1
	}
	return &worker{
		predictor:   predictor,
		jobQueue:    make(chan models.Applicant, 100),
		results:     make(chan ScoreOutcome, 100),
		concurrency: concurrency,
	}
}

// Start implements Worker.
func (w *worker) Start(ctx context.Context) {
	log.Printf("🚀 Starting worker with %d concurrent workers\n", w.concurrency)

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i+1)
	}
}

// Stop implements Worker. Queued jobs are drained before Results is closed.
func (w *worker) Stop() {
	w.stopOnce.Do(func() {
		log.Println("🛑 Stopping worker...")

		// In-flight enqueues hold the read lock until their send lands.
		w.mu.Lock()
		w.stopped = true
		close(w.jobQueue)
		w.mu.Unlock()

		w.wg.Wait()
		close(w.results)
		log.Println("✅ Worker stopped")
	})
}

// EnqueueJob implements Worker. It reports false once the worker is stopped.
func (w *worker) EnqueueJob(applicant models.Applicant) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if w.stopped {
		log.Printf("⚠️  Worker stopped, cannot enqueue %s\n", applicant.LoanID)
		return false
	}

	w.jobQueue <- applicant
	return true
}

// Results implements Worker.
func (w *worker) Results() <-chan ScoreOutcome {
	return w.results
}

func (w *worker) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()

	for applicant := range w.jobQueue {
		if ctx.Err() != nil {
			w.results <- ScoreOutcome{LoanID: applicant.LoanID, Err: ctx.Err()}
			continue
		}

		prediction, err := w.predictor.Predict(applicant.RawInput())
		if err != nil {
			log.Printf("❌ Worker #%d failed to score %s: %v\n", workerID, applicant.LoanID, err)
			w.results <- ScoreOutcome{LoanID: applicant.LoanID, Err: err}
			continue
		}

		result := prediction.Result
		w.results <- ScoreOutcome{LoanID: applicant.LoanID, Result: &result}
	}
}
