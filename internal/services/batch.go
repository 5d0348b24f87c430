package services

import (
	"context"
	"fmt"

	"alfredoptarigan/loan-approval/internal/repositories"
)

// BatchSummary counts outcomes of a scoring run.
type BatchSummary struct {
	Approved int
	Rejected int
	Failed   int
}

func (s *BatchSummary) add(o ScoreOutcome) {
	switch {
	case o.Err != nil:
		s.Failed++
	case o.Result.Approved:
		s.Approved++
	default:
		s.Rejected++
	}
}

// BatchScorer scores stored applications without writing anything back.
type BatchScorer interface {
	ScoreOne(loanID string) (ScoreOutcome, error)
	ScoreAll(ctx context.Context, emit func(ScoreOutcome)) (BatchSummary, error)
}

type batchScorer struct {
	repo        repositories.ApplicantRepository
	predictor   Predictor
	concurrency int
	batchSize   int
}

func NewBatchScorer(
	repo repositories.ApplicantRepository,
	predictor Predictor,
	concurrency int,
	batchSize int,
) BatchScorer {
	if batchSize < 1 {
		batchSize = 100
	}
	return &batchScorer{
		repo:        repo,
		predictor:   predictor,
		concurrency: concurrency,
		batchSize:   batchSize,
	}
}

// ScoreOne implements BatchScorer. A lookup failure is returned as the error;
// a prediction failure is reported on the outcome.
func (b *batchScorer) ScoreOne(loanID string) (ScoreOutcome, error) {
	applicant, err := b.repo.FindByID(loanID)
	if err != nil {
		return ScoreOutcome{}, fmt.Errorf("failed to load applicant %s: %w", loanID, err)
	}

	prediction, err := b.predictor.Predict(applicant.RawInput())
	if err != nil {
		return ScoreOutcome{LoanID: applicant.LoanID, Err: err}, nil
	}

	result := prediction.Result
	return ScoreOutcome{LoanID: applicant.LoanID, Result: &result}, nil
}

// ScoreAll implements BatchScorer. emit is called from a single goroutine.
func (b *batchScorer) ScoreAll(ctx context.Context, emit func(ScoreOutcome)) (BatchSummary, error) {
	var summary BatchSummary

	worker := NewWorker(b.predictor, b.concurrency)
	worker.Start(ctx)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for outcome := range worker.Results() {
			summary.add(outcome)
			if emit != nil {
				emit(outcome)
			}
		}
	}()

	var fetchErr error
	for offset := 0; ctx.Err() == nil; offset += b.batchSize {
		page, err := b.repo.FindPage(b.batchSize, offset)
		if err != nil {
			fetchErr = fmt.Errorf("failed to fetch applicants at offset %d: %w", offset, err)
			break
		}
		if len(page) == 0 {
			break
		}
		for _, applicant := range page {
			worker.EnqueueJob(applicant)
		}
	}

	worker.Stop()
	<-done

	return summary, fetchErr
}
