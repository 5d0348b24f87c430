package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/loan-approval/internal/models"
)

type memoryApplicants struct {
	mu      sync.Mutex
	rows    []models.Applicant
	pageErr error
	pages   int
}

func (m *memoryApplicants) Count() (int64, error) {
	return int64(len(m.rows)), nil
}

func (m *memoryApplicants) FindByID(loanID string) (*models.Applicant, error) {
	for i := range m.rows {
		if m.rows[i].LoanID == loanID {
			a := m.rows[i]
			return &a, nil
		}
	}
	return nil, errors.New("applicant not found")
}

func (m *memoryApplicants) FindPage(limit, offset int) ([]models.Applicant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pages++
	if m.pageErr != nil {
		return nil, m.pageErr
	}
	if offset >= len(m.rows) {
		return nil, nil
	}
	end := offset + limit
	if end > len(m.rows) {
		end = len(m.rows)
	}
	return m.rows[offset:end], nil
}

func applicantRows(n int) []models.Applicant {
	rows := make([]models.Applicant, n)
	for i := range rows {
		rows[i] = storedApplicant(fmt.Sprintf("LP%03d", i))
	}
	return rows
}

func TestBatchScorer_ScoreOne(t *testing.T) {
	rows := applicantRows(3)
	rows[2].Married = nil
	scorer := NewBatchScorer(&memoryApplicants{rows: rows}, newTestPredictor(t, 1, false), 1, 10)

	outcome, err := scorer.ScoreOne("LP001")
	require.NoError(t, err)
	require.NoError(t, outcome.Err)
	assert.Equal(t, "LP001", outcome.LoanID)
	assert.True(t, outcome.Result.Approved)

	outcome, err = scorer.ScoreOne("LP002")
	require.NoError(t, err)
	assert.ErrorIs(t, outcome.Err, ErrMissingField)

	_, err = scorer.ScoreOne("LP999")
	assert.Error(t, err)
}

func TestBatchScorer_ScoreAll(t *testing.T) {
	rows := applicantRows(25)
	rows[4].PropertyArea = nil
	repo := &memoryApplicants{rows: rows}
	scorer := NewBatchScorer(repo, newTestPredictor(t, -1, false), 3, 10)

	var ids []string
	summary, err := scorer.ScoreAll(context.Background(), func(o ScoreOutcome) {
		ids = append(ids, o.LoanID)
	})
	require.NoError(t, err)

	assert.Equal(t, BatchSummary{Approved: 0, Rejected: 24, Failed: 1}, summary)
	assert.Len(t, ids, 25)
	sort.Strings(ids)
	assert.Equal(t, "LP000", ids[0])
	assert.Equal(t, 4, repo.pages)
}

func TestBatchScorer_ScoreAllPageError(t *testing.T) {
	repo := &memoryApplicants{rows: applicantRows(2), pageErr: errors.New("connection reset")}
	scorer := NewBatchScorer(repo, newTestPredictor(t, 1, false), 1, 0)

	summary, err := scorer.ScoreAll(context.Background(), nil)
	assert.ErrorContains(t, err, "connection reset")
	assert.Equal(t, BatchSummary{}, summary)
}
