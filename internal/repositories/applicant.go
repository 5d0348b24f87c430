package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"alfredoptarigan/loan-approval/internal/models"
)

// ApplicantRepository reads stored applications. Scores are never written back.
type ApplicantRepository interface {
	Count() (int64, error)
	FindByID(loanID string) (*models.Applicant, error)
	FindPage(limit, offset int) ([]models.Applicant, error)
}

type applicantRepository struct {
	db *gorm.DB
}

func NewApplicantRepository(db *gorm.DB) ApplicantRepository {
	return &applicantRepository{db: db}
}

// Count implements ApplicantRepository.
func (r *applicantRepository) Count() (int64, error) {
	var n int64
	if err := r.db.Model(&models.Applicant{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count applicants: %w", err)
	}
	return n, nil
}

// FindByID implements ApplicantRepository.
func (r *applicantRepository) FindByID(loanID string) (*models.Applicant, error) {
	var applicant models.Applicant
	if err := r.db.Where("loan_id = ?", loanID).First(&applicant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("applicant not found: %w", err)
		}
		return nil, fmt.Errorf("failed to find applicant: %w", err)
	}
	return &applicant, nil
}

// FindPage implements ApplicantRepository.
func (r *applicantRepository) FindPage(limit, offset int) ([]models.Applicant, error) {
	var applicants []models.Applicant
	err := r.db.
		Order("loan_id ASC").
		Limit(limit).
		Offset(offset).
		Find(&applicants).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find applicants: %w", err)
	}

	return applicants, nil
}
