package lawyer

import (
	lawyerRepo "civicjustice/database/repository/lawyer"
	"civicjustice/models"
)

// SearchCriteria is the directory's filter state. Empty selector values mean "all".
type SearchCriteria struct {
	Query     string `form:"q" json:"q"`
	Specialty string `form:"specialty" json:"specialty"`
	Region    string `form:"region" json:"region"`
	Language  string `form:"language" json:"language"`
}

// Lookups are the selector options offered by the directory.
type Lookups struct {
	Specialties []string `json:"specialties"`
	Regions     []string `json:"regions"`
	Languages   []string `json:"languages"`
}

type LawyerService interface {
	// Search returns the lawyers matching criteria in directory order.
	Search(criteria SearchCriteria) ([]models.LawyerProfile, error)
	// GetByID returns one lawyer.
	GetByID(id int) (*models.LawyerProfile, error)
	// Lookups returns the selector options.
	Lookups() Lookups
	// Normalize fills empty selectors with their sentinels.
	Normalize(criteria SearchCriteria) SearchCriteria
}

// DefaultLawyerService is the production implementation.
type DefaultLawyerService struct {
	Repo lawyerRepo.LawyerRepository
}

// NewDefaultLawyerService wires the service to its repository.
func NewDefaultLawyerService(repo lawyerRepo.LawyerRepository) *DefaultLawyerService {
	return &DefaultLawyerService{Repo: repo}
}
