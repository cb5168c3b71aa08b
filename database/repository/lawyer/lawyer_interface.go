package lawyerRepo

import (
	"errors"

	"civicjustice/models"
)

// ErrLawyerNotFound is returned when no lawyer has the requested id.
var ErrLawyerNotFound = errors.New("lawyer not found")

// Sentinel values of the directory selectors.
const (
	AllSpecialties = "All Specialties"
	AllRegions     = "All Regions"
	AllLanguages   = "All Languages"
)

// LawyerRepository defines methods for lawyer directory data access.
type LawyerRepository interface {
	// GetAll returns every lawyer in directory order.
	GetAll() []models.LawyerProfile
	// GetByID retrieves a lawyer by its id.
	GetByID(id int) (*models.LawyerProfile, error)
	// Specialties lists the specialty selector values, sentinel first.
	Specialties() []string
	// Regions lists the region selector values, sentinel first.
	Regions() []string
	// Languages lists the spoken language selector values, sentinel first.
	Languages() []string
}
