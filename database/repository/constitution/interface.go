package constitutionRepo

import (
	"errors"

	"civicjustice/models"
)

var (
	// ErrChapterNotFound is returned when no chapter has the requested id.
	ErrChapterNotFound = errors.New("chapter not found")
	// ErrLanguageNotFound is returned for an unknown language code.
	ErrLanguageNotFound = errors.New("language not found")
)

// ConstitutionRepository exposes the constitution text.
type ConstitutionRepository interface {
	// GetChapters returns every chapter in order.
	GetChapters() []models.ConstitutionChapter
	// GetChapter retrieves a chapter by id.
	GetChapter(id int) (*models.ConstitutionChapter, error)
	// GetLanguages lists the reading languages, the default first.
	GetLanguages() []models.ConstitutionLanguage
}
