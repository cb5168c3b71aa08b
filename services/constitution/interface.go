package constitution

import (
	constitutionRepo "civicjustice/database/repository/constitution"
	"civicjustice/models"
)

// DefaultChapterID is the chapter shown when none is selected.
const DefaultChapterID = 1

// DefaultLanguage is the reading language used when none is selected.
const DefaultLanguage = "en"

type ConstitutionService interface {
	Chapters() []models.ConstitutionChapter
	Chapter(id int) (*models.ConstitutionChapter, error)
	// SearchArticles matches the query against the title and text of every article.
	SearchArticles(query string) []models.Article
	Languages() []models.ConstitutionLanguage
	Language(code string) (*models.ConstitutionLanguage, error)
}

// DefaultConstitutionService is the production implementation.
type DefaultConstitutionService struct {
	Repo constitutionRepo.ConstitutionRepository
}

func NewDefaultConstitutionService(repo constitutionRepo.ConstitutionRepository) *DefaultConstitutionService {
	return &DefaultConstitutionService{Repo: repo}
}
