package constitution

import (
	constitutionRepo "civicjustice/database/repository/constitution"
	"civicjustice/models"
	"civicjustice/services/search"
)

func (s *DefaultConstitutionService) Chapters() []models.ConstitutionChapter {
	return s.Repo.GetChapters()
}

func (s *DefaultConstitutionService) Chapter(id int) (*models.ConstitutionChapter, error) {
	return s.Repo.GetChapter(id)
}

func (s *DefaultConstitutionService) SearchArticles(query string) []models.Article {
	var articles []models.Article
	for _, ch := range s.Repo.GetChapters() {
		articles = append(articles, ch.Articles...)
	}
	return search.Filter(articles, func(a models.Article) bool {
		return search.Match(query, a.Title, a.Text)
	})
}

func (s *DefaultConstitutionService) Languages() []models.ConstitutionLanguage {
	return s.Repo.GetLanguages()
}

// Language resolves a language code; an empty code means DefaultLanguage.
func (s *DefaultConstitutionService) Language(code string) (*models.ConstitutionLanguage, error) {
	if code == "" {
		code = DefaultLanguage
	}
	for _, l := range s.Repo.GetLanguages() {
		if l.Code == code {
			return &l, nil
		}
	}
	return nil, constitutionRepo.ErrLanguageNotFound
}
