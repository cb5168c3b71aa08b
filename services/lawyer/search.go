package lawyer

import (
	lawyerRepo "civicjustice/database/repository/lawyer"
	"civicjustice/models"
	"civicjustice/services/search"
)

func (s *DefaultLawyerService) Lookups() Lookups {
	return Lookups{
		Specialties: s.Repo.Specialties(),
		Regions:     s.Repo.Regions(),
		Languages:   s.Repo.Languages(),
	}
}

func (s *DefaultLawyerService) Normalize(criteria SearchCriteria) SearchCriteria {
	criteria.Specialty = search.NewSelector(criteria.Specialty, lawyerRepo.AllSpecialties).Value
	criteria.Region = search.NewSelector(criteria.Region, lawyerRepo.AllRegions).Value
	criteria.Language = search.NewSelector(criteria.Language, lawyerRepo.AllLanguages).Value
	return criteria
}

// Search filters the directory. A free-text query is matched against name and specialty;
// every selector that is not its sentinel must match exactly.
func (s *DefaultLawyerService) Search(criteria SearchCriteria) ([]models.LawyerProfile, error) {
	specialty := search.NewSelector(criteria.Specialty, lawyerRepo.AllSpecialties)
	region := search.NewSelector(criteria.Region, lawyerRepo.AllRegions)
	language := search.NewSelector(criteria.Language, lawyerRepo.AllLanguages)

	lookups := s.Lookups()
	for _, check := range []struct {
		name    string
		sel     search.Selector
		options []string
	}{
		{"specialty", specialty, lookups.Specialties},
		{"region", region, lookups.Regions},
		{"language", language, lookups.Languages},
	} {
		if !check.sel.ValidIn(check.options) {
			return nil, &SelectorError{Selector: check.name, Value: check.sel.Value, Allowed: check.options}
		}
	}

	return search.Filter(s.Repo.GetAll(), func(l models.LawyerProfile) bool {
		return search.Match(criteria.Query, l.Name, l.Specialty) &&
			specialty.Matches(l.Specialty) &&
			region.Matches(l.Region()) &&
			language.MatchesAny(l.Languages)
	}), nil
}

func (s *DefaultLawyerService) GetByID(id int) (*models.LawyerProfile, error) {
	return s.Repo.GetByID(id)
}
