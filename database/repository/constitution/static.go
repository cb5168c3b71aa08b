package constitutionRepo

import "civicjustice/models"

var chapters = []models.ConstitutionChapter{
	{
		ID:    1,
		Title: "CHAPTER ONE - THE CONSTITUTION",
		Articles: []models.Article{
			{
				Number: 1,
				Title:  "The Constitution",
				Text:   "The Sovereignty of Ghana resides in the people of Ghana in whose name and for whose welfare the powers of government are to be exercised in the manner and within the limits laid down in this Constitution.",
			},
			{
				Number: 2,
				Title:  "Supremacy of the Constitution",
				Text:   "This Constitution shall be the supreme law of Ghana and any other law found to be inconsistent with any provision of this Constitution shall, to the extent of the inconsistency, be void.",
			},
			{
				Number: 3,
				Title:  "Defence of the Constitution",
				Text:   defenceOfTheConstitution(),
			},
		},
	},
	{
		ID:    2,
		Title: "CHAPTER TWO - FUNDAMENTAL HUMAN RIGHTS AND FREEDOMS",
		Articles: []models.Article{
			{
				Number: 4,
				Title:  "Protection of Fundamental Human Rights and Freedoms",
				Text:   "All the laws of Ghana shall conform to this Constitution and any law inconsistent with any provision of this Constitution shall, to the extent of the inconsistency, be void.",
			},
			{
				Number: 5,
				Title:  "Right to Life",
				Text:   "No person shall be deprived of his life intentionally except in the exercise of the execution of a sentence of a court in respect of a criminal offence under the laws of Ghana of which he has been convicted.",
			},
		},
	},
	{
		ID:    3,
		Title: "CHAPTER THREE - CITIZENSHIP",
		Articles: []models.Article{
			{
				Number: 6,
				Title:  "Citizenship of Ghana",
				Text:   "Every person who, on the coming into force of this Constitution, is a citizen of Ghana by law shall continue to be a citizen of Ghana.",
			},
		},
	},
}

var languages = []models.ConstitutionLanguage{
	{Code: "en", Name: "English"},
	{Code: "ak", Name: "Akan (Twi)"},
	{Code: "ee", Name: "Ewe"},
	{Code: "gaa", Name: "Ga"},
	{Code: "ha", Name: "Hausa"},
}

func defenceOfTheConstitution() string {
	return `(1) Parliament shall have no power to enact a law establishing a one-party state.
(2) Any activity of a person or group of persons which suppresses or seeks to suppress the lawful political activity of any other person or any class of persons, or persons generally is unlawful.
(3) Any person who participates in or assists in the operation of a political party is guilty of a criminal offence and liable on conviction on indictment to a fine or to imprisonment not exceeding fifteen years or both.`
}

// StaticConstitutionRepo serves the built-in constitution text.
type StaticConstitutionRepo struct{}

// NewStaticConstitutionRepo returns the built-in constitution.
func NewStaticConstitutionRepo() ConstitutionRepository {
	return StaticConstitutionRepo{}
}

func (StaticConstitutionRepo) GetChapters() []models.ConstitutionChapter {
	out := make([]models.ConstitutionChapter, len(chapters))
	for i, ch := range chapters {
		out[i] = cloneChapter(ch)
	}
	return out
}

func (StaticConstitutionRepo) GetChapter(id int) (*models.ConstitutionChapter, error) {
	for _, ch := range chapters {
		if ch.ID == id {
			c := cloneChapter(ch)
			return &c, nil
		}
	}
	return nil, ErrChapterNotFound
}

func (StaticConstitutionRepo) GetLanguages() []models.ConstitutionLanguage {
	return append([]models.ConstitutionLanguage(nil), languages...)
}

func cloneChapter(ch models.ConstitutionChapter) models.ConstitutionChapter {
	ch.Articles = append([]models.Article(nil), ch.Articles...)
	return ch
}
