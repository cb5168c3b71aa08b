package lawyerRepo

import "civicjustice/models"

var lawyers = []models.LawyerProfile{
	{
		ID:        1,
		Name:      "Kofi Annan",
		Specialty: "Land Dispute",
		Location:  "Accra, Greater Accra",
		Languages: []string{"English", "Akan (Twi)"},
		Rating:    4.8,
		Image:     "https://randomuser.me/api/portraits/men/32.jpg",
		Contact:   models.Contact{Email: "kofi.annan@example.com", Phone: "+233 50 123 4567"},
	},
	{
		ID:        2,
		Name:      "Ama Serwaa",
		Specialty: "Family Law",
		Location:  "Kumasi, Ashanti",
		Languages: []string{"English", "Akan (Twi)", "Hausa"},
		Rating:    4.5,
		Image:     "https://randomuser.me/api/portraits/women/44.jpg",
		Contact:   models.Contact{Email: "ama.serwaa@example.com", Phone: "+233 24 987 6543"},
	},
	{
		ID:        3,
		Name:      "Kwame Nkrumah",
		Specialty: "Constitutional Law",
		Location:  "Cape Coast, Central",
		Languages: []string{"English", "Fante", "Ga"},
		Rating:    5.0,
		Image:     "https://randomuser.me/api/portraits/men/22.jpg",
		Contact:   models.Contact{Email: "kwame.nkrumah@example.com", Phone: "+233 27 456 7890"},
	},
	{
		ID:        4,
		Name:      "Abena Mensah",
		Specialty: "Property Rights",
		Location:  "Takoradi, Western",
		Languages: []string{"English", "Akan (Twi)", "Ewe"},
		Rating:    4.6,
		Image:     "https://randomuser.me/api/portraits/women/29.jpg",
		Contact:   models.Contact{Email: "abena.mensah@example.com", Phone: "+233 55 765 4321"},
	},
	{
		ID:        5,
		Name:      "Daniel Ofori",
		Specialty: "Civil Rights",
		Location:  "Tamale, Northern",
		Languages: []string{"English", "Dagbani", "Hausa"},
		Rating:    4.7,
		Image:     "https://randomuser.me/api/portraits/men/42.jpg",
		Contact:   models.Contact{Email: "daniel.ofori@example.com", Phone: "+233 20 123 9876"},
	},
}

var specialties = []string{
	AllSpecialties,
	"Land Dispute",
	"Family Law",
	"Constitutional Law",
	"Property Rights",
	"Civil Rights",
	"Human Rights",
}

var regions = []string{
	AllRegions,
	"Greater Accra",
	"Ashanti",
	"Central",
	"Western",
	"Northern",
	"Eastern",
	"Volta",
}

var languages = []string{
	AllLanguages,
	"English",
	"Akan (Twi)",
	"Ewe",
	"Ga",
	"Hausa",
	"Dagbani",
	"Fante",
}

// StaticLawyerRepo serves the built-in directory. Callers get copies, never the backing arrays.
type StaticLawyerRepo struct{}

// NewStaticLawyerRepo returns the built-in lawyer directory.
func NewStaticLawyerRepo() LawyerRepository {
	return StaticLawyerRepo{}
}

func (StaticLawyerRepo) GetAll() []models.LawyerProfile {
	out := make([]models.LawyerProfile, len(lawyers))
	for i, l := range lawyers {
		out[i] = cloneLawyer(l)
	}
	return out
}

func (StaticLawyerRepo) GetByID(id int) (*models.LawyerProfile, error) {
	for _, l := range lawyers {
		if l.ID == id {
			c := cloneLawyer(l)
			return &c, nil
		}
	}
	return nil, ErrLawyerNotFound
}

func (StaticLawyerRepo) Specialties() []string { return append([]string(nil), specialties...) }

func (StaticLawyerRepo) Regions() []string { return append([]string(nil), regions...) }

func (StaticLawyerRepo) Languages() []string { return append([]string(nil), languages...) }

func cloneLawyer(l models.LawyerProfile) models.LawyerProfile {
	l.Languages = append([]string(nil), l.Languages...)
	return l
}
