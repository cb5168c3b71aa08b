package lawyerRepo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticLawyerRepo_GetAll(t *testing.T) {
	repo := NewStaticLawyerRepo()
	all := repo.GetAll()
	require.Len(t, all, 5)
	assert.Equal(t, "Kofi Annan", all[0].Name)
	assert.Equal(t, "Daniel Ofori", all[4].Name)

	// Mutating the result must not leak into the store.
	all[0].Name = "changed"
	all[0].Languages[0] = "changed"
	again := repo.GetAll()
	assert.Equal(t, "Kofi Annan", again[0].Name)
	assert.Equal(t, "English", again[0].Languages[0])
}

func TestStaticLawyerRepo_GetByID(t *testing.T) {
	repo := NewStaticLawyerRepo()

	l, err := repo.GetByID(2)
	require.NoError(t, err)
	assert.Equal(t, "Ama Serwaa", l.Name)
	assert.Equal(t, "Ashanti", l.Region())

	_, err = repo.GetByID(42)
	assert.ErrorIs(t, err, ErrLawyerNotFound)
}

func TestStaticLawyerRepo_LookupsStartWithSentinel(t *testing.T) {
	repo := NewStaticLawyerRepo()
	assert.Equal(t, AllSpecialties, repo.Specialties()[0])
	assert.Equal(t, AllRegions, repo.Regions()[0])
	assert.Equal(t, AllLanguages, repo.Languages()[0])
}

func TestEveryLawyerUsesKnownLookupValues(t *testing.T) {
	repo := NewStaticLawyerRepo()
	for _, l := range repo.GetAll() {
		assert.Contains(t, repo.Specialties(), l.Specialty, l.Name)
		assert.Contains(t, repo.Regions(), l.Region(), l.Name)
		for _, lang := range l.Languages {
			assert.Contains(t, repo.Languages(), lang, l.Name)
		}
		assert.GreaterOrEqual(t, l.Rating, 0.0)
		assert.LessOrEqual(t, l.Rating, 5.0)
	}
}
