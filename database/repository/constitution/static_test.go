package constitutionRepo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticConstitutionRepo_Chapters(t *testing.T) {
	repo := NewStaticConstitutionRepo()
	chs := repo.GetChapters()
	require.Len(t, chs, 3)

	prev := 0
	for _, ch := range chs {
		for _, a := range ch.Articles {
			assert.Greater(t, a.Number, prev, "articles are numbered in order")
			prev = a.Number
		}
	}
	assert.Equal(t, 6, prev)
}

func TestStaticConstitutionRepo_GetChapter(t *testing.T) {
	repo := NewStaticConstitutionRepo()

	ch, err := repo.GetChapter(2)
	require.NoError(t, err)
	assert.Equal(t, "CHAPTER TWO - FUNDAMENTAL HUMAN RIGHTS AND FREEDOMS", ch.Title)
	require.Len(t, ch.Articles, 2)

	ch.Articles[0].Title = "changed"
	again, err := repo.GetChapter(2)
	require.NoError(t, err)
	assert.Equal(t, "Protection of Fundamental Human Rights and Freedoms", again.Articles[0].Title)

	_, err = repo.GetChapter(9)
	assert.ErrorIs(t, err, ErrChapterNotFound)
}

func TestStaticConstitutionRepo_Languages(t *testing.T) {
	langs := NewStaticConstitutionRepo().GetLanguages()
	require.Len(t, langs, 5)
	assert.Equal(t, "en", langs[0].Code)
}
