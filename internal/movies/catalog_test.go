package movies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogListAll(t *testing.T) {
	c := NewCatalog()

	all := c.ListAll()
	require.Len(t, all, 12)

	trending := 0
	for _, m := range all {
		if m.Trending {
			trending++
		}
	}
	assert.Equal(t, 6, trending)
}

func TestCatalogFindByID(t *testing.T) {
	c := NewCatalog()

	movie, err := c.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Avengers: Endgame", movie.Title)

	_, err = c.FindByID(99)
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestCatalogFilters(t *testing.T) {
	c := NewCatalog()

	comedies := c.List(ListQuery{Genre: "Comedy"})
	require.NotEmpty(t, comedies)
	for _, m := range comedies {
		assert.True(t, m.HasGenre("Comedy"), "%s is not a comedy", m.Title)
	}

	trending := true
	assert.Len(t, c.List(ListQuery{Trending: &trending}), 6)

	assert.Empty(t, c.List(ListQuery{Language: "French"}))
}

func TestCatalogFacets(t *testing.T) {
	c := NewCatalog()

	assert.Equal(t, []string{"Action", "Adventure", "Comedy", "Fantasy", "Sci-Fi", "Thriller"}, c.Genres())
	assert.Equal(t, []string{"English"}, c.Languages())
}
