package movies

import (
	"errors"
	"sort"
)

var ErrMovieNotFound = errors.New("movie not found")

// Catalog is a read-only provider of movie reference data. Other features
// take it as a dependency instead of reaching for package-level state.
type Catalog interface {
	ListAll() []Movie
	List(query ListQuery) []Movie
	FindByID(id int) (*Movie, error)
	Genres() []string
	Languages() []string
}

type staticCatalog struct {
	movies []Movie
	byID   map[int]int
}

// NewCatalog returns the built-in catalog.
func NewCatalog() Catalog {
	c := &staticCatalog{
		movies: builtinMovies(),
		byID:   make(map[int]int),
	}
	for i, m := range c.movies {
		c.byID[m.ID] = i
	}
	return c
}

func (c *staticCatalog) ListAll() []Movie {
	out := make([]Movie, len(c.movies))
	copy(out, c.movies)
	return out
}

func (c *staticCatalog) List(query ListQuery) []Movie {
	out := make([]Movie, 0, len(c.movies))
	for _, m := range c.movies {
		if query.Genre != "" && !m.HasGenre(query.Genre) {
			continue
		}
		if query.Language != "" && m.Language != query.Language {
			continue
		}
		if query.Trending != nil && m.Trending != *query.Trending {
			continue
		}
		out = append(out, m)
	}
	return out
}

func (c *staticCatalog) FindByID(id int) (*Movie, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, ErrMovieNotFound
	}
	m := c.movies[i]
	return &m, nil
}

func (c *staticCatalog) Genres() []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range c.movies {
		for _, g := range m.Genres {
			if !seen[g] {
				seen[g] = true
				out = append(out, g)
			}
		}
	}
	sort.Strings(out)
	return out
}

func (c *staticCatalog) Languages() []string {
	seen := make(map[string]bool)
	var out []string
	for _, m := range c.movies {
		if !seen[m.Language] {
			seen[m.Language] = true
			out = append(out, m.Language)
		}
	}
	sort.Strings(out)
	return out
}

func builtinMovies() []Movie {
	return []Movie{
		{
			ID:          1,
			Title:       "Avengers: Endgame",
			Poster:      "https://image.tmdb.org/t/p/w500/or06FN3Dka5tukK1e9sl16pB3iy.jpg",
			Genres:      []string{"Action", "Sci-Fi"},
			Language:    "English",
			Rating:      8.4,
			ReleaseDate: "2026-02-14",
			Duration:    "3h 01m",
			TrailerURL:  "https://www.youtube.com/watch?v=TcMBFSGVi1c",
			Trending:    true,
		},
		{
			ID:          2,
			Title:       "Avengers: Infinity War",
			Poster:      "https://image.tmdb.org/t/p/w500/7WsyChQLEftFiDhRkZUHahFazEI.jpg",
			Genres:      []string{"Action", "Sci-Fi"},
			Language:    "English",
			Rating:      8.4,
			ReleaseDate: "2026-01-28",
			Duration:    "2h 29m",
			TrailerURL:  "https://www.youtube.com/watch?v=6ZfuNTqbHE8",
			Trending:    true,
		},
		{
			ID:          3,
			Title:       "Spider-Man: No Way Home",
			Poster:      "https://image.tmdb.org/t/p/w500/1g0dhYtq4irTY1GPXvft6k4YLjm.jpg",
			Genres:      []string{"Action", "Adventure"},
			Language:    "English",
			Rating:      8.2,
			ReleaseDate: "2026-02-07",
			Duration:    "2h 28m",
			TrailerURL:  "https://www.youtube.com/watch?v=JfVOs4VSpmA",
			Trending:    true,
		},
		{
			ID:          4,
			Title:       "Black Panther",
			Poster:      "https://image.tmdb.org/t/p/w500/uxzzxijgPIY7slzFvMotPv8wjKA.jpg",
			Genres:      []string{"Action", "Adventure"},
			Language:    "English",
			Rating:      7.3,
			ReleaseDate: "2026-02-01",
			Duration:    "2h 14m",
			TrailerURL:  "https://www.youtube.com/watch?v=xjDjIWPwcPU",
			Trending:    true,
		},
		{
			ID:          5,
			Title:       "Guardians of the Galaxy Vol. 3",
			Poster:      "https://image.tmdb.org/t/p/w500/r2J02Z2OpNTctfOSN1Ydgii51I3.jpg",
			Genres:      []string{"Action", "Comedy"},
			Language:    "English",
			Rating:      7.9,
			ReleaseDate: "2026-01-20",
			Duration:    "2h 30m",
			TrailerURL:  "https://www.youtube.com/watch?v=u3V5KDHRQvk",
			Trending:    true,
		},
		{
			ID:          6,
			Title:       "Iron Man",
			Poster:      "https://image.tmdb.org/t/p/w500/78lPtwv72eTNqFW9COBYI0dWDJa.jpg",
			Genres:      []string{"Action", "Sci-Fi"},
			Language:    "English",
			Rating:      7.9,
			ReleaseDate: "2026-02-10",
			Duration:    "2h 06m",
			TrailerURL:  "https://www.youtube.com/watch?v=8ugaeA-nMTc",
			Trending:    true,
		},
		{
			ID:          7,
			Title:       "Thor: Ragnarok",
			Poster:      "https://image.tmdb.org/t/p/w500/rzRwTcFvttcN1ZpX2xv4j3tSdJu.jpg",
			Genres:      []string{"Action", "Comedy"},
			Language:    "English",
			Rating:      7.9,
			ReleaseDate: "2026-01-15",
			Duration:    "2h 10m",
			TrailerURL:  "https://www.youtube.com/watch?v=ue80QwXMRHg",
		},
		{
			ID:          8,
			Title:       "Captain America: The Winter Soldier",
			Poster:      "https://image.tmdb.org/t/p/w500/tVFRpFw3xTedgPGqxW0AOv8Yp1I.jpg",
			Genres:      []string{"Action", "Thriller"},
			Language:    "English",
			Rating:      7.7,
			ReleaseDate: "2026-02-05",
			Duration:    "2h 16m",
			TrailerURL:  "https://www.youtube.com/watch?v=7SlILk2WMTI",
		},
		{
			ID:          9,
			Title:       "Doctor Strange in the Multiverse of Madness",
			Poster:      "https://image.tmdb.org/t/p/w500/9Gtg2DzBhmYamXBS1hKAhiwbBKS.jpg",
			Genres:      []string{"Action", "Fantasy"},
			Language:    "English",
			Rating:      6.9,
			ReleaseDate: "2026-02-12",
			Duration:    "2h 06m",
			TrailerURL:  "https://www.youtube.com/watch?v=aWzlQ2N6qqg",
		},
		{
			ID:          10,
			Title:       "Captain America: Civil War",
			Poster:      "https://image.tmdb.org/t/p/w500/rAGiXaUfPzY7CDEyNKUofk3Kw2e.jpg",
			Genres:      []string{"Action", "Thriller"},
			Language:    "English",
			Rating:      7.8,
			ReleaseDate: "2026-01-25",
			Duration:    "2h 27m",
			TrailerURL:  "https://www.youtube.com/watch?v=dKrVegVI0Us",
		},
		{
			ID:          11,
			Title:       "Guardians of the Galaxy",
			Poster:      "https://image.tmdb.org/t/p/w500/r7vmZjiyZw9rpJMQJdeasAliSfk.jpg",
			Genres:      []string{"Action", "Comedy"},
			Language:    "English",
			Rating:      8.0,
			ReleaseDate: "2026-02-08",
			Duration:    "2h 01m",
			TrailerURL:  "https://www.youtube.com/watch?v=d96cjJhvlMA",
		},
		{
			ID:          12,
			Title:       "Spider-Man: Across the Spider-Verse",
			Poster:      "https://image.tmdb.org/t/p/w500/8Vt6mWEReuy4Of61Lnj5Xj704m8.jpg",
			Genres:      []string{"Action", "Sci-Fi"},
			Language:    "English",
			Rating:      8.7,
			ReleaseDate: "2026-01-30",
			Duration:    "2h 20m",
			TrailerURL:  "https://www.youtube.com/watch?v=shW9i6k8cB0",
		},
	}
}
