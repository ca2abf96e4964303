package movies

// Movie is read-mostly reference data: the catalog ships with the service
// and is not user-editable, so movies keep their original numeric ids.
type Movie struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Poster      string   `json:"poster"`
	Genres      []string `json:"genres"`
	Language    string   `json:"language"`
	Rating      float64  `json:"rating"`
	ReleaseDate string   `json:"release_date"`
	Duration    string   `json:"duration"`
	TrailerURL  string   `json:"trailer_url"`
	Trending    bool     `json:"trending"`
}

// ListQuery filters the catalog listing
type ListQuery struct {
	Genre    string `form:"genre"`
	Language string `form:"language"`
	Trending *bool  `form:"trending"`
}

// HasGenre reports whether the movie carries the given genre label
func (m *Movie) HasGenre(genre string) bool {
	for _, g := range m.Genres {
		if g == genre {
			return true
		}
	}
	return false
}
