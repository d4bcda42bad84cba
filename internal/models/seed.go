package models

// SeedGenres returns the immutable genre reference data loaded into every
// store variant at startup.
func SeedGenres() []Genre {
	return []Genre{
		{ID: 1, Name: "Comedy"},
		{ID: 2, Name: "Drama"},
		{ID: 3, Name: "Cartoon"},
		{ID: 4, Name: "Thriller"},
		{ID: 5, Name: "Documentary"},
		{ID: 6, Name: "Action"},
	}
}

// SeedMpaRatings returns the immutable MPA rating reference data.
func SeedMpaRatings() []MpaRating {
	return []MpaRating{
		{ID: 1, Name: "G"},
		{ID: 2, Name: "PG"},
		{ID: 3, Name: "PG-13"},
		{ID: 4, Name: "R"},
		{ID: 5, Name: "NC-17"},
	}
}
