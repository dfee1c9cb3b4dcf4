package entity

// Movie is a row of the movie table. Nil pointers are stored as NULL.
// GenreID and DirectorID are not enforced by the store and may dangle.
type Movie struct {
	Base
	Title       *string  `db:"title"`
	Description *string  `db:"description"`
	Trailer     *string  `db:"trailer"`
	Year        *int     `db:"year"`
	Rating      *float64 `db:"rating"`
	GenreID     *int64   `db:"genre_id"`
	DirectorID  *int64   `db:"director_id"`
}

// MovieFilter narrows a movie listing. Set fields are combined with AND.
type MovieFilter struct {
	GenreID    *int64
	DirectorID *int64
}
