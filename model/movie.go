package model

// Movie is a row of the movies table.
type Movie struct {
	ID            uint `gorm:"primaryKey"`
	OriginalTitle string
	Title         string `gorm:"index"`
	Tagline       string
	Overview      string
	Budget        int64
	Revenue       int64
	VoteCount     int64
	Popularity    int64
	VoteAverage   float64
	ReleaseDate   string
	UID           int64     `gorm:"column:uid"`
	DirectorID    *uint     `gorm:"index"`
	Director      *Director `gorm:"foreignKey:DirectorID"`
}

func (Movie) TableName() string { return "movies" }

// MovieInput is the body of POST /director/:directorId/movie and
// PUT /director/:directorId/movie/:movieId. Identity and director_id are never read from it.
type MovieInput struct {
	OriginalTitle string  `json:"original_title"`
	Title         string  `json:"title" validate:"required"`
	Tagline       string  `json:"tagline"`
	Overview      string  `json:"overview"`
	Budget        int64   `json:"budget"`
	Revenue       int64   `json:"revenue"`
	VoteCount     int64   `json:"vote_count"`
	Popularity    int64   `json:"popularity"`
	VoteAverage   float64 `json:"vote_average"`
	ReleaseDate   string  `json:"release_date"`
	UID           *int64  `json:"uid" validate:"required"`
}

// DirectorMovie is a movie embedded in a director record. It carries every movie
// column but no nested director.
type DirectorMovie struct {
	ID            uint    `json:"id"`
	OriginalTitle string  `json:"original_title"`
	Title         string  `json:"title"`
	Tagline       string  `json:"tagline"`
	Overview      string  `json:"overview"`
	Budget        int64   `json:"budget"`
	Revenue       int64   `json:"revenue"`
	VoteCount     int64   `json:"vote_count"`
	Popularity    int64   `json:"popularity"`
	VoteAverage   float64 `json:"vote_average"`
	ReleaseDate   string  `json:"release_date"`
	UID           int64   `json:"uid"`
	DirectorID    *uint   `json:"director_id"`
}

// MovieRecord is the transport form of a movie. Directors is null when the
// movie has no owner.
type MovieRecord struct {
	DirectorMovie
	Directors *DirectorSummary `json:"directors"`
}
