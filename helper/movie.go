package helper

import "movie_catalog/model"

// MovieFromInput builds a new, unsaved movie row. The caller sets the owner.
func MovieFromInput(in model.MovieInput) model.Movie {
	m := model.Movie{
		OriginalTitle: in.OriginalTitle,
		Title:         in.Title,
		Tagline:       in.Tagline,
		Overview:      in.Overview,
		Budget:        in.Budget,
		Revenue:       in.Revenue,
		VoteCount:     in.VoteCount,
		Popularity:    in.Popularity,
		VoteAverage:   in.VoteAverage,
		ReleaseDate:   in.ReleaseDate,
	}
	if in.UID != nil {
		m.UID = *in.UID
	}
	return m
}

func ToDirectorMovie(m model.Movie) model.DirectorMovie {
	return model.DirectorMovie{
		ID:            m.ID,
		OriginalTitle: m.OriginalTitle,
		Title:         m.Title,
		Tagline:       m.Tagline,
		Overview:      m.Overview,
		Budget:        m.Budget,
		Revenue:       m.Revenue,
		VoteCount:     m.VoteCount,
		Popularity:    m.Popularity,
		VoteAverage:   m.VoteAverage,
		ReleaseDate:   m.ReleaseDate,
		UID:           m.UID,
		DirectorID:    m.DirectorID,
	}
}

// ToMovieRecord maps a movie row to the transport form, embedding its director
// summary when the director was loaded.
func ToMovieRecord(m model.Movie) model.MovieRecord {
	record := model.MovieRecord{DirectorMovie: ToDirectorMovie(m)}
	if m.Director != nil {
		summary := ToDirectorSummary(*m.Director)
		record.Directors = &summary
	}
	return record
}

func ToMovieRecords(movies []model.Movie) []model.MovieRecord {
	records := make([]model.MovieRecord, 0, len(movies))
	for _, m := range movies {
		records = append(records, ToMovieRecord(m))
	}
	return records
}
