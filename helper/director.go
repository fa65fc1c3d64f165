package helper

import "movie_catalog/model"

// DirectorFromInput builds a new, unsaved director row from a request body.
func DirectorFromInput(in model.DirectorInput) model.Director {
	d := model.Director{
		Name:       in.Name,
		Department: in.Department,
	}
	if in.Gender != nil {
		d.Gender = *in.Gender
	}
	if in.UID != nil {
		d.UID = *in.UID
	}
	return d
}

// ToDirectorRecord maps a director row and its loaded movies to the transport form.
// Movies is always a list, never null.
func ToDirectorRecord(d model.Director) model.DirectorRecord {
	movies := make([]model.DirectorMovie, 0, len(d.Movies))
	for _, m := range d.Movies {
		movies = append(movies, ToDirectorMovie(m))
	}
	return model.DirectorRecord{
		ID:         d.ID,
		Name:       d.Name,
		Gender:     d.Gender,
		UID:        d.UID,
		Department: d.Department,
		Movies:     movies,
	}
}

func ToDirectorRecords(directors []model.Director) []model.DirectorRecord {
	records := make([]model.DirectorRecord, 0, len(directors))
	for _, d := range directors {
		records = append(records, ToDirectorRecord(d))
	}
	return records
}

func ToDirectorSummary(d model.Director) model.DirectorSummary {
	return model.DirectorSummary{
		ID:         d.ID,
		Name:       d.Name,
		Gender:     d.Gender,
		UID:        d.UID,
		Department: d.Department,
	}
}
