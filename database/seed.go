package database

import (
	"fmt"

	"movie_catalog/model"

	"gorm.io/gorm"
)

var seedDirectors = []model.Director{
	{
		Name: "James Cameron", Gender: 2, UID: 2710, Department: "Directing",
		Movies: []model.Movie{
			{OriginalTitle: "Avatar", Title: "Avatar", Tagline: "Enter the World of Pandora.", Budget: 237000000, Revenue: 2787965087, VoteCount: 11800, Popularity: 150, VoteAverage: 7.2, ReleaseDate: "2009-12-10", UID: 19995},
			{OriginalTitle: "Titanic", Title: "Titanic", Tagline: "Nothing on Earth could come between them.", Budget: 200000000, Revenue: 1845034188, VoteCount: 7562, Popularity: 100, VoteAverage: 7.5, ReleaseDate: "1997-11-18", UID: 597},
		},
	},
	{
		Name: "Christopher Nolan", Gender: 2, UID: 525, Department: "Directing",
		Movies: []model.Movie{
			{OriginalTitle: "Inception", Title: "Inception", Tagline: "Your mind is the scene of the crime.", Budget: 160000000, Revenue: 825532764, VoteCount: 13752, Popularity: 167, VoteAverage: 8.1, ReleaseDate: "2010-07-14", UID: 27205},
			{OriginalTitle: "Interstellar", Title: "Interstellar", Tagline: "Mankind was born on Earth. It was never meant to die here.", Budget: 165000000, Revenue: 675120017, VoteCount: 10867, Popularity: 724, VoteAverage: 8.1, ReleaseDate: "2014-11-05", UID: 157336},
		},
	},
	{
		Name: "Kathryn Bigelow", Gender: 1, UID: 14392, Department: "Directing",
		Movies: []model.Movie{
			{OriginalTitle: "The Hurt Locker", Title: "The Hurt Locker", Tagline: "You don't have to be on the front line to be a hero.", Budget: 15000000, Revenue: 49230772, VoteCount: 2264, Popularity: 27, VoteAverage: 7.2, ReleaseDate: "2008-10-10", UID: 12162},
		},
	},
}

// SeedData inserts a small sample catalog. Directors are matched on uid, so
// running it again adds nothing.
func SeedData(db *gorm.DB) error {
	for _, seed := range seedDirectors {
		director := model.Director{Name: seed.Name, Gender: seed.Gender, UID: seed.UID, Department: seed.Department}
		result := db.Where(model.Director{UID: seed.UID}).FirstOrCreate(&director)
		if result.Error != nil {
			return fmt.Errorf("seed director %d: %w", seed.UID, result.Error)
		}
		if result.RowsAffected == 0 {
			continue
		}
		for _, m := range seed.Movies {
			m.DirectorID = &director.ID
			if err := db.Create(&m).Error; err != nil {
				return fmt.Errorf("seed movie %d: %w", m.UID, err)
			}
		}
	}
	return nil
}
