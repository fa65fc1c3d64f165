package store

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Order int

const (
	Ascending Order = iota
	Descending
)

// ParseOrder maps "desc" to Descending. Anything else is Ascending.
func ParseOrder(s string) Order {
	if s == "desc" {
		return Descending
	}
	return Ascending
}

func (o Order) String() string {
	if o == Descending {
		return "desc"
	}
	return "asc"
}

type DirectorSortKey int

const (
	DirectorByID DirectorSortKey = iota
	DirectorByName
	DirectorByGender
	DirectorByUID
	DirectorByDepartment
)

var directorSortKeys = map[string]DirectorSortKey{
	"id":         DirectorByID,
	"name":       DirectorByName,
	"gender":     DirectorByGender,
	"uid":        DirectorByUID,
	"department": DirectorByDepartment,
}

// ParseDirectorSortKey resolves an order_by value. Unknown keys sort by id.
func ParseDirectorSortKey(s string) DirectorSortKey {
	if k, ok := directorSortKeys[s]; ok {
		return k
	}
	return DirectorByID
}

func (k DirectorSortKey) Column() string {
	switch k {
	case DirectorByName:
		return "name"
	case DirectorByGender:
		return "gender"
	case DirectorByUID:
		return "uid"
	case DirectorByDepartment:
		return "department"
	default:
		return "id"
	}
}

type MovieSortKey int

const (
	MovieByTitle MovieSortKey = iota
	MovieByReleaseDate
	MovieByPopularity
	MovieByVoteAverage
)

var movieSortKeys = map[string]MovieSortKey{
	"title":        MovieByTitle,
	"release_date": MovieByReleaseDate,
	"popularity":   MovieByPopularity,
	"vote_average": MovieByVoteAverage,
}

// ParseMovieSortKey resolves an order_by value. Unknown keys sort by title.
func ParseMovieSortKey(s string) MovieSortKey {
	if k, ok := movieSortKeys[s]; ok {
		return k
	}
	return MovieByTitle
}

func (k MovieSortKey) Column() string {
	switch k {
	case MovieByReleaseDate:
		return "release_date"
	case MovieByPopularity:
		return "popularity"
	case MovieByVoteAverage:
		return "vote_average"
	default:
		return "title"
	}
}

// DirectorListOptions controls ListDirectors. A Limit <= 0 returns every row.
// Rows with equal sort keys come back in store order.
type DirectorListOptions struct {
	SortBy DirectorSortKey
	Order  Order
	Limit  int
}

// MovieListOptions controls ListMovies. A Limit <= 0 returns every row.
type MovieListOptions struct {
	SortBy MovieSortKey
	Order  Order
	Limit  int
}

func orderBy(table, column string, o Order) clause.OrderByColumn {
	return clause.OrderByColumn{
		Column: clause.Column{Table: table, Name: column},
		Desc:   o == Descending,
	}
}

func applyLimit(q *gorm.DB, limit int) *gorm.DB {
	if limit > 0 {
		return q.Limit(limit)
	}
	return q
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a LIKE pattern matching s anywhere, with wildcards in s taken literally.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

func moviesByID(db *gorm.DB) *gorm.DB {
	return db.Order(orderBy("movies", "id", Ascending))
}
