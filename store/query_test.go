package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOrder(t *testing.T) {
	assert.Equal(t, Descending, ParseOrder("desc"))
	assert.Equal(t, Ascending, ParseOrder("asc"))
	assert.Equal(t, Ascending, ParseOrder(""))
	assert.Equal(t, Ascending, ParseOrder("DESC"))
	assert.Equal(t, Ascending, ParseOrder("sideways"))
	assert.Equal(t, "desc", Descending.String())
	assert.Equal(t, "asc", Ascending.String())
}

func TestParseDirectorSortKey(t *testing.T) {
	cases := map[string]string{
		"id":         "id",
		"name":       "name",
		"gender":     "gender",
		"uid":        "uid",
		"department": "department",
		"":           "id",
		"title":      "id",
		"name; DROP": "id",
	}
	for in, column := range cases {
		assert.Equal(t, column, ParseDirectorSortKey(in).Column(), "order_by=%q", in)
	}
}

func TestParseMovieSortKey(t *testing.T) {
	cases := map[string]string{
		"title":        "title",
		"release_date": "release_date",
		"popularity":   "popularity",
		"vote_average": "vote_average",
		"":             "title",
		"id":           "title",
		"budget":       "title",
	}
	for in, column := range cases {
		assert.Equal(t, column, ParseMovieSortKey(in).Column(), "order_by=%q", in)
	}
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%Nolan%", containsPattern("Nolan"))
	assert.Equal(t, `%100\%%`, containsPattern("100%"))
	assert.Equal(t, `%a\_b%`, containsPattern("a_b"))
	assert.Equal(t, `%a\\b%`, containsPattern(`a\b`))
	assert.Equal(t, "%%", containsPattern(""))
}
