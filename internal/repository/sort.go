package repository

import "go.mongodb.org/mongo-driver/v2/bson"

const (
	Ascending  = 1
	Descending = -1
)

// Sort is a single-key sort handed straight to the store. Ties come back
// in whatever order the store produces.
type Sort struct {
	Field string
	Order int
}

var NewestFirst = Sort{Field: "createdAt", Order: Descending}

var propertySortFields = map[string]string{
	"price": "price",
	"date":  "createdAt",
	"title": "title",
}

// PropertySort maps the sortBy/order query parameters of the property
// listing. Unknown sortBy falls back to NewestFirst and ignores order; a
// missing or unknown order means descending.
func PropertySort(sortBy, order string) Sort {
	field, ok := propertySortFields[sortBy]
	if !ok {
		return NewestFirst
	}
	if order == "asc" {
		return Sort{Field: field, Order: Ascending}
	}
	return Sort{Field: field, Order: Descending}
}

func (s Sort) document() bson.D {
	return bson.D{{Key: s.Field, Value: s.Order}}
}
