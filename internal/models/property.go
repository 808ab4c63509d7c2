package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Property is a listing document. Keys other than the typed ones are kept
// in Extra and stored at the top level of the document.
type Property struct {
	ID          bson.ObjectID  `bson:"_id,omitempty" json:"_id"`
	Title       string         `bson:"title" json:"title" validate:"required"`
	Description string         `bson:"description" json:"description" validate:"required"`
	Category    string         `bson:"category" json:"category" validate:"required"`
	Price       *float64       `bson:"price" json:"price" validate:"required"`
	UserName    string         `bson:"userName,omitempty" json:"userName,omitempty"`
	CreatedAt   *time.Time     `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	Extra       map[string]any `bson:",inline" json:"-"`
}

// Validate reports a *MissingFieldsError when title, description,
// category or price is absent or empty. A zero price counts as present.
func (p *Property) Validate() error {
	return validateRequired(p)
}

func (p *Property) UnmarshalJSON(data []byte) error {
	f, err := decodeFields(data)
	if err != nil {
		return err
	}

	var out Property
	if out.ID, err = f.takeID(); err != nil {
		return err
	}
	if out.Title, err = f.takeString("title"); err != nil {
		return err
	}
	if out.Description, err = f.takeString("description"); err != nil {
		return err
	}
	if out.Category, err = f.takeString("category"); err != nil {
		return err
	}
	if out.Price, err = f.takeNumber("price"); err != nil {
		return err
	}
	if out.UserName, err = f.takeString("userName"); err != nil {
		return err
	}
	if out.CreatedAt, err = f.takeTime("createdAt"); err != nil {
		return err
	}
	out.Extra = f.extra()

	*p = out
	return nil
}

// UnmarshalBSON never fails on a typed key holding an unexpected type,
// such as a price stored as "1200". The value is kept in Extra instead.
func (p *Property) UnmarshalBSON(data []byte) error {
	f, err := decodeStored(data)
	if err != nil {
		return err
	}

	*p = Property{
		ID:          f.storedID(),
		Title:       f.storedString("title"),
		Description: f.storedString("description"),
		Category:    f.storedString("category"),
		Price:       f.storedNumber("price"),
		UserName:    f.storedString("userName"),
		CreatedAt:   f.storedTime("createdAt"),
	}
	p.Extra = f.extra()
	return nil
}

func (p Property) MarshalJSON() ([]byte, error) {
	out := jsonObject(p.Extra, 7)
	if !p.ID.IsZero() {
		out["_id"] = p.ID.Hex()
	}
	putDefault(out, "title", p.Title)
	putDefault(out, "description", p.Description)
	putDefault(out, "category", p.Category)
	if p.Price != nil {
		out["price"] = *p.Price
	}
	if p.UserName != "" {
		out["userName"] = p.UserName
	}
	if p.CreatedAt != nil {
		out["createdAt"] = p.CreatedAt.UTC()
	}
	return json.Marshal(out)
}

var ErrNoUpdateFields = errors.New("no updatable fields in request body")

// PropertyUpdate turns a PUT body into the document for $set. _id is
// dropped, typed keys are type-checked and createdAt is parsed; every
// other key passes through. Keys missing from the body are left alone.
func PropertyUpdate(data []byte) (bson.M, error) {
	f, err := decodeFields(data)
	if err != nil {
		return nil, err
	}
	delete(f, "_id")
	if len(f) == 0 {
		return nil, ErrNoUpdateFields
	}

	set := make(bson.M, len(f))
	for k, v := range f {
		if v == nil {
			set[k] = nil
			continue
		}
		switch k {
		case "title", "description", "category", "userName":
			if _, ok := v.(string); !ok {
				return nil, fmt.Errorf("%s must be a string", k)
			}
		case "price":
			n, ok := toFloat(v)
			if !ok {
				return nil, fmt.Errorf("%s must be a number", k)
			}
			v = n
		case "createdAt":
			t, err := parseTime(k, v)
			if err != nil {
				return nil, err
			}
			v = t
		}
		set[k] = v
	}
	return set, nil
}
