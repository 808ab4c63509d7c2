package models

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Review rates a property. PropertyID is not checked against the
// Properties collection.
type Review struct {
	ID         bson.ObjectID  `bson:"_id,omitempty" json:"_id"`
	PropertyID string         `bson:"propertyId" json:"propertyId" validate:"required"`
	Rating     *float64       `bson:"rating" json:"rating" validate:"required"`
	Review     string         `bson:"review" json:"review" validate:"required"`
	UserName   string         `bson:"userName,omitempty" json:"userName,omitempty"`
	UserEmail  string         `bson:"userEmail,omitempty" json:"userEmail,omitempty"`
	CreatedAt  time.Time      `bson:"createdAt" json:"createdAt"`
	Extra      map[string]any `bson:",inline" json:"-"`
}

// Validate reports a *MissingFieldsError when propertyId, rating or review
// is absent. A rating of 0 is present.
func (r *Review) Validate() error {
	return validateRequired(r)
}

func (r *Review) UnmarshalJSON(data []byte) error {
	f, err := decodeFields(data)
	if err != nil {
		return err
	}

	var out Review
	if out.ID, err = f.takeID(); err != nil {
		return err
	}
	if out.PropertyID, err = f.takeString("propertyId"); err != nil {
		return err
	}
	if out.Rating, err = f.takeNumber("rating"); err != nil {
		return err
	}
	if out.Review, err = f.takeString("review"); err != nil {
		return err
	}
	if out.UserName, err = f.takeString("userName"); err != nil {
		return err
	}
	if out.UserEmail, err = f.takeString("userEmail"); err != nil {
		return err
	}
	// createdAt is stamped server-side; a bad client value is ignored.
	if t, err := f.takeTime("createdAt"); err == nil && t != nil {
		out.CreatedAt = *t
	}
	out.Extra = f.extra()

	*r = out
	return nil
}

// UnmarshalBSON keeps mistyped typed keys in Extra, as Property does.
func (r *Review) UnmarshalBSON(data []byte) error {
	f, err := decodeStored(data)
	if err != nil {
		return err
	}

	*r = Review{
		ID:         f.storedID(),
		PropertyID: f.storedString("propertyId"),
		Rating:     f.storedNumber("rating"),
		Review:     f.storedString("review"),
		UserName:   f.storedString("userName"),
		UserEmail:  f.storedString("userEmail"),
	}
	if t := f.storedTime("createdAt"); t != nil {
		r.CreatedAt = *t
	}
	r.Extra = f.extra()
	return nil
}

func (r Review) MarshalJSON() ([]byte, error) {
	out := jsonObject(r.Extra, 7)
	if !r.ID.IsZero() {
		out["_id"] = r.ID.Hex()
	}
	putDefault(out, "propertyId", r.PropertyID)
	if r.Rating != nil {
		out["rating"] = *r.Rating
	}
	putDefault(out, "review", r.Review)
	if r.UserName != "" {
		out["userName"] = r.UserName
	}
	if r.UserEmail != "" {
		out["userEmail"] = r.UserEmail
	}
	if !r.CreatedAt.IsZero() {
		out["createdAt"] = r.CreatedAt.UTC()
	}
	return json.Marshal(out)
}
