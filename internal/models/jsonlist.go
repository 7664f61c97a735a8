package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Ingredient is one line of a recipe's ingredient list. Ingredients have no
// identity of their own; the whole list is stored as a JSON document on the
// recipe row.
type Ingredient struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
	Unit   string `json:"unit"`
}

// Reply is a nested answer to a comment. Replies are value objects owned by
// their comment: no independent id, no rating, no likes, immutable once
// created.
type Reply struct {
	UserID    uint      `json:"user_id"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// IngredientList is a JSON-encoded column of ingredients.
type IngredientList []Ingredient

// StringList is a JSON-encoded column of strings (instructions, image URLs).
type StringList []string

// ReplyList is a JSON-encoded column of replies.
type ReplyList []Reply

func jsonValue(v interface{}) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func jsonScan(dst interface{}, src interface{}) error {
	switch data := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(data, dst)
	case string:
		return json.Unmarshal([]byte(data), dst)
	default:
		return errors.New("unsupported source type for JSON column")
	}
}

func (l IngredientList) Value() (driver.Value, error) {
	if l == nil {
		l = IngredientList{}
	}
	return jsonValue(l)
}

func (l *IngredientList) Scan(src interface{}) error { return jsonScan(l, src) }

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return jsonValue(l)
}

func (l *StringList) Scan(src interface{}) error { return jsonScan(l, src) }

func (l ReplyList) Value() (driver.Value, error) {
	if l == nil {
		l = ReplyList{}
	}
	return jsonValue(l)
}

func (l *ReplyList) Scan(src interface{}) error { return jsonScan(l, src) }
