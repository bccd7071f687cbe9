package jsoncodable_test

import (
	jc "github.com/reoring/jsoncodable"
)

type Company struct {
	Name    string
	Address *string
}

func (c *Company) DecodeJSON(d *jc.Decoder) error {
	var err error
	if c.Name, err = jc.Decode(d, "name", jc.String()); err != nil {
		return err
	}
	c.Address, err = jc.DecodeOptional(d, "address", jc.String())
	return err
}

func (c Company) EncodeJSON(e *jc.Encoder) error {
	if err := jc.Encode(e, "name", jc.String(), c.Name); err != nil {
		return err
	}
	return jc.EncodeOptional(e, "address", jc.String(), c.Address)
}

type User struct {
	ID            int
	Name          string
	Email         *string
	Company       *Company
	Friends       []User
	FriendsLookup map[string]User
}

func (u *User) DecodeJSON(d *jc.Decoder) error {
	var err error
	if u.ID, err = jc.Decode(d, "id", jc.Int()); err != nil {
		return err
	}
	if u.Name, err = jc.Decode(d, "full_name", jc.String()); err != nil {
		return err
	}
	if u.Email, err = jc.DecodeOptional(d, "email", jc.String()); err != nil {
		return err
	}
	if u.Company, err = jc.DecodeOptional(d, "company", jc.Record[Company]()); err != nil {
		return err
	}
	if u.Friends, err = jc.Decode(d, "friends", jc.Array(jc.Record[User]())); err != nil {
		return err
	}
	u.FriendsLookup, err = jc.DecodeOr(d, "friendsLookup", jc.Map(jc.Record[User]()), nil)
	return err
}

func (u User) EncodeJSON(e *jc.Encoder) error {
	if err := jc.Encode(e, "id", jc.Int(), u.ID); err != nil {
		return err
	}
	if err := jc.Encode(e, "full_name", jc.String(), u.Name); err != nil {
		return err
	}
	if err := jc.EncodeOptional(e, "email", jc.String(), u.Email); err != nil {
		return err
	}
	if err := jc.EncodeOptional(e, "company", jc.Record[Company](), u.Company); err != nil {
		return err
	}
	if err := jc.Encode(e, "friends", jc.Array(jc.Record[User]()), u.Friends); err != nil {
		return err
	}
	if u.FriendsLookup == nil {
		return nil
	}
	return jc.Encode(e, "friendsLookup", jc.Map(jc.Record[User]()), u.FriendsLookup)
}

type FruitColor string

const (
	Red  FruitColor = "Red"
	Blue FruitColor = "Blue"
)

var fruitColor = jc.EnumOf("FruitColor", Red, Blue)

type Fruit struct {
	Name  string
	Color FruitColor
}

func (f *Fruit) DecodeJSON(d *jc.Decoder) error {
	var err error
	if f.Name, err = jc.Decode(d, "name", jc.String()); err != nil {
		return err
	}
	f.Color, err = jc.Decode(d, "color", fruitColor)
	return err
}

func (f Fruit) EncodeJSON(e *jc.Encoder) error {
	if err := jc.Encode(e, "name", jc.String(), f.Name); err != nil {
		return err
	}
	return jc.Encode(e, "color", fruitColor, f.Color)
}

func ptr[T any](v T) *T { return &v }

func appleUser() User {
	return User{
		ID:      24,
		Name:    "John Appleseed",
		Email:   ptr("john@appleseed.com"),
		Company: &Company{Name: "Apple", Address: ptr("1 Infinite Loop, Cupertino, CA")},
		Friends: []User{
			{ID: 27, Name: "Bob Jefferson", Friends: []User{}},
			{ID: 29, Name: "Jen Jackson", Friends: []User{}},
		},
		FriendsLookup: map[string]User{
			"Bob Jefferson": {ID: 27, Name: "Bob Jefferson", Friends: []User{}},
		},
	}
}

const appleUserJSON = `{
  "id": 24,
  "full_name": "John Appleseed",
  "email": "john@appleseed.com",
  "company": {"name": "Apple", "address": "1 Infinite Loop, Cupertino, CA"},
  "friends": [
    {"id": 27, "full_name": "Bob Jefferson", "friends": []},
    {"id": 29, "full_name": "Jen Jackson", "friends": []}
  ],
  "friendsLookup": {"Bob Jefferson": {"id": 27, "full_name": "Bob Jefferson", "friends": []}}
}`
