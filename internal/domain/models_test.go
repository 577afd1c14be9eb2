package domain

import (
	"encoding/json"
	"regexp"
	"testing"
)

var hexID = regexp.MustCompile(`^[0-9a-f]{24}$`)

func TestNewIDFormat(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := NewID()
		if !hexID.MatchString(id) {
			t.Fatalf("id = %q; want 24 lowercase hex chars", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestBookJSONShape(t *testing.T) {
	creator := "cccccccccccccccccccccccc"
	b := Book{
		ID:          "ffffffffffffffffffffffff",
		Name:        "Dune",
		Author:      "Frank Herbert",
		Genre:       "Sci-Fi",
		PublishYear: 1965,
		CreatorID:   &creator,
	}
	raw, err := json.Marshal(b)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatal(err)
	}

	if m["creator"] != creator {
		t.Fatalf("creator = %v", m["creator"])
	}
	for _, hidden := range []string{"CreatedAt", "UpdatedAt", "DeletedAt", "Creator"} {
		if _, present := m[hidden]; present {
			t.Errorf("%s serialized", hidden)
		}
	}
	if _, present := m["description"]; present {
		t.Error("empty description serialized")
	}
}

func TestBookJSONOmitsAbsentCreator(t *testing.T) {
	raw, err := json.Marshal(Book{ID: "ffffffffffffffffffffffff", Name: "Dune"})
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatal(err)
	}
	if _, present := m["creator"]; present {
		t.Fatal("creator serialized for a creator-less book")
	}
}

func TestUserJSONNeverLeaksSecrets(t *testing.T) {
	u := User{
		ID:       "aaaaaaaaaaaaaaaaaaaaaaaa",
		Username: "fherbert",
		Hash:     "$2a$12$secret",
		APIKey:   "141add05-4415-4938-b5a1-17e0d3171aff",
	}
	raw, err := json.Marshal(u)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatal(err)
	}
	for _, secret := range []string{"hash", "Hash", "apiKey", "APIKey", "api_key"} {
		if _, present := m[secret]; present {
			t.Errorf("%s serialized on the raw model", secret)
		}
	}
}

func TestPublicViewIncludesAPIKeyOnly(t *testing.T) {
	u := User{
		Username:  "fherbert",
		Hash:      "$2a$12$secret",
		FirstName: "Frank",
		LastName:  "Herbert",
		APIKey:    "141add05-4415-4938-b5a1-17e0d3171aff",
	}
	raw, err := json.Marshal(u.PublicView())
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatal(err)
	}
	if m["apiKey"] != u.APIKey || m["username"] != "fherbert" {
		t.Fatalf("view = %v", m)
	}
	for _, v := range m {
		if v == u.Hash {
			t.Fatal("hash leaked through the public view")
		}
	}
}
