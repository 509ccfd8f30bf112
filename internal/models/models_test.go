// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package models

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/tomtom215/filmgraph/internal/validation"
)

func TestDate_JSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   Date
		want string
	}{
		{name: "set", in: NewDate(1967, time.March, 25), want: `"1967-03-25"`},
		{name: "zero", in: Date{}, want: `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b, err := json.Marshal(tt.in)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(b) != tt.want {
				t.Errorf("Marshal() = %s, want %s", b, tt.want)
			}

			var back Date
			if err := json.Unmarshal(b, &back); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if !back.Equal(tt.in.Time) {
				t.Errorf("Unmarshal() = %v, want %v", back, tt.in)
			}
		})
	}
}

func TestDate_UnmarshalJSONRejectsGarbage(t *testing.T) {
	t.Parallel()

	var d Date
	for _, in := range []string{`"25.03.1967"`, `12`} {
		if err := json.Unmarshal([]byte(in), &d); err == nil {
			t.Errorf("Unmarshal(%s) expected error", in)
		}
	}
}

func TestDate_YAML(t *testing.T) {
	t.Parallel()

	var doc struct {
		Released Date `yaml:"released"`
	}
	if err := yaml.Unmarshal([]byte("released: 1999-03-31\n"), &doc); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v", err)
	}
	if got := doc.Released.String(); got != "1999-03-31" {
		t.Errorf("Released = %q, want 1999-03-31", got)
	}
}

func TestDate_Scan(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  interface{}
		want string
	}{
		{name: "time", src: time.Date(2001, time.July, 20, 13, 4, 0, 0, time.UTC), want: "2001-07-20"},
		{name: "string", src: "2001-07-20", want: "2001-07-20"},
		{name: "bytes", src: []byte("2001-07-20"), want: "2001-07-20"},
		{name: "null", src: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var d Date
			if err := d.Scan(tt.src); err != nil {
				t.Fatalf("Scan() error = %v", err)
			}
			if d.String() != tt.want {
				t.Errorf("Scan() = %q, want %q", d.String(), tt.want)
			}
		})
	}
}

func TestFilm_DistinctIDs(t *testing.T) {
	t.Parallel()

	f := Film{
		Genres:    []Genre{{ID: 3}, {ID: 1}, {ID: 3}},
		Directors: []Director{{ID: 2}, {ID: 2}},
	}

	if got := f.GenreIDs(); len(got) != 2 || got[0] != 3 || got[1] != 1 {
		t.Errorf("GenreIDs() = %v, want [3 1]", got)
	}
	if got := f.DirectorIDs(); len(got) != 1 || got[0] != 2 {
		t.Errorf("DirectorIDs() = %v, want [2]", got)
	}
}

func TestUser_Normalize(t *testing.T) {
	t.Parallel()

	u := User{Login: "dolore", Name: "  "}
	u.Normalize()
	if u.Name != "dolore" {
		t.Errorf("Name = %q, want login", u.Name)
	}

	u = User{Login: "dolore", Name: "Nick"}
	u.Normalize()
	if u.Name != "Nick" {
		t.Errorf("Name = %q, want unchanged", u.Name)
	}
}

func TestValidation_DateFields(t *testing.T) {
	t.Parallel()

	film := Film{
		Name:        "Nosferatu",
		ReleaseDate: NewDate(1890, time.January, 1),
		Duration:    94,
		Mpa:         &Mpa{ID: 1},
	}
	err := validation.ValidateStruct(&film)
	if err == nil {
		t.Fatal("expected release date error")
	}
	if got := err.Errors()[0].Field(); got != "releaseDate" {
		t.Errorf("field = %q, want releaseDate", got)
	}

	film.ReleaseDate = NewDate(1922, time.March, 4)
	if err := validation.ValidateStruct(&film); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	user := User{Email: "a@b.io", Login: "a", Birthday: Date{Time: time.Now().AddDate(0, 0, 2)}}
	if err := validation.ValidateStruct(&user); err == nil {
		t.Error("expected future birthday error")
	}
}

func TestEventKinds(t *testing.T) {
	t.Parallel()

	if !EventReaction.Valid() || EventCategory("RATING").Valid() {
		t.Error("EventCategory.Valid() mismatch")
	}
	if !OperationUpdate.Valid() || EventOperation("MERGE").Valid() {
		t.Error("EventOperation.Valid() mismatch")
	}
}
