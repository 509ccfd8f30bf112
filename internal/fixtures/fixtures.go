// Filmgraph - Social Film Rating and Recommendation Backend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmgraph

package fixtures

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tomtom215/filmgraph/internal/models"
	"github.com/tomtom215/filmgraph/internal/validation"
)

// Seed is a fixture file. Entities refer to each other by key because
// store ids are only known after insertion.
type Seed struct {
	Directors   []DirectorSeed   `yaml:"directors"`
	Users       []UserSeed       `yaml:"users"`
	Films       []FilmSeed       `yaml:"films"`
	Likes       []LikeSeed       `yaml:"likes"`
	Friendships []FriendshipSeed `yaml:"friendships"`
	Reviews     []ReviewSeed     `yaml:"reviews"`
	Reactions   []ReactionSeed   `yaml:"reactions"`
}

type DirectorSeed struct {
	Key  string `yaml:"key"`
	Name string `yaml:"name"`
}

type UserSeed struct {
	Key      string      `yaml:"key"`
	Email    string      `yaml:"email"`
	Login    string      `yaml:"login"`
	Name     string      `yaml:"name"`
	Birthday models.Date `yaml:"birthday"`
}

type FilmSeed struct {
	Key         string      `yaml:"key"`
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	ReleaseDate models.Date `yaml:"release_date"`
	Duration    int         `yaml:"duration"`
	Mpa         int64       `yaml:"mpa"`
	Genres      []int64     `yaml:"genres"`
	Directors   []string    `yaml:"directors"`
}

type LikeSeed struct {
	User string `yaml:"user"`
	Film string `yaml:"film"`
}

// FriendshipSeed is a directed edge: User follows Friend.
type FriendshipSeed struct {
	User   string `yaml:"user"`
	Friend string `yaml:"friend"`
}

type ReviewSeed struct {
	Key      string `yaml:"key"`
	User     string `yaml:"user"`
	Film     string `yaml:"film"`
	Content  string `yaml:"content"`
	Positive bool   `yaml:"positive"`
}

type ReactionSeed struct {
	Review  string `yaml:"review"`
	User    string `yaml:"user"`
	Helpful bool   `yaml:"helpful"`
}

// Stats summarizes an Apply run.
type Stats struct {
	Directors   int
	Users       int
	Films       int
	Likes       int
	Friendships int
	Reviews     int
	Reactions   int
	StartTime   time.Time
	EndTime     time.Time
}

// Duration returns how long the run took.
func (s *Stats) Duration() time.Duration {
	return s.EndTime.Sub(s.StartTime)
}

// Parse decodes a seed. Unknown fields are rejected so typos in a fixture
// file fail loudly.
func Parse(r io.Reader) (*Seed, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var seed Seed
	if err := dec.Decode(&seed); err != nil {
		if errors.Is(err, io.EOF) {
			return &seed, nil
		}
		return nil, validation.NewError("seed", "yaml", nil, "decode seed: %v", err)
	}
	if err := seed.check(); err != nil {
		return nil, err
	}
	return &seed, nil
}

// LoadFile reads and parses a seed file.
func LoadFile(path string) (*Seed, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("open seed file: %w", err)
	}
	defer f.Close()

	seed, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	return seed, nil
}

// check verifies keys are unique and every reference resolves.
func (s *Seed) check() error {
	keys := map[string]map[string]bool{
		"director": {},
		"user":     {},
		"film":     {},
		"review":   {},
	}
	declare := func(kind, key string) error {
		if key == "" {
			return validation.NewError(kind, "required", nil, "%s without key", kind)
		}
		if keys[kind][key] {
			return validation.NewError(kind, "unique", key, "duplicate %s key %q", kind, key)
		}
		keys[kind][key] = true
		return nil
	}
	ref := func(kind, key string) error {
		if !keys[kind][key] {
			return validation.NewError(kind, "exists", key, "unknown %s key %q", kind, key)
		}
		return nil
	}

	for _, d := range s.Directors {
		if err := declare("director", d.Key); err != nil {
			return err
		}
	}
	for _, u := range s.Users {
		if err := declare("user", u.Key); err != nil {
			return err
		}
	}
	for _, f := range s.Films {
		if err := declare("film", f.Key); err != nil {
			return err
		}
		for _, d := range f.Directors {
			if err := ref("director", d); err != nil {
				return err
			}
		}
	}
	for _, l := range s.Likes {
		if err := firstErr(ref("user", l.User), ref("film", l.Film)); err != nil {
			return err
		}
	}
	for _, f := range s.Friendships {
		if err := firstErr(ref("user", f.User), ref("user", f.Friend)); err != nil {
			return err
		}
	}
	for _, r := range s.Reviews {
		if err := firstErr(declare("review", r.Key), ref("user", r.User), ref("film", r.Film)); err != nil {
			return err
		}
	}
	for _, r := range s.Reactions {
		if err := firstErr(ref("review", r.Review), ref("user", r.User)); err != nil {
			return err
		}
	}
	return nil
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
