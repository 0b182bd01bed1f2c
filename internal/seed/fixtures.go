package seed

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Fixtures struct {
	Users []UserFixture `yaml:"users"`
}

type UserFixture struct {
	Username string        `yaml:"username"`
	Password string        `yaml:"password"`
	Notes    []NoteFixture `yaml:"notes"`
}

type NoteFixture struct {
	Title   string `yaml:"title"`
	Content string `yaml:"content"`
}

func ParseFixtures(r io.Reader) (*Fixtures, error) {
	var fixtures Fixtures

	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&fixtures); err != nil {
		return nil, errors.Wrap(err, "could not decode fixtures")
	}

	return &fixtures, nil
}

func LoadFixtures(path string) (*Fixtures, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	defer file.Close()

	fixtures, err := ParseFixtures(file)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return fixtures, nil
}

// DefaultFixtures returns the demo dataset used when no fixtures file is
// given: a few users with a known password and some notes each.
func DefaultFixtures() *Fixtures {
	return &Fixtures{
		Users: []UserFixture{
			{
				Username: "alice",
				Password: "password123",
				Notes: []NoteFixture{
					{Title: "Groceries", Content: "Eggs, milk, coffee."},
					{Title: "Ideas", Content: "Try the new pasta place on Friday."},
					{Title: "Reading list", Content: "The Pragmatic Programmer, Designing Data-Intensive Applications."},
				},
			},
			{
				Username: "bob",
				Password: "password123",
				Notes: []NoteFixture{
					{Title: "Workout plan", Content: "Monday: run. Wednesday: swim. Saturday: climb."},
					{Title: "Gift ideas", Content: "Something for the garden."},
				},
			},
			{
				Username: "charlie",
				Password: "password123",
				Notes: []NoteFixture{
					{Title: "Trip checklist", Content: "Passport, charger, sunscreen."},
				},
			},
		},
	}
}
