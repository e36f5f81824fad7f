//go:build !integration

package catalog

import (
	"context"
	"errors"
	"testing"

	"cineMatch/domain"
)

type fakeSource struct {
	movies     []domain.Movie
	people     []domain.Person
	credits    []domain.Credit
	peopleErr  error
	creditsErr error
}

func (f *fakeSource) LoadMovies(ctx context.Context) ([]domain.Movie, error) {
	return f.movies, nil
}

func (f *fakeSource) LoadPeople(ctx context.Context) ([]domain.Person, error) {
	return f.people, f.peopleErr
}

func (f *fakeSource) LoadCredits(ctx context.Context) ([]domain.Credit, error) {
	return f.credits, f.creditsErr
}

func TestLoader_Load(t *testing.T) {
	tests := []struct {
		name    string
		source  *fakeSource
		wantErr error
		verify  func(t *testing.T, c *Catalog)
	}{
		{
			name: "builds working catalog",
			source: &fakeSource{
				movies: []domain.Movie{
					{ID: "tt1", Title: "Heat"},
					{ID: "tt2", Title: "heat"},
					{ID: "tt3"},
				},
				people:  []domain.Person{{ID: "nm1", Name: "Michael Mann"}},
				credits: []domain.Credit{{MovieID: "tt1", PersonID: "nm1"}},
			},
			verify: func(t *testing.T, c *Catalog) {
				if c.Len() != 2 || c.PeopleCount() != 1 || c.CreditsCount() != 1 {
					t.Errorf("sizes = %d/%d/%d", c.Len(), c.PeopleCount(), c.CreditsCount())
				}
				if row, ok := c.IndexOfTitle("HEAT"); !ok || c.Movie(row).ID != "tt1" {
					t.Errorf("case-insensitive lookup should resolve to the first row")
				}
			},
		},
		{
			name:    "no usable movie",
			source:  &fakeSource{movies: []domain.Movie{{ID: "tt3"}}},
			wantErr: ErrEmptyCatalog,
		},
		{
			name:    "missing source fails the whole load",
			source:  &fakeSource{movies: []domain.Movie{{Title: "Heat"}}, peopleErr: &SourceMissingError{Source: "people", Path: "x.csv"}},
			wantErr: ErrSourceMissing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewLoader(tt.source).Load(context.Background())
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Load() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() unexpected error: %v", err)
			}
			tt.verify(t, c)
		})
	}
}

func TestSourceMissingError_NamesSetting(t *testing.T) {
	err := &SourceMissingError{Source: "credits", Path: "data/intermediaire.csv"}
	if got := err.Error(); got != `credits source not found at "data/intermediaire.csv": check the CATALOG_CREDITS_PATH setting` {
		t.Errorf("Error() = %q", got)
	}
}
