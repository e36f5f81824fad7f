package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceMissing marks a catalog source that does not exist. It is a
	// configuration error: the process must not serve until it is fixed.
	ErrSourceMissing = errors.New("catalog source missing")

	// ErrEmptyCatalog is returned when no movie survives cleaning.
	ErrEmptyCatalog = errors.New("catalog has no movies")

	ErrMovieNotFound  = errors.New("movie not found")
	ErrPersonNotFound = errors.New("person not found")
)

// SourceMissingError names the source that could not be found.
type SourceMissingError struct {
	Source string
	Path   string
}

func (e *SourceMissingError) Error() string {
	return fmt.Sprintf("%s source not found at %q: check the CATALOG_%s_PATH setting", e.Source, e.Path, envName(e.Source))
}

func (e *SourceMissingError) Unwrap() error {
	return ErrSourceMissing
}

func envName(source string) string {
	switch source {
	case "movies":
		return "MOVIES"
	case "people":
		return "PEOPLE"
	case "credits":
		return "CREDITS"
	default:
		return "SOURCE"
	}
}
