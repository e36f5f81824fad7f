package catalog

import (
	"strings"

	"cineMatch/domain"
)

// Features are the texts fed to the vectorizer for one movie.
type Features struct {
	Keywords string
	Overview string
	Genres   string
}

// BuildFeatures derives the feature texts of a movie. It never fails: a field
// that cannot be interpreted degrades to "".
func BuildFeatures(m domain.Movie) Features {
	return Features{
		Keywords: ExtractKeywords(m.KeywordsRaw),
		Overview: SelectOverview(m),
		Genres:   strings.TrimSpace(m.Genres),
	}
}

// SelectOverview prefers the localized synopsis and falls back to the generic one.
func SelectOverview(m domain.Movie) string {
	if strings.TrimSpace(m.OverviewLocalized) != "" {
		return m.OverviewLocalized
	}
	if strings.TrimSpace(m.Overview) != "" {
		return m.Overview
	}
	return ""
}

// DisplayTitle is the localized title when present, else the original title.
func DisplayTitle(m domain.Movie) string {
	if t := strings.TrimSpace(m.Title); t != "" {
		return t
	}
	return strings.TrimSpace(m.OriginalTitle)
}
