package recommend

import (
	"strings"
	"unicode"

	"cineMatch/domain"
)

// PosterURL picks the first usable poster source: the full URL, then each
// poster path appended to host as-is, then "".
func PosterURL(m domain.Movie, host string) string {
	if u := strings.TrimSpace(m.PosterURL); u != "" {
		return u
	}

	for _, p := range []string{m.PosterPath, m.PosterPathAlt} {
		if p = strings.TrimSpace(p); p != "" {
			return host + p
		}
	}

	return ""
}

// Snippet shortens text to at most limit runes, cut on a word boundary, and
// appends "...". A limit of 0 disables truncation.
func Snippet(text string, limit int) string {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if limit <= 0 || len(runes) <= limit {
		return text
	}

	cut := string(runes[:limit])
	if !unicode.IsSpace(runes[limit]) {
		if i := strings.LastIndexAny(cut, " \t\n"); i > 0 {
			cut = cut[:i]
		}
	}

	return strings.TrimRight(cut, " \t\n.,;:") + "..."
}

func assemble(m domain.Movie, score, keywords, genres float64, cfg Config) domain.Recommendation {
	return domain.Recommendation{
		Title:          m.DisplayTitle,
		ExternalID:     m.ID,
		Score:          score * 100,
		KeywordsScore:  keywords * 100,
		GenresScore:    genres * 100,
		Year:           m.ReleaseYear,
		Genres:         m.GenresText,
		PosterURL:      PosterURL(m, cfg.PosterHost),
		Overview:       Snippet(m.OverviewText, cfg.SnippetLength),
		Rating:         m.VoteAverage,
		RuntimeMinutes: m.RuntimeMinutes,
	}
}
