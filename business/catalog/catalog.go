package catalog

import (
	"sort"
	"strings"

	"cineMatch/domain"
)

const (
	DefaultSearchLimit   = 15
	MinSearchQueryLength = 2
	DefaultPageSize      = 20
	FilmographyLimit     = 12
)

// Catalog is the immutable working set of one snapshot. Row i of every
// feature matrix describes Movies()[i]; the order never changes after New.
type Catalog struct {
	movies  []domain.Movie
	byTitle map[string]int
	byID    map[string]int

	people        map[string]domain.Person
	peopleCount   int
	creditsCount  int
	creditsMovie  map[string][]domain.Credit
	creditsPerson map[string][]domain.Credit
}

// New indexes already prepared movies. Movies must have unique display titles.
func New(movies []domain.Movie, people []domain.Person, credits []domain.Credit) *Catalog {
	c := &Catalog{
		movies:        movies,
		byTitle:       make(map[string]int, len(movies)),
		byID:          make(map[string]int, len(movies)),
		people:        make(map[string]domain.Person, len(people)),
		peopleCount:   len(people),
		creditsCount:  len(credits),
		creditsMovie:  make(map[string][]domain.Credit),
		creditsPerson: make(map[string][]domain.Credit),
	}

	for i, m := range movies {
		key := strings.ToLower(m.DisplayTitle)
		if _, ok := c.byTitle[key]; !ok {
			c.byTitle[key] = i
		}
		if m.ID != "" {
			if _, ok := c.byID[m.ID]; !ok {
				c.byID[m.ID] = i
			}
		}
	}

	for _, p := range people {
		if _, ok := c.people[p.ID]; !ok {
			c.people[p.ID] = p
		}
	}

	for _, cr := range credits {
		c.creditsMovie[cr.MovieID] = append(c.creditsMovie[cr.MovieID], cr)
		c.creditsPerson[cr.PersonID] = append(c.creditsPerson[cr.PersonID], cr)
	}

	return c
}

func (c *Catalog) Len() int {
	return len(c.movies)
}

func (c *Catalog) PeopleCount() int {
	return c.peopleCount
}

func (c *Catalog) CreditsCount() int {
	return c.creditsCount
}

// Movies returns the catalog rows in index order. Callers must not modify it.
func (c *Catalog) Movies() []domain.Movie {
	return c.movies
}

func (c *Catalog) Movie(row int) domain.Movie {
	return c.movies[row]
}

// IndexOfTitle resolves a display title to its row. The match is exact
// apart from letter case; surrounding spaces are significant.
func (c *Catalog) IndexOfTitle(title string) (int, bool) {
	row, ok := c.byTitle[strings.ToLower(title)]
	return row, ok
}

func (c *Catalog) MovieByID(id string) (domain.Movie, bool) {
	row, ok := c.byID[id]
	if !ok {
		return domain.Movie{}, false
	}
	return c.movies[row], true
}

// Search returns movies whose display title contains query, most popular first.
// Queries shorter than MinSearchQueryLength return nothing.
func (c *Catalog) Search(query string, limit int) []domain.Movie {
	query = strings.ToLower(strings.TrimSpace(query))
	if len([]rune(query)) < MinSearchQueryLength {
		return []domain.Movie{}
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	matches := make([]domain.Movie, 0)
	for _, m := range c.movies {
		if strings.Contains(strings.ToLower(m.DisplayTitle), query) {
			matches = append(matches, m)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Popularity > matches[j].Popularity
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	return matches
}

// Genres lists every genre label in the catalog, sorted.
func (c *Catalog) Genres() []string {
	set := make(map[string]struct{})
	for _, m := range c.movies {
		for _, g := range splitGenres(m.Genres) {
			set[g] = struct{}{}
		}
	}

	out := make([]string, 0, len(set))
	for g := range set {
		out = append(out, g)
	}
	sort.Strings(out)

	return out
}

// Browse pages through the catalog, optionally restricted to one genre label.
// Pages are 1-based; an out of range page is clamped.
func (c *Catalog) Browse(genre string, page, pageSize int) domain.MoviePage {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	filtered := c.movies
	if genre = strings.TrimSpace(genre); genre != "" {
		filtered = make([]domain.Movie, 0)
		for _, m := range c.movies {
			if hasGenre(m.Genres, genre) {
				filtered = append(filtered, m)
			}
		}
	}

	totalPages := (len(filtered) + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}

	movies := make([]domain.Movie, 0, end-start)
	movies = append(movies, filtered[start:end]...)

	return domain.MoviePage{
		Page:       page,
		TotalPages: totalPages,
		Total:      len(filtered),
		Movies:     movies,
	}
}

// Person returns a person and up to FilmographyLimit of their catalog movies.
func (c *Catalog) Person(id string) (domain.PersonDetail, error) {
	p, ok := c.people[id]
	if !ok {
		return domain.PersonDetail{}, ErrPersonNotFound
	}

	films := make([]domain.Movie, 0)
	seen := make(map[string]struct{})
	for _, cr := range c.creditsPerson[id] {
		if len(films) >= FilmographyLimit {
			break
		}
		if _, dup := seen[cr.MovieID]; dup {
			continue
		}
		m, ok := c.MovieByID(cr.MovieID)
		if !ok {
			continue
		}
		seen[cr.MovieID] = struct{}{}
		films = append(films, m)
	}

	return domain.PersonDetail{Person: p, Filmography: films}, nil
}

func splitGenres(genres string) []string {
	var out []string
	for _, g := range strings.Split(genres, ",") {
		if g = strings.TrimSpace(g); g != "" {
			out = append(out, g)
		}
	}
	return out
}

func hasGenre(genres, genre string) bool {
	for _, g := range splitGenres(genres) {
		if strings.EqualFold(g, genre) {
			return true
		}
	}
	return false
}
