package domain

// Weights is the per-dimension weighting of the hybrid score.
// Keywords and Genres are active; Overview and Numeric are accepted but reserved.
type Weights struct {
	Keywords float64 `json:"keywords"`
	Genres   float64 `json:"genres"`
	Overview float64 `json:"overview"`
	Numeric  float64 `json:"numeric"`
}

type RecommendationRequest struct {
	Title   string
	Weights Weights
	N       int
}

type Recommendation struct {
	Title          string  `json:"title"`
	ExternalID     string  `json:"external_id"`
	Score          float64 `json:"score"`
	KeywordsScore  float64 `json:"keywords_score"`
	GenresScore    float64 `json:"genres_score"`
	Year           int     `json:"year"`
	Genres         string  `json:"genres"`
	PosterURL      string  `json:"poster_url"`
	Overview       string  `json:"overview"`
	Rating         float64 `json:"rating"`
	RuntimeMinutes int     `json:"runtime_minutes"`
}

type CastMember struct {
	PersonID string `json:"person_id"`
	Name     string `json:"name"`
	Photo    string `json:"photo"`
}

type Cast struct {
	Directors []string     `json:"directors"`
	Actors    []CastMember `json:"actors"`
}

// CatalogInfo describes the snapshot currently serving requests.
type CatalogInfo struct {
	Version         string         `json:"version"`
	Movies          int            `json:"movies"`
	People          int            `json:"people"`
	Credits         int            `json:"credits"`
	VocabularyTerms map[string]int `json:"vocabulary_terms"`
	BuiltAt         string         `json:"built_at"`
}
