package domain

// CREATE TABLE public.movies (
//     tconst                   TEXT PRIMARY KEY,
//     title                    TEXT,
//     movie_original_title     TEXT,
//     keywords                 TEXT,
//     movie_overview_fr        TEXT,
//     movie_overview           TEXT,
//     movie_tagline_fr         TEXT,
//     movie_genres_y           TEXT,
//     movie_startyear          NUMERIC,
//     movie_runtimeminutes     NUMERIC,
//     movie_popularity         NUMERIC,
//     movie_vote_average_tmdb  NUMERIC,
//     movie_poster_url_fr      TEXT,
//     movie_poster_path_fr     TEXT,
//     movie_poster_path_1      TEXT
// );

// Movie is one catalog title. Text fields are never nil: a missing value is "".
// Numeric fields are display-only and default to 0 when missing or unparsable.
type Movie struct {
	ID                string  `gorm:"primaryKey;column:tconst" json:"id"`
	Title             string  `gorm:"column:title;type:text" json:"title"`
	OriginalTitle     string  `gorm:"column:movie_original_title;type:text" json:"original_title"`
	KeywordsRaw       string  `gorm:"column:keywords;type:text" json:"-"`
	OverviewLocalized string  `gorm:"column:movie_overview_fr;type:text" json:"-"`
	Overview          string  `gorm:"column:movie_overview;type:text" json:"-"`
	TaglineLocalized  string  `gorm:"column:movie_tagline_fr;type:text" json:"tagline,omitempty"`
	Genres            string  `gorm:"column:movie_genres_y;type:text" json:"genres"`
	ReleaseYear       int     `gorm:"column:movie_startyear" json:"year"`
	RuntimeMinutes    int     `gorm:"column:movie_runtimeminutes" json:"runtime_minutes"`
	Popularity        float64 `gorm:"column:movie_popularity" json:"popularity"`
	VoteAverage       float64 `gorm:"column:movie_vote_average_tmdb" json:"vote_average"`
	PosterURL         string  `gorm:"column:movie_poster_url_fr;type:text" json:"-"`
	PosterPath        string  `gorm:"column:movie_poster_path_fr;type:text" json:"-"`
	PosterPathAlt     string  `gorm:"column:movie_poster_path_1;type:text" json:"-"`

	// derived once at load time
	DisplayTitle string `gorm:"-" json:"display_title"`
	KeywordsText string `gorm:"-" json:"-"`
	OverviewText string `gorm:"-" json:"overview"`
	GenresText   string `gorm:"-" json:"-"`
}

func (Movie) TableName() string {
	return "movies"
}

// MovieDetail is a movie with its resolved artwork and cast, as shown on a detail page.
type MovieDetail struct {
	Movie
	PosterURL string `json:"poster_url"`
	Cast      Cast   `json:"cast"`
}

// MoviePage is one page of a catalog listing.
type MoviePage struct {
	Page       int     `json:"page"`
	TotalPages int     `json:"total_pages"`
	Total      int     `json:"total"`
	Movies     []Movie `json:"movies"`
}
