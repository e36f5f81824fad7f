package domain

// CREATE TABLE public.people (
//     nconst                          TEXT PRIMARY KEY,
//     intervenant_primaryname         TEXT,
//     intervenant_primaryprofession   TEXT,
//     intervenant_birthyear           NUMERIC,
//     intervenant_deathyear           NUMERIC,
//     tmdb_profile_url                TEXT,
//     tmdb_popularity                 NUMERIC,
//     tmdb_biography_fr               TEXT
// );

type Person struct {
	ID          string  `gorm:"primaryKey;column:nconst" json:"id"`
	Name        string  `gorm:"column:intervenant_primaryname;type:text" json:"name"`
	Professions string  `gorm:"column:intervenant_primaryprofession;type:text" json:"professions"`
	BirthYear   int     `gorm:"column:intervenant_birthyear" json:"birth_year,omitempty"`
	DeathYear   int     `gorm:"column:intervenant_deathyear" json:"death_year,omitempty"`
	ProfileURL  string  `gorm:"column:tmdb_profile_url;type:text" json:"profile_url"`
	Popularity  float64 `gorm:"column:tmdb_popularity" json:"popularity"`
	Biography   string  `gorm:"column:tmdb_biography_fr;type:text" json:"biography,omitempty"`
}

func (Person) TableName() string {
	return "people"
}

// CREATE TABLE public.credits (
//     tconst    TEXT NOT NULL,
//     nconst    TEXT NOT NULL,
//     ordering  INT
// );

// Credit links a movie to a person. Ordering is the billing position, 0 when unknown.
type Credit struct {
	MovieID  string `gorm:"column:tconst;not null" json:"movie_id"`
	PersonID string `gorm:"column:nconst;not null" json:"person_id"`
	Ordering int    `gorm:"column:ordering" json:"ordering"`
}

func (Credit) TableName() string {
	return "credits"
}

// PersonDetail is a person with the catalog movies they are credited on.
type PersonDetail struct {
	Person
	Filmography []Movie `json:"filmography"`
}
