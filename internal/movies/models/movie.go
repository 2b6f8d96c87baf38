// Package models defines the movie catalog domain: entities, the genre
// enumeration, transfer shapes, and the mapping between the two.
package models

// Genre is the fixed set of movie genres. Values are stable integers and
// travel as numbers in JSON.
type Genre int

const (
	GenreAction Genre = iota
	GenreAdventure
	GenreComedy
	GenreDrama
	GenreHorror
	GenreRomance
	GenreSciFi
	GenreThriller
)

var genreNames = map[Genre]string{
	GenreAction:    "Action",
	GenreAdventure: "Adventure",
	GenreComedy:    "Comedy",
	GenreDrama:     "Drama",
	GenreHorror:    "Horror",
	GenreRomance:   "Romance",
	GenreSciFi:     "SciFi",
	GenreThriller:  "Thriller",
}

// Valid reports whether g is a member of the defined genre set. Arbitrary
// integers decoded from JSON or query parameters must pass this check
// before being accepted.
func (g Genre) Valid() bool {
	_, ok := genreNames[g]
	return ok
}

func (g Genre) String() string {
	if name, ok := genreNames[g]; ok {
		return name
	}
	return "Unknown"
}

// Movie is a catalog entry owned by exactly one user.
type Movie struct {
	// ID is assigned by the repository on Add.
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Year        int    `json:"year"`
	Genre       Genre  `json:"genre"`

	// UserID references the owning user. It is itself mutable: an update
	// may reassign the movie to a different owner.
	UserID int64 `json:"userId"`

	// User is the owning user, populated by repository reads that join
	// the owner relation. Nil when not loaded.
	User *User `json:"-"`
}

// TableName returns the database table backing this model.
func (Movie) TableName() string {
	return "movies"
}
