// Package models defines the note app domain: entities, the priority and
// tag enumerations, transfer shapes, and the mapping between the two.
package models

// Priority ranks how urgent a note is. Values are stable integers and
// travel as numbers in JSON.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

var priorityNames = map[Priority]string{
	PriorityLow:    "Low",
	PriorityMedium: "Medium",
	PriorityHigh:   "High",
}

// Valid reports whether p is a member of the defined priority set.
func (p Priority) Valid() bool {
	_, ok := priorityNames[p]
	return ok
}

func (p Priority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return "Unknown"
}

// Tag categorizes a note by life area.
type Tag int

const (
	TagWork Tag = iota
	TagHealth
	TagSocialLife
	TagHobby
)

var tagNames = map[Tag]string{
	TagWork:       "Work",
	TagHealth:     "Health",
	TagSocialLife: "SocialLife",
	TagHobby:      "Hobby",
}

// Valid reports whether t is a member of the defined tag set.
func (t Tag) Valid() bool {
	_, ok := tagNames[t]
	return ok
}

func (t Tag) String() string {
	if name, ok := tagNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Note is a short text entry owned by exactly one user.
type Note struct {
	// ID is assigned by the repository on Add.
	ID       int64    `json:"id"`
	Text     string   `json:"text"`
	Priority Priority `json:"priority"`
	Tag      Tag      `json:"tag"`

	// UserID references the owning user. An update may reassign the
	// note to a different owner.
	UserID int64 `json:"userId"`

	// User is the owning user, populated by repository reads that join
	// the owner relation. Nil when not loaded.
	User *User `json:"-"`
}

// TableName returns the database table backing this model.
func (Note) TableName() string {
	return "notes"
}
