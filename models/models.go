package models

// Student is a 1-based student number, unique within a class
type Student = int

// ClassConfig represents a class roster and its optional filter lists.
// A nil list means the list was never configured.
type ClassConfig struct {
	Name       string    `json:"name"`               // Class name as registered
	RosterSize int       `json:"rosterSize"`         // Number of students, numbered 1..RosterSize
	Excluded   []Student `json:"excluded,omitempty"` // Students never drawn by an excluded draw
	Included   []Student `json:"included,omitempty"` // The only students drawn by an included draw
}

// Copy returns a deep copy of the configuration
func (c ClassConfig) Copy() ClassConfig {
	out := c
	if c.Excluded != nil {
		out.Excluded = append([]Student{}, c.Excluded...)
	}
	if c.Included != nil {
		out.Included = append([]Student{}, c.Included...)
	}
	return out
}
