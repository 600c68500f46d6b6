package sampler

import "fmt"

// InvalidClassError is returned when a sampler is requested for a class
// that is not registered and no roster size was given to create it.
type InvalidClassError struct {
	Class string
}

func (e *InvalidClassError) Error() string {
	return fmt.Sprintf("class %q does not exist: register it (e.g. {Name: %q, RosterSize: 26}) "+
		"or pass a positive roster size to create it", e.Class, e.Class)
}

// MissingListError is returned by list-based draws when the class has no
// such list configured.
type MissingListError struct {
	Class string
	List  string // "included" or "excluded"
}

func (e *MissingListError) Error() string {
	return fmt.Sprintf("class %q has no %s list: configure one before drawing from it", e.Class, e.List)
}
