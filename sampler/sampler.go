// Package sampler draws random, duplicate-free groups of students from a
// class roster.
package sampler

import (
	"strings"

	"rollcall-draw/models"
)

// ClassStore is the class registry a Sampler binds to
type ClassStore interface {
	Lookup(name string) (*models.ClassConfig, bool)
	AddClass(clazz models.ClassConfig) error
}

// Sampler draws students from one class. It keeps the configuration it was
// bound to at construction for its whole lifetime.
type Sampler struct {
	class *models.ClassConfig
	src   IndexSource
}

// Option configures a Sampler
type Option func(*Sampler)

// WithIndexSource sets the random index provider used by draws
func WithIndexSource(src IndexSource) Option {
	return func(s *Sampler) {
		if src != nil {
			s.src = src
		}
	}
}

// New binds a Sampler to the class registered under name. The roster size
// hint is only used to register an unknown class and is otherwise ignored.
func New(store ClassStore, name string, rosterSizeHint int, opts ...Option) (*Sampler, error) {
	s := &Sampler{src: DefaultSource()}
	for _, opt := range opts {
		opt(s)
	}

	class, ok := store.Lookup(name)
	if !ok {
		if rosterSizeHint <= 0 || strings.TrimSpace(name) == "" {
			return nil, &InvalidClassError{Class: name}
		}
		if err := store.AddClass(models.ClassConfig{Name: name, RosterSize: rosterSizeHint}); err != nil {
			return nil, err
		}
		if class, ok = store.Lookup(name); !ok {
			return nil, &InvalidClassError{Class: name}
		}
	}

	s.class = class
	return s, nil
}

// Class returns a copy of the bound configuration
func (s *Sampler) Class() models.ClassConfig {
	return s.class.Copy()
}

// roster returns 1..RosterSize
func (s *Sampler) roster() []models.Student {
	return Prepare(nil, s.class.RosterSize)
}

// DrawAll draws from the whole roster
func (s *Sampler) DrawAll(quantity int) []models.Student {
	return Draw(s.src, s.roster(), s.class.RosterSize, quantity)
}

// DrawEven draws from the even student numbers 2, 4, 6...
func (s *Sampler) DrawEven(quantity int) []models.Student {
	return Draw(s.src, everyOther(s.roster(), 1), s.class.RosterSize, quantity)
}

// DrawOdd draws from the odd student numbers 1, 3, 5...
func (s *Sampler) DrawOdd(quantity int) []models.Student {
	return Draw(s.src, everyOther(s.roster(), 0), s.class.RosterSize, quantity)
}

// DrawIncluded draws only from the included list. Asking for at least as
// many students as the list holds returns the whole list.
func (s *Sampler) DrawIncluded(quantity int) ([]models.Student, error) {
	included := s.class.Included
	if included == nil {
		return nil, &MissingListError{Class: s.class.Name, List: "included"}
	}
	return Draw(s.src, Prepare(included, quantity), len(included), quantity), nil
}

// DrawExcluded draws from the roster minus the excluded list. Asking for at
// least as many students as remain returns all of them.
func (s *Sampler) DrawExcluded(quantity int) ([]models.Student, error) {
	excluded := s.class.Excluded
	if excluded == nil {
		return nil, &MissingListError{Class: s.class.Name, List: "excluded"}
	}

	skip := make(map[models.Student]struct{}, len(excluded))
	for _, e := range excluded {
		skip[e] = struct{}{}
	}
	roster := s.roster()
	pool := make([]models.Student, 0, len(roster))
	for _, st := range roster {
		if _, ok := skip[st]; !ok {
			pool = append(pool, st)
		}
	}
	return Draw(s.src, pool, len(pool), quantity), nil
}

// everyOther keeps the entries whose 0-based index has the given parity
func everyOther(students []models.Student, parity int) []models.Student {
	out := make([]models.Student, 0, len(students)/2+1)
	for i, st := range students {
		if i%2 == parity {
			out = append(out, st)
		}
	}
	return out
}
