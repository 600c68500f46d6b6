package db

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
	"rollcall-draw/logging"
	"rollcall-draw/models"
)

// Registry holds the configuration of every known class, keyed by the
// lower-cased class name. It is not safe for concurrent use.
type Registry struct {
	classes map[string]*models.ClassConfig
	log     *logging.Logger
}

// NewRegistry creates an empty Registry
func NewRegistry(log *logging.Logger) *Registry {
	if log == nil {
		log = logging.DefaultLogger
	}
	return &Registry{
		classes: make(map[string]*models.ClassConfig),
		log:     log,
	}
}

// NormalizeName returns the registry key for a class name
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// --- Class Operations ---

// AddClass stores a copy of clazz, replacing any class with the same
// normalized name. Samplers already bound to the replaced class keep it.
func (r *Registry) AddClass(clazz models.ClassConfig) error {
	key := NormalizeName(clazz.Name)
	if key == "" {
		return errors.New("class name cannot be empty")
	}
	if clazz.RosterSize <= 0 {
		return errors.Errorf("class %s: roster size must be positive, got %d", clazz.Name, clazz.RosterSize)
	}
	if err := validateList(clazz.Excluded, clazz.RosterSize); err != nil {
		return errors.Wrapf(err, "class %s: excluded", clazz.Name)
	}
	if err := validateList(clazz.Included, clazz.RosterSize); err != nil {
		return errors.Wrapf(err, "class %s: included", clazz.Name)
	}
	stored := clazz.Copy()
	r.classes[key] = &stored
	r.log.With(logging.LogParams{"class": clazz.Name, "students": clazz.RosterSize}).Debug("Added class")
	return nil
}

// validateList checks that every student is in 1..rosterSize and listed once
func validateList(students []models.Student, rosterSize int) error {
	seen := make(map[models.Student]struct{}, len(students))
	for _, s := range students {
		if s < 1 || s > rosterSize {
			return errors.Errorf("student %d is outside 1..%d", s, rosterSize)
		}
		if _, ok := seen[s]; ok {
			return errors.Errorf("student %d is listed twice", s)
		}
		seen[s] = struct{}{}
	}
	return nil
}

// Lookup returns the stored configuration for name. The pointer is the
// live entry; callers outside a sampler should prefer GetClass.
func (r *Registry) Lookup(name string) (*models.ClassConfig, bool) {
	clazz, ok := r.classes[NormalizeName(name)]
	return clazz, ok
}

// GetClass returns a snapshot of the class configuration
func (r *Registry) GetClass(name string) (models.ClassConfig, bool) {
	clazz, ok := r.Lookup(name)
	if !ok {
		return models.ClassConfig{}, false
	}
	return clazz.Copy(), true
}

// ClassExists checks whether a class is registered under name
func (r *Registry) ClassExists(name string) bool {
	_, ok := r.classes[NormalizeName(name)]
	return ok
}

// Classes returns snapshots of all classes sorted by normalized name
func (r *Registry) Classes() []models.ClassConfig {
	keys := make([]string, 0, len(r.classes))
	for key := range r.classes {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	classes := make([]models.ClassConfig, 0, len(keys))
	for _, key := range keys {
		classes = append(classes, r.classes[key].Copy())
	}
	return classes
}

// Len reports the number of registered classes
func (r *Registry) Len() int {
	return len(r.classes)
}

// --- Seed Data ---

// DefaultClasses are the classes every new default registry starts with
func DefaultClasses() []models.ClassConfig {
	return []models.ClassConfig{
		{
			Name:       "3B",
			RosterSize: 26,
			Excluded:   []models.Student{3, 4, 7, 8, 10, 21, 23},
			Included:   []models.Student{1, 2, 9, 17, 22},
		},
	}
}

// SeedDefaults adds DefaultClasses that are not registered yet
func (r *Registry) SeedDefaults() {
	for _, clazz := range DefaultClasses() {
		if r.ClassExists(clazz.Name) {
			continue
		}
		if err := r.AddClass(clazz); err != nil {
			r.log.With(logging.LogParams{"class": clazz.Name}).Error("Failed to seed class: " + err.Error())
		}
	}
}
