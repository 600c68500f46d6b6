package handlers

import (
	"strings"

	"github.com/pkg/errors"
	"rollcall-draw/db"
	"rollcall-draw/logging"
	"rollcall-draw/models"
	"rollcall-draw/report"
	"rollcall-draw/sampler"
)

// Mode selects which candidate pool a draw uses
type Mode string

const (
	ModeAll      Mode = "all"
	ModeEven     Mode = "even"
	ModeOdd      Mode = "odd"
	ModeIncluded Mode = "included"
	ModeExcluded Mode = "excluded"
)

// Modes lists every draw mode
var Modes = []Mode{ModeAll, ModeEven, ModeOdd, ModeIncluded, ModeExcluded}

// ParseMode converts a case-insensitive mode name
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Modes {
		if m == known {
			return m, nil
		}
	}
	return "", errors.Errorf("unknown draw mode %q (want one of all, even, odd, included, excluded)", s)
}

// ErrClassNotFound is returned by Show for unregistered classes
var ErrClassNotFound = errors.New("class not found")

// DrawHandler holds the dependencies for draw requests
type DrawHandler struct {
	Registry *db.Registry
	Reporter report.Reporter
	Source   sampler.IndexSource
	Log      *logging.Logger
}

// NewDrawHandler creates a new DrawHandler. A nil source uses the default generator.
func NewDrawHandler(registry *db.Registry, reporter report.Reporter, src sampler.IndexSource, log *logging.Logger) *DrawHandler {
	if src == nil {
		src = sampler.DefaultSource()
	}
	if log == nil {
		log = logging.DefaultLogger
	}
	return &DrawHandler{
		Registry: registry,
		Reporter: reporter,
		Source:   src,
		Log:      log,
	}
}

// Draw picks quantity students of class using mode and reports them
func (h *DrawHandler) Draw(class string, rosterSizeHint int, mode Mode, quantity int) ([]models.Student, error) {
	log := h.Log.With(logging.LogParams{"class": class, "mode": string(mode), "quantity": quantity})

	s, err := sampler.New(h.Registry, class, rosterSizeHint, sampler.WithIndexSource(h.Source))
	if err != nil {
		log.Error("Failed to bind class: " + err.Error())
		return nil, err
	}

	var students []models.Student
	switch mode {
	case ModeAll:
		students = s.DrawAll(quantity)
	case ModeEven:
		students = s.DrawEven(quantity)
	case ModeOdd:
		students = s.DrawOdd(quantity)
	case ModeIncluded:
		students, err = s.DrawIncluded(quantity)
	case ModeExcluded:
		students, err = s.DrawExcluded(quantity)
	default:
		err = errors.Errorf("unknown draw mode %q", mode)
	}
	if err != nil {
		log.Error("Draw failed: " + err.Error())
		return nil, err
	}

	if len(students) < quantity {
		log.With(logging.LogParams{"selected": len(students)}).Debug("Pool smaller than requested quantity")
	}
	if h.Reporter != nil {
		if err := h.Reporter.Report(students); err != nil {
			return students, errors.Wrap(err, "failed to report draw")
		}
	}
	return students, nil
}

// Classes returns every registered class
func (h *DrawHandler) Classes() []models.ClassConfig {
	return h.Registry.Classes()
}

// Show returns the configuration of one class
func (h *DrawHandler) Show(class string) (models.ClassConfig, error) {
	clazz, ok := h.Registry.GetClass(class)
	if !ok {
		return models.ClassConfig{}, errors.Wrapf(ErrClassNotFound, "class %q", class)
	}
	return clazz, nil
}
