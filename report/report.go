package report

import (
	"fmt"
	"io"

	"rollcall-draw/models"
)

// Reporter presents the students picked by a draw
type Reporter interface {
	Report(students []models.Student) error
}

// ConsoleReporter writes a numbered, human readable list to W
type ConsoleReporter struct {
	W io.Writer
}

// NewConsoleReporter creates a ConsoleReporter writing to w
func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{W: w}
}

// Report writes one line per student, or a notice when nobody was picked
func (c *ConsoleReporter) Report(students []models.Student) error {
	if len(students) == 0 {
		_, err := fmt.Fprintln(c.W, "Nobody was selected...")
		return err
	}

	if _, err := fmt.Fprintf(c.W, "The %d selected students are...\n", len(students)); err != nil {
		return err
	}
	for i, s := range students {
		if _, err := fmt.Fprintf(c.W, "Number %d: %d!\n", i+1, s); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(c.W)
	return err
}
