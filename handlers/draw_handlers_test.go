package handlers

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"rollcall-draw/db"
	"rollcall-draw/logging"
	"rollcall-draw/models"
	"rollcall-draw/report"
	"rollcall-draw/sampler"
)

type failingReporter struct{}

func (failingReporter) Report([]models.Student) error {
	return errors.New("closed pipe")
}

func newTestHandler(t *testing.T) (*DrawHandler, *bytes.Buffer, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	log := logging.FromLogrus(logger)
	r := db.NewRegistry(log)
	r.SeedDefaults()

	var out bytes.Buffer
	h := NewDrawHandler(r, report.NewConsoleReporter(&out), sampler.NewSeededSource(1), log)
	return h, &out, hook
}

func TestParseMode(t *testing.T) {
	for _, m := range Modes {
		got, err := ParseMode(" " + string(m) + " ")
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	got, err := ParseMode("EXCLUDED")
	require.NoError(t, err)
	assert.Equal(t, ModeExcluded, got)

	_, err = ParseMode("random")
	assert.Error(t, err)
}

func TestDrawReportsResult(t *testing.T) {
	h, out, _ := newTestHandler(t)

	students, err := h.Draw("3b", 0, ModeIncluded, 10)
	require.NoError(t, err)
	assert.Equal(t, []models.Student{1, 2, 9, 17, 22}, students)
	assert.Equal(t, "The 5 selected students are...\n"+
		"Number 1: 1!\n"+
		"Number 2: 2!\n"+
		"Number 3: 9!\n"+
		"Number 4: 17!\n"+
		"Number 5: 22!\n\n", out.String())
}

func TestDrawEmptyResult(t *testing.T) {
	h, out, _ := newTestHandler(t)

	students, err := h.Draw("3B", 0, ModeAll, 0)
	require.NoError(t, err)
	assert.Empty(t, students)
	assert.Equal(t, "Nobody was selected...\n", out.String())
}

func TestDrawModes(t *testing.T) {
	h, _, _ := newTestHandler(t)

	tests := []struct {
		mode Mode
		want []models.Student
	}{
		{ModeAll, sampler.Prepare(nil, 26)},
		{ModeEven, []models.Student{2, 4, 6, 8, 10, 12, 14, 16, 18, 20, 22, 24, 26}},
		{ModeOdd, []models.Student{1, 3, 5, 7, 9, 11, 13, 15, 17, 19, 21, 23, 25}},
		{ModeIncluded, []models.Student{1, 2, 9, 17, 22}},
		{ModeExcluded, []models.Student{1, 2, 5, 6, 9, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 22, 24, 25, 26}},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			got, err := h.Draw("3B", 0, tt.mode, 26)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDrawRegistersClassFromHint(t *testing.T) {
	h, _, _ := newTestHandler(t)

	students, err := h.Draw("1C", 8, ModeAll, 3)
	require.NoError(t, err)
	assert.Len(t, students, 3)
	assert.True(t, h.Registry.ClassExists("1c"))
}

func TestDrawErrors(t *testing.T) {
	h, out, hook := newTestHandler(t)

	_, err := h.Draw("9Z", 0, ModeAll, 3)
	var invalid *sampler.InvalidClassError
	require.ErrorAs(t, err, &invalid)

	_, err = h.Draw("1C", 8, ModeExcluded, 3)
	var missing *sampler.MissingListError
	require.ErrorAs(t, err, &missing)

	_, err = h.Draw("3B", 0, Mode("shuffle"), 3)
	assert.Error(t, err)

	assert.Empty(t, out.String())
	require.Len(t, hook.AllEntries(), 3)
	for _, entry := range hook.AllEntries() {
		assert.Equal(t, logrus.ErrorLevel, entry.Level)
	}
}

func TestDrawReporterFailure(t *testing.T) {
	h, _, _ := newTestHandler(t)
	h.Reporter = failingReporter{}

	students, err := h.Draw("3B", 0, ModeIncluded, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to report draw")
	assert.Len(t, students, 2)
}

func TestShow(t *testing.T) {
	h, _, _ := newTestHandler(t)

	clazz, err := h.Show("3b")
	require.NoError(t, err)
	assert.Equal(t, 26, clazz.RosterSize)

	_, err = h.Show("missing")
	assert.ErrorIs(t, err, ErrClassNotFound)
	assert.Len(t, h.Classes(), 1)
}
