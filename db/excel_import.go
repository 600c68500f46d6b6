package db

import (
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
	"rollcall-draw/logging"
	"rollcall-draw/models"
)

// Workbook columns, in order: class name, roster size, excluded, included
const (
	colName = iota
	colRosterSize
	colExcluded
	colIncluded
)

// ImportClassesFromExcel reads class definitions from the first sheet of
// an xlsx workbook and registers them. Row 1 is a header. Invalid rows are
// skipped and logged; the number of registered classes is returned.
func (r *Registry) ImportClassesFromExcel(file io.Reader) (int, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return 0, errors.Wrap(err, "failed to open excel file")
	}
	defer func() {
		if err := f.Close(); err != nil {
			r.log.Warn("Error closing excel file: " + err.Error())
		}
	}()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return 0, errors.New("excel file does not contain any sheets")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to get rows from sheet %s", sheetName)
	}

	imported := 0
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		rowLog := r.log.With(logging.LogParams{"sheet": sheetName, "row": i + 1})

		clazz, err := parseClassRow(row)
		if err != nil {
			rowLog.Warn("Skipping row: " + err.Error())
			continue
		}
		if err := r.AddClass(clazz); err != nil {
			rowLog.Warn("Skipping row: " + err.Error())
			continue
		}
		imported++
	}

	r.log.With(logging.LogParams{"sheet": sheetName, "classes": imported}).Info("Imported classes from workbook")
	return imported, nil
}

func cell(row []string, col int) string {
	if col < len(row) {
		return strings.TrimSpace(row[col])
	}
	return ""
}

func parseClassRow(row []string) (models.ClassConfig, error) {
	name := cell(row, colName)
	if name == "" {
		return models.ClassConfig{}, errors.New("missing class name")
	}

	size, err := strconv.Atoi(cell(row, colRosterSize))
	if err != nil || size <= 0 {
		return models.ClassConfig{}, errors.Errorf("class %s: invalid roster size %q", name, cell(row, colRosterSize))
	}

	excluded, err := parseStudentList(cell(row, colExcluded))
	if err != nil {
		return models.ClassConfig{}, errors.Wrapf(err, "class %s: excluded", name)
	}
	included, err := parseStudentList(cell(row, colIncluded))
	if err != nil {
		return models.ClassConfig{}, errors.Wrapf(err, "class %s: included", name)
	}

	return models.ClassConfig{
		Name:       name,
		RosterSize: size,
		Excluded:   excluded,
		Included:   included,
	}, nil
}

// parseStudentList parses "1, 2;9 17" style lists. A blank cell returns nil.
func parseStudentList(s string) ([]models.Student, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, nil
	}

	students := make([]models.Student, 0, len(fields))
	for _, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil || n <= 0 {
			return nil, errors.Errorf("invalid student number %q", field)
		}
		students = append(students, n)
	}
	return students, nil
}
