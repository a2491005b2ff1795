package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Required job CSV columns. The description column is expected to be cleaned
// of markup by an upstream step; values are retained verbatim.
const (
	columnTitle       = "Title"
	columnLocation    = "Location"
	columnDescription = "Cleaned_Description"
)

// Required seeker CSV columns for the offline batch mode.
const (
	columnResume = "Cleaned_Resume"
	columnSkills = "Skills"
)

// Seeker is a stored job-seeker row used by the offline batch recommender.
// Its resume text is embedded into the same space as job descriptions.
type Seeker struct {
	ID       int
	Skills   string
	Location string
	Resume   string
}

// LoadCSV reads all job rows from a CSV file. Each job is assigned a
// zero-based ID equal to its row position. A missing file or a missing
// required column is an error; callers treat it as fatal at startup.
func LoadCSV(path string) ([]Job, error) {
	rows, idx, err := readAll(path, columnTitle, columnLocation, columnDescription)
	if err != nil {
		return nil, err
	}

	jobs := make([]Job, 0, len(rows))
	for i, row := range rows {
		jobs = append(jobs, Job{
			ID:          i,
			Title:       row[idx[columnTitle]],
			Location:    row[idx[columnLocation]],
			Description: row[idx[columnDescription]],
		})
	}
	return jobs, nil
}

// LoadSeekersCSV reads stored seeker profiles for batch recommendations.
func LoadSeekersCSV(path string) ([]Seeker, error) {
	rows, idx, err := readAll(path, columnResume, columnSkills, columnLocation)
	if err != nil {
		return nil, err
	}

	seekers := make([]Seeker, 0, len(rows))
	for i, row := range rows {
		seekers = append(seekers, Seeker{
			ID:       i,
			Skills:   row[idx[columnSkills]],
			Location: row[idx[columnLocation]],
			Resume:   row[idx[columnResume]],
		})
	}
	return seekers, nil
}

// readAll parses a CSV file and verifies the header contains every required
// column, returning the data rows and a column-name index.
func readAll(path string, required ...string) ([][]string, map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // header defines the width; validate below

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			return nil, nil, fmt.Errorf("missing required column %q in %s", name, path)
		}
	}

	var rows [][]string
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read %s line %d: %w", path, line, err)
		}
		if len(row) < len(header) {
			return nil, nil, fmt.Errorf("short row at %s line %d: got %d fields, want %d", path, line, len(row), len(header))
		}
		rows = append(rows, row)
	}
	return rows, idx, nil
}
