package roster

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/andareed/siftly-roster/grid"
)

// ErrUnsupportedFormat is returned for roster files that are neither CSV
// nor JSON.
var ErrUnsupportedFormat = errors.New("unsupported roster format")

// FileSource loads a roster from a .csv or .json file.
type FileSource struct {
	Path string
}

// Load reads the file and returns at most count records (all of them when
// count <= 0).
func (f FileSource) Load(ctx context.Context, count int) ([]grid.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var (
		records []grid.Record
		err     error
	)
	switch ext := strings.ToLower(filepath.Ext(f.Path)); ext {
	case ".csv":
		records, err = readCSVFile(f.Path)
	case ".json":
		records, err = readJSONFile(f.Path)
	default:
		return nil, fmt.Errorf("%w %q (want .csv or .json)", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}
	if count > 0 && len(records) > count {
		records = records[:count]
	}
	return records, nil
}

func readJSONFile(path string) ([]grid.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading roster: %w", err)
	}
	var records []grid.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("error decoding %q: %w", path, err)
	}
	seen := make(map[string]bool, len(records))
	for i := range records {
		if err := normalise(&records[i]); err != nil {
			return nil, fmt.Errorf("%s: record %d: %w", path, i+1, err)
		}
		if id := records[i].ID; seen[id] {
			return nil, fmt.Errorf("%s: record %d: duplicate id %q", path, i+1, id)
		}
		seen[records[i].ID] = true
	}
	return records, nil
}

func readCSVFile(path string) ([]grid.Record, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}
	defer fh.Close()
	records, err := ReadCSV(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// csvColumns are the header names ReadCSV understands. name, location,
// health and power are required.
var csvColumns = []string{"id", "name", "location", "health", "power", "viewed"}

// ReadCSV parses a roster with a header row. Column order is free; the
// id and viewed columns are optional.
func ReadCSV(r io.Reader) ([]grid.Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV: %w", err)
	}
	if len(rows) == 0 {
		return nil, errors.New("CSV has no header row")
	}

	index := map[string]int{}
	for i, name := range rows[0] {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		index[name] = i
	}
	for _, required := range csvColumns[1:5] {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("CSV header is missing column %q", required)
		}
	}

	cell := func(row []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	records := make([]grid.Record, 0, len(rows)-1)
	seen := make(map[string]bool, len(rows)-1)
	for n, row := range rows[1:] {
		line := n + 2
		loc, err := grid.ParseLocation(cell(row, "location"))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		health, err := grid.ParseHealth(cell(row, "health"))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		power, err := strconv.Atoi(cell(row, "power"))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid power: %w", line, err)
		}
		viewed := false
		if v := cell(row, "viewed"); v != "" {
			viewed, err = strconv.ParseBool(v)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid viewed flag: %w", line, err)
			}
		}
		rec := grid.Record{
			ID:       cell(row, "id"),
			Name:     cell(row, "name"),
			Location: loc,
			Health:   health,
			Power:    power,
			Viewed:   viewed,
		}
		if err := normalise(&rec); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if seen[rec.ID] {
			return nil, fmt.Errorf("line %d: duplicate id %q", line, rec.ID)
		}
		seen[rec.ID] = true
		records = append(records, rec)
	}
	return records, nil
}

// WriteCSV writes records with the header ReadCSV expects.
func WriteCSV(w io.Writer, records []grid.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvColumns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, r := range records {
		row := []string{r.ID, r.Name, string(r.Location), string(r.Health), strconv.Itoa(r.Power), strconv.FormatBool(r.Viewed)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// normalise validates enum fields and fills a missing id.
func normalise(r *grid.Record) error {
	loc, err := grid.ParseLocation(string(r.Location))
	if err != nil {
		return err
	}
	health, err := grid.ParseHealth(string(r.Health))
	if err != nil {
		return err
	}
	r.Location, r.Health = loc, health
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
