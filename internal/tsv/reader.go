// Package tsv reads tab-separated shot-list files into ordered rows
// addressable by column name. It tolerates UTF-8 BOMs, variable field
// counts, and blank lines; all values are read as raw strings and left
// for the normalizer to clean.
package tsv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Column names of the shot-list schema. Row lookups use these
// constants rather than bare strings.
const (
	ColPhaseNum     = "PHASE_NUM"
	ColPhaseStart   = "PHASE_START"
	ColPhaseEnd     = "PHASE_END"
	ColSceneNum     = "SCENE_NUM"
	ColSceneComment = "SCENE_CONTEXT_COMMENT"
	ColPeriod       = "PERIOD"
	ColSeason       = "SEASON"
	ColWeather      = "WEATHER"
	ColLocType      = "LOC_TYPE"
	ColLocation     = "LOCATION"
	ColDiurnal      = "DIURNAL"
	ColLightSource  = "LIGHT_SOURCE(S)"
	ColShotNum      = "SHOT_NUM"
	ColOref         = "OREF"
	ColAngle        = "ANGLE"
	ColSpecificArea = "SPECIFIC AREA"
	ColDescription  = "SHOT_DESCRIPTION"
	ColMoveSpeed    = "MOVE_SPEED"
	ColMoveType     = "MOVE_TYPE"
	ColVideoPrompt  = "VIDEO_PROMPT"
	ColIn           = "IN"
	ColOut          = "OUT"
	ColImagePrompt  = "IMAGE_PROMPT"
)

// Row is one data row, indexable by column name.
type Row struct {
	index  map[string]int
	fields []string
}

// Get returns the raw value for a column, stripped of BOM and
// zero-width characters and surrounding whitespace. Unknown columns
// and short rows return "".
func (r Row) Get(col string) string {
	i, ok := r.index[col]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return scrub(r.fields[i])
}

// Table is a fully loaded TSV file.
type Table struct {
	Columns []string
	Rows    []Row
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.Rows) }

// scrub removes the characters spreadsheet exports tend to leak into
// cell values.
func scrub(s string) string {
	s = strings.ReplaceAll(s, "\ufeff", "")
	s = strings.ReplaceAll(s, "\u200b", "")
	return strings.TrimSpace(s)
}

// ReadFile loads a TSV file. The first record is the header; blank
// lines are skipped. Rows may have fewer fields than the header.
func ReadFile(path string) (*Table, error) {
	// #nosec G304 - controlled path from CLI
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open TSV file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse TSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("file has no header row")
	}

	header := records[0]
	columns := make([]string, len(header))
	index := make(map[string]int, len(header))
	for i, col := range header {
		name := scrub(col)
		columns[i] = name
		index[name] = i
	}

	table := &Table{Columns: columns}
	for _, rec := range records[1:] {
		if isBlank(rec) {
			continue
		}
		table.Rows = append(table.Rows, Row{index: index, fields: rec})
	}

	return table, nil
}

// isBlank reports whether every field in the record is empty after
// scrubbing. Trailing newline artifacts produce such rows.
func isBlank(rec []string) bool {
	for _, v := range rec {
		if scrub(v) != "" {
			return false
		}
	}
	return true
}

// Validation describes the result of a structural check on one file.
type Validation struct {
	Valid   bool
	Rows    int
	Columns []string
	Err     string
}

// Validate parses the file and reports its shape without converting it.
func Validate(path string) Validation {
	table, err := ReadFile(path)
	if err != nil {
		return Validation{Err: err.Error()}
	}
	return Validation{Valid: true, Rows: table.Len(), Columns: table.Columns}
}

// NewRow builds a Row from explicit column/value pairs. Intended for
// tests and for callers that synthesize rows outside a file.
func NewRow(values map[string]string) Row {
	index := make(map[string]int, len(values))
	fields := make([]string, 0, len(values))
	for col, v := range values {
		index[col] = len(fields)
		fields = append(fields, v)
	}
	return Row{index: index, fields: fields}
}
