// Package normalize cleans raw TSV cell values: null coercion for
// empty and NA-like placeholders, optional token→display mappings, and
// sentence casing for the display-field subset.
package normalize

import (
	"strings"
	"unicode"

	"github.com/rubenxyz/tsv-to-yaml-converter/internal/model"
	"github.com/rubenxyz/tsv-to-yaml-converter/internal/tsv"
)

// naPlaceholders are raw values coerced to null. The set mirrors the
// markers spreadsheet tools write for missing data.
var naPlaceholders = map[string]struct{}{
	"NA":   {},
	"N/A":  {},
	"n/a":  {},
	"NaN":  {},
	"nan":  {},
	"NAN":  {},
	"null": {},
	"NULL": {},
	"none": {},
	"NONE": {},
	"None": {},
	"#N/A": {},
}

// displayFields are the columns whose upper-snake-case tokens get
// converted to sentence case for human-readable output.
var displayFields = map[string]struct{}{
	tsv.ColLocation:     {},
	tsv.ColSpecificArea: {},
	tsv.ColPeriod:       {},
	tsv.ColSeason:       {},
	tsv.ColWeather:      {},
	tsv.ColMoveSpeed:    {},
	tsv.ColMoveType:     {},
}

// Row is a normalized row: every column resolved to a tri-state value.
type Row map[string]model.Text

// Get returns the normalized value for a column. Missing columns are
// null; the builder and assembler never distinguish a column absent
// from the file from one that held no data.
func (r Row) Get(col string) model.Text {
	if t, ok := r[col]; ok {
		return t
	}
	return model.Null()
}

// Normalizer cleans individual field values. Mappings, when supplied,
// translate raw tokens to display strings per column (e.g. DIURNAL
// "GH" → "Golden Hour") before any cosmetic formatting.
type Normalizer struct {
	mappings map[string]map[string]string
}

// New returns a Normalizer with the given field mappings. A nil map is
// valid and disables mapping lookups.
func New(mappings map[string]map[string]string) *Normalizer {
	return &Normalizer{mappings: mappings}
}

// Clean normalizes one raw cell value for the named column. It never
// fails: unrecognized input degrades to null or to the raw string.
func (n *Normalizer) Clean(col, raw string) model.Text {
	v := strings.TrimSpace(raw)
	if v == "" {
		return model.Null()
	}
	if _, ok := naPlaceholders[v]; ok {
		return model.Null()
	}

	if mapped, ok := n.lookupMapping(col, v); ok {
		v = mapped
	}

	if _, ok := displayFields[col]; ok {
		v = SentenceCase(v)
	}

	return model.String(v)
}

// Rows normalizes every row of a table in input order.
func (n *Normalizer) Rows(table *tsv.Table) []Row {
	rows := make([]Row, 0, table.Len())
	for _, raw := range table.Rows {
		row := make(Row, len(table.Columns))
		for _, col := range table.Columns {
			row[col] = n.Clean(col, raw.Get(col))
		}
		rows = append(rows, row)
	}
	return rows
}

func (n *Normalizer) lookupMapping(col, value string) (string, bool) {
	if n.mappings == nil {
		return "", false
	}
	fieldMap, ok := n.mappings[col]
	if !ok {
		return "", false
	}
	mapped, ok := fieldMap[value]
	return mapped, ok
}

// SentenceCase converts an upper-snake-case token to sentence case:
// underscores become spaces, everything is lowercased, and the first
// letter is capitalized. "WIDE_SHOT" → "Wide shot".
func SentenceCase(v string) string {
	v = strings.ToLower(strings.ReplaceAll(v, "_", " "))
	if v == "" {
		return v
	}
	runes := []rune(v)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
