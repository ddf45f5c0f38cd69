package normalize

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/rubenxyz/tsv-to-yaml-converter/internal/model"
	"github.com/rubenxyz/tsv-to-yaml-converter/internal/tsv"
)

func TestCleanNullCoercion(t *testing.T) {
	n := New(nil)

	for _, raw := range []string{"", "   ", "NA", "N/A", "NaN", "null", "NULL", "none", "#N/A"} {
		got := n.Clean(tsv.ColDescription, raw)
		if !got.IsNull() {
			t.Errorf("Clean(%q) = %v, want null", raw, got)
		}
	}
}

func TestCleanDisplayFields(t *testing.T) {
	n := New(nil)

	tests := []struct {
		col  string
		raw  string
		want string
	}{
		{tsv.ColLocation, "LIVING_ROOM", "Living room"},
		{tsv.ColSpecificArea, "WIDE_SHOT", "Wide shot"},
		{tsv.ColPeriod, "VICTORIAN", "Victorian"},
		{tsv.ColSeason, "LATE_SUMMER", "Late summer"},
		{tsv.ColWeather, "HEAVY_RAIN", "Heavy rain"},
		{tsv.ColMoveSpeed, "VERY_SLOW", "Very slow"},
		{tsv.ColMoveType, "DOLLY", "Dolly"},
	}

	for _, tc := range tests {
		got := n.Clean(tc.col, tc.raw)
		if got.Value() != tc.want {
			t.Errorf("Clean(%s, %q) = %q, want %q", tc.col, tc.raw, got.Value(), tc.want)
		}
	}
}

func TestCleanPassThrough(t *testing.T) {
	n := New(nil)

	// Non-display fields keep their raw form aside from trimming.
	got := n.Clean(tsv.ColDescription, "  A QUIET_OPENING shot  ")
	if got.Value() != "A QUIET_OPENING shot" {
		t.Errorf("description should pass through, got %q", got.Value())
	}

	got = n.Clean(tsv.ColOref, "TRUE")
	if got.Value() != "TRUE" {
		t.Errorf("OREF should pass through unmodified, got %q", got.Value())
	}
}

func TestCleanMappings(t *testing.T) {
	n := New(map[string]map[string]string{
		tsv.ColDiurnal: {"GH": "Golden Hour"},
		tsv.ColLocType: {"EXT": "Exterior"},
	})

	if got := n.Clean(tsv.ColDiurnal, "GH").Value(); got != "Golden Hour" {
		t.Errorf("expected mapped Golden Hour, got %q", got)
	}
	if got := n.Clean(tsv.ColLocType, "EXT").Value(); got != "Exterior" {
		t.Errorf("expected mapped Exterior, got %q", got)
	}
	// Unmapped tokens fall through untouched for non-display fields.
	if got := n.Clean(tsv.ColDiurnal, "NIGHT").Value(); got != "NIGHT" {
		t.Errorf("expected NIGHT pass-through, got %q", got)
	}
}

func TestSentenceCase(t *testing.T) {
	tests := map[string]string{
		"WIDE_SHOT":  "Wide shot",
		"pan":        "Pan",
		"VERY_SLOW":  "Very slow",
		"ALREADY ok": "Already ok",
		"":           "",
	}
	for in, want := range tests {
		if got := SentenceCase(in); got != want {
			t.Errorf("SentenceCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestRows(t *testing.T) {
	table := &tsv.Table{
		Columns: []string{tsv.ColShotNum, tsv.ColWeather, tsv.ColDescription},
		Rows: []tsv.Row{
			tsv.NewRow(map[string]string{
				tsv.ColShotNum:     "1",
				tsv.ColWeather:     "LIGHT_FOG",
				tsv.ColDescription: "",
			}),
		},
	}

	rows := New(nil).Rows(table)
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	want := Row{
		tsv.ColShotNum:     model.String("1"),
		tsv.ColWeather:     model.String("Light fog"),
		tsv.ColDescription: model.Null(),
	}
	if diff := cmp.Diff(want, rows[0], cmp.AllowUnexported(model.Text{})); diff != "" {
		t.Errorf("normalized row mismatch (-want +got):\n%s", diff)
	}
}

func TestRowGetMissingColumn(t *testing.T) {
	row := Row{}
	if got := row.Get(tsv.ColWeather); !got.IsNull() {
		t.Errorf("missing column should read as null, got %v", got)
	}
}
