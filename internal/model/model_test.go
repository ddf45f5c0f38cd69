package model

import "testing"

func TestTextTriState(t *testing.T) {
	v := String("Dolly")
	if !v.IsSet() || v.IsNull() {
		t.Errorf("String value should be set and non-null")
	}
	if v.Value() != "Dolly" {
		t.Errorf("expected Dolly, got %q", v.Value())
	}

	n := Null()
	if !n.IsSet() {
		t.Errorf("Null should be set")
	}
	if !n.IsNull() {
		t.Errorf("Null should be null")
	}
	if n.Value() != "" {
		t.Errorf("Null value should be empty, got %q", n.Value())
	}

	u := Unset()
	if u.IsSet() {
		t.Errorf("Unset should not be set")
	}
	if u.IsNull() {
		t.Errorf("Unset should not report null")
	}
}

func TestTextZeroValueIsUnset(t *testing.T) {
	var zero Text
	if zero.IsSet() {
		t.Errorf("zero Text should be unset")
	}
}

func TestProjectCount(t *testing.T) {
	p := &Project{
		Phases: []Phase{
			{
				Number: 1,
				Scenes: []Scene{
					{Number: 1, Shots: []Shot{{Number: 1}, {Number: 2}}},
					{Number: 2, Shots: []Shot{{Number: 3}}},
				},
			},
			{
				Number: 2,
				Scenes: []Scene{
					{Number: 1, Shots: []Shot{{Number: 4}}},
				},
			},
		},
	}

	stats := p.Count()
	if stats.Phases != 2 {
		t.Errorf("expected 2 phases, got %d", stats.Phases)
	}
	if stats.Scenes != 3 {
		t.Errorf("expected 3 scenes, got %d", stats.Scenes)
	}
	if stats.Shots != 4 {
		t.Errorf("expected 4 shots, got %d", stats.Shots)
	}
}
