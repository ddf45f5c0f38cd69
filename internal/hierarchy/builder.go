// Package hierarchy groups ordered flat rows into the raw
// Phase → Scene → Shot tree. Grouping is by contiguous run: a row's
// phase and scene numbers are compared only against the most recently
// opened phase and scene, never against earlier ones. A number that
// reappears after an intervening different number therefore opens a
// new group rather than reopening the old one, and input order is
// preserved exactly.
package hierarchy

import (
	"fmt"
	"strconv"

	"github.com/rubenxyz/tsv-to-yaml-converter/internal/normalize"
	"github.com/rubenxyz/tsv-to-yaml-converter/internal/tsv"
)

// ShotRow is one input row assigned to a scene.
type ShotRow struct {
	Number int
	Row    normalize.Row
}

// SceneGroup collects the shots of one contiguous scene run. First is
// the row that opened the scene; descriptive scene fields come from it
// alone.
type SceneGroup struct {
	Number int
	First  normalize.Row
	Shots  []ShotRow
}

// PhaseGroup collects the scenes of one contiguous phase run. First is
// the row that opened the phase and supplies its time period.
type PhaseGroup struct {
	Number int
	First  normalize.Row
	Scenes []*SceneGroup
}

// acc is the fold state threaded through the row pass: the groups
// built so far plus the keys of the open phase and scene. Only the
// most recent keys matter; there is no lookup table.
type acc struct {
	phases    []*PhaseGroup
	openPhase int
	openScene int
	hasPhase  bool
	hasScene  bool
}

// Build folds the normalized rows into phase groups. Rows with an
// empty phase or scene number inherit the currently open one; a row
// that has neither a number nor an open group to inherit is an error,
// as is a missing or malformed shot number. Errors identify the
// offending data row (1-based, excluding the header).
func Build(rows []normalize.Row) ([]*PhaseGroup, error) {
	state := acc{}
	for i, row := range rows {
		next, err := fold(state, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		state = next
	}
	return state.phases, nil
}

func fold(state acc, row normalize.Row) (acc, error) {
	phaseNum, hasPhaseNum, err := intField(row, tsv.ColPhaseNum)
	if err != nil {
		return state, err
	}
	sceneNum, hasSceneNum, err := intField(row, tsv.ColSceneNum)
	if err != nil {
		return state, err
	}
	shotNum, hasShotNum, err := intField(row, tsv.ColShotNum)
	if err != nil {
		return state, err
	}
	if !hasShotNum {
		return state, fmt.Errorf("missing required field %s", tsv.ColShotNum)
	}

	// Carry forward: a blank number keeps the current open group.
	if !hasPhaseNum {
		if !state.hasPhase {
			return state, fmt.Errorf("missing %s and no phase open to inherit", tsv.ColPhaseNum)
		}
		phaseNum = state.openPhase
	}
	if !hasSceneNum {
		if !state.hasScene {
			return state, fmt.Errorf("missing %s and no scene open to inherit", tsv.ColSceneNum)
		}
		sceneNum = state.openScene
	}

	newPhase := !state.hasPhase || phaseNum != state.openPhase
	if newPhase {
		state.phases = append(state.phases, &PhaseGroup{Number: phaseNum, First: row})
		state.openPhase = phaseNum
		state.hasPhase = true
		state.hasScene = false
	}
	phase := state.phases[len(state.phases)-1]

	if !state.hasScene || sceneNum != state.openScene {
		phase.Scenes = append(phase.Scenes, &SceneGroup{Number: sceneNum, First: row})
		state.openScene = sceneNum
		state.hasScene = true
	}
	scene := phase.Scenes[len(phase.Scenes)-1]

	// Shots are always leaves: one per row, never merged.
	scene.Shots = append(scene.Shots, ShotRow{Number: shotNum, Row: row})

	return state, nil
}

// intField reads a numeric field. Null values report absent; present
// values must parse as an integer (a float with an integral value is
// accepted, matching spreadsheet exports like "3.0").
func intField(row normalize.Row, col string) (int, bool, error) {
	t := row.Get(col)
	if !t.IsSet() || t.IsNull() {
		return 0, false, nil
	}
	v := t.Value()
	if n, err := strconv.Atoi(v); err == nil {
		return n, true, nil
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil && f == float64(int(f)) {
		return int(f), true, nil
	}
	return 0, false, fmt.Errorf("invalid %s value %q", col, v)
}

// Shots counts the shot rows across all groups.
func Shots(phases []*PhaseGroup) int {
	n := 0
	for _, p := range phases {
		for _, s := range p.Scenes {
			n += len(s.Shots)
		}
	}
	return n
}
