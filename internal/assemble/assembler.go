// Package assemble converts the raw groups produced by the hierarchy
// builder into typed entities, applying the conditional-field and
// optional-subtree inclusion rules.
package assemble

import (
	"github.com/rubenxyz/tsv-to-yaml-converter/internal/hierarchy"
	"github.com/rubenxyz/tsv-to-yaml-converter/internal/model"
	"github.com/rubenxyz/tsv-to-yaml-converter/internal/normalize"
	"github.com/rubenxyz/tsv-to-yaml-converter/internal/tsv"
)

// OrefSentinel is the single value that causes the oref field to be
// attached to a shot. Any other value, including an explicit "FALSE",
// omits the field entirely.
const OrefSentinel = "TRUE"

// Options control optional-subtree inclusion. The two exclusions are
// independent and are supplied by the caller; nothing here infers them
// from the data.
type Options struct {
	NoCameraMovement bool
	NoShotTimecode   bool
}

// Project builds the full entity tree for one file.
func Project(title string, totalShots int, phases []*hierarchy.PhaseGroup, opts Options) *model.Project {
	project := &model.Project{
		Title:      title,
		TotalShots: totalShots,
	}
	for _, pg := range phases {
		project.Phases = append(project.Phases, phase(pg, opts))
	}
	return project
}

func phase(pg *hierarchy.PhaseGroup, opts Options) model.Phase {
	p := model.Phase{
		Number: pg.Number,
		TimePeriod: model.TimePeriod{
			Start: pg.First.Get(tsv.ColPhaseStart),
			End:   pg.First.Get(tsv.ColPhaseEnd),
		},
	}
	for _, sg := range pg.Scenes {
		p.Scenes = append(p.Scenes, scene(sg, opts))
	}
	return p
}

// scene takes its descriptive fields from the row that opened the
// scene; later rows in the same run only contribute shots.
func scene(sg *hierarchy.SceneGroup, opts Options) model.Scene {
	first := sg.First
	s := model.Scene{
		Number:  sg.Number,
		Comment: first.Get(tsv.ColSceneComment),
		Period:  first.Get(tsv.ColPeriod),
		Season:  first.Get(tsv.ColSeason),
		Weather: first.Get(tsv.ColWeather),
		Location: model.Location{
			Type: first.Get(tsv.ColLocType),
			Name: first.Get(tsv.ColLocation),
		},
		Diurnal:     first.Get(tsv.ColDiurnal),
		LightSource: first.Get(tsv.ColLightSource),
	}
	for _, sr := range sg.Shots {
		s.Shots = append(s.Shots, shot(sr, opts))
	}
	return s
}

func shot(sr hierarchy.ShotRow, opts Options) model.Shot {
	row := sr.Row
	sh := model.Shot{
		Number:       sr.Number,
		Oref:         oref(row),
		CameraAngle:  row.Get(tsv.ColAngle),
		SpecificArea: row.Get(tsv.ColSpecificArea),
		Description:  row.Get(tsv.ColDescription),
		ImagePrompt:  row.Get(tsv.ColImagePrompt),
	}

	if !opts.NoCameraMovement {
		sh.CameraMovement = cameraMovement(row)
	}
	if !opts.NoShotTimecode {
		sh.ShotTimecode = shotTimecode(row)
	}

	return sh
}

// oref applies the sentinel rule: present iff the raw value equals
// OrefSentinel exactly. This is an omission policy, not null coercion.
func oref(row normalize.Row) model.Text {
	t := row.Get(tsv.ColOref)
	if t.IsSet() && !t.IsNull() && t.Value() == OrefSentinel {
		return t
	}
	return model.Unset()
}

// cameraMovement returns the subtree only when at least one underlying
// source field held a value; otherwise the whole group is absent.
func cameraMovement(row normalize.Row) *model.CameraMovement {
	speed := row.Get(tsv.ColMoveSpeed)
	typ := row.Get(tsv.ColMoveType)
	prompt := row.Get(tsv.ColVideoPrompt)
	if !anyValue(speed, typ, prompt) {
		return nil
	}
	return &model.CameraMovement{Speed: speed, Type: typ, VideoPrompt: prompt}
}

func shotTimecode(row normalize.Row) *model.ShotTimecode {
	in := row.Get(tsv.ColIn)
	out := row.Get(tsv.ColOut)
	if !anyValue(in, out) {
		return nil
	}
	return &model.ShotTimecode{In: in, Out: out}
}

func anyValue(fields ...model.Text) bool {
	for _, f := range fields {
		if f.IsSet() && !f.IsNull() {
			return true
		}
	}
	return false
}
