// Package emit serializes the entity tree to the output YAML document.
// The document is built as an explicit yaml.Node tree so the emitter
// controls three things the plain marshaler cannot: key order follows
// entity declaration order, absent fields produce no key while null
// fields produce an explicit null, and long text scalars switch to
// block style with word-boundary wrapping.
package emit

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/muesli/reflow/wordwrap"
	"gopkg.in/yaml.v3"

	"github.com/rubenxyz/tsv-to-yaml-converter/internal/model"
)

// BlockThreshold is the scalar length above which text is emitted in
// block style instead of inline.
const BlockThreshold = 80

const (
	defaultIndent = 2
	defaultWidth  = 120
)

// Emitter renders a Project to YAML text. Indent and Width are layout
// configuration; they do not affect the entity tree.
type Emitter struct {
	indent int
	width  int
}

// New returns an Emitter. Out-of-range values fall back to the
// defaults (indent 2, width 120).
func New(indent, width int) *Emitter {
	if indent < 1 || indent > 8 {
		indent = defaultIndent
	}
	if width < BlockThreshold {
		width = defaultWidth
	}
	return &Emitter{indent: indent, width: width}
}

// Marshal renders the document, including the blank-line layout pass.
func (e *Emitter) Marshal(project *model.Project) ([]byte, error) {
	root := mapping()
	addKey(root, "project", e.projectNode(project))

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(e.indent)
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize YAML: %w", err)
	}

	return insertSeparators(buf.Bytes()), nil
}

// WriteFile renders the document and writes it atomically via a temp
// file and rename, so no partial document is ever visible at the
// destination path.
func (e *Emitter) WriteFile(project *model.Project, path string) error {
	data, err := e.Marshal(project)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

func (e *Emitter) projectNode(p *model.Project) *yaml.Node {
	m := mapping()
	addKey(m, "title", e.textValueNode(p.Title))
	addKey(m, "total_shots", intNode(p.TotalShots))

	phases := sequence()
	for i := range p.Phases {
		phases.Content = append(phases.Content, e.phaseNode(&p.Phases[i]))
	}
	addKey(m, "phases", phases)
	return m
}

func (e *Emitter) phaseNode(p *model.Phase) *yaml.Node {
	m := mapping()
	addKey(m, "phase_number", intNode(p.Number))

	tp := mapping()
	addKey(tp, "start", e.markerNode(p.TimePeriod.Start))
	addKey(tp, "end", e.markerNode(p.TimePeriod.End))
	addKey(m, "time_period", tp)

	scenes := sequence()
	for i := range p.Scenes {
		scenes.Content = append(scenes.Content, e.sceneNode(&p.Scenes[i]))
	}
	addKey(m, "scenes", scenes)
	return m
}

func (e *Emitter) sceneNode(s *model.Scene) *yaml.Node {
	m := mapping()
	addKey(m, "scene_number", intNode(s.Number))
	e.addText(m, "comment", s.Comment)
	e.addText(m, "period", s.Period)
	e.addText(m, "season", s.Season)
	e.addText(m, "weather", s.Weather)

	loc := mapping()
	e.addText(loc, "type", s.Location.Type)
	e.addText(loc, "location_name", s.Location.Name)
	addKey(m, "location", loc)

	e.addText(m, "diurnal", s.Diurnal)
	e.addText(m, "light_source", s.LightSource)

	shots := sequence()
	for i := range s.Shots {
		shots.Content = append(shots.Content, e.shotNode(&s.Shots[i]))
	}
	addKey(m, "shots", shots)
	return m
}

func (e *Emitter) shotNode(s *model.Shot) *yaml.Node {
	m := mapping()
	addKey(m, "shot_number", intNode(s.Number))
	e.addText(m, "oref", s.Oref)
	e.addText(m, "camera_angle", s.CameraAngle)
	e.addText(m, "specific_area", s.SpecificArea)
	e.addText(m, "description", s.Description)

	if s.CameraMovement != nil {
		cm := mapping()
		e.addText(cm, "speed", s.CameraMovement.Speed)
		e.addText(cm, "type", s.CameraMovement.Type)
		e.addText(cm, "video_prompt", s.CameraMovement.VideoPrompt)
		addKey(m, "camera_movement", cm)
	}
	if s.ShotTimecode != nil {
		tc := mapping()
		e.addText(tc, "in", s.ShotTimecode.In)
		e.addText(tc, "out", s.ShotTimecode.Out)
		addKey(m, "shot_timecode", tc)
	}

	e.addText(m, "image_prompt", s.ImagePrompt)
	return m
}

// addText appends a key/value pair for a tri-state field. Unset fields
// emit nothing at all; null fields emit an explicit null.
func (e *Emitter) addText(m *yaml.Node, key string, t model.Text) {
	if !t.IsSet() {
		return
	}
	if t.IsNull() {
		addKey(m, key, nullNode())
		return
	}
	addKey(m, key, e.textValueNode(t.Value()))
}

// textValueNode chooses the scalar style: block (literal, wrapped at
// word boundaries at the configured width) above BlockThreshold,
// inline otherwise.
func (e *Emitter) textValueNode(v string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
	if utf8.RuneCountInString(v) > BlockThreshold {
		n.Value = wordwrap.String(v, e.width)
		n.Style = yaml.LiteralStyle
	}
	return n
}

// markerNode serializes a time-period boundary: integer when the value
// parses as one, text otherwise, null when null.
func (e *Emitter) markerNode(t model.Text) *yaml.Node {
	if !t.IsSet() || t.IsNull() {
		return nullNode()
	}
	if n, err := strconv.Atoi(t.Value()); err == nil {
		return intNode(n)
	}
	return e.textValueNode(t.Value())
}

func mapping() *yaml.Node {
	return &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
}

func sequence() *yaml.Node {
	return &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
}

func addKey(m *yaml.Node, key string, value *yaml.Node) {
	m.Content = append(m.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		value,
	)
}

func intNode(n int) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(n)}
}

func nullNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}

// insertSeparators adds the blank-line layout between entity blocks:
// one blank line before each phase and shot item, two before each
// scene item.
func insertSeparators(data []byte) []byte {
	lines := strings.Split(string(data), "\n")
	formatted := make([]string, 0, len(lines)+len(lines)/4)

	for _, line := range lines {
		switch {
		case strings.Contains(line, "- phase_number:"):
			formatted = append(formatted, "")
		case strings.Contains(line, "- scene_number:"):
			formatted = append(formatted, "", "")
		case strings.Contains(line, "- shot_number:"):
			formatted = append(formatted, "")
		}
		formatted = append(formatted, line)
	}

	return []byte(strings.Join(formatted, "\n"))
}
