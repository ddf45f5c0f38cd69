// Package model defines the entity tree produced by the converter:
// Project → Phase → Scene → Shot, plus the tri-state Text scalar used
// for every optional field.
package model

// Text is a tri-state text scalar: not-set, explicit null, or a value.
//
// The distinction matters at emission time. A null field is written to
// the document as a YAML null; a not-set field is not written at all.
// Collapsing the two into a single nullable type would make it
// impossible to express fields like oref, which must be omitted
// entirely rather than serialized as null.
type Text struct {
	set  bool
	null bool
	val  string
}

// String returns a Text holding a concrete value.
func String(v string) Text {
	return Text{set: true, val: v}
}

// Null returns a Text that is present but explicitly null.
func Null() Text {
	return Text{set: true, null: true}
}

// Unset returns a Text that is absent. Absent fields produce no key in
// the emitted document.
func Unset() Text {
	return Text{}
}

// IsSet reports whether the field should appear in the document at all.
func (t Text) IsSet() bool { return t.set }

// IsNull reports whether the field is present with an explicit null.
func (t Text) IsNull() bool { return t.set && t.null }

// Value returns the concrete value. It is only meaningful when IsSet
// is true and IsNull is false; otherwise it returns "".
func (t Text) Value() string {
	if !t.set || t.null {
		return ""
	}
	return t.val
}

// Project is the root of the emitted document.
type Project struct {
	Title      string
	TotalShots int
	Phases     []Phase
}

// Phase is a top-level grouping of scenes sharing a declared sequence
// number and time span.
type Phase struct {
	Number     int
	TimePeriod TimePeriod
	Scenes     []Scene
}

// TimePeriod bounds a phase. Start and End are numeric or textual time
// markers; the emitter serializes values that parse as integers with an
// integer tag and everything else as text.
type TimePeriod struct {
	Start Text
	End   Text
}

// Scene is a mid-level grouping of shots sharing descriptive and
// environmental attributes. Field order here is the order keys appear
// in the emitted document.
type Scene struct {
	Number      int
	Comment     Text
	Period      Text
	Season      Text
	Weather     Text
	Location    Location
	Diurnal     Text
	LightSource Text
	Shots       []Shot
}

// Location identifies where a scene takes place.
type Location struct {
	Type Text
	Name Text
}

// Shot is the leaf unit carrying camera and timing detail.
//
// Oref is Unset unless the source value was exactly the sentinel
// "TRUE"; an Unset Oref produces no key. CameraMovement and
// ShotTimecode are nil when the subtree is absent as a unit.
type Shot struct {
	Number         int
	Oref           Text
	CameraAngle    Text
	SpecificArea   Text
	Description    Text
	CameraMovement *CameraMovement
	ShotTimecode   *ShotTimecode
	ImagePrompt    Text
}

// CameraMovement describes how the camera moves during a shot. The
// group is attached to a Shot only when at least one source field was
// present and the caller did not exclude it.
type CameraMovement struct {
	Speed       Text
	Type        Text
	VideoPrompt Text
}

// ShotTimecode holds the in/out timecodes for a shot. Presence rules
// match CameraMovement, toggled independently.
type ShotTimecode struct {
	In  Text
	Out Text
}

// Stats are the derived counts reported after emitting a project.
type Stats struct {
	Phases int
	Scenes int
	Shots  int
}

// Count walks the tree and tallies phases, scenes, and shots.
func (p *Project) Count() Stats {
	var s Stats
	s.Phases = len(p.Phases)
	for _, ph := range p.Phases {
		s.Scenes += len(ph.Scenes)
		for _, sc := range ph.Scenes {
			s.Shots += len(sc.Shots)
		}
	}
	return s
}
