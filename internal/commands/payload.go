package commands

import (
	"strings"
)

// Arrow is a drawing annotation between two squares, e.g. "Ge1e4".
type Arrow struct {
	Colour byte // G, R, Y or B
	From   string
	To     string
}

// Circle is a drawing annotation on a single square, e.g. "Rd4".
type Circle struct {
	Colour byte
	Square string
}

// Annotations is the decoded vendor command payload attached to a node.
// At most one Annotations value exists per node; successive commands in the
// same comment fill in its fields.
type Annotations struct {
	Bookmark   bool
	Eval       string
	Clock      string
	Arrows     []Arrow
	Circles    []Circle
	Assessment AssessmentID
}

// IsZero reports whether no command has populated the payload.
func (a *Annotations) IsZero() bool {
	return a == nil || (!a.Bookmark && a.Eval == "" && a.Clock == "" &&
		len(a.Arrows) == 0 && len(a.Circles) == 0 && a.Assessment == AssessmentNone)
}

// Decode interprets the body of one embedded command (the text between
// "[%" and "]") and merges its payload into ann. The returned identifier is
// CommandNone for unrecognized tags, in which case ann is left unchanged.
func Decode(body string, ann *Annotations) CommandID {
	fields := strings.Fields(body)
	if len(fields) == 0 {
		return CommandNone
	}

	id := IDForTag(fields[0])
	params := fields[1:]

	switch id {
	case CommandBookmark:
		ann.Bookmark = true

	case CommandEngineEval:
		ann.Eval = strings.Join(params, " ")

	case CommandClock:
		if len(params) > 0 {
			ann.Clock = params[0]
		}

	case CommandArrows:
		for _, spec := range splitSpecs(params) {
			if len(spec) == 5 && isSpecColour(spec[0]) &&
				isSquare(spec[1:3]) && isSquare(spec[3:5]) {
				ann.Arrows = append(ann.Arrows, Arrow{
					Colour: spec[0],
					From:   spec[1:3],
					To:     spec[3:5],
				})
			}
		}

	case CommandCircles:
		for _, spec := range splitSpecs(params) {
			if len(spec) == 3 && isSpecColour(spec[0]) && isSquare(spec[1:3]) {
				ann.Circles = append(ann.Circles, Circle{
					Colour: spec[0],
					Square: spec[1:3],
				})
			}
		}

	case CommandAssessment:
		if len(params) > 0 {
			ann.Assessment = AssessmentForTag(params[0])
		}
	}

	return id
}

// isSpecColour matches the colour letters used by drawing specs.
func isSpecColour(c byte) bool {
	switch c {
	case 'G', 'R', 'Y', 'B':
		return true
	default:
		return false
	}
}

// isSquare matches a two-character board square like "e4".
func isSquare(s string) bool {
	return len(s) == 2 &&
		s[0] >= 'a' && s[0] <= 'h' &&
		s[1] >= '1' && s[1] <= '8'
}

// splitSpecs splits comma-separated drawing specs, tolerating spaces
// around the commas. Malformed entries are dropped by the caller.
func splitSpecs(params []string) []string {
	var specs []string
	for _, p := range params {
		for _, s := range strings.Split(p, ",") {
			if s != "" {
				specs = append(specs, s)
			}
		}
	}
	return specs
}

// Encode renders the populated payload fields back to their command form,
// one "[%tag params]" string per command, in table order.
func Encode(ann *Annotations) []string {
	if ann.IsZero() {
		return nil
	}

	var out []string
	if ann.Bookmark {
		out = append(out, "[%"+TagForID(CommandBookmark)+"]")
	}
	if ann.Eval != "" {
		out = append(out, "[%"+TagForID(CommandEngineEval)+" "+ann.Eval+"]")
	}
	if ann.Clock != "" {
		out = append(out, "[%"+TagForID(CommandClock)+" "+ann.Clock+"]")
	}
	if len(ann.Arrows) > 0 {
		specs := make([]string, 0, len(ann.Arrows))
		for _, a := range ann.Arrows {
			specs = append(specs, string(a.Colour)+a.From+a.To)
		}
		out = append(out, "[%"+TagForID(CommandArrows)+" "+strings.Join(specs, ",")+"]")
	}
	if len(ann.Circles) > 0 {
		specs := make([]string, 0, len(ann.Circles))
		for _, c := range ann.Circles {
			specs = append(specs, string(c.Colour)+c.Square)
		}
		out = append(out, "[%"+TagForID(CommandCircles)+" "+strings.Join(specs, ",")+"]")
	}
	if ann.Assessment != AssessmentNone {
		out = append(out, "[%"+TagForID(CommandAssessment)+" "+TagForAssessment(ann.Assessment)+"]")
	}
	return out
}
