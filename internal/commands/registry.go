// Package commands provides the closed registry of vendor commands that may
// be embedded in movetext comments as [%tag params], plus the decoding and
// encoding of their payloads.
package commands

// CommandID identifies a vendor command.
type CommandID int

const (
	CommandNone CommandID = iota
	CommandBookmark
	CommandEngineEval
	CommandClock
	CommandArrows
	CommandCircles
	CommandAssessment
)

// AssessmentID identifies a move assessment severity.
type AssessmentID int

const (
	AssessmentNone AssessmentID = iota
	AssessmentBest
	AssessmentGood
	AssessmentInaccuracy
	AssessmentMistake
	AssessmentBlunder
)

// The command and assessment tables are fixed at process start and never
// change at runtime. Reverse lookups return the first entry with a matching
// identifier, so the slice order is part of the contract.
type commandEntry struct {
	Tag string
	ID  CommandID
}

type assessmentEntry struct {
	Tag string
	ID  AssessmentID
}

var commandTable = []commandEntry{
	{"chf-bkm", CommandBookmark},
	{"eval", CommandEngineEval},
	{"clk", CommandClock},
	{"cal", CommandArrows},
	{"csl", CommandCircles},
	{"chf-ass", CommandAssessment},
}

var assessmentTable = []assessmentEntry{
	{"best", AssessmentBest},
	{"good", AssessmentGood},
	{"inaccuracy", AssessmentInaccuracy},
	{"mistake", AssessmentMistake},
	{"blunder", AssessmentBlunder},
}

var (
	commandByTag    map[string]CommandID
	assessmentByTag map[string]AssessmentID
)

func init() {
	commandByTag = make(map[string]CommandID, len(commandTable))
	for _, e := range commandTable {
		commandByTag[e.Tag] = e.ID
	}
	assessmentByTag = make(map[string]AssessmentID, len(assessmentTable))
	for _, e := range assessmentTable {
		assessmentByTag[e.Tag] = e.ID
	}
}

// IDForTag returns the command identifier for a tag, or CommandNone if the
// tag is empty or unrecognized.
func IDForTag(tag string) CommandID {
	if tag == "" {
		return CommandNone
	}
	if id, ok := commandByTag[tag]; ok {
		return id
	}
	return CommandNone
}

// TagForID returns the tag of the first table entry with the given
// identifier, or an empty string if none matches.
func TagForID(id CommandID) string {
	for _, e := range commandTable {
		if e.ID == id {
			return e.Tag
		}
	}
	return ""
}

// AssessmentForTag returns the assessment identifier for a tag, or
// AssessmentNone if the tag is empty or unrecognized.
func AssessmentForTag(tag string) AssessmentID {
	if tag == "" {
		return AssessmentNone
	}
	if id, ok := assessmentByTag[tag]; ok {
		return id
	}
	return AssessmentNone
}

// TagForAssessment returns the tag of the first table entry with the given
// identifier, or an empty string if none matches.
func TagForAssessment(id AssessmentID) string {
	for _, e := range assessmentTable {
		if e.ID == id {
			return e.Tag
		}
	}
	return ""
}
