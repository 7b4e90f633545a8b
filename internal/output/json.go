package output

import (
	"encoding/json"
	"io"

	"github.com/pmoulton/workbook-parse-go/internal/chess"
	"github.com/pmoulton/workbook-parse-go/internal/commands"
	"github.com/pmoulton/workbook-parse-go/internal/engine"
	"github.com/pmoulton/workbook-parse-go/internal/tree"
)

// JSONHeader is one header pair in JSON output; duplicates and order are
// preserved, which is why headers are not a map.
type JSONHeader struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// JSONTree represents one parsed record in JSON format.
type JSONTree struct {
	Headers  []JSONHeader `json:"headers,omitempty"`
	RootFEN  string       `json:"rootFEN"`
	PlyCount int          `json:"plyCount"`
	Moves    []JSONMove   `json:"moves,omitempty"`
}

// JSONMove represents one ply in JSON format.
type JSONMove struct {
	ID          int              `json:"id"`
	MoveNumber  uint             `json:"moveNumber"`
	Colour      string           `json:"colour"`
	Move        string           `json:"move"`
	FEN         string           `json:"fen,omitempty"`
	Comment     string           `json:"comment,omitempty"`
	NAGs        []int            `json:"nags,omitempty"`
	Annotations *JSONAnnotations `json:"annotations,omitempty"`
	Variations  [][]JSONMove     `json:"variations,omitempty"`
}

// JSONAnnotations carries the decoded vendor command payload.
type JSONAnnotations struct {
	Bookmark   bool     `json:"bookmark,omitempty"`
	Eval       string   `json:"eval,omitempty"`
	Clock      string   `json:"clock,omitempty"`
	Arrows     []string `json:"arrows,omitempty"`
	Circles    []string `json:"circles,omitempty"`
	Assessment string   `json:"assessment,omitempty"`
}

// JSONOutput holds multiple records for array output.
type JSONOutput struct {
	Records []*JSONTree `json:"records"`
}

// JSONWriter batches records and writes them as a JSON array on Close.
type JSONWriter struct {
	w     io.Writer
	trees []*tree.Tree
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// WriteTree buffers a record for JSON output.
func (jw *JSONWriter) WriteTree(t *tree.Tree) error {
	jw.trees = append(jw.trees, t)
	return nil
}

// Close writes all buffered records as a JSON array.
func (jw *JSONWriter) Close() error {
	out := &JSONOutput{Records: make([]*JSONTree, 0, len(jw.trees))}
	for _, t := range jw.trees {
		out.Records = append(out.Records, TreeToJSON(t))
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// TreeToJSON converts a parsed record to its JSON form.
func TreeToJSON(t *tree.Tree) *JSONTree {
	jt := &JSONTree{
		PlyCount: t.PlyCount(),
	}
	for _, h := range t.Headers {
		jt.Headers = append(jt.Headers, JSONHeader{Key: h.Key, Value: h.Value})
	}
	if t.Root != nil {
		jt.RootFEN = engine.PositionToFEN(t.Root.Position)
		jt.Moves = convertLine(t.Root)
	}
	return jt
}

// convertLine converts the continuation of parent, nesting side variations
// under the mainline move they diverge from.
func convertLine(parent *tree.Node) []JSONMove {
	var moves []JSONMove
	node := parent

	for node.Mainline() != nil {
		main := node.Mainline()
		jm := convertNode(main)

		for _, alt := range node.Children[1:] {
			line := append([]JSONMove{convertNode(alt)}, convertLine(alt)...)
			jm.Variations = append(jm.Variations, line)
		}

		moves = append(moves, jm)
		node = main
	}
	return moves
}

// convertNode converts one ply.
func convertNode(n *tree.Node) JSONMove {
	colour := chess.White
	if n.Position.ToMove == chess.White {
		colour = chess.Black
	}

	jm := JSONMove{
		ID:         n.ID,
		MoveNumber: n.Position.MoveNumber,
		Colour:     colour.String(),
		Move:       n.MoveText,
		FEN:        engine.PositionToFEN(n.Position),
		Comment:    n.Comment,
		NAGs:       n.NAGs,
	}

	if n.Annotations != nil {
		jm.Annotations = convertAnnotations(n.Annotations)
	}
	return jm
}

// convertAnnotations flattens the payload into JSON-friendly strings.
func convertAnnotations(ann *commands.Annotations) *JSONAnnotations {
	ja := &JSONAnnotations{
		Bookmark: ann.Bookmark,
		Eval:     ann.Eval,
		Clock:    ann.Clock,
	}
	for _, a := range ann.Arrows {
		ja.Arrows = append(ja.Arrows, string(a.Colour)+a.From+a.To)
	}
	for _, c := range ann.Circles {
		ja.Circles = append(ja.Circles, string(c.Colour)+c.Square)
	}
	if ann.Assessment != commands.AssessmentNone {
		ja.Assessment = commands.TagForAssessment(ann.Assessment)
	}
	return ja
}
