package records

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/multierr"

	"github.com/katalvlaran/lvroute/core"
)

// Record tags.
const (
	TagVertex = "VERTEX"
	TagEdge   = "EDGE"
)

var (
	// ErrMalformed marks a line that could not be parsed.
	ErrMalformed = errors.New("records: malformed line")

	// ErrLineBreak marks a vertex field containing CR or LF, which cannot be
	// stored in a one-record-per-line file.
	ErrLineBreak = errors.New("records: field contains a line break")

	// ErrRejected marks a well-formed line the graph refused (duplicate key,
	// unknown endpoint, invalid weight).
	ErrRejected = errors.New("records: rejected line")
)

// Summary counts what Read applied.
type Summary struct {
	VerticesAdded int
	EdgesAdded    int
	Skipped       int
}

// row is one parsed EDGE record awaiting the second pass.
type row struct {
	line   int
	fields []string
}

// Write emits every vertex in key order, then every edge in Edges() order.
func Write(w io.Writer, g *core.Graph) error {
	cw := csv.NewWriter(w)
	for v := range g.Vertices() {
		if err := singleLine(v.Key, v.Name, v.Group); err != nil {
			return fmt.Errorf("records: write vertex %q: %w", v.Key, err)
		}
		if err := cw.Write([]string{TagVertex, v.Key, v.Name, v.Group, formatFloat(v.X), formatFloat(v.Y)}); err != nil {
			return fmt.Errorf("records: write vertex %s: %w", v.Key, err)
		}
	}
	for l := range g.Edges() {
		e := l.Edge
		rec := []string{
			TagEdge, e.From, e.To,
			formatFloat(e.Weight.Distance), formatFloat(e.Weight.Time), formatFloat(e.Weight.Cost),
			strconv.FormatInt(e.Demand, 10),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("records: write edge %s: %w", e.ID, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// maxLine bounds a single record line.
const maxLine = 1 << 20

// Read loads records from r into g. Every line is parsed on its own, so a
// malformed line (a stray quote included) costs only that line. The returned
// error, if any, combines one entry per bad line (see multierr.Errors); an I/O
// failure aborts the load.
func Read(r io.Reader, g *core.Graph) (Summary, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLine)

	var (
		sum   Summary
		errs  error
		edges []row
		line  int
	)

	// 1) vertices now, edges deferred
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields, err := parseLine(text)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%w: line %d: %v", ErrMalformed, line, err))
			sum.Skipped++
			continue
		}

		switch strings.ToUpper(strings.TrimSpace(fields[0])) {
		case TagVertex:
			if err := applyVertex(g, fields); err != nil {
				errs = multierr.Append(errs, fmt.Errorf("line %d: %w", line, err))
				sum.Skipped++
				continue
			}
			sum.VerticesAdded++
		case TagEdge:
			edges = append(edges, row{line: line, fields: fields})
		default:
			errs = multierr.Append(errs, fmt.Errorf("%w: line %d: unknown record %q", ErrMalformed, line, fields[0]))
			sum.Skipped++
		}
	}
	if err := sc.Err(); err != nil {
		return sum, multierr.Append(errs, fmt.Errorf("records: read: %w", err))
	}

	// 2) edges, in file order
	for _, rw := range edges {
		if err := applyEdge(g, rw.fields); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("line %d: %w", rw.line, err))
			sum.Skipped++
			continue
		}
		sum.EdgesAdded++
	}

	return sum, errs
}

// parseLine splits one record line. A quote left open fails here instead of
// running into the following lines.
func parseLine(text string) ([]string, error) {
	cr := csv.NewReader(strings.NewReader(text))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	fields, err := cr.Read()
	if err != nil {
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			return nil, pe.Err
		}

		return nil, err
	}

	return fields, nil
}

func applyVertex(g *core.Graph, f []string) error {
	if len(f) != 4 && len(f) != 6 {
		return fmt.Errorf("%w: VERTEX wants 4 or 6 fields, got %d", ErrMalformed, len(f))
	}
	v := core.Vertex{Key: f[1], Name: strings.TrimSpace(f[2]), Group: strings.TrimSpace(f[3])}
	if len(f) == 6 {
		var err error
		if v.X, err = parseFloat(f[4]); err != nil {
			return fmt.Errorf("%w: x: %v", ErrMalformed, err)
		}
		if v.Y, err = parseFloat(f[5]); err != nil {
			return fmt.Errorf("%w: y: %v", ErrMalformed, err)
		}
	}
	if !g.AddVertex(v) {
		return fmt.Errorf("%w: vertex %q empty or duplicate", ErrRejected, strings.TrimSpace(f[1]))
	}

	return nil
}

func applyEdge(g *core.Graph, f []string) error {
	if len(f) != 6 && len(f) != 7 {
		return fmt.Errorf("%w: EDGE wants 6 or 7 fields, got %d", ErrMalformed, len(f))
	}
	var (
		w   core.Weight
		err error
	)
	if w.Distance, err = parseFloat(f[3]); err != nil {
		return fmt.Errorf("%w: distance: %v", ErrMalformed, err)
	}
	if w.Time, err = parseFloat(f[4]); err != nil {
		return fmt.Errorf("%w: time: %v", ErrMalformed, err)
	}
	if w.Cost, err = parseFloat(f[5]); err != nil {
		return fmt.Errorf("%w: cost: %v", ErrMalformed, err)
	}
	var opts []core.EdgeOption
	if len(f) == 7 {
		d, err := strconv.ParseInt(strings.TrimSpace(f[6]), 10, 64)
		if err != nil || d < 0 {
			return fmt.Errorf("%w: demand %q", ErrMalformed, f[6])
		}
		opts = append(opts, core.WithDemand(d))
	}
	if _, ok := g.AddEdge(f[1], f[2], w, opts...); !ok {
		return fmt.Errorf("%w: edge %s→%s unknown endpoint or invalid weight",
			ErrRejected, strings.TrimSpace(f[1]), strings.TrimSpace(f[2]))
	}

	return nil
}

// singleLine fails if any field holds a line break.
func singleLine(fields ...string) error {
	for _, f := range fields {
		if strings.ContainsAny(f, "\r\n") {
			return fmt.Errorf("%w: %q", ErrLineBreak, f)
		}
	}

	return nil
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
