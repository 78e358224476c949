package codec

import (
	"sort"
	"strconv"

	"github.com/arloliu/ved/compress"
	"github.com/arloliu/ved/document"
	"github.com/arloliu/ved/grid"
	"github.com/arloliu/ved/internal/hexcolor"
	"github.com/arloliu/ved/internal/options"
	"github.com/arloliu/ved/internal/pool"
	"github.com/arloliu/ved/internal/worker"
)

// minDictCount is the occurrence count a color needs to enter the
// dictionary. Colors seen once are always emitted literally.
const minDictCount = 2

// Encoder encodes pixel grids into ved document text.
//
// An Encoder is stateless between calls and safe for concurrent use; the
// configuration is fixed at construction.
type Encoder struct {
	*EncoderConfig
}

// NewEncoder creates a new Encoder.
//
// Parameters:
//   - opts: Optional configuration (worker count, container compression)
//
// Returns:
//   - *Encoder: New encoder instance
//   - error: Configuration error if invalid options provided
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	config := NewEncoderConfig()
	if err := options.Apply(config, opts...); err != nil {
		return nil, err
	}

	return &Encoder{EncoderConfig: config}, nil
}

// Encode encodes the grid and returns the marshaled document bytes,
// wrapped in the compressed container when compression is configured.
func (e *Encoder) Encode(g *grid.Grid) ([]byte, error) {
	doc := e.EncodeDocument(g)

	return compress.EncodeContainer(doc.Marshal(), e.compression)
}

// EncodeDocument encodes the grid into its structured document form.
//
// The transform is total: every grid has a document. The per-row work of
// both phases runs on a bounded worker pool; the frequency merge and
// dictionary construction between the phases are strictly sequential and
// deterministic for a given grid.
func (e *Encoder) EncodeDocument(g *grid.Grid) *document.Document {
	width, height := g.Width(), g.Height()

	doc := &document.Document{
		Width:  width,
		Height: height,
		Dict:   document.NewDictionary(),
	}
	if width == 0 || height == 0 {
		// An empty image carries a dictionary line and no row lines.
		return doc
	}

	// Phase 1: per-row color extraction and local counting.
	scans := make([]rowScan, height)
	worker.Rows(height, e.workers, func(y int) {
		scans[y] = scanRow(g, y)
	})

	// Barrier: merge local tables in row order and build the dictionary.
	counts, order := mergeCounts(scans)
	buildDictionary(doc.Dict, counts, order)

	// Phase 2: per-row run-length collapsing with dictionary substitution.
	doc.Rows = make([]string, height)
	worker.Rows(height, e.workers, func(y int) {
		doc.Rows[y] = encodeRow(scans[y].colors, doc.Dict)
	})

	return doc
}

// rowScan is the phase-1 result of a single row.
type rowScan struct {
	colors []string       // per-pixel hex colors in x order
	counts map[string]int // local frequency table
	order  []string       // colors in first-seen x order
}

func scanRow(g *grid.Grid, y int) rowScan {
	row := g.Row(y)
	scan := rowScan{
		colors: make([]string, len(row)),
		counts: make(map[string]int),
	}
	for x, c := range row {
		hex := hexcolor.Format(c)
		if scan.counts[hex] == 0 {
			scan.order = append(scan.order, hex)
		}
		scan.counts[hex]++
		scan.colors[x] = hex
	}

	return scan
}

// mergeCounts folds the per-row tables into one global table. Summation is
// commutative, and the fold walks the indexed scan slots in row order with
// each row's colors in first-seen order, so both the totals and the
// encounter order are deterministic for a given grid.
func mergeCounts(scans []rowScan) (map[string]int, []string) {
	counts := make(map[string]int)
	var order []string
	for y := range scans {
		for _, hex := range scans[y].order {
			if counts[hex] == 0 {
				order = append(order, hex)
			}
			counts[hex] += scans[y].counts[hex]
		}
	}

	return counts, order
}

// buildDictionary ranks colors by count descending, ties broken by
// encounter order, and assigns dense indices to those with count >= 2.
func buildDictionary(dict *document.Dictionary, counts map[string]int, order []string) {
	ranked := make([]string, 0, len(order))
	for _, hex := range order {
		if counts[hex] >= minDictCount {
			ranked = append(ranked, hex)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return counts[ranked[i]] > counts[ranked[j]]
	})

	for _, hex := range ranked {
		dict.Add(hex)
	}
}

// encodeRow run-length collapses one row. The "last hex" state resets per
// row, so the first token of a row is never empty.
func encodeRow(colors []string, dict *document.Dictionary) string {
	bb := pool.GetRowBuffer()
	defer pool.PutRowBuffer(bb)

	lastHex := ""
	for x, hex := range colors {
		if x > 0 {
			bb.B = append(bb.B, ',')
		}
		if hex == lastHex {
			continue
		}
		lastHex = hex
		if index, ok := dict.IndexOf(hex); ok {
			bb.B = strconv.AppendInt(bb.B, int64(index), 10)
		} else {
			bb.B = append(bb.B, hex...)
		}
	}

	return bb.String()
}
