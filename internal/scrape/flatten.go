package scrape

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ColumnCount is the fixed width of the actions table.
const ColumnCount = 6

// Column positions within a FlatRow.
const (
	ColAction = iota
	ColDescription
	ColAccessLevel
	ColResourceTypes
	ColConditionKeys
	ColDependentActions
)

// RawCell is a single table cell before flattening.
type RawCell struct {
	Text string
	Span int
}

// FlatRow is one logical table row after rowspan resolution.
type FlatRow [ColumnCount]string

// Flattener resolves rowspan-compressed table markup into uniform rows.
//
// Assumptions, inherited from the upstream table layout:
//   - The first cell of each block declares the block's rowspan height.
//   - Later columns' spans must be consistent with that height.
//   - The first physical row of a block contains all six cells.
type Flattener struct {
	// Ignore reports whether a continuation row is rowspan bookkeeping only
	// and contributes no text. Some pages pad blocks with scenario rows that
	// would otherwise corrupt the accumulated columns.
	Ignore func(firstCell string) bool
}

// NewFlattener returns a Flattener with the known upstream ignore rule.
func NewFlattener() *Flattener {
	return &Flattener{
		Ignore: func(firstCell string) bool {
			return strings.Contains(firstCell, "SCENARIO")
		},
	}
}

// Flatten converts the table into one FlatRow per logical block, in document
// order. Any structural violation returns ErrShape; the table cannot be
// partially recovered once row boundaries are in doubt.
func (f *Flattener) Flatten(table *goquery.Selection) ([]FlatRow, error) {
	rows, err := dataRows(table)
	if err != nil {
		return nil, err
	}

	var flat []FlatRow
	for i := 0; i < len(rows); {
		cells := rows[i]
		i++
		if len(cells) != ColumnCount {
			return nil, fmt.Errorf("%w: row has %d cells, want %d", ErrShape, len(cells), ColumnCount)
		}

		var out FlatRow
		var spans [ColumnCount]int
		for c, cell := range cells {
			out[c] = cell.Text
			spans[c] = cell.Span
		}

		// The block height is declared on the first column's first cell.
		height := spans[ColAction]
		for r := 1; r < height; r++ {
			if i >= len(rows) {
				return nil, fmt.Errorf("%w: rowspan %d overruns end of table", ErrShape, height)
			}
			next := rows[i]
			i++

			skip := len(next) > 0 && f.Ignore != nil && f.Ignore(next[0].Text)

			consumed := 0
			for c := 0; c < ColumnCount; c++ {
				if spans[c] > 1 {
					// Column still spanned; its value is inherited from the
					// block's first row.
					spans[c]--
				} else if !skip {
					if consumed >= len(next) {
						return nil, fmt.Errorf("%w: continuation row ran out of cells at column %d", ErrShape, c)
					}
					out[c] += " " + next[consumed].Text
					consumed++
				}
			}
			if !skip && consumed != len(next) {
				return nil, fmt.Errorf("%w: continuation row has %d extra cells", ErrShape, len(next)-consumed)
			}
		}

		for c, s := range spans {
			if s != 1 {
				return nil, fmt.Errorf("%w: column %d has %d unresolved rowspan rows", ErrShape, c, s-1)
			}
		}

		flat = append(flat, out)
	}

	return flat, nil
}

// dataRows returns each data row's cells in document order. Header rows
// (th-only) are not data rows and are skipped.
func dataRows(table *goquery.Selection) ([][]RawCell, error) {
	var rows [][]RawCell
	var parseErr error

	table.Find("tr").EachWithBreak(func(_ int, tr *goquery.Selection) bool {
		tds := tr.ChildrenFiltered("td")
		if tds.Length() == 0 {
			return true
		}

		cells := make([]RawCell, 0, tds.Length())
		tds.EachWithBreak(func(_ int, td *goquery.Selection) bool {
			span := 1
			if v, ok := td.Attr("rowspan"); ok {
				n, err := strconv.Atoi(strings.TrimSpace(v))
				if err != nil || n < 1 {
					parseErr = fmt.Errorf("%w: invalid rowspan %q", ErrShape, v)
					return false
				}
				span = n
			}
			cells = append(cells, RawCell{Text: strings.TrimSpace(td.Text()), Span: span})
			return true
		})
		if parseErr != nil {
			return false
		}

		rows = append(rows, cells)
		return true
	})

	if parseErr != nil {
		return nil, parseErr
	}
	return rows, nil
}
