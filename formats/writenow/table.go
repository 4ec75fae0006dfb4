// Package writenow implements the WriteNow table auto-layout algorithm
// (§4.8): it turns an unstructured list of cell bounding boxes into a
// row/column grid and drives a listener.Listener's table operations.
package writenow

import (
	"sort"

	"github.com/Distrotech/libmwaw-sub009/doctypes"
	"github.com/Distrotech/libmwaw-sub009/listener"
	"github.com/Distrotech/libmwaw-sub009/mwawerr"
)

// gridSnapTolerance is the maximum gap, in px, between two edge
// coordinates for them to collapse onto the same grid line.
const gridSnapTolerance = 2.0

// RawCell is one WriteNow table-frame token's bounding box, as found in
// a ContentZone before any grid has been inferred (cf. WNText.hxx's
// TableData, which carries the same unstructured cell rectangles read
// straight off the token stream).
type RawCell struct {
	Box doctypes.Box2[float64]
}

// Table is the row/column grid computed from a set of RawCells: grid
// line coordinates on each axis, plus each cell resolved to a
// (row, col, rowspan, colspan) position.
type Table struct {
	ColLines []float64
	RowLines []float64
	Cells    []PlacedCell
}

// PlacedCell is a RawCell resolved onto the grid.
type PlacedCell struct {
	RawCell
	Cell doctypes.Cell
}

// ColWidths returns the width of each column, in px, as the
// differences of consecutive grid lines (§4.8 step 3).
func (t Table) ColWidths() []float64 { return diffs(t.ColLines) }

// RowHeights returns the height of each row, in px, as the differences
// of consecutive grid lines (§4.8 step 3).
func (t Table) RowHeights() []float64 { return diffs(t.RowLines) }

func diffs(lines []float64) []float64 {
	if len(lines) < 2 {
		return nil
	}
	out := make([]float64, len(lines)-1)
	for i := 1; i < len(lines); i++ {
		out[i-1] = lines[i] - lines[i-1]
	}
	return out
}

// Layout runs the auto-layout algorithm over cells, snapping edge
// coordinates into grid lines per axis and resolving every cell's
// row/col span against the resulting grid (§4.8 steps 1-3).
func Layout(cells []RawCell) (Table, error) {
	xs := make([]float64, 0, len(cells)*2)
	ys := make([]float64, 0, len(cells)*2)
	for _, c := range cells {
		xs = append(xs, c.Box.Min.X, c.Box.Max.X)
		ys = append(ys, c.Box.Min.Y, c.Box.Max.Y)
	}

	colLines := snapGridLines(xs)
	rowLines := snapGridLines(ys)

	placed := make([]PlacedCell, 0, len(cells))
	for _, c := range cells {
		colStart, colEnd, err := span(colLines, c.Box.Min.X, c.Box.Max.X)
		if err != nil {
			return Table{}, mwawerr.New(mwawerr.MalformedZone, "writenow.Layout", err)
		}
		rowStart, rowEnd, err := span(rowLines, c.Box.Min.Y, c.Box.Max.Y)
		if err != nil {
			return Table{}, mwawerr.New(mwawerr.MalformedZone, "writenow.Layout", err)
		}
		placed = append(placed, PlacedCell{
			RawCell: c,
			Cell: doctypes.Cell{
				Col:     colStart,
				Row:     rowStart,
				Colspan: colEnd - colStart,
				Rowspan: rowEnd - rowStart,
			},
		})
	}

	return Table{ColLines: colLines, RowLines: rowLines, Cells: placed}, nil
}

// snapGridLines sorts coords and collapses runs of values within
// gridSnapTolerance of the previous kept line into a single grid line
// (§4.8 step 1): "a new grid line is created when an edge differs from
// the previous by more than 2 px".
func snapGridLines(coords []float64) []float64 {
	if len(coords) == 0 {
		return nil
	}
	sorted := append([]float64(nil), coords...)
	sort.Float64s(sorted)

	lines := []float64{sorted[0]}
	for _, v := range sorted[1:] {
		if v-lines[len(lines)-1] > gridSnapTolerance {
			lines = append(lines, v)
		}
	}
	return lines
}

// span finds the largest grid line <= min and the smallest grid line
// >= max, returning their indices (§4.8 step 2). A zero span is a
// parse error unless the cell itself is degenerate (min == max).
func span(lines []float64, min, max float64) (start, end int, err error) {
	start = -1
	for i, l := range lines {
		if l <= min {
			start = i
		} else {
			break
		}
	}
	if start == -1 {
		start = 0
	}

	end = -1
	for i := len(lines) - 1; i >= 0; i-- {
		if lines[i] >= max {
			end = i
		} else {
			break
		}
	}
	if end == -1 {
		end = len(lines) - 1
	}

	if end == start && max > min {
		return 0, 0, mwawerr.New(mwawerr.MalformedZone, "writenow.span", errZeroSpan)
	}
	return start, end, nil
}

// Emit drives l through the table: OpenTable with the computed column
// widths, then one row per grid row, with OpenTableCell/CloseTableCell
// for every occupied position (unoccupied positions are omitted, per
// §4.8 step 4 — the back-end synthesizes empty cells as needed).
func Emit(l *listener.Listener, t Table, unit doctypes.Unit, cellBody func(PlacedCell)) {
	widths := make([]doctypes.Value, 0, len(t.ColWidths()))
	for _, w := range t.ColWidths() {
		widths = append(widths, doctypes.Value{Float: w, Unit: unit, IsFloat: true})
	}
	l.OpenTable(widths, unit)

	byRow := make(map[int][]PlacedCell)
	for _, pc := range t.Cells {
		byRow[pc.Cell.Row] = append(byRow[pc.Cell.Row], pc)
	}

	numRows := len(t.RowHeights())
	for row := 0; row < numRows; row++ {
		l.OpenTableRow(t.RowHeights()[row], false)
		for _, pc := range byRow[row] {
			l.OpenTableCell(pc.Cell, doctypes.NewProperties())
			if cellBody != nil {
				cellBody(pc)
			}
			l.CloseTableCell()
		}
		l.CloseTableRow()
	}

	l.CloseTable()
}
