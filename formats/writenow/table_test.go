package writenow

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Distrotech/libmwaw-sub009/doctypes"
)

func box(minX, minY, maxX, maxY float64) doctypes.Box2[float64] {
	return doctypes.NewBox2(
		doctypes.Vec2[float64]{X: minX, Y: minY},
		doctypes.Vec2[float64]{X: maxX, Y: maxY},
	)
}

// A simple 2x2 grid: four cells meeting at (50, 50), spanning [0,100]
// on each axis.
func twoByTwo() []RawCell {
	return []RawCell{
		{Box: box(0, 0, 50, 50)},
		{Box: box(50, 0, 100, 50)},
		{Box: box(0, 50, 50, 100)},
		{Box: box(50, 50, 100, 100)},
	}
}

func TestLayoutSimpleGrid(t *testing.T) {
	tbl, err := Layout(twoByTwo())
	require.NoError(t, err)

	require.Equal(t, []float64{0, 50, 100}, tbl.ColLines)
	require.Equal(t, []float64{0, 50, 100}, tbl.RowLines)
	require.Equal(t, []float64{50, 50}, tbl.ColWidths())
	require.Equal(t, []float64{50, 50}, tbl.RowHeights())

	require.Len(t, tbl.Cells, 4)
	for _, pc := range tbl.Cells {
		require.Equal(t, 1, pc.Cell.Colspan)
		require.Equal(t, 1, pc.Cell.Rowspan)
	}

	// Spot-check the bottom-right cell lands at (row 1, col 1).
	found := false
	for _, pc := range tbl.Cells {
		if pc.Box.Min.X == 50 && pc.Box.Min.Y == 50 {
			require.Equal(t, 1, pc.Cell.Row)
			require.Equal(t, 1, pc.Cell.Col)
			found = true
		}
	}
	require.True(t, found)
}

func TestLayoutSpanningCell(t *testing.T) {
	// A cell spanning both columns of a 2-column, 1-row grid.
	cells := []RawCell{
		{Box: box(0, 0, 100, 50)},
		{Box: box(0, 0, 50, 50)},
		{Box: box(50, 0, 100, 50)},
	}
	tbl, err := Layout(cells)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 50, 100}, tbl.ColLines)

	require.Equal(t, 2, tbl.Cells[0].Cell.Colspan)
	require.Equal(t, 1, tbl.Cells[1].Cell.Colspan)
	require.Equal(t, 1, tbl.Cells[2].Cell.Colspan)
}

func TestLayoutSnapsNearbyEdges(t *testing.T) {
	// Edges 1px apart collapse onto the same grid line (<= 2px tolerance).
	cells := []RawCell{
		{Box: box(0, 0, 50, 50)},
		{Box: box(51, 0, 100, 50)},
	}
	tbl, err := Layout(cells)
	require.NoError(t, err)
	require.Len(t, tbl.ColLines, 3)
}

func TestLayoutNewGridLineBeyondTolerance(t *testing.T) {
	// Edges more than 2px apart are distinct grid lines.
	cells := []RawCell{
		{Box: box(0, 0, 50, 50)},
		{Box: box(53, 0, 100, 50)},
	}
	tbl, err := Layout(cells)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 50, 53, 100}, tbl.ColLines)
}

func TestLayoutDegenerateCellIsNotAnError(t *testing.T) {
	// A zero-width cell (min == max on one axis) is degenerate, not an
	// error, per §4.8 step 2's "non-degenerate direction" carve-out.
	cells := []RawCell{
		{Box: box(0, 0, 0, 50)},
		{Box: box(0, 0, 50, 50)},
	}
	_, err := Layout(cells)
	require.NoError(t, err)
}

func TestDiffsEmptyForSingleLine(t *testing.T) {
	require.Nil(t, diffs([]float64{10}))
	require.Nil(t, diffs(nil))
}
