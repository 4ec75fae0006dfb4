package writenow

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Distrotech/libmwaw-sub009/doctypes"
	"github.com/Distrotech/libmwaw-sub009/fontreg"
	"github.com/Distrotech/libmwaw-sub009/listengine"
	"github.com/Distrotech/libmwaw-sub009/listener"
	"github.com/Distrotech/libmwaw-sub009/sink"
)

func TestEmitTwoByTwoGrid(t *testing.T) {
	tbl, err := Layout(twoByTwo())
	require.NoError(t, err)

	rec := sink.NewRecorder()
	l := listener.New(rec, fontreg.NewRegistry(), listengine.NewEngine(),
		[]doctypes.PageSpan{{FormWidth: 612, FormLength: 792}})
	l.StartDocument(doctypes.NewProperties())
	l.OpenSection(nil, doctypes.UnitPoint)

	var bodies int
	Emit(l, tbl, doctypes.UnitPoint, func(pc PlacedCell) { bodies++ })

	l.CloseSection()
	l.EndDocument()

	names := rec.Names()
	require.Contains(t, names, "open_table")
	require.Contains(t, names, "open_table_row")
	require.Contains(t, names, "open_table_cell")
	require.Contains(t, names, "close_table")
	require.Equal(t, 4, bodies)

	var rows, cells int
	for _, n := range names {
		if n == "open_table_row" {
			rows++
		}
		if n == "open_table_cell" {
			cells++
		}
	}
	require.Equal(t, 2, rows)
	require.Equal(t, 4, cells)
}

func TestEmitOmitsUnoccupiedPositions(t *testing.T) {
	// Only the top-left and bottom-right cells of a 2x2 grid are
	// present; the other two positions must not be emitted (§4.8 step
	// 4: unoccupied positions are omitted).
	cells := []RawCell{
		{Box: box(0, 0, 50, 50)},
		{Box: box(50, 50, 100, 100)},
	}
	tbl, err := Layout(cells)
	require.NoError(t, err)

	rec := sink.NewRecorder()
	l := listener.New(rec, fontreg.NewRegistry(), listengine.NewEngine(),
		[]doctypes.PageSpan{{FormWidth: 612, FormLength: 792}})
	l.StartDocument(doctypes.NewProperties())
	l.OpenSection(nil, doctypes.UnitPoint)

	Emit(l, tbl, doctypes.UnitPoint, nil)

	l.CloseSection()
	l.EndDocument()

	var cellCount int
	for _, n := range rec.Names() {
		if n == "open_table_cell" {
			cellCount++
		}
	}
	require.Equal(t, 2, cellCount)
}
