package writenow

import (
	"github.com/Distrotech/libmwaw-sub009/doctypes"
	"github.com/Distrotech/libmwaw-sub009/mwawerr"
	"github.com/Distrotech/libmwaw-sub009/stream"
)

// twipsToPx converts WriteNow's native twips (1/1440 inch) coordinates
// to the px unit §4.8's grid-snap tolerance is expressed in, at the
// conventional 96 px/inch.
const twipsToPx = 96.0 / 1440.0

// ParseTableToken reads a WriteNow table-frame token (a big-endian cell
// count followed by that many 4*int16 bounding boxes, in twips) and
// returns the RawCells ready for Layout. Grounded on WNText::readTable's
// "checkme" fixed-record read over TMWAWInputStream, generalized to
// this package's stream.Reader.
func ParseTableToken(r *stream.Reader) ([]RawCell, error) {
	count, err := r.U16()
	if err != nil {
		return nil, mwawerr.New(mwawerr.Truncated, "writenow.ParseTableToken", err)
	}

	cells := make([]RawCell, 0, count)
	for i := uint16(0); i < count; i++ {
		minX, err := r.I16()
		if err != nil {
			return nil, mwawerr.New(mwawerr.Truncated, "writenow.ParseTableToken", err)
		}
		minY, err := r.I16()
		if err != nil {
			return nil, mwawerr.New(mwawerr.Truncated, "writenow.ParseTableToken", err)
		}
		maxX, err := r.I16()
		if err != nil {
			return nil, mwawerr.New(mwawerr.Truncated, "writenow.ParseTableToken", err)
		}
		maxY, err := r.I16()
		if err != nil {
			return nil, mwawerr.New(mwawerr.Truncated, "writenow.ParseTableToken", err)
		}

		cells = append(cells, RawCell{
			Box: doctypes.NewBox2(
				doctypes.Vec2[float64]{X: float64(minX) * twipsToPx, Y: float64(minY) * twipsToPx},
				doctypes.Vec2[float64]{X: float64(maxX) * twipsToPx, Y: float64(maxY) * twipsToPx},
			),
		})
	}
	return cells, nil
}
