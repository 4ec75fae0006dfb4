package picture

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Distrotech/libmwaw-sub009/doctypes"
)

func TestBasicLineEncodeDecodeRoundTrip(t *testing.T) {
	line := Basic{
		SubType: Line,
		Style:   Style{LineWidth: 2, LineColor: doctypes.Color{R: 0xFF}},
		Box: doctypes.NewBox2(
			doctypes.Vec2[float64]{X: 0, Y: 0},
			doctypes.Vec2[float64]{X: 10, Y: 20},
		),
	}
	data := line.Encode()
	events, err := decodeEvents(data)
	require.NoError(t, err)
	require.NotEmpty(t, events)
	require.Equal(t, byte('S'), events[0].Kind)
	require.Equal(t, "libmwaw:document", events[0].Name)

	var sawLine bool
	for _, e := range events {
		if e.Kind == 'S' && e.Name == "libmwaw:drawLine" {
			sawLine = true
		}
	}
	require.True(t, sawLine)
}

func TestBoundingBoxExtendsByLineWidth(t *testing.T) {
	b := Basic{
		Style: Style{LineWidth: 4},
		Box:   doctypes.NewBox2(doctypes.Vec2[float64]{}, doctypes.Vec2[float64]{X: 10, Y: 10}),
	}
	box := b.BoundingBox()
	require.Equal(t, -2.0, box.Min.X)
	require.Equal(t, 12.0, box.Max.X)
}

func TestPolygonEncodesAllVertices(t *testing.T) {
	p := Basic{
		SubType: Polygon,
		Box:     doctypes.NewBox2(doctypes.Vec2[float64]{}, doctypes.Vec2[float64]{X: 4, Y: 4}),
		Vertices: []doctypes.Vec2[float64]{
			{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 2, Y: 4},
		},
	}
	events, err := decodeEvents(p.Encode())
	require.NoError(t, err)
	for _, e := range events {
		if e.Name == "libmwaw:drawPolygon" {
			require.Len(t, e.Attrs, 2+2*3)
			return
		}
	}
	t.Fatal("libmwaw:drawPolygon element not found")
}

func TestBitmap1BitProducesP4(t *testing.T) {
	bmp := Bitmap{Width: 8, Height: 1, Type: Pixel1Bit, Data: []byte{0xF0}}
	out, err := bmp.AsPNM()
	require.NoError(t, err)
	require.Contains(t, string(out[:2]), "P4")
}

func TestBitmapIndexedResolvesPalette(t *testing.T) {
	bmp := Bitmap{
		Width: 2, Height: 1, Type: Pixel8BitIndexed,
		Data:    []byte{0, 1},
		Palette: []doctypes.Color{{R: 1, G: 2, B: 3}, {R: 4, G: 5, B: 6}},
	}
	out, err := bmp.AsPNM()
	require.NoError(t, err)
	require.Contains(t, string(out), "P6")
}

func TestBitmapIndexedMissingPaletteErrors(t *testing.T) {
	bmp := Bitmap{Width: 1, Height: 1, Type: Pixel8BitIndexed, Data: []byte{0}}
	_, err := bmp.AsPNM()
	require.Error(t, err)
}
