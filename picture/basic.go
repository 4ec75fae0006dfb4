// Package picture implements the vector-primitive and bitmap picture
// wrappers of §4.3/§6.2: Basic (line/rectangle/ellipse/arc/polygon)
// produces a small XML-equivalent fragment over the "image/mwaw-odg"
// mime type; Bitmap emits PNM.
package picture

import (
	"fmt"

	"github.com/Distrotech/libmwaw-sub009/doctypes"
)

// SubType is the kind of Basic picture.
type SubType int

const (
	Line SubType = iota
	Rectangle
	Ellipse
	Arc
	Polygon
)

// Style carries the attributes shared by every Basic variant.
type Style struct {
	LineWidth    float64
	LineColor    doctypes.Color
	SurfaceColor doctypes.Color
	SurfaceFill  bool
	StartArrow   bool
	EndArrow     bool
}

// Basic is one vector primitive: line, rectangle (with optional corner
// radius), ellipse, arc (ellipse + start/sweep angle), or polygon.
type Basic struct {
	SubType SubType
	Style   Style

	// Line, Rectangle, Ellipse, Arc share an origin + size box.
	Box doctypes.Box2[float64]

	CornerWidth  float64 // Rectangle only
	CornerHeight float64

	Angle0, Angle1 float64 // Arc only, degrees

	Vertices []doctypes.Vec2[float64] // Polygon only
}

// BoundingBox returns Box extended by the line width and, when an
// arrow marker is present, by an approximate arrow extent — per §4.3:
// "Bounding box extends by linewidth + optional arrow-extent".
func (b Basic) BoundingBox() doctypes.Box2[float64] {
	extend := b.Style.LineWidth / 2
	if b.Style.StartArrow || b.Style.EndArrow {
		extend += b.Style.LineWidth * 2
	}
	return b.Box.Extend(extend)
}

func colorHex(c doctypes.Color) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func fillMode(filled bool) string {
	if filled {
		return "solid"
	}
	return "none"
}

func boolStr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func fnum(f float64) string {
	return fmt.Sprintf("%g", f)
}

// Encode renders b as a complete "image/mwaw-odg" tag-stream fragment
// (§4.3): a libmwaw:document root with a libmwaw:graphicStyle child
// followed by one drawLine/drawRectangle/drawCircle/drawArc/
// drawPolygon element.
func (b Basic) Encode() []byte {
	bbox := b.BoundingBox()
	w := tagWriter{}
	w.startElement("libmwaw:document", []attr{
		{"w", fnum(bbox.Width())},
		{"h", fnum(bbox.Height())},
	})
	w.startElement("libmwaw:graphicStyle", []attr{
		{"lineColor", colorHex(b.Style.LineColor)},
		{"lineWidth", fnum(b.Style.LineWidth)},
		{"lineFill", fillMode(true)},
		{"surfaceColor", colorHex(b.Style.SurfaceColor)},
		{"surfaceFill", fillMode(b.Style.SurfaceFill)},
		{"startArrow", boolStr(b.Style.StartArrow)},
		{"endArrow", boolStr(b.Style.EndArrow)},
	})
	w.endElement("libmwaw:graphicStyle")

	switch b.SubType {
	case Line:
		w.startElement("libmwaw:drawLine", []attr{
			{"x0", fnum(b.Box.Min.X)}, {"y0", fnum(b.Box.Min.Y)},
			{"x1", fnum(b.Box.Max.X)}, {"y1", fnum(b.Box.Max.Y)},
		})
		w.endElement("libmwaw:drawLine")
	case Rectangle:
		attrs := []attr{
			{"x0", fnum(b.Box.Min.X)}, {"y0", fnum(b.Box.Min.Y)},
			{"w", fnum(b.Box.Width())}, {"h", fnum(b.Box.Height())},
		}
		if b.CornerWidth > 0 || b.CornerHeight > 0 {
			attrs = append(attrs, attr{"rw", fnum(b.CornerWidth)}, attr{"rh", fnum(b.CornerHeight)})
		}
		w.startElement("libmwaw:drawRectangle", attrs)
		w.endElement("libmwaw:drawRectangle")
	case Ellipse:
		w.startElement("libmwaw:drawCircle", []attr{
			{"x0", fnum(b.Box.Min.X)}, {"y0", fnum(b.Box.Min.Y)},
			{"w", fnum(b.Box.Width())}, {"h", fnum(b.Box.Height())},
		})
		w.endElement("libmwaw:drawCircle")
	case Arc:
		w.startElement("libmwaw:drawArc", []attr{
			{"x0", fnum(b.Box.Min.X)}, {"y0", fnum(b.Box.Min.Y)},
			{"w", fnum(b.Box.Width())}, {"h", fnum(b.Box.Height())},
			{"angle0", fnum(b.Angle0)}, {"angle1", fnum(b.Angle1)},
		})
		w.endElement("libmwaw:drawArc")
	case Polygon:
		attrs := make([]attr, 0, 2+2*len(b.Vertices))
		attrs = append(attrs, attr{"w", fnum(b.Box.Width())}, attr{"h", fnum(b.Box.Height())})
		for i, v := range b.Vertices {
			attrs = append(attrs,
				attr{fmt.Sprintf("x%d", i), fnum(v.X)},
				attr{fmt.Sprintf("y%d", i), fnum(v.Y)},
			)
		}
		w.startElement("libmwaw:drawPolygon", attrs)
		w.endElement("libmwaw:drawPolygon")
	}

	w.endElement("libmwaw:document")
	return w.bytes()
}

// MimeType is the fixed content type every Basic encoding is tagged
// with when passed to Listener.InsertPicture (§6.2); Bitmap output is
// PNM, not this format.
const MimeType = "image/mwaw-odg"

// OleContainer is an opaque embedded object passed through unchanged,
// with only a bounding box attached (§4.3).
type OleContainer struct {
	Box  doctypes.Box2[float64]
	Data []byte
}
