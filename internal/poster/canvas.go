package poster

import (
	"io"
	"time"

	"github.com/go-pdf/fpdf"
)

// Point is a coordinate in page space.
type Point struct {
	X, Y float64
}

// Canvas is the drawing surface the renderer paints on.
// Coordinates are page points with the origin at the bottom-left.
type Canvas interface {
	SetFont(family, style string, size float64)
	SetStrokeColor(c Color)
	// SetFillColor sets the color of filled shapes and of text.
	SetFillColor(c Color)
	SetLineWidth(w float64)

	Rect(r Rect, stroke, fill bool)
	Line(x1, y1, x2, y2 float64)
	Polygon(points []Point, stroke, fill bool)

	// Text draws s with its baseline starting at x,y.
	Text(x, y float64, s string)
	// TextCentered draws s centered horizontally on cx.
	TextCentered(cx, y float64, s string)
	StringWidth(s string) float64
}

// Metadata is written into the PDF document information dictionary.
type Metadata struct {
	Title   string
	Author  string
	Subject string
	Created time.Time
}

// PDFCanvas draws onto a single-page fpdf document.
type PDFCanvas struct {
	pdf  *fpdf.Fpdf
	page Page
	tr   func(string) string
}

// NewPDFCanvas creates a document with one page of the given size.
func NewPDFCanvas(page Page, meta Metadata) *PDFCanvas {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: page.Width, Ht: page.Height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCatalogSort(true)
	pdf.SetCreator("numberourdays", true)
	pdf.SetTitle(meta.Title, true)
	pdf.SetAuthor(meta.Author, true)
	pdf.SetSubject(meta.Subject, true)
	if !meta.Created.IsZero() {
		pdf.SetCreationDate(meta.Created)
		pdf.SetModificationDate(meta.Created)
	}
	pdf.AddPage()

	return &PDFCanvas{
		pdf:  pdf,
		page: page,
		// Core fonts are cp1252; names like "Zoë" need translating.
		tr: pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

// flipY converts a bottom-up y coordinate to fpdf's top-down space.
func (c *PDFCanvas) flipY(y float64) float64 {
	return c.page.Height - y
}

func (c *PDFCanvas) SetFont(family, style string, size float64) {
	c.pdf.SetFont(family, style, size)
}

func (c *PDFCanvas) SetStrokeColor(col Color) {
	c.pdf.SetDrawColor(int(col.R), int(col.G), int(col.B))
}

func (c *PDFCanvas) SetFillColor(col Color) {
	c.pdf.SetFillColor(int(col.R), int(col.G), int(col.B))
	c.pdf.SetTextColor(int(col.R), int(col.G), int(col.B))
}

func (c *PDFCanvas) SetLineWidth(w float64) {
	c.pdf.SetLineWidth(w)
}

func (c *PDFCanvas) Rect(r Rect, stroke, fill bool) {
	style := drawStyle(stroke, fill)
	if style == "" {
		return
	}
	c.pdf.Rect(r.X, c.flipY(r.Y+r.H), r.W, r.H, style)
}

func (c *PDFCanvas) Line(x1, y1, x2, y2 float64) {
	c.pdf.Line(x1, c.flipY(y1), x2, c.flipY(y2))
}

func (c *PDFCanvas) Polygon(points []Point, stroke, fill bool) {
	style := drawStyle(stroke, fill)
	if style == "" || len(points) < 3 {
		return
	}
	pts := make([]fpdf.PointType, len(points))
	for i, p := range points {
		pts[i] = fpdf.PointType{X: p.X, Y: c.flipY(p.Y)}
	}
	c.pdf.Polygon(pts, style)
}

func (c *PDFCanvas) Text(x, y float64, s string) {
	c.pdf.Text(x, c.flipY(y), c.tr(s))
}

func (c *PDFCanvas) TextCentered(cx, y float64, s string) {
	c.Text(cx-c.StringWidth(s)/2, y, s)
}

func (c *PDFCanvas) StringWidth(s string) float64 {
	return c.pdf.GetStringWidth(c.tr(s))
}

// WriteTo finalizes the document and writes it to w.
func (c *PDFCanvas) WriteTo(w io.Writer) error {
	if err := c.pdf.Error(); err != nil {
		return err
	}
	return c.pdf.Output(w)
}

func drawStyle(stroke, fill bool) string {
	switch {
	case stroke && fill:
		return "FD"
	case fill:
		return "F"
	case stroke:
		return "D"
	default:
		return ""
	}
}

var _ Canvas = (*PDFCanvas)(nil)
