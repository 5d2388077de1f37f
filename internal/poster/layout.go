// Package poster lays out and draws the life calendar page.
//
// Coordinates follow PDF user space: points, origin at the bottom-left
// corner of the page, y growing upwards. The fpdf canvas flips them when
// drawing.
package poster

import (
	"strconv"

	"github.com/numberourdays/numberourdays/internal/services/calendar"
)

// Page is a physical page size in points.
type Page struct {
	Width  float64
	Height float64
}

// Letter is a US Letter page, 8.5 x 11 inches.
var Letter = Page{Width: 612, Height: 792}

// Fixed page furniture, in points.
const (
	marginLeft   = 36.0
	marginRight  = 36.0
	marginTop    = 54.0
	marginBottom = 54.0
	legendSpace  = 50.0

	// titleBlockHeight separates the title baseline from the top of the grid area.
	titleBlockHeight = 60.0

	// decadeGapRatio is the extra vertical space after each decade, relative to a cell.
	decadeGapRatio = 0.35
)

// Rect is an axis-aligned rectangle; X,Y is the bottom-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Label is a piece of text anchored at a baseline point.
type Label struct {
	Text string
	X, Y float64
}

// Layout holds the page geometry of the poster.
type Layout struct {
	Page   Page
	Params calendar.Params

	CenterX float64
	TitleY  float64

	// The band the grid must fit into.
	GridTopMax    float64
	GridBottomMin float64

	CellSize  float64
	DecadeGap float64

	GridTop    float64
	GridLeft   float64
	GridWidth  float64
	GridHeight float64
}

// NewLayout fits the params' grid onto page. The cell is the largest square
// that fits both the width and the rows; if the decade gaps then overflow the
// available height, cell and gap are shrunk together.
func NewLayout(page Page, params calendar.Params) Layout {
	l := Layout{
		Page:    page,
		Params:  params,
		CenterX: page.Width / 2,
		TitleY:  page.Height - marginTop,
	}

	l.GridTopMax = l.TitleY - titleBlockHeight
	l.GridBottomMin = marginBottom + legendSpace

	availHeight := l.GridTopMax - l.GridBottomMin
	availWidth := page.Width - marginLeft - marginRight

	cell := min(availWidth/float64(params.WeeksPerYear), availHeight/float64(params.DisplayYears))
	gap := cell * decadeGapRatio

	if needed := gridHeight(params, cell, gap); needed > availHeight {
		scale := availHeight / needed
		cell *= scale
		gap *= scale
	}

	l.CellSize = cell
	l.DecadeGap = gap
	l.GridHeight = gridHeight(params, cell, gap)
	l.GridTop = l.GridBottomMin + l.GridHeight
	l.GridWidth = float64(params.WeeksPerYear) * cell
	l.GridLeft = (page.Width - l.GridWidth) / 2

	return l
}

// gridHeight is the rows plus one gap between consecutive decade blocks.
func gridHeight(params calendar.Params, cell, gap float64) float64 {
	gaps := params.DisplayYears/calendar.DecadeRows - 1
	if gaps < 0 {
		gaps = 0
	}
	return float64(params.DisplayYears)*cell + float64(gaps)*gap
}

// GridRight is the x coordinate of the grid's right edge.
func (l Layout) GridRight() float64 {
	return l.GridLeft + l.GridWidth
}

// RowY returns the bottom edge of a grid row. Rows run top to bottom and
// every decade pushes the following rows down by one DecadeGap.
func (l Layout) RowY(row int) float64 {
	return l.GridTop - float64(row+1)*l.CellSize - float64(row/calendar.DecadeRows)*l.DecadeGap
}

// CellPosition splits a flat index into row and column.
func (l Layout) CellPosition(index int) (row, col int) {
	return index / l.Params.WeeksPerYear, index % l.Params.WeeksPerYear
}

// CellRect returns the square occupied by the cell at a flat index.
func (l Layout) CellRect(index int) Rect {
	row, col := l.CellPosition(index)
	return Rect{
		X: l.GridLeft + float64(col)*l.CellSize,
		Y: l.RowY(row),
		W: l.CellSize,
		H: l.CellSize,
	}
}

// DecadeLabels returns "10", "20", ... placed right of the last row of each decade.
func (l Layout) DecadeLabels() []Label {
	var labels []Label
	for decade := calendar.DecadeRows; decade <= l.Params.DisplayYears; decade += calendar.DecadeRows {
		row := decade - 1
		y := l.RowY(row) + l.CellSize/2
		labels = append(labels, Label{
			Text: strconv.Itoa(decade),
			X:    l.GridRight() + 6,
			Y:    y - 3,
		})
	}
	return labels
}
