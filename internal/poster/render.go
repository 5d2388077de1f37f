package poster

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/numberourdays/numberourdays/internal/models"
	"github.com/numberourdays/numberourdays/internal/services/calendar"
	"github.com/numberourdays/numberourdays/internal/util"
)

const (
	DefaultTitle = "Number Our Days"
	Verse        = `"So teach us to number our days, that we may get a heart of wisdom." Psalm 90:12 (ESV)`
	Explanation  = "Each square represents one week. Each line represents one year. Each block represents a decade."

	fontFamily = "Helvetica"
)

// Legend captions, in display order.
const (
	LegendLived      = "Weeks already lived"
	LegendUnlived    = "Weeks to be lived"
	LegendCurrent    = "Current week"
	legendExpectancy = "Life expectancy: %s"
)

// WriteError reports a failure to produce the output file.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing poster to %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Poster is everything one page is drawn from.
type Poster struct {
	Profile models.UserProfile
	Stats   calendar.DerivedStats
	Today   time.Time
	RunID   string
}

// Options configures a Renderer.
type Options struct {
	Theme  Theme
	Title  string
	Page   Page
	Params calendar.Params
	Logger *slog.Logger
}

// Renderer draws posters with one theme.
type Renderer struct {
	theme  Theme
	title  string
	page   Page
	params calendar.Params
	logger *slog.Logger
}

// NewRenderer creates a renderer, filling unset options with defaults.
func NewRenderer(opts Options) *Renderer {
	r := &Renderer{
		theme:  opts.Theme,
		title:  opts.Title,
		page:   opts.Page,
		params: opts.Params,
		logger: opts.Logger,
	}
	if r.theme.Name == "" {
		r.theme = classicTheme()
	}
	if r.title == "" {
		r.title = DefaultTitle
	}
	if r.page == (Page{}) {
		r.page = Letter
	}
	if r.params.TotalWeeks() == 0 {
		r.params = calendar.DefaultParams()
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// CellState is the visual status of one grid cell. A cell may be both
// lived and the expectancy milestone.
type CellState struct {
	Lived      bool
	Current    bool
	Expectancy bool
}

// Classify decides how the cell at index is drawn.
func Classify(index int, progress calendar.Progress, stats calendar.DerivedStats) CellState {
	return CellState{
		Lived:      index < progress.LivedIndex,
		Current:    index == progress.CurrentIndex(),
		Expectancy: stats.IsExpectancy(index),
	}
}

// RenderFile writes the poster to path. The PDF is written to a temporary
// file in the same directory and renamed into place, so path either holds
// a complete document or is left untouched.
func (r *Renderer) RenderFile(path string, p Poster) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err := r.Render(tmp, p); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	r.logger.Info("poster written", "path", path, "theme", r.theme.Name)
	return nil
}

// Render draws the poster as a one-page PDF and writes it to w.
func (r *Renderer) Render(w io.Writer, p Poster) error {
	canvas := NewPDFCanvas(r.page, Metadata{
		Title:   r.title,
		Author:  p.Profile.FirstName,
		Subject: "Life calendar " + p.RunID,
		Created: p.Today,
	})

	r.Draw(canvas, p)

	if err := canvas.WriteTo(w); err != nil {
		return fmt.Errorf("finalizing pdf: %w", err)
	}
	return nil
}

// Draw paints the whole page onto c.
func (r *Renderer) Draw(c Canvas, p Poster) {
	layout := NewLayout(r.page, r.params)
	today := util.Date(p.Today)
	progress := calendar.ProgressAt(p.Profile.BirthDate, today, r.params)
	summary := calendar.Summarize(p.Stats, progress)

	r.logger.Debug("drawing poster",
		"cell_size", layout.CellSize,
		"decade_gap", layout.DecadeGap,
		"lived_index", progress.LivedIndex,
		"current_row", progress.AgeYears,
		"current_col", progress.WeeksIntoYear,
		"expectancy_index", p.Stats.ExpectancyIndex,
	)

	r.drawTitle(c, layout, p.Profile, today)
	r.drawGrid(c, layout, progress, p.Stats)
	r.drawDecadeLabels(c, layout)
	legendWidth := r.drawLegend(c, layout, p.Stats)
	r.drawSummary(c, layout, summary, legendWidth)
}

func (r *Renderer) drawTitle(c Canvas, l Layout, profile models.UserProfile, today time.Time) {
	c.SetFillColor(r.theme.Ink)

	c.SetFont(fontFamily, "B", 14)
	c.TextCentered(l.CenterX, l.TitleY, r.title)

	c.SetFont(fontFamily, "", 8)
	c.TextCentered(l.CenterX, l.TitleY-18,
		fmt.Sprintf("Life Calendar for %s, created on %s", profile.FirstName, util.FormatLongDate(today)))
	c.TextCentered(l.CenterX, l.TitleY-32, Verse)
	c.TextCentered(l.CenterX, l.TitleY-46, Explanation)
}

func (r *Renderer) drawGrid(c Canvas, l Layout, progress calendar.Progress, stats calendar.DerivedStats) {
	for index := 0; index < r.params.TotalWeeks(); index++ {
		rect := l.CellRect(index)
		state := Classify(index, progress, stats)

		c.SetStrokeColor(r.theme.GridLine)
		c.SetLineWidth(r.theme.GridLineWidth)

		switch {
		case state.Current:
			c.SetFillColor(r.theme.Current)
			c.Rect(rect, true, true)
			r.drawDiamond(c, rect, rect.W*0.3, true)
		case state.Lived:
			c.SetFillColor(r.theme.Lived)
			c.Rect(rect, true, true)
		default:
			c.SetFillColor(r.theme.Unlived)
			c.Rect(rect, true, true)
		}

		if state.Expectancy {
			r.drawCross(c, rect, rect.W*0.15, r.theme.ExpectancyLineWidth)
		}
	}
}

// drawDiamond paints the current-week mark centered in rect.
func (r *Renderer) drawDiamond(c Canvas, rect Rect, size float64, stroke bool) {
	cx, cy := rect.Center()
	c.SetFillColor(r.theme.CurrentMark)
	c.SetStrokeColor(r.theme.CurrentMark)
	c.Polygon([]Point{
		{cx, cy + size},
		{cx + size, cy},
		{cx, cy - size},
		{cx - size, cy},
	}, stroke, true)
}

// drawCross paints the life-expectancy X inside rect.
func (r *Renderer) drawCross(c Canvas, rect Rect, inset, width float64) {
	c.SetStrokeColor(r.theme.Expectancy)
	c.SetLineWidth(width)
	c.Line(rect.X+inset, rect.Y+inset, rect.X+rect.W-inset, rect.Y+rect.H-inset)
	c.Line(rect.X+inset, rect.Y+rect.H-inset, rect.X+rect.W-inset, rect.Y+inset)
	c.SetStrokeColor(r.theme.GridLine)
	c.SetLineWidth(r.theme.GridLineWidth)
}

func (r *Renderer) drawDecadeLabels(c Canvas, l Layout) {
	c.SetFillColor(r.theme.Ink)
	c.SetFont(fontFamily, "", 8)
	for _, label := range l.DecadeLabels() {
		c.Text(label.X, label.Y, label.Text)
	}
}

// LegendEntries returns the legend captions in display order.
func LegendEntries(expectancyYears float64) []string {
	return []string{
		LegendLived,
		LegendUnlived,
		LegendCurrent,
		fmt.Sprintf(legendExpectancy, strconv.FormatFloat(expectancyYears, 'f', -1, 64)),
	}
}

// drawLegend draws the legend to the right of the grid and returns its width.
func (r *Renderer) drawLegend(c Canvas, l Layout, stats calendar.DerivedStats) float64 {
	const (
		boxSize    = 8.0
		boxSpacing = 14.0
		padding    = 6.0
		textWidth  = 85.0
	)

	x := l.GridRight() + 32
	top := l.GridTop - l.CellSize
	textX := x + 12
	entries := LegendEntries(stats.ExpectancyYears)

	c.SetFont(fontFamily, "", 7)

	y := top
	for i, caption := range entries {
		swatch := Rect{X: x, Y: y - 6, W: boxSize, H: boxSize}
		c.SetStrokeColor(r.theme.Ink)
		c.SetLineWidth(0.5)

		switch i {
		case 0:
			c.SetFillColor(r.theme.Lived)
			c.Rect(swatch, true, true)
		case 1:
			c.SetFillColor(r.theme.Unlived)
			c.Rect(swatch, true, true)
		case 2:
			c.SetFillColor(r.theme.Current)
			c.Rect(swatch, true, true)
			r.drawDiamond(c, swatch, boxSize*0.4, false)
		case 3:
			c.SetFillColor(r.theme.Unlived)
			c.Rect(swatch, true, true)
			r.drawCross(c, swatch, boxSize*0.1, 1)
		}

		c.SetFillColor(r.theme.Ink)
		c.Text(textX, y-4, caption)

		if i < len(entries)-1 {
			y -= boxSpacing
		}
	}

	width := textX + textWidth - (x - padding)
	if r.theme.LegendFrame {
		bottom := y - 6
		c.SetStrokeColor(r.theme.Ink)
		c.SetLineWidth(1)
		c.Rect(Rect{
			X: x - padding,
			Y: bottom - padding,
			W: width,
			H: top - bottom + padding*2,
		}, true, false)
	}
	return width
}

// SummaryLines formats the summary block, heading first.
func SummaryLines(s calendar.Summary) []string {
	return []string{
		"Summary",
		fmt.Sprintf("Weeks lived: %d", s.WeeksLived),
		fmt.Sprintf("Weeks remaining: %d", s.WeeksRemaining),
		fmt.Sprintf("Percent of life lived: %.1f%%", s.PercentLived),
		fmt.Sprintf("Age: %.2f years", s.AgeExact),
	}
}

// drawSummary draws the summary centered under the grid, boxed to the legend's width.
func (r *Renderer) drawSummary(c Canvas, l Layout, s calendar.Summary, width float64) {
	const padding = 4.0

	lines := SummaryLines(s)
	y := l.GridBottomMin - 28

	c.SetFillColor(r.theme.Ink)
	c.SetFont(fontFamily, "B", 9)
	c.TextCentered(l.CenterX, y, lines[0])

	c.SetFont(fontFamily, "", 7)
	for i, line := range lines[1:] {
		c.TextCentered(l.CenterX, y-12-float64(i)*10, line)
	}

	if r.theme.SummaryFrame {
		bottom := y - 42 - padding
		c.SetStrokeColor(r.theme.Ink)
		c.SetLineWidth(1)
		c.Rect(Rect{
			X: l.CenterX - width/2,
			Y: bottom,
			W: width,
			H: y + padding + 8 - bottom,
		}, true, false)
	}
}
