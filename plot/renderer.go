package plot

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/flightpath/animation"
	"github.com/lixenwraith/flightpath/trajectory"
	"github.com/lixenwraith/flightpath/vmath"
)

const (
	DefaultTitle = "Simulated Drone Flight Path"
	XAxisLabel   = "Forward Distance (m)"
	YAxisLabel   = "Altitude (m)"

	LegendPath   = "Flight Path"
	LegendMarker = "Drone"

	MinWidth  = 40
	MinHeight = 12

	// Rows below the plot frame: x tick labels, x label, spare, status
	footerRows = 4
	// Approximate cells between tick labels
	xTickSpacing = 10
	yTickSpacing = 3
)

// Surface is the subset of tcell.Screen the renderer draws on
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Fill(r rune, style tcell.Style)
	Size() (width, height int)
	Show()
}

// FrameSource provides the frame to display. Satisfied by *animation.Driver.
type FrameSource interface {
	Current() (animation.Frame, bool)
	State() animation.State
	Total() int
}

// Options control the decorations around the plot
type Options struct {
	Title  string
	Status bool
}

// DefaultOptions returns the standard title with the status line enabled
func DefaultOptions() Options {
	return Options{Title: DefaultTitle, Status: true}
}

// Layout is the cell geometry computed for the current surface size
type Layout struct {
	Width, Height int
	Plot          Viewport

	AxisCol  int // left frame column, y ticks attach here
	AxisRow  int // bottom frame row, x ticks attach here
	TopRow   int // top frame row
	RightCol int // right frame column

	LegendCol     int
	LegendRow     int // first of two legend rows
	LegendWidth   int
	LegendVisible bool

	StatusRow int

	XTicks, YTicks   []float64
	XLabels, YLabels []string

	TooSmall bool
}

// Renderer draws a trajectory animation as a terminal line plot
type Renderer struct {
	surface Surface
	tr      *trajectory.Trajectory
	opts    Options
	layout  Layout
}

// NewRenderer creates a renderer sized to the surface
func NewRenderer(surface Surface, tr *trajectory.Trajectory, opts Options) *Renderer {
	if opts.Title == "" {
		opts.Title = DefaultTitle
	}
	r := &Renderer{
		surface: surface,
		tr:      tr,
		opts:    opts,
	}
	r.Resize()
	return r
}

// Resize recomputes the layout from the surface size
func (r *Renderer) Resize() {
	w, h := r.surface.Size()
	r.layout = computeLayout(w, h, r.tr)
}

// Layout returns the current geometry
func (r *Renderer) Layout() Layout {
	return r.layout
}

func computeLayout(w, h int, tr *trajectory.Trajectory) Layout {
	limits := tr.Bounds()
	l := Layout{Width: w, Height: h}
	if w < MinWidth || h < MinHeight {
		l.TooSmall = true
		return l
	}

	l.TopRow = 1
	l.AxisRow = h - footerRows
	l.RightCol = w - 1
	l.StatusRow = h - 1

	plotRows := l.AxisRow - l.TopRow - 1
	l.YTicks = NiceTicks(limits.ZMin, limits.ZMax, max(2, plotRows/yTickSpacing+1))
	l.YLabels = FormatTicks(l.YTicks)

	labelWidth := 0
	for _, s := range l.YLabels {
		labelWidth = max(labelWidth, len(s))
	}
	// Column 0 holds the vertical axis label, column 1 is a gap
	l.AxisCol = 2 + labelWidth

	l.Plot = Viewport{
		Left:   l.AxisCol + 1,
		Top:    l.TopRow + 1,
		Width:  l.RightCol - l.AxisCol - 1,
		Height: plotRows,
		Limits: limits,
	}

	l.XTicks = NiceTicks(limits.XMin, limits.XMax, max(2, l.Plot.Width/xTickSpacing+1))
	l.XLabels = FormatTicks(l.XTicks)

	placeLegend(&l, tr)
	return l
}

// placeLegend picks the plot corner whose legend box covers the fewest cells of the complete path.
// Ties go to the earlier corner: top-right, bottom-right, top-left, bottom-left.
func placeLegend(l *Layout, tr *trajectory.Trajectory) {
	v := l.Plot
	w := max(len(LegendPath), len(LegendMarker)) + 3
	l.LegendWidth = w
	if v.Width < w+2 || v.Height < 2 {
		return
	}
	l.LegendVisible = true

	occupied := make([]bool, v.Width*v.Height)
	rasterize(v, tr.X, tr.Z, func(col, row int) {
		occupied[(row-v.Top)*v.Width+col-v.Left] = true
	})

	left, right := v.Left+1, v.Right()-w
	top, bottom := v.Top, v.Bottom()-1
	corners := [][2]int{{right, top}, {right, bottom}, {left, top}, {left, bottom}}

	best := -1
	for _, c := range corners {
		hits := 0
		for row := c[1]; row <= c[1]+1; row++ {
			for col := c[0]; col < c[0]+w; col++ {
				if occupied[(row-v.Top)*v.Width+col-v.Left] {
					hits++
				}
			}
		}
		if best < 0 || hits < best {
			best = hits
			l.LegendCol, l.LegendRow = c[0], c[1]
		}
		if hits == 0 {
			return
		}
	}
}

// Draw renders the whole surface for the source's current frame and shows it
func (r *Renderer) Draw(src FrameSource) {
	r.surface.Fill(' ', baseStyle())

	l := r.layout
	if l.TooSmall {
		msg := fmt.Sprintf("terminal too small, need %dx%d", MinWidth, MinHeight)
		r.drawText(0, 0, msg, baseStyle().Foreground(RgbWarning))
		r.surface.Show()
		return
	}

	r.drawTitle()
	r.drawFrame()
	r.drawTicks()
	r.drawAxisLabels()

	// Path over legend, so a crowded corner never hides flight cells
	r.drawLegend()
	frame, ok := src.Current()
	if ok {
		r.drawPath(frame)
		r.drawMarker(frame)
	}

	if r.opts.Status {
		r.drawStatus(src, frame, ok)
	}

	r.surface.Show()
}

func (r *Renderer) drawTitle() {
	title := r.opts.Title
	x := (r.layout.Width - len([]rune(title))) / 2
	r.drawText(max(0, x), 0, title, baseStyle().Foreground(RgbTitle).Bold(true))
}

func (r *Renderer) drawFrame() {
	l := r.layout
	style := baseStyle().Foreground(RgbAxis)

	for x := l.AxisCol + 1; x < l.RightCol; x++ {
		r.surface.SetContent(x, l.TopRow, '─', nil, style)
		r.surface.SetContent(x, l.AxisRow, '─', nil, style)
	}
	for y := l.TopRow + 1; y < l.AxisRow; y++ {
		r.surface.SetContent(l.AxisCol, y, '│', nil, style)
		r.surface.SetContent(l.RightCol, y, '│', nil, style)
	}
	r.surface.SetContent(l.AxisCol, l.TopRow, '┌', nil, style)
	r.surface.SetContent(l.RightCol, l.TopRow, '┐', nil, style)
	r.surface.SetContent(l.AxisCol, l.AxisRow, '└', nil, style)
	r.surface.SetContent(l.RightCol, l.AxisRow, '┘', nil, style)
}

func (r *Renderer) drawTicks() {
	l := r.layout
	v := l.Plot
	markStyle := baseStyle().Foreground(RgbAxis)
	labelStyle := baseStyle().Foreground(RgbTickLabel)

	// Labels are centered under ticks and skipped when they would collide
	nextFree := 0
	for i, tick := range l.XTicks {
		col, _, ok := v.Cell(tick, v.Limits.ZMin)
		if !ok {
			continue
		}
		r.surface.SetContent(col, l.AxisRow, '┴', nil, markStyle)

		label := l.XLabels[i]
		start := col - len(label)/2
		if start < nextFree || start+len(label) > l.Width {
			continue
		}
		r.drawText(start, l.AxisRow+1, label, labelStyle)
		nextFree = start + len(label) + 1
	}

	for i, tick := range l.YTicks {
		_, row, ok := v.Cell(v.Limits.XMin, tick)
		if !ok {
			continue
		}
		r.surface.SetContent(l.AxisCol, row, '┤', nil, markStyle)

		label := l.YLabels[i]
		r.drawText(l.AxisCol-len(label), row, label, labelStyle)
	}
}

func (r *Renderer) drawAxisLabels() {
	l := r.layout
	style := baseStyle().Foreground(RgbLabel)

	xLabel := []rune(XAxisLabel)
	start := l.Plot.Left + (l.Plot.Width-len(xLabel))/2
	r.drawText(max(0, start), l.AxisRow+2, XAxisLabel, style)

	// Vertical, top to bottom, centered on the plot rows
	yLabel := []rune(YAxisLabel)
	if len(yLabel) > l.Plot.Height {
		yLabel = yLabel[:l.Plot.Height]
	}
	top := l.Plot.Top + (l.Plot.Height-len(yLabel))/2
	for i, ch := range yLabel {
		r.surface.SetContent(0, top+i, ch, nil, style)
	}
}

func (r *Renderer) drawPath(f animation.Frame) {
	style := pathStyle()
	rasterize(r.layout.Plot, f.PathX, f.PathZ, func(col, row int) {
		r.surface.SetContent(col, row, GlyphPath, nil, style)
	})
}

// rasterize joins consecutive points with cell segments and visits every cell inside the viewport.
// Cells shared by adjacent segments are visited more than once.
func rasterize(v Viewport, xs, zs []float64, visit func(col, row int)) {
	for i := 1; i < len(xs); i++ {
		x1, y1 := v.Project(xs[i-1], zs[i-1])
		x2, y2 := v.Project(xs[i], zs[i])

		gt := vmath.NewGridTraverserFloat(x1, y1, x2, y2)
		for gt.Next() {
			col, row := gt.Pos()
			if v.Contains(col, row) {
				visit(col, row)
			}
		}
	}
}

func (r *Renderer) drawMarker(f animation.Frame) {
	col, row, ok := r.layout.Plot.Cell(f.Marker.X, f.Marker.Z)
	if !ok {
		return
	}
	r.surface.SetContent(col, row, GlyphMarker, nil, markerStyle())
}

func (r *Renderer) drawLegend() {
	l := r.layout
	if !l.LegendVisible {
		return
	}
	textStyle := baseStyle().Foreground(RgbLabel)

	r.surface.SetContent(l.LegendCol, l.LegendRow, GlyphPath, nil, pathStyle())
	r.surface.SetContent(l.LegendCol+1, l.LegendRow, GlyphPath, nil, pathStyle())
	r.drawText(l.LegendCol+3, l.LegendRow, LegendPath, textStyle)

	r.surface.SetContent(l.LegendCol+1, l.LegendRow+1, GlyphMarker, nil, markerStyle())
	r.drawText(l.LegendCol+3, l.LegendRow+1, LegendMarker, textStyle)
}

func (r *Renderer) drawStatus(src FrameSource, f animation.Frame, ok bool) {
	l := r.layout
	bg := RgbStatusBg
	var text string
	switch {
	case !ok:
		text = fmt.Sprintf(" ready | %d frames | q to quit", src.Total())
	default:
		m := f.Marker
		text = fmt.Sprintf(" frame %d/%d | t=%.2fs x=%.2fm z=%.2fm vz=%+.2fm/s",
			f.Index+1, src.Total(), m.T, m.X, m.Z, m.VZ)
		if src.State() == animation.StateDone {
			text += " | done, q to quit"
			bg = RgbDoneBg
		}
	}

	style := tcell.StyleDefault.Foreground(RgbStatusText).Background(bg)
	runes := []rune(text)
	for x := 0; x < l.Width; x++ {
		ch := ' '
		if x < len(runes) {
			ch = runes[x]
		}
		r.surface.SetContent(x, l.StatusRow, ch, nil, style)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		if x >= r.layout.Width {
			return
		}
		r.surface.SetContent(x, y, ch, nil, style)
		x++
	}
}
