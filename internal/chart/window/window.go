//go:build cgo || windows || darwin

package window

import (
	"image/color"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/dgallion1/termviz/internal/chart"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	width  = 1000
	height = 600

	marginLeft   = 80
	marginRight  = 30
	marginTop    = 50
	marginBottom = 150

	// Debug font cell size.
	glyphW = 6
	glyphH = 16
)

var (
	background = color.RGBA{0x1e, 0x1e, 0x24, 0xff}
	axisColor  = color.RGBA{0xc8, 0xc8, 0xc8, 0xff}
	barColor   = color.RGBA{0x1f, 0x77, 0xb4, 0xff}
)

// Available reports whether a chart window can be opened here.
func (Display) Available() bool {
	return hasDisplay()
}

// Show opens a window with the chart and blocks until it is closed
// (window close button, Escape or Q).
func (Display) Show(c chart.Chart) error {
	ebiten.SetWindowTitle(c.Title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(&chartGame{chart: c})
}

type chartGame struct {
	chart  chart.Chart
	labels []*ebiten.Image
	ylabel *ebiten.Image
}

func (g *chartGame) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (g *chartGame) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	plotW := float32(width - marginLeft - marginRight)
	plotH := float32(height - marginTop - marginBottom)
	originX := float32(marginLeft)
	originY := float32(marginTop) + plotH

	vector.StrokeLine(screen, originX, marginTop, originX, originY, 1, axisColor, false)
	vector.StrokeLine(screen, originX, originY, originX+plotW, originY, 1, axisColor, false)

	title := g.chart.Title
	ebitenutil.DebugPrintAt(screen, title, (width-textWidth(title))/2, 16)
	xlabel := g.chart.XLabel
	ebitenutil.DebugPrintAt(screen, xlabel, (width-textWidth(xlabel))/2, height-glyphH-8)

	if g.ylabel == nil {
		g.ylabel = textImage(g.chart.YLabel)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Rotate(-math.Pi / 2)
	op.GeoM.Translate(16, float64(originY)-(float64(plotH)-float64(textWidth(g.chart.YLabel)))/2)
	screen.DrawImage(g.ylabel, op)

	bars := g.chart.Bars
	if len(bars) == 0 {
		return
	}
	if g.labels == nil {
		g.labels = make([]*ebiten.Image, len(bars))
		for i, b := range bars {
			g.labels[i] = textImage(b.Label)
		}
	}

	longest := g.chart.Max()
	slot := plotW / float32(len(bars))
	barW := slot * 0.8
	for i, b := range bars {
		var h float32
		if longest > 0 {
			h = float32(b.Value) / float32(longest) * (plotH - glyphH)
		}
		x := originX + slot*float32(i) + (slot-barW)/2
		vector.DrawFilledRect(screen, x, originY-h, barW, h, barColor, false)

		value := strconv.Itoa(b.Value)
		ebitenutil.DebugPrintAt(screen, value, int(x+barW/2)-textWidth(value)/2, int(originY-h)-glyphH)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Rotate(math.Pi / 4)
		op.GeoM.Translate(float64(x+barW/2), float64(originY)+6)
		screen.DrawImage(g.labels[i], op)
	}
}

func (g *chartGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return width, height
}

func textWidth(s string) int {
	return utf8.RuneCountInString(s) * glyphW
}

// textImage renders s with the debug font onto a transparent image so it can
// be rotated.
func textImage(s string) *ebiten.Image {
	w := textWidth(s)
	if w == 0 {
		w = 1
	}
	img := ebiten.NewImage(w, glyphH)
	ebitenutil.DebugPrintAt(img, s, 0, 0)
	return img
}
