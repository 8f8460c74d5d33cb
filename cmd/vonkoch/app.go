package main

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	koch "github.com/RobinHil/von-koch-flake"
)

const (
	screenWidth  = 1000
	screenHeight = 800

	// Height of the control bar; left-drags starting inside it belong to
	// the widgets, not to panning.
	barHeight = 48

	// Fixed zoom step for keys and buttons, wheel step per scroll tick.
	keyZoomStep   = 1.2
	wheelZoomStep = 0.1

	outlineWidth = 2
)

var (
	backgroundColor = color.RGBA{R: 190, G: 190, B: 190, A: 255}
	outlineColor    = color.White
)

// App runs the viewer: it translates input events into View mutations and
// redraws the outline whenever the view changed. All state lives on the
// single game loop goroutine.
type App struct {
	view     *koch.View
	fontFace text.Face

	ui         *ebitenui.UI
	zoomLabel  *widget.Text
	depthLabel *widget.Text

	outline koch.Curve
	dirty   bool

	dragging     bool
	lastX, lastY int
}

// NewApp creates the viewer for the given view state.
func NewApp(view *koch.View) (*App, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}

	a := &App{
		view:     view,
		fontFace: &text.GoTextFace{Source: src, Size: 14},
		dirty:    true,
	}
	a.ui = a.buildUI()
	return a, nil
}

// Update implements ebiten.Game. Input is handled to completion and the
// outline regenerated before the next frame; at depth <= 7 regeneration is
// cheap enough to run synchronously.
func (a *App) Update() error {
	a.ui.Update()
	a.handlePointer()
	a.handleKeys()

	if a.dirty {
		a.outline = a.view.Outline(screenWidth, screenHeight)
		a.refreshLabels()
		a.dirty = false
	}
	return nil
}

func (a *App) handlePointer() {
	x, y := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		switch {
		case !a.dragging:
			if y < screenHeight-barHeight {
				a.dragging = true
			}
		case x != a.lastX || y != a.lastY:
			a.view.Pan(float64(x-a.lastX), float64(y-a.lastY))
			a.dirty = true
		}
		a.lastX, a.lastY = x, y
	} else {
		a.dragging = false
	}

	// Ebiten normalizes wheel deltas across platforms, so one factor
	// derivation covers every OS.
	if _, yoff := ebiten.Wheel(); yoff != 0 {
		a.view.ApplyZoomFactor(1 + yoff*wheelZoomStep)
		a.dirty = true
	}
}

func (a *App) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyKPAdd):
		a.view.ApplyZoomFactor(keyZoomStep)
		a.dirty = true
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract):
		a.view.ApplyZoomFactor(1 / keyZoomStep)
		a.dirty = true
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		a.view.Reset()
		a.dirty = true
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		a.view.Fit(screenWidth, screenHeight)
		a.dirty = true
	}
}

func (a *App) refreshLabels() {
	a.zoomLabel.Label = fmt.Sprintf("Zoom: %.2fx", a.view.Zoom())
	a.depthLabel.Label = fmt.Sprintf("Niveau: %d", a.view.Depth())
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	drawOutline(screen, a.outline)
	a.ui.Draw(screen)
}

// Layout implements ebiten.Game.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// drawOutline strokes the curve as a closed polygon.
func drawOutline(dst *ebiten.Image, c koch.Curve) {
	if len(c) < 2 {
		return
	}
	for i := 1; i < len(c); i++ {
		strokeSegment(dst, c[i-1], c[i])
	}
	strokeSegment(dst, c[len(c)-1], c[0])
}

func strokeSegment(dst *ebiten.Image, p, q koch.Point) {
	vector.StrokeLine(dst,
		float32(p.X), float32(p.Y),
		float32(q.X), float32(q.Y),
		outlineWidth, outlineColor, false)
}
