package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// buildUI constructs the control bar at the bottom of the window: zoom
// buttons and label, recursion-level buttons and label, and the navigation
// instructions.
func (a *App) buildUI() *ebitenui.UI {
	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	bar := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(10)),
			widget.RowLayoutOpts.Spacing(16),
		)),
		widget.ContainerOpts.BackgroundImage(a.createBarBackground()),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
			widget.WidgetOpts.MinSize(screenWidth, barHeight),
		),
	)

	a.zoomLabel = a.createLabel(fmt.Sprintf("Zoom: %.2fx", a.view.Zoom()))
	bar.AddChild(a.zoomLabel)
	bar.AddChild(a.createButton("+", func() { a.view.ApplyZoomFactor(keyZoomStep) }))
	bar.AddChild(a.createButton("-", func() { a.view.ApplyZoomFactor(1 / keyZoomStep) }))

	a.depthLabel = a.createLabel(fmt.Sprintf("Niveau: %d", a.view.Depth()))
	bar.AddChild(a.depthLabel)
	bar.AddChild(a.createButton("Niveau -", func() { a.view.AdjustDepth(-1) }))
	bar.AddChild(a.createButton("Niveau +", func() { a.view.AdjustDepth(1) }))

	bar.AddChild(a.createLabel("Navigation: clic gauche + déplacer | Zoom: molette"))

	root.AddChild(bar)
	return &ebitenui.UI{Container: root}
}

func (a *App) createBarBackground() *image.NineSlice {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.RGBA{R: 30, G: 35, B: 45, A: 230})
	return image.NewNineSliceSimple(img, 0, 0)
}

func (a *App) createLabel(label string) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(label, &a.fontFace, color.RGBA{R: 230, G: 230, B: 230, A: 255}),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	)
}

func (a *App) createButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(a.createButtonImages()),
		widget.ButtonOpts.Text(label, &a.fontFace, &widget.ButtonTextColor{
			Idle: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		}),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(6)),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
			a.dirty = true
		}),
	)
}

func (a *App) createButtonImages() *widget.ButtonImage {
	idle := ebiten.NewImage(1, 1)
	idle.Fill(color.RGBA{R: 70, G: 80, B: 100, A: 255})

	hover := ebiten.NewImage(1, 1)
	hover.Fill(color.RGBA{R: 90, G: 100, B: 125, A: 255})

	pressed := ebiten.NewImage(1, 1)
	pressed.Fill(color.RGBA{R: 110, G: 120, B: 150, A: 255})

	return &widget.ButtonImage{
		Idle:    image.NewNineSliceSimple(idle, 0, 0),
		Hover:   image.NewNineSliceSimple(hover, 0, 0),
		Pressed: image.NewNineSliceSimple(pressed, 0, 0),
	}
}
