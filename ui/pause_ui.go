package ui

import (
	"image/color"

	"github.com/automoto/snapengine/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// PauseUI is the menu shown over a paused level.
type PauseUI struct {
	UI *ebitenui.UI

	// Callbacks
	OnResume        func()
	OnRespawn       func()
	OnClearProgress func()

	statusLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

// NewPauseUI builds the pause menu. Fonts must already be loaded.
func NewPauseUI(onResume, onRespawn, onClearProgress func()) *PauseUI {
	pui := &PauseUI{
		OnResume:        onResume,
		OnRespawn:       onRespawn,
		OnClearProgress: onClearProgress,
		titleFace:       fonts.Title.Text(),
		normalFace:      fonts.Regular.Text(),
		smallFace:       fonts.Mono.Text(),
	}
	pui.buildUI()
	return pui
}

func (pui *PauseUI) buildUI() {
	// Root is transparent; the world is dimmed underneath.
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{20, 20, 30, 230})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(10)),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("PAUSED", &pui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	panel.AddChild(pui.button("Resume", func() { pui.call(pui.OnResume) }))
	panel.AddChild(pui.button("Respawn", func() { pui.call(pui.OnRespawn) }))
	panel.AddChild(pui.button("Clear progress", func() { pui.call(pui.OnClearProgress) }))

	pui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &pui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	)
	panel.AddChild(pui.statusLabel)

	rootContainer.AddChild(panel)

	pui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (pui *PauseUI) button(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(120, 20),
		),
		widget.ButtonOpts.Image(pui.buttonImage()),
		widget.ButtonOpts.Text(label, &pui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func (pui *PauseUI) call(fn func()) {
	if fn != nil {
		fn()
	}
}

// SetStatus shows a one-line message under the buttons.
func (pui *PauseUI) SetStatus(msg string) {
	if pui.statusLabel != nil {
		pui.statusLabel.Label = msg
	}
}

func (pui *PauseUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

// Update calls the UI's Update method
func (pui *PauseUI) Update() {
	pui.UI.Update()
}

func (pui *PauseUI) Draw(screen *ebiten.Image) {
	pui.UI.Draw(screen)
}
