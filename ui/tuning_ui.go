package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	cfg "github.com/automoto/pixelcam/config"
)

// TuningUI is the in-game camera tuning panel. Edits go through the
// validating config setter; rejected edits show the error in the status
// label and leave the live config untouched.
type TuningUI struct {
	UI *ebitenui.UI

	// OnApply is called after every successful config change.
	OnApply func()

	speedLabel  *widget.Label
	pixelLabel  *widget.Label
	smoothBtn   *widget.Button
	snapBtn     *widget.Button
	limitsBtn   *widget.Button
	statusLabel *widget.Label

	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face
}

func NewTuningUI(onApply func()) *TuningUI {
	ui := &TuningUI{
		OnApply: onApply,
	}
	ui.loadFonts()
	ui.buildUI()
	ui.refresh()
	return ui
}

func (ui *TuningUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.titleFace = &text.GoTextFace{Source: fontSource, Size: 16}
	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 12}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 10}
}

func (ui *TuningUI) buildUI() {
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
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	rootContainer.AddChild(panel)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("CAMERA TUNING", &ui.titleFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	ui.speedLabel = ui.addStepperRow(panel, "-", "+", func(delta int) {
		c := cfg.Camera
		c.FollowSpeed += float64(delta) * 0.5
		ui.apply(c)
	})
	ui.pixelLabel = ui.addStepperRow(panel, "-", "+", func(delta int) {
		c := cfg.Camera
		c.PixelSize += float64(delta)
		ui.apply(c)
	})

	ui.smoothBtn = ui.addToggle(panel, func() {
		c := cfg.Camera
		c.Smoothing = !c.Smoothing
		ui.apply(c)
	})
	ui.snapBtn = ui.addToggle(panel, func() {
		c := cfg.Camera
		c.PixelSnap = !c.PixelSnap
		ui.apply(c)
	})
	ui.limitsBtn = ui.addToggle(panel, func() {
		c := cfg.Camera
		c.UseLimits = !c.UseLimits
		ui.apply(c)
	})

	ui.statusLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 200, 100, 255},
		}),
	)
	panel.AddChild(ui.statusLabel)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

// addStepperRow builds a "- label +" row and returns the center label.
func (ui *TuningUI) addStepperRow(panel *widget.Container, decText, incText string, step func(delta int)) *widget.Label {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	row.AddChild(ui.smallButton(decText, func() { step(-1) }))

	label := widget.NewLabel(
		widget.LabelOpts.Text("", &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{220, 220, 220, 255},
		}),
	)
	row.AddChild(label)

	row.AddChild(ui.smallButton(incText, func() { step(1) }))

	panel.AddChild(row)
	return label
}

func (ui *TuningUI) addToggle(panel *widget.Container, onToggle func()) *widget.Button {
	btn := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(170, 22)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{50, 50, 70, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{70, 70, 95, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{35, 35, 55, 255}),
		}),
		widget.ButtonOpts.Text("", &ui.normalFace, &widget.ButtonTextColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onToggle()
		}),
	)
	panel.AddChild(btn)
	return btn
}

func (ui *TuningUI) smallButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(22, 22)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
			Hover:   image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
			Pressed: image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		}),
		widget.ButtonOpts.Text(label, &ui.normalFace, &widget.ButtonTextColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

// apply pushes an edited config through the validating setter.
func (ui *TuningUI) apply(c cfg.CameraConfig) {
	if err := cfg.SetCamera(c); err != nil {
		ui.statusLabel.Label = err.Error()
		return
	}
	ui.statusLabel.Label = ""
	ui.refresh()
	if ui.OnApply != nil {
		ui.OnApply()
	}
}

// refresh re-renders all labels from the live config.
func (ui *TuningUI) refresh() {
	ui.speedLabel.Label = fmt.Sprintf("follow speed  %.1f/s", cfg.Camera.FollowSpeed)
	ui.pixelLabel.Label = fmt.Sprintf("pixel size  %g", cfg.Camera.PixelSize)
	ui.smoothBtn.Text().Label = onOff("smoothing", cfg.Camera.Smoothing)
	ui.snapBtn.Text().Label = onOff("pixel snap", cfg.Camera.PixelSnap)
	ui.limitsBtn.Text().Label = onOff("limits", cfg.Camera.UseLimits)
}

func onOff(name string, v bool) string {
	if v {
		return name + ": on"
	}
	return name + ": off"
}

func (ui *TuningUI) Update() {
	ui.UI.Update()
}

func (ui *TuningUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}
