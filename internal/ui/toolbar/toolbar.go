// Package toolbar builds the ebitenui control bar: algorithm
// selection, the debug toggle, and canvas clearing.
package toolbar

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/getkid/GIIS/internal/raster"
	"github.com/getkid/GIIS/internal/render"
)

// Height is the toolbar strip height in pixels. Canvas clicks inside
// this strip belong to the UI, not the drawing surface.
const Height = 48

// Callbacks connect toolbar interactions to the application.
type Callbacks struct {
	// OnAlgorithm is called when an algorithm button becomes active.
	OnAlgorithm func(algo raster.Algorithm)
	// OnDebug is called when the debug toggle changes state.
	OnDebug func(enabled bool)
	// OnClear is called when the clear button is clicked.
	OnClear func()
}

// Toolbar is the top control bar. No algorithm button is active until
// the user selects one.
type Toolbar struct {
	ui          *ebitenui.UI
	group       *widget.RadioGroup
	algoButtons []*widget.Button
	debug       bool
}

// New builds the toolbar and wires its callbacks.
func New(cb Callbacks) (*Toolbar, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load toolbar font: %w", err)
	}
	var fontFace text.Face = &text.GoTextFace{Source: src, Size: 14}

	t := &Toolbar{ui: &ebitenui.UI{}}
	t.ui.PrimaryTheme = newToolbarTheme(&fontFace)

	buttonTextColor := &widget.ButtonTextColor{
		Idle:    color.Black,
		Hover:   color.Black,
		Pressed: color.RGBA{0, 0, 200, 255},
	}

	bar := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(0, Height),
		),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(8),
				widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Bottom: 8, Left: 8, Right: 8}),
			),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{220, 220, 240, 255})),
	)

	algorithms := []raster.Algorithm{raster.DDA, raster.Bresenham, raster.Wu}
	var algoButtons []*widget.Button
	for _, algo := range algorithms {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(t.ui.PrimaryTheme.ButtonTheme.Image),
			widget.ButtonOpts.Text(algo.String(), &fontFace, buttonTextColor),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(96, 32),
			),
		)
		algoButtons = append(algoButtons, btn)
		bar.AddChild(btn)
	}

	// The radio group activates its initial element as soon as the
	// event queue drains. A detached placeholder takes that slot so no
	// algorithm button starts checked and no selection is reported
	// before the user clicks one.
	noSelection := widget.NewButton(
		widget.ButtonOpts.Image(t.ui.PrimaryTheme.ButtonTheme.Image),
		widget.ButtonOpts.ToggleMode(),
	)
	elements := make([]widget.RadioGroupElement, 0, len(algoButtons)+1)
	elements = append(elements, noSelection)
	for _, b := range algoButtons {
		elements = append(elements, b)
	}
	t.group = widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
		widget.RadioGroupOpts.InitialElement(noSelection),
		widget.RadioGroupOpts.ChangedHandler(func(args *widget.RadioGroupChangedEventArgs) {
			if cb.OnAlgorithm == nil {
				return
			}
			for i, b := range algoButtons {
				if args.Active == b {
					cb.OnAlgorithm(algorithms[i])
					return
				}
			}
		}),
	)
	t.algoButtons = algoButtons

	debugBtn := widget.NewButton(
		widget.ButtonOpts.Image(t.ui.PrimaryTheme.ButtonTheme.Image),
		widget.ButtonOpts.Text("Debug", &fontFace, buttonTextColor),
		widget.ButtonOpts.ToggleMode(),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(96, 32),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			t.debug = !t.debug
			if cb.OnDebug != nil {
				cb.OnDebug(t.debug)
			}
		}),
	)
	bar.AddChild(debugBtn)

	clearBtn := widget.NewButton(
		widget.ButtonOpts.Image(t.ui.PrimaryTheme.ButtonTheme.Image),
		widget.ButtonOpts.Text("Clear", &fontFace, buttonTextColor),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(96, 32),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if cb.OnClear != nil {
				cb.OnClear()
			}
		}),
	)
	bar.AddChild(clearBtn)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	bar.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
		StretchHorizontal:  true,
	}
	root.AddChild(bar)
	t.ui.Container = root

	return t, nil
}

// Update processes UI input for this frame.
func (t *Toolbar) Update() {
	t.ui.Update()
}

// Draw renders the toolbar on top of the screen. dst must come from
// the ebiten render backend.
func (t *Toolbar) Draw(dst render.Image) {
	raw, ok := dst.(interface{ GetEbitenImage() *ebiten.Image })
	if !ok {
		return
	}
	t.ui.Draw(raw.GetEbitenImage())
}

// Contains reports whether the window position lies inside the bar.
func (t *Toolbar) Contains(x, y int) bool {
	return y < Height
}
