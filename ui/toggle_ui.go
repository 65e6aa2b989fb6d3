package ui

import (
	"github.com/automoto/netfx/config"
	"github.com/automoto/netfx/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Toggler is the control's view of the particle field
type Toggler interface {
	Label() string
	Toggle()
}

// ToggleUI is the fixed fx on/off control in the bottom-right corner
type ToggleUI struct {
	UI *ebitenui.UI

	field  Toggler
	button *widget.Button
	face   text.Face
}

// NewToggleUI builds the control. fonts.Mono must be loaded.
func NewToggleUI(field Toggler) *ToggleUI {
	tui := &ToggleUI{
		field: field,
		face:  fonts.Mono.Get(),
	}
	tui.buildUI()
	return tui
}

func (tui *ToggleUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout(
			widget.AnchorLayoutOpts.Padding(widget.NewInsetsSimple(config.Toggle.Margin)),
		)),
	)

	cfg := config.Toggle
	tui.button = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewBorderedNineSliceColor(cfg.BackgroundColor, cfg.BorderColor, 1),
			Hover:   image.NewBorderedNineSliceColor(cfg.BackgroundColor, cfg.HoverColor, 1),
			Pressed: image.NewBorderedNineSliceColor(cfg.BorderColor, cfg.HoverColor, 1),
		}),
		widget.ButtonOpts.Text(tui.field.Label(), &tui.face, &widget.ButtonTextColor{
			Idle:    cfg.TextColor,
			Hover:   cfg.HoverColor,
			Pressed: cfg.HoverColor,
		}),
		widget.ButtonOpts.TextPadding(widget.NewInsetsSimple(cfg.Padding)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			tui.onClick()
		}),
	)
	rootContainer.AddChild(tui.button)

	tui.UI = &ebitenui.UI{Container: rootContainer}
}

func (tui *ToggleUI) onClick() {
	tui.field.Toggle()
	tui.Refresh()
}

// Refresh syncs the button text with the field's preference
func (tui *ToggleUI) Refresh() {
	if tui.button != nil {
		tui.button.Text().Label = tui.field.Label()
	}
}

func (tui *ToggleUI) Update() {
	tui.UI.Update()
}

func (tui *ToggleUI) Draw(screen *ebiten.Image) {
	tui.UI.Draw(screen)
}
