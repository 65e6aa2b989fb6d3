package scenes

import (
	"fmt"
	"sync"

	cfg "github.com/automoto/netfx/config"
	"github.com/automoto/netfx/field"
	"github.com/automoto/netfx/fonts"
	"github.com/automoto/netfx/frame"
	"github.com/automoto/netfx/input"
	"github.com/automoto/netfx/systems"
	"github.com/automoto/netfx/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// SiteScene is the page with the particle network behind it and the fx
// toggle in the corner
type SiteScene struct {
	store systems.ItemStore

	loop   *frame.Loop
	hub    *input.Hub
	field  *field.Field
	toggle *ui.ToggleUI

	once sync.Once
}

// NewSiteScene creates the site scene. store may be nil when persistence is
// unavailable.
func NewSiteScene(store systems.ItemStore) *SiteScene {
	return &SiteScene{
		store: store,
		loop:  frame.NewLoop(),
		hub:   input.NewHub(),
	}
}

func (ss *SiteScene) Update() {
	ss.once.Do(ss.configure)

	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		cfg.Debug.Overlay = !cfg.Debug.Overlay
	}

	ss.hub.Poll(ebiten.CursorPosition())
	ss.loop.Tick()
	ss.toggle.Update()
}

func (ss *SiteScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Page.BackgroundColor)

	if ss.field == nil {
		return
	}
	ss.field.Draw(screen)
	ss.drawPage(screen)
	ss.toggle.Draw(screen)

	if cfg.Debug.Overlay {
		ss.drawDebug(screen)
	}
}

// Resize forwards the window size to the field's resize listeners
func (ss *SiteScene) Resize(width, height int) {
	ss.hub.SetViewport(width, height)
}

// Close stops the animation
func (ss *SiteScene) Close() {
	if ss.field != nil {
		ss.field.Deactivate()
	}
}

func (ss *SiteScene) configure() {
	ss.field = field.New(field.Options{
		Scheduler: ss.loop,
		Input:     ss.hub,
		Viewport:  ss.hub,
		Store:     ss.store,
	})
	ss.toggle = ui.NewToggleUI(ss.field)

	ss.field.Activate()
	ss.toggle.Refresh()
}

func (ss *SiteScene) drawPage(screen *ebiten.Image) {
	titleFace := fonts.Title.Get()
	op := &text.DrawOptions{}
	op.GeoM.Translate(cfg.Page.MarginX, cfg.Page.MarginY)
	op.ColorScale.ScaleWithColor(cfg.Page.TitleColor)
	text.Draw(screen, cfg.Page.Title, titleFace, op)

	_, titleHeight := text.Measure(cfg.Page.Title, titleFace, 0)
	op = &text.DrawOptions{}
	op.GeoM.Translate(cfg.Page.MarginX, cfg.Page.MarginY+titleHeight+cfg.Page.TextFontSize)
	op.ColorScale.ScaleWithColor(cfg.Page.TextColor)
	text.Draw(screen, cfg.Page.Subtitle, fonts.Body.Get(), op)
}

// drawDebug prints on top of everything, whether or not fx is on
func (ss *SiteScene) drawDebug(screen *ebiten.Image) {
	pointer, resize := ss.hub.ListenerCount()
	msg := fmt.Sprintf("TPS: %0.1f\nframe: %d (pending %d)\nlisteners: %d pointer, %d resize\n%s",
		ebiten.ActualTPS(), ss.loop.Frame(), ss.loop.Pending(), pointer, resize, ss.field.DebugStatus())
	ebitenutil.DebugPrintAt(screen, msg, 8, 8)
}
