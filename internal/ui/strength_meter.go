package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/ultracanvas/ultratexter/internal/meter"
)

// StrengthMeter is the Fyne shell around the meter core. The core owns all
// score and animation state; this widget translates Fyne's redraw cycle into
// core render calls and keeps an animation ticking while a transition is in
// flight.
type StrengthMeter struct {
	widget.BaseWidget

	core *meter.Meter
	anim *fyne.Animation
}

// entrySource adapts a Fyne entry to the read-only text source the core polls
type entrySource struct {
	entry *widget.Entry
}

func (s entrySource) CurrentText() string {
	return s.entry.Text
}

// NewStrengthMeter creates a strength meter widget with the given configuration
func NewStrengthMeter(cfg meter.Config) *StrengthMeter {
	sm := &StrengthMeter{core: meter.New(cfg)}
	sm.ExtendBaseWidget(sm)
	return sm
}

// Meter exposes the framework-independent core, e.g. for callbacks
func (sm *StrengthMeter) Meter() *meter.Meter {
	return sm.core
}

// SetConfig replaces the meter configuration and repaints
func (sm *StrengthMeter) SetConfig(cfg meter.Config) {
	sm.core.SetConfig(cfg)
	sm.Refresh()
}

// SetStyle switches between bar and circular rendering
func (sm *StrengthMeter) SetStyle(style meter.Style) {
	sm.core.SetStyle(style)
	sm.Refresh()
}

// SetShowLabel toggles the level token text
func (sm *StrengthMeter) SetShowLabel(show bool) {
	sm.core.SetShowLabel(show)
	sm.Refresh()
}

// SetShowPercentage toggles the percentage text
func (sm *StrengthMeter) SetShowPercentage(show bool) {
	sm.core.SetShowPercentage(show)
	sm.Refresh()
}

// SetAnimationEnabled toggles eased transitions
func (sm *StrengthMeter) SetAnimationEnabled(enabled bool) {
	sm.core.SetAnimationEnabled(enabled)
	sm.Refresh()
}

// SetStrength drives the score directly through the core's transition pipeline
func (sm *StrengthMeter) SetStrength(score float64) {
	sm.core.SetStrength(score)
	sm.kickAnimation()
}

// UpdateFromPassword evaluates a password and applies the resulting score
func (sm *StrengthMeter) UpdateFromPassword(password string) {
	sm.core.UpdateFromPassword(password)
	sm.kickAnimation()
}

// LinkEntry links the meter to an entry. The core polls the entry's text on
// every render; the entry's OnChanged is chained only to request repaints, so
// the host keeps issuing redraw ticks while the user types.
func (sm *StrengthMeter) LinkEntry(entry *widget.Entry) {
	sm.core.LinkInput(entrySource{entry: entry})

	previous := entry.OnChanged
	entry.OnChanged = func(text string) {
		if previous != nil {
			previous(text)
		}
		sm.kickAnimation()
	}
	sm.Refresh()
}

// UnlinkInput clears the linked entry without touching the current score
func (sm *StrengthMeter) UnlinkInput() {
	sm.core.UnlinkInput()
}

// kickAnimation repaints and, when the core reports a transition in flight,
// runs a Fyne animation whose only job is to request a repaint per frame; the
// core samples its own clock on each render.
func (sm *StrengthMeter) kickAnimation() {
	sm.Refresh()

	if sm.anim != nil {
		sm.anim.Stop()
		sm.anim = nil
	}
	if !sm.core.Animating() {
		return
	}

	duration := sm.core.Config().AnimationDuration
	if duration <= 0 {
		sm.Refresh()
		return
	}

	sm.anim = fyne.NewAnimation(duration, func(progress float32) {
		sm.Refresh()
		if progress >= 1 {
			sm.anim = nil
		}
	})
	sm.anim.Curve = fyne.AnimationLinear
	sm.anim.Start()
}

// CreateRenderer builds the custom renderer that paints the core through a
// canvas context
func (sm *StrengthMeter) CreateRenderer() fyne.WidgetRenderer {
	return &strengthMeterRenderer{meter: sm}
}

type strengthMeterRenderer struct {
	meter   *StrengthMeter
	objects []fyne.CanvasObject
	size    fyne.Size
}

func (r *strengthMeterRenderer) Layout(size fyne.Size) {
	r.size = size
	r.rebuild()
}

func (r *strengthMeterRenderer) MinSize() fyne.Size {
	if r.meter.core.Config().Style == meter.StyleCircular {
		return fyne.NewSize(MeterCircularMinSize, MeterCircularMinSize)
	}
	return fyne.NewSize(MeterBarMinWidth, MeterBarMinHeight)
}

func (r *strengthMeterRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.meter)
}

// rebuild repaints the core into a fresh canvas context and swaps the object list
func (r *strengthMeterRenderer) rebuild() {
	ctx := newCanvasContext()
	r.meter.core.Render(ctx, float64(r.size.Width), float64(r.size.Height))
	r.objects = ctx.Objects()
}

func (r *strengthMeterRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *strengthMeterRenderer) Destroy() {}
