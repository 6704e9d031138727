package meter

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/ultracanvas/ultratexter/internal/strength"
)

// Painting constants
const (
	labelGap        = 4.0
	circleInset     = 5.0
	ringStrokeWidth = 8.0
)

// StrengthCallback receives the new score after every score change
type StrengthCallback func(score float64)

// LevelCallback receives the new level whenever the level token changes
type LevelCallback func(level strength.Level)

type strengthSub struct {
	id string
	fn StrengthCallback
}

type levelSub struct {
	id string
	fn LevelCallback
}

// Meter holds the strength meter state: the latest computed score, the value
// currently painted (which lags behind during animations), the linked text
// input, and change subscribers. All methods must be called from the UI
// goroutine; the meter is single-threaded by design.
type Meter struct {
	cfg Config

	currentStrength   float64
	displayedStrength float64
	level             strength.Level
	currentColor      color.RGBA

	animating          bool
	animationStart     float64
	animationTarget    float64
	animationStartTime time.Time

	lastObservedPassword string
	linkedInput          TextSource

	strengthSubs []strengthSub
	levelSubs    []levelSub

	now func() time.Time
}

// New creates a meter with the given configuration and an empty-password state
func New(cfg Config) *Meter {
	cfg = cfg.normalize()
	return &Meter{
		cfg:          cfg,
		level:        strength.LevelNoPassword,
		currentColor: cfg.Palette.ColorForLevel(strength.LevelNoPassword),
		now:          time.Now,
	}
}

// Config returns the active configuration
func (m *Meter) Config() Config {
	return m.cfg
}

// SetConfig replaces the whole configuration record. Animation state is left
// untouched; the new duration applies to subsequent transitions.
func (m *Meter) SetConfig(cfg Config) {
	m.cfg = cfg.normalize()
}

// SetStyle switches between bar and circular rendering
func (m *Meter) SetStyle(style Style) {
	m.cfg.Style = style
	m.cfg = m.cfg.normalize()
}

// SetShowLabel toggles the level token text
func (m *Meter) SetShowLabel(show bool) {
	m.cfg.ShowLabel = show
}

// SetShowPercentage toggles the percentage text
func (m *Meter) SetShowPercentage(show bool) {
	m.cfg.ShowPercentage = show
}

// SetAnimationEnabled toggles eased transitions between scores
func (m *Meter) SetAnimationEnabled(enabled bool) {
	m.cfg.AnimateTransitions = enabled
}

// LinkInput installs a non-owning reference to a text input and immediately
// evaluates its current text. The input is polled on every Render.
func (m *Meter) LinkInput(input TextSource) {
	m.linkedInput = input
	if input != nil {
		m.UpdateFromPassword(input.CurrentText())
	}
}

// UnlinkInput clears the input reference without touching the current score
func (m *Meter) UnlinkInput() {
	m.linkedInput = nil
}

// CurrentStrength returns the latest computed score
func (m *Meter) CurrentStrength() float64 {
	return m.currentStrength
}

// DisplayedStrength returns the score currently painted, which interpolates
// towards CurrentStrength while an animation is in flight
func (m *Meter) DisplayedStrength() float64 {
	return m.displayedStrength
}

// Level returns the current qualitative level, including the NoPassword
// sentinel for empty input
func (m *Meter) Level() strength.Level {
	return m.level
}

// Animating reports whether a transition is in flight
func (m *Meter) Animating() bool {
	return m.animating
}

// OnStrengthChanged registers a score-change subscriber and returns a token
// for Unsubscribe
func (m *Meter) OnStrengthChanged(fn StrengthCallback) string {
	id := uuid.NewString()
	m.strengthSubs = append(m.strengthSubs, strengthSub{id: id, fn: fn})
	return id
}

// OnLevelChanged registers a level-change subscriber and returns a token for
// Unsubscribe
func (m *Meter) OnLevelChanged(fn LevelCallback) string {
	id := uuid.NewString()
	m.levelSubs = append(m.levelSubs, levelSub{id: id, fn: fn})
	return id
}

// Unsubscribe removes a previously registered subscriber
func (m *Meter) Unsubscribe(id string) {
	for i, s := range m.strengthSubs {
		if s.id == id {
			m.strengthSubs = append(m.strengthSubs[:i], m.strengthSubs[i+1:]...)
			return
		}
	}
	for i, s := range m.levelSubs {
		if s.id == id {
			m.levelSubs = append(m.levelSubs[:i], m.levelSubs[i+1:]...)
			return
		}
	}
}

// SetStrength drives the score directly, bypassing the evaluator but running
// the full transition and callback pipeline. Out-of-range values are clamped.
func (m *Meter) SetStrength(score float64) {
	m.applyScore(strength.ClampScore(score))
}

// UpdateFromPassword evaluates the password and applies the resulting score.
// An empty password resets the meter to the NoPassword state without
// animation.
func (m *Meter) UpdateFromPassword(password string) {
	m.lastObservedPassword = password

	if password == "" {
		m.reset()
		return
	}
	m.applyScore(strength.Evaluate(password))
}

// reset returns the meter to the empty-password state
func (m *Meter) reset() {
	changed := m.currentStrength != 0
	prevLevel := m.level

	m.currentStrength = 0
	m.displayedStrength = 0
	m.animating = false
	m.level = strength.LevelNoPassword
	m.currentColor = m.cfg.Palette.ColorForLevel(strength.LevelNoPassword)

	if changed {
		m.emitStrength(0)
	}
	if prevLevel != strength.LevelNoPassword {
		m.emitLevel(strength.LevelNoPassword)
	}
}

// applyScore runs the score transition: update cached derivations, start or
// skip the animation, then notify subscribers
func (m *Meter) applyScore(score float64) {
	if score == m.currentStrength && m.level != strength.LevelNoPassword {
		return
	}

	prevLevel := m.level
	m.currentStrength = score
	m.level = strength.LevelForScore(score, m.cfg.Thresholds)
	m.currentColor = m.cfg.Palette.ColorForLevel(m.level)

	if m.cfg.AnimateTransitions {
		m.animationStart = m.displayedStrength
		m.animationTarget = score
		m.animationStartTime = m.now()
		m.animating = true
	} else {
		m.displayedStrength = score
		m.animating = false
	}

	m.emitStrength(score)
	if m.level != prevLevel {
		m.emitLevel(m.level)
	}
}

func (m *Meter) emitStrength(score float64) {
	for _, s := range m.strengthSubs {
		s.fn(score)
	}
}

func (m *Meter) emitLevel(level strength.Level) {
	for _, s := range m.levelSubs {
		s.fn(level)
	}
}

// advanceAnimation samples the eased displayed value for the current frame.
// Progress is sampled, not integrated, so dropped frames land on the correct
// value; a zero duration completes on the first sampled frame.
func (m *Meter) advanceAnimation() {
	if !m.animating {
		return
	}

	progress := 1.0
	if m.cfg.AnimationDuration > 0 {
		elapsed := m.now().Sub(m.animationStartTime)
		progress = clamp01(elapsed.Seconds() / m.cfg.AnimationDuration.Seconds())
	}

	eased := easeOutCubic(progress)
	m.displayedStrength = m.animationStart + (m.animationTarget-m.animationStart)*eased

	if progress >= 1 {
		m.displayedStrength = m.animationTarget
		m.animating = false
	}
}

// pollLinkedInput re-evaluates the linked input's text when it changed since
// the last frame. A nil link never triggers a read.
func (m *Meter) pollLinkedInput() {
	if m.linkedInput == nil {
		return
	}
	text := m.linkedInput.CurrentText()
	if text != m.lastObservedPassword {
		m.UpdateFromPassword(text)
	}
}

// Render paints the meter into ctx using the given bounds. It first polls the
// linked input, then advances any in-flight animation, then draws the
// configured style.
func (m *Meter) Render(ctx DrawContext, width, height float64) {
	m.pollLinkedInput()
	m.advanceAnimation()

	switch m.cfg.Style {
	case StyleCircular:
		m.renderCircular(ctx, width, height)
	default:
		m.renderBar(ctx, width, height)
	}
}

// renderBar draws a horizontal strip vertically centered in the bounds with a
// proportional fill, plus the optional text line just below it
func (m *Meter) renderBar(ctx DrawContext, width, height float64) {
	barH := float64(m.cfg.BarHeight)
	radius := float64(m.cfg.BorderRadius)
	y := (height - barH) / 2

	ctx.SetFillColor(m.cfg.Palette.Background)
	ctx.FillRoundedRect(0, y, width, barH, radius)

	fillW := math.Floor(width * m.displayedStrength / 100)
	if fillW > 0 {
		ctx.SetFillColor(m.levelColor())
		ctx.FillRoundedRect(0, y, fillW, barH, radius)
	}

	if text := m.overlayText(); text != "" {
		ctx.SetFontSize(DefaultLabelFontSize)
		ctx.SetFontWeight(false)
		ctx.SetTextColor(m.cfg.Palette.Text)
		tw, _ := ctx.MeasureText(text)
		ctx.DrawText(text, (width-tw)/2, y+barH+labelGap)
	}
}

// renderCircular draws a background ring and a clockwise foreground arc that
// starts at 12 o'clock, plus the optional percentage and label texts
func (m *Meter) renderCircular(ctx DrawContext, width, height float64) {
	cx := width / 2
	cy := height / 2
	r := math.Floor(math.Min(width, height)/2) - circleInset
	if r <= 0 {
		return
	}

	ctx.SetStrokeWidth(ringStrokeWidth)
	ctx.SetStrokeColor(m.cfg.Palette.Background)
	ctx.StrokeCircle(cx, cy, r)

	sweep := m.displayedStrength / 100 * 2 * math.Pi
	if sweep > 0 {
		ctx.SetStrokeColor(m.levelColor())
		ctx.StrokeArc(cx, cy, r, -math.Pi/2, -math.Pi/2+sweep)
	}

	if m.cfg.ShowPercentage {
		text := fmt.Sprintf("%d%%", m.roundedPercent())
		ctx.SetFontSize(DefaultPercentFontSize)
		ctx.SetFontWeight(true)
		ctx.SetTextColor(m.cfg.Palette.Text)
		tw, th := ctx.MeasureText(text)
		ctx.DrawText(text, cx-tw/2, cy-th/2)
	}

	if m.cfg.ShowLabel {
		text := m.level.String()
		ctx.SetFontSize(DefaultLabelFontSize)
		ctx.SetFontWeight(false)
		ctx.SetTextColor(m.cfg.Palette.Text)
		tw, _ := ctx.MeasureText(text)
		ctx.DrawText(text, cx-tw/2, cy+r+labelGap)
	}
}

// overlayText composes the bar text line: the level token, the percentage, or
// "level (n%)" when both toggles are on
func (m *Meter) overlayText() string {
	switch {
	case m.cfg.ShowLabel && m.cfg.ShowPercentage:
		return fmt.Sprintf("%s (%d%%)", m.level, m.roundedPercent())
	case m.cfg.ShowLabel:
		return m.level.String()
	case m.cfg.ShowPercentage:
		return fmt.Sprintf("%d%%", m.roundedPercent())
	}
	return ""
}

func (m *Meter) roundedPercent() int {
	return int(math.Round(m.currentStrength))
}

func (m *Meter) levelColor() color.RGBA {
	return m.currentColor
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// easeOutCubic is the interpolation curve f(t) = 1 - (1-t)^3
func easeOutCubic(t float64) float64 {
	inv := 1 - t
	return 1 - inv*inv*inv
}
