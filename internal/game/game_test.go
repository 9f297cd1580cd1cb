package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/iburimskiy/sorry-card/internal/card"
	"github.com/iburimskiy/sorry-card/internal/config"
	"github.com/iburimskiy/sorry-card/internal/motion"
)

type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

type fakeNotifier struct {
	sent chan [2]string
}

func (f *fakeNotifier) Notify(title, message string) error {
	f.sent <- [2]string{title, message}
	return nil
}

// newTestGame builds a game without fonts, images or audio.
func newTestGame(src card.Source, opts ...Option) *Game {
	g := &Game{
		cfg:      config.Config{PartyTitle: "Party Time", PartyMessage: "thanks"},
		logger:   zap.NewNop(),
		ctrl:     card.NewController(src),
		noSpring: motion.NewSpring2D(60, card.EvasionTransition(), card.Point{}),
		yesScale: motion.NewSpring(60, card.SpringTransition{Stiffness: config.PressStiffness, DampingRatio: 1}, 1),
		popup:    motion.NewSpring(60, card.PopupTransition(), popupStartScale),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.ctrl.Subscribe(g.onScreen)
	return g
}

func mouseAt(x, y float64) pointerFrame {
	return pointerFrame{mouse: card.Point{X: x, Y: y}}
}

func TestComputeLayout(t *testing.T) {
	_, ok := computeLayout(card.Viewport{})
	assert.False(t, ok)

	l, ok := computeLayout(card.Viewport{Width: 800, Height: 600})
	require.True(t, ok)
	assert.Equal(t, card.Rect{Left: 210, Top: 150, Width: 380, Height: 300}, l.card)
	assert.Equal(t, card.Rect{Left: 230, Top: 332, Width: 160, Height: 56}, l.yes)
	assert.Equal(t, card.Rect{Left: 410, Top: 332, Width: 140, Height: 56}, l.no)

	narrow, ok := computeLayout(card.Viewport{Width: 300, Height: 600})
	require.True(t, ok)
	assert.Equal(t, 268.0, narrow.card.Width)
}

func TestTrackerHoverEntersOnce(t *testing.T) {
	l, _ := computeLayout(card.Viewport{Width: 800, Height: 600})
	var tr pointerTracker

	evade, _ := tr.process(mouseAt(480, 360), l.yes, l.no)
	assert.Equal(t, []card.Trigger{card.PointerEnter}, evade)

	evade, _ = tr.process(mouseAt(481, 360), l.yes, l.no)
	assert.Empty(t, evade)

	f := mouseAt(481, 360)
	f.mouseJustPressed = true
	evade, _ = tr.process(f, l.yes, l.no)
	assert.Equal(t, []card.Trigger{card.PointerDown}, evade)

	tr.process(mouseAt(10, 10), l.yes, l.no)
	evade, _ = tr.process(mouseAt(480, 360), l.yes, l.no)
	assert.Equal(t, []card.Trigger{card.PointerEnter}, evade)
}

func TestTrackerTouchStartEvades(t *testing.T) {
	l, _ := computeLayout(card.Viewport{Width: 800, Height: 600})
	var tr pointerTracker

	f := pointerFrame{touchesStarted: []touchPoint{{id: 1, at: card.Point{X: 450, Y: 350}}}}
	evade, accept := tr.process(f, l.yes, l.no)
	assert.Equal(t, []card.Trigger{card.TouchStart}, evade)
	assert.False(t, accept)
}

func TestTrackerMouseClickAccepts(t *testing.T) {
	l, _ := computeLayout(card.Viewport{Width: 800, Height: 600})
	var tr pointerTracker

	press := mouseAt(310, 360)
	press.mouseJustPressed = true
	_, accept := tr.process(press, l.yes, l.no)
	assert.False(t, accept)
	assert.Equal(t, 0.95, tr.yesScale())

	release := mouseAt(312, 358)
	release.mouseJustReleased = true
	_, accept = tr.process(release, l.yes, l.no)
	assert.True(t, accept)
	assert.Equal(t, 1.05, tr.yesScale())
}

func TestTrackerDragOntoYesDoesNotAccept(t *testing.T) {
	l, _ := computeLayout(card.Viewport{Width: 800, Height: 600})
	var tr pointerTracker

	press := mouseAt(100, 100)
	press.mouseJustPressed = true
	tr.process(press, l.yes, l.no)

	release := mouseAt(310, 360)
	release.mouseJustReleased = true
	_, accept := tr.process(release, l.yes, l.no)
	assert.False(t, accept)

	press = mouseAt(310, 360)
	press.mouseJustPressed = true
	tr.process(press, l.yes, l.no)
	release = mouseAt(100, 100)
	release.mouseJustReleased = true
	_, accept = tr.process(release, l.yes, l.no)
	assert.False(t, accept)
	assert.Equal(t, 1.0, tr.yesScale())
}

func TestTrackerTouchTapAccepts(t *testing.T) {
	l, _ := computeLayout(card.Viewport{Width: 800, Height: 600})
	var tr pointerTracker

	start := pointerFrame{touchesStarted: []touchPoint{{id: 7, at: card.Point{X: 300, Y: 350}}}}
	_, accept := tr.process(start, l.yes, l.no)
	assert.False(t, accept)
	assert.Equal(t, 0.95, tr.yesScale())

	end := pointerFrame{touchesEnded: []touchPoint{{id: 7, at: card.Point{X: 305, Y: 352}}}}
	_, accept = tr.process(end, l.yes, l.no)
	assert.True(t, accept)

	start = pointerFrame{touchesStarted: []touchPoint{{id: 8, at: card.Point{X: 300, Y: 350}}}}
	tr.process(start, l.yes, l.no)
	end = pointerFrame{touchesEnded: []touchPoint{{id: 8, at: card.Point{X: 20, Y: 20}}}}
	_, accept = tr.process(end, l.yes, l.no)
	assert.False(t, accept)
	assert.Empty(t, tr.yesTouches)
}

func TestGameIgnoresInputBeforeLayout(t *testing.T) {
	g := newTestGame(constSource(0))

	_, ok := g.yesBounds()
	assert.False(t, ok)

	f := mouseAt(480, 360)
	f.mouseJustPressed = true
	g.handlePointer(f)
	assert.Equal(t, card.Prompt{}, g.ctrl.Screen())
}

func TestGameEvadeRetargetsSpring(t *testing.T) {
	g := newTestGame(constSource(0))
	w, h := g.Layout(800, 600)
	require.Equal(t, 800, w)
	require.Equal(t, 600, h)

	g.handlePointer(mouseAt(480, 360))
	assert.Equal(t, card.Prompt{Offset: card.Offset{X: -310, Y: -180}}, g.ctrl.Screen())

	for i := 0; i < 600 && !g.noSpring.AtRest(); i++ {
		g.noSpring.Step()
	}
	assert.Equal(t, card.Rect{Left: 100, Top: 152, Width: 140, Height: 56}, g.noBounds())
}

func TestGameAcceptStartsCelebration(t *testing.T) {
	n := &fakeNotifier{sent: make(chan [2]string, 1)}
	g := newTestGame(constSource(0.5), WithNotifier(n))
	g.Layout(800, 600)

	press := mouseAt(310, 360)
	press.mouseJustPressed = true
	g.handlePointer(press)
	release := mouseAt(310, 360)
	release.mouseJustReleased = true
	g.handlePointer(release)

	require.True(t, g.ctrl.Accepted())
	s := g.ctrl.Screen().(card.Celebration)
	assert.Equal(t, card.Point{X: 310, Y: 360}, s.Origin)
	assert.Equal(t, 600.0, s.ViewportHeight)
	assert.Len(t, s.Particles, config.ParticleCount)
	require.NotNil(t, g.burst)
	assert.Equal(t, 1.0, g.popup.Target())

	_, ok := g.yesBounds()
	assert.False(t, ok, "accepting control is gone after the transition")

	select {
	case got := <-n.sent:
		assert.Equal(t, [2]string{"Party Time", "thanks"}, got)
	case <-time.After(time.Second):
		t.Fatal("notification not posted")
	}
}

func TestWrapText(t *testing.T) {
	advance := func(s string) float64 { return float64(len(s) * 10) }

	assert.Equal(t, []string{"aaa bbb", "ccc"}, wrapText("aaa bbb ccc", 70, advance))
	assert.Equal(t, []string{"averyverylongword", "x"}, wrapText("averyverylongword x", 50, advance))
	assert.Equal(t, []string{"one", "two"}, wrapText("one\ntwo", 500, advance))
}

func TestHsvToRgb(t *testing.T) {
	r, g, b := hsvToRgb(0, 1, 1)
	assert.Equal(t, [3]uint8{255, 0, 0}, [3]uint8{r, g, b})
	r, g, b = hsvToRgb(120, 1, 1)
	assert.Equal(t, [3]uint8{0, 255, 0}, [3]uint8{r, g, b})
	r, g, b = hsvToRgb(-120, 1, 1)
	assert.Equal(t, [3]uint8{0, 0, 255}, [3]uint8{r, g, b})
}
