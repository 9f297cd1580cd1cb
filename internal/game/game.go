// Package game renders the greeting card with ebiten and feeds pointer and
// touch input into the card controller.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"github.com/iburimskiy/sorry-card/internal/card"
	"github.com/iburimskiy/sorry-card/internal/config"
	"github.com/iburimskiy/sorry-card/internal/motion"
)

const popupStartScale = 0.6

// Game is the ebiten.Game driving one card session.
type Game struct {
	cfg      config.Config
	logger   *zap.Logger
	ctrl     *card.Controller
	notifier Notifier
	chime    *chime

	layout      layout
	layoutReady bool

	input    pointerTracker
	touchBuf []ebiten.TouchID

	noSpring *motion.Spring2D
	yesScale *motion.Spring
	popup    *motion.Spring
	burst    *motion.Burst
	poses    []motion.Pose

	faces  faces
	ribbon *ebiten.Image
}

// Option configures a Game.
type Option func(*Game)

// WithNotifier posts a notification when the card is accepted.
func WithNotifier(n Notifier) Option {
	return func(g *Game) { g.notifier = n }
}

// New builds a game around a fresh controller drawing from src.
func New(cfg config.Config, src card.Source, logger *zap.Logger, opts ...Option) (*Game, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	f, err := loadFaces()
	if err != nil {
		return nil, err
	}

	tps := ebiten.TPS()
	g := &Game{
		cfg:      cfg,
		logger:   logger,
		ctrl:     card.NewController(src, card.WithLogger(logger.Named("card"))),
		noSpring: motion.NewSpring2D(tps, card.EvasionTransition(), card.Point{}),
		yesScale: motion.NewSpring(tps, card.SpringTransition{Stiffness: config.PressStiffness, DampingRatio: 1}, 1),
		popup:    motion.NewSpring(tps, card.PopupTransition(), popupStartScale),
		faces:    f,
		ribbon:   newRibbonImage(),
	}
	for _, opt := range opts {
		opt(g)
	}

	if !cfg.Muted {
		c, err := newChime(logger.Named("chime"))
		if err != nil {
			// Non-fatal, the card works without sound
			logger.Warn("audio unavailable", zap.Error(err))
		} else {
			g.chime = c
		}
	}

	g.ctrl.Subscribe(g.onScreen)
	return g, nil
}

func (g *Game) onScreen(s card.Screen) {
	switch s := s.(type) {
	case card.Prompt:
		g.noSpring.Retarget(s.Offset)
	case card.Celebration:
		g.burst = motion.NewBurst(s)
		g.popup.Retarget(1)
		if g.chime != nil {
			g.chime.play()
		}
		if g.notifier != nil {
			go g.postNotification()
		}
	}
}

func (g *Game) postNotification() {
	if err := g.notifier.Notify(g.cfg.PartyTitle, g.cfg.PartyMessage); err != nil {
		g.logger.Warn("notification failed", zap.Error(err))
	}
}

// yesBounds measures the accepting control. It is unmeasurable until the
// first layout pass and after the prompt is gone.
func (g *Game) yesBounds() (card.Rect, bool) {
	if !g.layoutReady || g.ctrl.Accepted() {
		return card.Rect{}, false
	}
	return g.layout.yes, true
}

// noBounds is where the rejecting control is drawn this frame.
func (g *Game) noBounds() card.Rect {
	return g.layout.no.Translate(g.noSpring.Position())
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	dt := 1 / float64(ebiten.TPS())

	if !g.ctrl.Accepted() {
		var frame pointerFrame
		frame, g.touchBuf = readPointerFrame(g.touchBuf)
		g.handlePointer(frame)
	}

	if g.ctrl.Accepted() {
		g.burst.Advance(dt)
		g.popup.Step()
		return nil
	}
	g.noSpring.Step()
	g.yesScale.Retarget(g.input.yesScale())
	g.yesScale.Step()
	return nil
}

func (g *Game) handlePointer(frame pointerFrame) {
	if !g.layoutReady {
		return
	}
	evades, accept := g.input.process(frame, g.layout.yes, g.noBounds())
	for _, tr := range evades {
		g.ctrl.Evade(tr, g.layout.viewport)
	}
	if accept {
		g.ctrl.Accept(card.MeasureFunc(g.yesBounds), g.layout.viewport)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	if !g.layoutReady {
		return
	}
	g.drawBackground(screen)
	fillRoundRect(screen, g.layout.card.Translate(card.Offset{X: 0, Y: 8}), panelRadius, shadowColor)
	fillRoundRect(screen, g.layout.card, panelRadius, panelColor)

	if !g.ctrl.Accepted() {
		g.drawPrompt(screen)
		return
	}
	g.drawRibbons(screen)
	g.drawPopup(screen)
}

// Layout follows the window so the viewport is always the visible area.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	vp := card.Viewport{Width: float64(outsideWidth), Height: float64(outsideHeight)}
	if vp != g.layout.viewport || !g.layoutReady {
		g.layout, g.layoutReady = computeLayout(vp)
		if g.layoutReady {
			g.logger.Debug("layout", zap.Float64("width", vp.Width), zap.Float64("height", vp.Height))
		}
	}
	return outsideWidth, outsideHeight
}

// Close releases the audio device.
func (g *Game) Close() {
	g.chime.close()
}
