package card

import (
	"math"

	"go.uber.org/zap"

	"github.com/iburimskiy/sorry-card/internal/config"
)

// Controller owns all mutable state of the card. It is not safe for
// concurrent use; all calls are expected from the game loop.
type Controller struct {
	src    Source
	spec   ParticleSpec
	logger *zap.Logger

	accepted  bool
	offset    Offset
	origin    Point
	viewportH float64
	particles []Particle

	listeners []func(Screen)
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for transition and evasion events.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithParticleSpec overrides the burst emitted on acceptance.
func WithParticleSpec(spec ParticleSpec) Option {
	return func(c *Controller) { c.spec = spec }
}

// NewController returns a controller on the Prompt screen.
func NewController(src Source, opts ...Option) *Controller {
	c := &Controller{
		src:    src,
		spec:   DefaultParticleSpec,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Accepted reports whether the celebration has started.
func (c *Controller) Accepted() bool { return c.accepted }

// Screen returns the current screen. The particle slice of a Celebration is
// shared with the controller and must not be modified.
func (c *Controller) Screen() Screen {
	if !c.accepted {
		return Prompt{Offset: c.offset}
	}
	return Celebration{
		Origin:         c.origin,
		ViewportHeight: c.viewportH,
		Particles:      c.particles,
	}
}

// Subscribe registers fn to be called after every state change.
func (c *Controller) Subscribe(fn func(Screen)) {
	c.listeners = append(c.listeners, fn)
}

func (c *Controller) notify() {
	s := c.Screen()
	for _, fn := range c.listeners {
		fn(s)
	}
}

// Accept moves the card to the Celebration screen, emitting the burst from the
// center of target. It returns false without changing anything when the card
// was already accepted or target cannot be measured.
func (c *Controller) Accept(target Measurer, vp Viewport) bool {
	if c.accepted {
		return false
	}
	if target == nil {
		c.logger.Debug("accept declined: no target")
		return false
	}
	rect, ok := target.Bounds()
	if !ok {
		c.logger.Debug("accept declined: target not measurable")
		return false
	}

	c.origin = rect.Center()
	c.viewportH = vp.Height
	c.particles = GenerateParticles(c.src, c.spec)
	c.accepted = true

	c.logger.Info("accepted",
		zap.Float64("origin_x", c.origin.X),
		zap.Float64("origin_y", c.origin.Y),
		zap.Float64("viewport_h", c.viewportH),
		zap.Int("particles", len(c.particles)))
	c.notify()
	return true
}

// Evade draws a new offset for the rejecting control. It returns false once
// the card has been accepted.
func (c *Controller) Evade(trigger Trigger, vp Viewport) (Offset, bool) {
	if c.accepted {
		return c.offset, false
	}
	maxX, maxY := EvasionBounds(vp)
	c.offset = Offset{
		X: math.Floor(c.src.Float64()*maxX*2) - maxX,
		Y: math.Floor(c.src.Float64()*maxY*2) - maxY,
	}
	c.logger.Debug("evade",
		zap.Stringer("trigger", trigger),
		zap.Float64("x", c.offset.X),
		zap.Float64("y", c.offset.Y))
	c.notify()
	return c.offset, true
}

// EvasionBounds returns the half extents of the area the rejecting control may
// move within. Viewports too small for the margins yield zero.
func EvasionBounds(vp Viewport) (maxX, maxY float64) {
	maxX = math.Max(0, vp.Width/2-config.EvasionMarginX)
	maxY = math.Max(0, vp.Height/2-config.EvasionMarginY)
	return maxX, maxY
}
