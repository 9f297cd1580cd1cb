package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/sorry-card/internal/card"
)

func TestSpringConvergesWithoutOvershoot(t *testing.T) {
	s := NewSpring(60, card.EvasionTransition(), 0)
	require.True(t, s.AtRest())

	s.Retarget(100)
	assert.False(t, s.AtRest())

	for i := 0; i < 600 && !s.AtRest(); i++ {
		p := s.Step()
		require.LessOrEqual(t, p, 100.0+restEpsilon, "critically damped spring overshot at frame %d", i)
	}
	assert.True(t, s.AtRest())
	assert.Equal(t, 100.0, s.Position())
}

func TestSpringRetargetMidFlight(t *testing.T) {
	s := NewSpring(60, card.EvasionTransition(), 0)
	s.Retarget(300)
	for i := 0; i < 5; i++ {
		s.Step()
	}
	mid := s.Position()
	require.Greater(t, mid, 0.0)
	require.Less(t, mid, 300.0)

	s.Retarget(-200)
	assert.Equal(t, -200.0, s.Target())
	next := s.Step()
	assert.Less(t, next-mid, 150.0, "retarget must not jump")

	for i := 0; i < 600 && !s.AtRest(); i++ {
		s.Step()
	}
	assert.Equal(t, -200.0, s.Position())
}

func TestSpring2D(t *testing.T) {
	s := NewSpring2D(60, card.PopupTransition(), card.Point{X: 0.6, Y: 0})
	s.Retarget(card.Point{X: 1, Y: 1})
	for i := 0; i < 600 && !s.AtRest(); i++ {
		s.Step()
	}
	assert.Equal(t, card.Point{X: 1, Y: 1}, s.Position())
}

func TestEaseOut(t *testing.T) {
	assert.Equal(t, 0.0, Ease(card.EaseOut, 0))
	assert.Equal(t, 1.0, Ease(card.EaseOut, 1))
	assert.Equal(t, 1.0, Ease(card.EaseOut, 3))
	assert.Equal(t, 0.0, Ease(card.EaseOut, -1))

	assert.Greater(t, Ease(card.EaseOut, 0.1), 0.1)
	assert.Greater(t, Ease(card.EaseOut, 0.5), 0.5)

	prev := 0.0
	for x := 0.01; x <= 1; x += 0.01 {
		v := Ease(card.EaseOut, x)
		require.GreaterOrEqual(t, v, prev, "ease-out must be monotonic at %v", x)
		prev = v
	}
	assert.Equal(t, 0.25, Ease(card.Linear, 0.25))
}

func TestSample(t *testing.T) {
	p := card.Particle{ID: 0, Drift: 100, FallDuration: 2}
	m := p.Motion(card.Point{X: 380, Y: 428}, 600)

	start := Sample(m, 0)
	assert.Equal(t, card.Point{X: 380, Y: 428}, start.At)
	assert.Equal(t, 0.0, start.Scale)
	assert.Equal(t, 0.0, start.Rotation)
	assert.False(t, start.Done)

	mid := Sample(m, 1)
	assert.Greater(t, mid.At.Y, 428.0)
	assert.Less(t, mid.At.Y, 720.0)
	assert.Greater(t, mid.Rotation, 180.0, "ease-out covers more than half the turn by half time")

	end := Sample(m, 5)
	assert.Equal(t, card.Point{X: 480, Y: 720}, end.At)
	assert.Equal(t, 1.0, end.Scale)
	assert.Equal(t, 360.0, end.Rotation)
	assert.True(t, end.Done)
}

func TestBurst(t *testing.T) {
	b := NewBurst(card.Celebration{
		Origin:         card.Point{X: 10, Y: 10},
		ViewportHeight: 100,
		Particles: []card.Particle{
			{ID: 0, Drift: 5, FallDuration: 2},
			{ID: 1, Drift: -5, FallDuration: 3},
		},
	})

	poses := b.Poses(nil)
	require.Len(t, poses, 2)
	assert.False(t, b.Finished())

	b.Advance(2.5)
	poses = b.Poses(poses[:0])
	assert.True(t, poses[0].Done)
	assert.False(t, poses[1].Done)
	assert.False(t, b.Finished())

	b.Advance(1)
	assert.True(t, b.Finished())
}
