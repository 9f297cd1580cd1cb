package game

import (
	"math"
	"testing"

	"github.com/faiface/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChimeStreamerLength(t *testing.T) {
	sr := beep.SampleRate(44100)
	s := chimeStreamer(sr)

	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			assert.Equal(t, buf[i][0], buf[i][1])
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			break
		}
	}
	assert.Equal(t, chimeLength(sr), total)
	assert.Greater(t, peak, 0.0)
	assert.LessOrEqual(t, peak, chimeGain*float64(len(chimeNotes)))
	assert.NoError(t, s.Err())
}

func TestLevelTap(t *testing.T) {
	src := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{0.5, 0.5}
		}
		return len(samples), true
	})
	tap := newLevelTap(src, 8)
	assert.Equal(t, 0.0, tap.level(8))

	buf := make([][2]float64, 16)
	n, ok := tap.Stream(buf)
	require.True(t, ok)
	require.Equal(t, 16, n)
	assert.Equal(t, 0.5, tap.level(8))
	assert.Equal(t, 0.5, tap.level(100))

	tap.clear()
	assert.Equal(t, 0.0, tap.level(8))
}

func TestChimeLevelNil(t *testing.T) {
	var c *chime
	assert.Equal(t, 0.0, c.level())
	c.close()
}
