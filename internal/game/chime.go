package game

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"go.uber.org/zap"

	"github.com/iburimskiy/sorry-card/internal/config"
)

// Arpeggio of the celebration chime, C major up to the octave.
var chimeNotes = []float64{523.25, 659.25, 783.99, 1046.50}

const (
	chimeNoteGap  = 110 * time.Millisecond
	chimeTail     = 700 * time.Millisecond
	chimeGain     = 0.18
	chimeDecay    = 5.0
	chimeLevelWin = 1024
)

// chimeLength is the number of samples the chime streams at sr.
func chimeLength(sr beep.SampleRate) int {
	return sr.N(chimeNoteGap)*(len(chimeNotes)-1) + sr.N(chimeTail)
}

// chimeStreamer synthesises the chime: each note starts chimeNoteGap after
// the previous one and rings out with an exponential decay.
func chimeStreamer(sr beep.SampleRate) beep.Streamer {
	gap := sr.N(chimeNoteGap)
	total := chimeLength(sr)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if pos >= total {
			return 0, false
		}
		for i := range samples {
			if pos >= total {
				return i, true
			}
			var v float64
			for k, freq := range chimeNotes {
				start := k * gap
				if pos < start {
					break
				}
				t := float64(pos-start) / float64(sr)
				v += chimeGain * math.Sin(2*math.Pi*freq*t) * math.Exp(-t*chimeDecay)
			}
			samples[i][0] = v
			samples[i][1] = v
			pos++
		}
		return len(samples), true
	})
}

// chime plays the celebration sound through the shared speaker.
type chime struct {
	sr     beep.SampleRate
	tap    *levelTap
	logger *zap.Logger
}

func newChime(logger *zap.Logger) (*chime, error) {
	sr := beep.SampleRate(config.SampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &chime{sr: sr, logger: logger}, nil
}

func (c *chime) play() {
	tap := newLevelTap(chimeStreamer(c.sr), config.ChimeRing)
	c.tap = tap
	speaker.Play(beep.Seq(tap, beep.Callback(func() {
		tap.clear()
		c.logger.Debug("chime finished")
	})))
}

// level is the loudness of the chime right now, zero when silent.
func (c *chime) level() float64 {
	if c == nil || c.tap == nil {
		return 0
	}
	return c.tap.level(chimeLevelWin)
}

func (c *chime) close() {
	if c == nil {
		return
	}
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
	speaker.Close()
}
