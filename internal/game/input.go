package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/sorry-card/internal/card"
)

type touchPoint struct {
	id int
	at card.Point
}

// pointerFrame is the pointer and touch input observed during one tick.
type pointerFrame struct {
	mouse             card.Point
	mouseJustPressed  bool
	mouseJustReleased bool
	touchesStarted    []touchPoint
	touchesEnded      []touchPoint // last known position of the lifted touch
}

// pointerTracker turns raw frames into card actions. Mouse hover, mouse
// press and touch start on the rejecting control all trigger an evasion.
// The accepting control fires on release when the press also began on it.
type pointerTracker struct {
	hoveringNo  bool
	hoveringYes bool
	yesPressed  bool
	yesTouches  map[int]bool
}

func (t *pointerTracker) process(f pointerFrame, yes, no card.Rect) (evade []card.Trigger, accept bool) {
	overNo := no.Contains(f.mouse.X, f.mouse.Y)
	if overNo && !t.hoveringNo {
		evade = append(evade, card.PointerEnter)
	}
	t.hoveringNo = overNo
	if f.mouseJustPressed && overNo {
		evade = append(evade, card.PointerDown)
	}

	for _, tp := range f.touchesStarted {
		if no.Contains(tp.at.X, tp.at.Y) {
			evade = append(evade, card.TouchStart)
			continue
		}
		if yes.Contains(tp.at.X, tp.at.Y) {
			if t.yesTouches == nil {
				t.yesTouches = make(map[int]bool)
			}
			t.yesTouches[tp.id] = true
		}
	}

	t.hoveringYes = yes.Contains(f.mouse.X, f.mouse.Y)
	if f.mouseJustPressed && t.hoveringYes {
		t.yesPressed = true
	}
	if f.mouseJustReleased {
		if t.yesPressed && t.hoveringYes {
			accept = true
		}
		t.yesPressed = false
	}

	for _, tp := range f.touchesEnded {
		if t.yesTouches[tp.id] && yes.Contains(tp.at.X, tp.at.Y) {
			accept = true
		}
		delete(t.yesTouches, tp.id)
	}
	return evade, accept
}

// yesScale is the press feedback target for the accepting control.
func (t *pointerTracker) yesScale() float64 {
	switch {
	case t.yesPressed || len(t.yesTouches) > 0:
		return 0.95
	case t.hoveringYes:
		return 1.05
	default:
		return 1
	}
}

// readPointerFrame samples ebiten's input state for the current tick.
func readPointerFrame(touchBuf []ebiten.TouchID) (pointerFrame, []ebiten.TouchID) {
	mx, my := ebiten.CursorPosition()
	f := pointerFrame{
		mouse:             card.Point{X: float64(mx), Y: float64(my)},
		mouseJustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		mouseJustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}

	touchBuf = inpututil.AppendJustPressedTouchIDs(touchBuf[:0])
	for _, id := range touchBuf {
		x, y := ebiten.TouchPosition(id)
		f.touchesStarted = append(f.touchesStarted, touchPoint{id: int(id), at: card.Point{X: float64(x), Y: float64(y)}})
	}
	touchBuf = inpututil.AppendJustReleasedTouchIDs(touchBuf[:0])
	for _, id := range touchBuf {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		f.touchesEnded = append(f.touchesEnded, touchPoint{id: int(id), at: card.Point{X: float64(x), Y: float64(y)}})
	}
	return f, touchBuf
}
