package game

import (
	"math"

	"github.com/iburimskiy/sorry-card/internal/card"
	"github.com/iburimskiy/sorry-card/internal/config"
)

// layout is the geometry of one frame, derived from the viewport.
type layout struct {
	viewport card.Viewport
	card     card.Rect
	yes      card.Rect
	no       card.Rect // natural position, before the evasion offset
	titleY   float64
	promptY  float64
	textWide float64
}

func computeLayout(vp card.Viewport) (layout, bool) {
	if vp.Width <= 0 || vp.Height <= 0 {
		return layout{}, false
	}
	cx, cy := vp.Width/2, vp.Height/2

	cardW := math.Min(config.CardMaxWidth, vp.Width-2*config.CardMargin)
	cardW = math.Max(cardW, 0)
	l := layout{
		viewport: vp,
		card: card.Rect{
			Left:   cx - cardW/2,
			Top:    cy - config.CardHeight/2,
			Width:  cardW,
			Height: config.CardHeight,
		},
		textWide: math.Max(cardW-2*config.CardMargin, 0),
	}
	l.titleY = l.card.Top + 48
	l.promptY = l.card.Top + 96

	rowTop := cy + config.ButtonRowOffset - config.ButtonHeight/2
	l.yes = card.Rect{
		Left:   cx - config.ButtonGap/2 - config.YesButtonWidth,
		Top:    rowTop,
		Width:  config.YesButtonWidth,
		Height: config.ButtonHeight,
	}
	l.no = card.Rect{
		Left:   cx + config.ButtonGap/2,
		Top:    rowTop,
		Width:  config.NoButtonWidth,
		Height: config.ButtonHeight,
	}
	return l, true
}
