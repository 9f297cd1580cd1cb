package game

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type faces struct {
	title  *text.GoTextFace
	party  *text.GoTextFace
	body   *text.GoTextFace
	button *text.GoTextFace
}

func loadFaces() (faces, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return faces{}, fmt.Errorf("load regular font: %w", err)
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return faces{}, fmt.Errorf("load bold font: %w", err)
	}
	return faces{
		title:  &text.GoTextFace{Source: bold, Size: 26},
		party:  &text.GoTextFace{Source: bold, Size: 32},
		body:   &text.GoTextFace{Source: regular, Size: 18},
		button: &text.GoTextFace{Source: bold, Size: 20},
	}, nil
}
