package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// titleCard is a brief fade-in overlay shown for the first second after
// launch, the same tween-driven alpha idiom the teacher uses for its
// TweenAlpha helper -- built directly on gween.Tween here since there is
// no Node to target.
type titleCard struct {
	tween *gween.Tween
	alpha float32
	done  bool
}

func newTitleCard() *titleCard {
	return &titleCard{tween: gween.New(1, 0, 1.0, ease.Linear), alpha: 1}
}

func (t *titleCard) Update(dt float32) {
	if t.done {
		return
	}
	val, finished := t.tween.Update(dt)
	t.alpha = val
	t.done = finished
}

func (t *titleCard) Draw(screen *ebiten.Image) {
	if t.done {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.NRGBA{A: uint8(t.alpha * 255)}, false)
}
