package main

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/duskforge/portalcast/engine"
)

// magentaPlaceholder is returned for any out-of-bounds texel lookup
// instead of panicking, the same defensive posture the teacher's own
// atlas lookup takes for a missing named region.
var magentaPlaceholder = engine.RGBColor{R: 255, G: 0, B: 255, A: 255}

// tileAtlas implements engine.TextureOracle by sampling directly out of
// one ebiten.Image per atlas, at the fixed 64px-tile coordinates the
// engine already computes. Unlike a TexturePacker-style named-region
// atlas, these are plain fixed-grid sheets (wall/portal/sprite/soldier),
// so the lookup is a straight pixel read rather than a JSON manifest
// lookup.
type tileAtlas struct {
	wall    *ebiten.Image
	portal  *ebiten.Image
	sprite  *ebiten.Image
	soldier *ebiten.Image
	debug   bool
}

func newTileAtlas(wall, portal, sprite, soldier *ebiten.Image, debug bool) *tileAtlas {
	return &tileAtlas{wall: wall, portal: portal, sprite: sprite, soldier: soldier, debug: debug}
}

func (a *tileAtlas) sample(img *ebiten.Image, name string, tx, ty int) engine.RGBColor {
	if img == nil {
		return magentaPlaceholder
	}
	bounds := img.Bounds()
	if tx < 0 || ty < 0 || tx >= bounds.Dx() || ty >= bounds.Dy() {
		if a.debug {
			log.Printf("portalcast: %s atlas lookup (%d,%d) out of bounds, using magenta placeholder", name, tx, ty)
		}
		return magentaPlaceholder
	}
	r, g, b, al := img.At(tx, ty).RGBA()
	c := color.NRGBAModel.Convert(color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(al >> 8)}).(color.NRGBA)
	return engine.RGBColor{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (a *tileAtlas) WallPixel(tx, ty int) engine.RGBColor    { return a.sample(a.wall, "wall", tx, ty) }
func (a *tileAtlas) PortalPixel(tx, ty int) engine.RGBColor  { return a.sample(a.portal, "portal", tx, ty) }
func (a *tileAtlas) SpritePixel(tx, ty int) engine.RGBColor  { return a.sample(a.sprite, "sprite", tx, ty) }
func (a *tileAtlas) SoldierPixel(tx, ty int) engine.RGBColor { return a.sample(a.soldier, "soldier", tx, ty) }
