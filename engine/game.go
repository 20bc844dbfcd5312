package engine

import (
	"math"
	"sort"
)

// Game owns the map, player, sprites, texture oracle and pixel sink, and
// drives the per-frame pipeline: Map.Update -> Player.Update -> draw_view
// (per-pixel cast+shade+portal-recurse) -> draw_sprites -> Present. All
// mutable state is owned exclusively by the Game instance; the only
// resource the host touches after Update returns is the PixelSink.
type Game struct {
	Map     *Map
	Player  *Player
	Sprites []Sprite

	oracle TextureOracle
	sink   PixelSink
	width  int
	height int

	zBuffer  [][]Zdist // [y][x]
	zOrigins []Zorigin
}

// NewGame constructs a Game from level JSON, parsed by loader (use
// DefaultLoader for the standard schema), presenting at width x height
// through sink and sampling texels through oracle.
func NewGame(loader Loader, levelJSON []byte, oracle TextureOracle, sink PixelSink, width, height int) (*Game, error) {
	m, sprites, spawn, err := loader.Load(levelJSON)
	if err != nil {
		return nil, err
	}

	zBuffer := make([][]Zdist, height)
	for y := range zBuffer {
		zBuffer[y] = make([]Zdist, width)
	}

	return &Game{
		Map:     m,
		Player:  NewPlayer(spawn),
		Sprites: sprites,
		oracle:  oracle,
		sink:    sink,
		width:   width,
		height:  height,
		zBuffer: zBuffer,
	}, nil
}

// ProcessEvent forwards an input event (scancode + press/release edge) to
// the player. Non-blocking; only writes player state.
func (g *Game) ProcessEvent(key int, pressed bool) {
	g.Player.HandleInput(key, pressed)
}

func textureCoord(tp Vec2) (tx, ty int) {
	tx = int(tp.X * 64)
	ty = int(tp.Y * 64)
	return
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// computePixel shades one pixel, recursing through portals (bounded by
// Ray.PortalRecursion) and through translucent texels (bounded by the
// ray's remaining range, since Cast always eventually misses). It mirrors
// lib.rs's compute_pixel almost line for line, including the three-way
// portal-texel branch (mask / border / centre).
func (g *Game) computePixel(x, y int, hit Hit, ray *Ray) RGBColor {
	g.zBuffer[y][x] = Zdist{Dist: math.Abs(hit.Dist), PortalDepth: ray.PortalRecursion}

	if hit.Value == nil {
		if y > g.height/2 {
			return NewRGB(113, 113, 113)
		}
		return NewRGB(56, 56, 56)
	}

	value := *hit.Value
	tx, ty := textureCoord(hit.TexturePos)

	var color RGBColor
	source, dest, hasPortal := g.Map.PortalsAt(hit.Pos, hit.Dir)
	switch {
	case !hasPortal:
		color = g.oracle.WallPixel(tx+64*boolToInt(!hit.Dir.IsUnderLight()), ty+64*int(value))
	case dest != nil:
		// Fully paired: source is the matching face, dest the far side.
		portalColor := g.oracle.PortalPixel(tx, ty)
		switch {
		case portalColor == White:
			color = g.oracle.WallPixel(tx+64*boolToInt(!hit.Dir.IsUnderLight()), ty+64*int(value))
		case portalColor.A == 255:
			color = FromHSL(FromRGB(portalColor).Add(source.Hue))
		default:
			if ray.PassThroughPortal(*dest, *source) {
				depth := ray.PortalRecursion
				pos := ray.Origin
				dir := g.Player.Dir
				plane := g.Player.Plane
				rotation := dest.LinkDir(*source)
				portalDegree := hit.Dir.ToDegree()

				if depth > 1 {
					for idx := len(g.zOrigins) - 1; idx >= 0; idx-- {
						if g.zOrigins[idx].Depth == depth-1 {
							rotation += g.zOrigins[idx].Rotation
							portalDegree = g.zOrigins[idx].PortalDegree
							break
						}
					}
				}
				pos.Z -= 0.5
				dir = dir.Rotate(rotation)
				plane = plane.Rotate(rotation)

				found := false
				for idx := len(g.zOrigins) - 1; idx >= 0; idx-- {
					if g.zOrigins[idx].Pos.Equal(pos) && g.zOrigins[idx].Depth == depth {
						found = true
						break
					}
				}
				if !found {
					g.zOrigins = append(g.zOrigins, Zorigin{
						Pos: pos, Dir: dir, Plane: plane, Depth: depth,
						Rotation: rotation, PortalDegree: portalDegree,
					})
				}

				newHit := ray.Cast(g.Map)
				color = g.computePixel(x, y, newHit, ray)
			} else {
				color = FromHSL(FromRGB(portalColor).Add(source.Hue))
			}
		}
	default:
		// Half-portal: always tinted, never traversable.
		portalColor := g.oracle.PortalPixel(tx, ty)
		if portalColor == White {
			color = g.oracle.WallPixel(tx+64*boolToInt(!hit.Dir.IsUnderLight()), ty+64*int(value))
		} else {
			color = FromHSL(FromRGB(portalColor).Add(source.Hue))
		}
	}

	if color.A != 255 {
		ray.Grow()
		newHit := ray.Cast(g.Map)
		blended := g.computePixel(x, y, newHit, ray)
		color.Blend(blended)
	}
	return color
}

func (g *Game) drawView() {
	g.zOrigins = g.zOrigins[:0]

	w, h := float64(g.width), float64(g.height)
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			ray := NewRay(g.Player, Vec2{X: 2*float64(x)/w - 1, Y: 2*float64(y)/h - 1})
			hit := ray.Cast(g.Map)
			color := g.computePixel(x, y, hit, ray)
			g.sink.PutPixel(x, y, color)
		}
	}
}

func (g *Game) drawSprites() {
	for idx := len(g.zOrigins) - 1; idx >= 0; idx-- {
		o := g.zOrigins[idx]
		g.drawSprite(o.Depth, o.Pos, o.Dir, o.Plane, o.Rotation, o.PortalDegree)
	}
	g.drawSprite(0, g.Player.Pos, g.Player.Dir, g.Player.Plane, 0, 0)
}

func (g *Game) drawSprite(depth int, pos Vec3, dir, plane Vec2, rotation, shiftDegree float64) {
	canvasW, canvasH := g.width, g.height

	for i := range g.Sprites {
		s := &g.Sprites[i]
		if s.IsPlayer {
			s.Pos = g.Player.Pos
		}
		s.Dist = (pos.X-s.Pos.X)*(pos.X-s.Pos.X) + (pos.Y-s.Pos.Y)*(pos.Y-s.Pos.Y)
	}

	// Back-to-front by distance descending; the player sprite breaks a
	// distance tie by staying behind non-player sprites so the avatar
	// doesn't occlude a co-located sprite. This inverts the tie-break
	// direction of the reference sort (which put the player last, i.e.
	// on top, at equal distance).
	sort.SliceStable(g.Sprites, func(i, j int) bool {
		l, r := g.Sprites[i], g.Sprites[j]
		if l.IsPlayer && l.Dist == r.Dist {
			return true
		}
		if r.IsPlayer && l.Dist == r.Dist {
			return false
		}
		return r.Dist < l.Dist
	})

	invDet := 1.0 / (plane.X*dir.Y - dir.X*plane.Y)

	for _, sprite := range g.Sprites {
		relX := sprite.Pos.X - pos.X
		relY := sprite.Pos.Y - pos.Y
		transform := Vec2{
			X: (dir.Y*relX - dir.X*relY) * invDet,
			Y: (-plane.Y*relX + plane.X*relY) * invDet,
		}

		spriteCanvasX := int(float64(canvasW/2) * (1 + transform.X/transform.Y))
		spriteSize := int(math.Abs(float64(canvasH) / transform.Y))

		xBounds := Vec2i{X: spriteCanvasX - spriteSize/2, Y: spriteSize/2 + spriteCanvasX}.Clamp(0, canvasW, 0, canvasW)
		drawEndY := int(float64(canvasH/2) + float64(spriteSize)*(pos.Z+0.5) - float64(spriteSize)*sprite.Pos.Z)
		yBounds := Vec2i{X: drawEndY - spriteSize, Y: drawEndY}.Clamp(0, canvasH, 0, canvasH)

		if transform.Y <= 0 {
			continue
		}

		step := 64.0 / float64(spriteSize)

		for sx := xBounds.X; sx < xBounds.Y; sx++ {
			if sx <= 0 || sx >= canvasW {
				continue
			}
			tx := (sx - (spriteCanvasX - spriteSize/2)) * 64 / spriteSize

			texPos := (float64(yBounds.X) - float64(spriteSize)*(pos.Z-sprite.Pos.Z) - float64(canvasH)/2 + float64(spriteSize)/2) * step

			for sy := yBounds.X; sy < yBounds.Y; sy++ {
				clampedTexPos := texPos
				if clampedTexPos < 0 {
					clampedTexPos = 0
				}
				ty := int(clampedTexPos) & 63
				texPos += step

				zd := g.zBuffer[sy][sx]
				if (depth != zd.PortalDepth && !sprite.IsPlayer) || transform.Y > zd.Dist {
					continue
				}

				var color RGBColor
				if sprite.IsPlayer {
					rotationDegree := math.Mod(math.Round(rotation*180/math.Pi), 360)
					playerDegree := math.Round(math.Atan(g.Player.Dir.Y/g.Player.Dir.X) * 180 / math.Pi)

					if rotationDegree < 0 {
						rotationDegree = 360 + rotationDegree
					}

					if (g.Player.Dir.X > 0 && g.Player.Dir.Y < 0) || (g.Player.Dir.X > 0 && g.Player.Dir.Y > 0) {
						playerDegree = 180 + playerDegree
					} else if g.Player.Dir.X < 0 && g.Player.Dir.Y > 0 {
						playerDegree = 360 + playerDegree
					}
					// No case change when Dir.X<0 && Dir.Y<0 -- intentionally
					// left asymmetric, matching the original.

					value := -(4 + int(math.Round(rotationDegree/45)) - int(math.Round((playerDegree-shiftDegree)/45))) % 8
					if value < 0 {
						value = 8 + value
					}
					color = g.oracle.SoldierPixel(tx+64*value, ty+64*int(g.Player.Frame))
				} else {
					color = g.oracle.SpritePixel(tx, ty+64*sprite.Value)
				}

				if color.A != 0 {
					g.sink.PutPixel(sx, sy, color)
				}
			}
		}
	}
}

// Update steps the world by dt seconds and renders one frame: animates
// map cells, steps the player, casts every pixel, overlays sprites, and
// presents the result. It runs to completion; there is no suspension
// point and no locking, matching the single-threaded cooperative model.
func (g *Game) Update(dt float64) {
	g.Map.Update(dt)
	g.Player.Update(g.Map, dt)

	g.drawView()
	g.drawSprites()
	g.sink.Present()
}
