// Command demo is a playable host for the engine package: it loads a level
// and four tile atlases from disk, wires them into an engine.Game through
// ebiten, and runs the window loop.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/png"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/duskforge/portalcast/engine"
)

var (
	flagLevel   = flag.String("level", "assets/level.json", "path to the level JSON file")
	flagWall    = flag.String("wall", "assets/wall.png", "path to the wall tile atlas")
	flagPortal  = flag.String("portal", "assets/portal.png", "path to the portal tile atlas")
	flagSprite  = flag.String("sprite", "assets/sprite.png", "path to the sprite tile atlas")
	flagSoldier = flag.String("soldier", "assets/soldier.png", "path to the player-avatar tile atlas")
	flagWidth   = flag.Int("width", 320, "render width in pixels")
	flagHeight  = flag.Int("height", 200, "render height in pixels")
	flagScale   = flag.Int("scale", 2, "window scale factor over the render size")
	flagDebug   = flag.Bool("debug", false, "log out-of-bounds atlas lookups")
)

func loadImage(path string) (*ebiten.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// gameHost implements ebiten.Game by driving one engine.Game at a fixed
// render resolution, scaled up to the window size in Draw.
type gameHost struct {
	game   *engine.Game
	sink   *framebufferSink
	title  *titleCard
	world  *demoWorld
	width  int
	height int
}

func (g *gameHost) Update() error {
	pollInput(g)

	before := g.game.Player.Pos
	interacting := interactHeld

	g.game.Update(1.0 / float64(ebiten.TPS()))
	g.title.Update(float32(1.0 / float64(ebiten.TPS())))

	after := g.game.Player.Pos
	if interacting {
		g.world.EmitEvent(InteractionEvent{Kind: "door-trigger", Pos: before})
	}
	// A horizontal displacement of more than two cells within a single tick
	// is taken as a portal hop; ordinary walking cannot produce one.
	if dx, dy := after.X-before.X, after.Y-before.Y; dx*dx+dy*dy > 4 {
		g.world.EmitEvent(InteractionEvent{Kind: "portal-cross", Pos: after})
	}

	g.world.ProcessEvents(func(e InteractionEvent) {
		if *flagDebug {
			log.Printf("portalcast: %s at %+v", e.Kind, e.Pos)
		}
	})
	return nil
}

func (g *gameHost) Draw(screen *ebiten.Image) {
	var op ebiten.DrawImageOptions
	sx := float64(screen.Bounds().Dx()) / float64(g.width)
	sy := float64(screen.Bounds().Dy()) / float64(g.height)
	op.GeoM.Scale(sx, sy)
	screen.DrawImage(g.sink.target, &op)
	g.title.Draw(screen)
}

func (g *gameHost) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func main() {
	flag.Parse()

	levelJSON, err := os.ReadFile(*flagLevel)
	if err != nil {
		log.Fatalf("portalcast: reading level: %v", err)
	}

	wallImg, err := loadImage(*flagWall)
	if err != nil {
		log.Fatalf("portalcast: loading wall atlas: %v", err)
	}
	portalImg, err := loadImage(*flagPortal)
	if err != nil {
		log.Fatalf("portalcast: loading portal atlas: %v", err)
	}
	spriteImg, err := loadImage(*flagSprite)
	if err != nil {
		log.Fatalf("portalcast: loading sprite atlas: %v", err)
	}
	soldierImg, err := loadImage(*flagSoldier)
	if err != nil {
		log.Fatalf("portalcast: loading soldier atlas: %v", err)
	}

	atlas := newTileAtlas(wallImg, portalImg, spriteImg, soldierImg, *flagDebug)
	sink := newFramebufferSink(*flagWidth, *flagHeight)

	game, err := engine.NewGame(engine.DefaultLoader{}, levelJSON, atlas, sink, *flagWidth, *flagHeight)
	if err != nil {
		log.Fatalf("portalcast: building game: %v", err)
	}

	host := &gameHost{
		game:   game,
		sink:   sink,
		title:  newTitleCard(),
		world:  newDemoWorld(game.Sprites),
		width:  *flagWidth,
		height: *flagHeight,
	}

	ebiten.SetWindowSize((*flagWidth)*(*flagScale), (*flagHeight)*(*flagScale))
	ebiten.SetWindowTitle("portalcast")
	if err := ebiten.RunGame(host); err != nil {
		log.Fatal(err)
	}
}
