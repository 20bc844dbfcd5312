package engine

import (
	"encoding/json"
	"fmt"
)

// Loader parses a level JSON document into a ready-to-run Map, sprite
// list and player spawn position. The engine ships DefaultLoader, which
// implements the map JSON schema in full; a host may supply its own
// Loader to source levels from elsewhere (embedded assets, a level
// editor's own format) without the engine depending on that source.
type Loader interface {
	Load(data []byte) (m *Map, sprites []Sprite, playerSpawn Vec3, err error)
}

type jsonVec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type jsonVec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type jsonCell struct {
	Pos       jsonVec2 `json:"pos"`
	Value     uint     `json:"value"`
	Thin      bool     `json:"thin"`
	Direction string   `json:"direction"`
	Pushable  bool     `json:"pushable"`
	Height    *float64 `json:"height"`
}

type jsonPortal struct {
	Pos       jsonVec3 `json:"pos"`
	Direction string   `json:"direction"`
	Hue       float64  `json:"hue"`
}

type jsonPortalPair struct {
	First  *jsonPortal `json:"first"`
	Second *jsonPortal `json:"second"`
}

type jsonSprite struct {
	Index uint     `json:"index"`
	Pos   jsonVec3 `json:"pos"`
}

type jsonLevel struct {
	Cells   [][]jsonCell     `json:"cells"`
	Portals []jsonPortalPair `json:"portals"`
	Sprites []jsonSprite     `json:"sprites"`
}

// DefaultLoader parses the standard map JSON schema (the jsonLevel shape
// above): a per-floor cell list, a portal-pair list and a sprite list
// (index 0 designates the player spawn).
type DefaultLoader struct{}

// Load implements Loader.
func (DefaultLoader) Load(data []byte) (*Map, []Sprite, Vec3, error) {
	var level jsonLevel
	if err := json.Unmarshal(data, &level); err != nil {
		return nil, nil, Vec3{}, fmt.Errorf("portalcast: malformed map JSON: %w", err)
	}

	portals := make([]PortalPair, 0, len(level.Portals))
	for _, p := range level.Portals {
		portals = append(portals, PortalPair{
			First:  jsonToPortal(p.First),
			Second: jsonToPortal(p.Second),
		})
	}

	m := NewMap(len(level.Cells), portals)
	for floor, row := range level.Cells {
		for _, jc := range row {
			x, y := int(jc.Pos.X), int(jc.Pos.Y)
			var cell Cell
			switch {
			case jc.Thin && jc.Value >= DoorValue:
				cell = NewThinCell(NewDoor(jc.Value, DirectionFromString(jc.Direction)))
			case jc.Thin:
				cell = NewThinCell(NewPushPanel(jc.Value, DirectionFromString(jc.Direction), jc.Pushable))
			default:
				height := 1.0
				if jc.Height != nil {
					height = *jc.Height
				}
				cell = NewWallCell(jc.Value, height)
			}
			m.SetCell(floor, x, y, cell)
		}
	}

	sprites := make([]Sprite, 0, len(level.Sprites))
	var spawn Vec3
	for _, js := range level.Sprites {
		isPlayer := js.Index == 0
		pos := Vec3{X: js.Pos.X + 0.5, Y: js.Pos.Y + 0.5, Z: js.Pos.Z}
		if isPlayer {
			spawn = pos
		}
		sprites = append(sprites, Sprite{
			Pos:      pos,
			Value:    int(js.Index) - 1,
			IsPlayer: isPlayer,
		})
	}

	return m, sprites, spawn, nil
}

func jsonToPortal(p *jsonPortal) *Portal {
	if p == nil {
		return nil
	}
	portal := NewPortal(Vec3{X: p.Pos.X, Y: p.Pos.Y, Z: p.Pos.Z}, DirectionFromString(p.Direction), p.Hue)
	return &portal
}
