package engine

// TextureOracle is the external collaborator that resolves texel lookups
// against the four fixed-format 64xN atlases described in the map JSON
// contract: wall, portal, sprite and soldier (player-avatar). tx/ty are
// pixel coordinates within the relevant 64px tile grid, already including
// any row/column offset (light/dark variant, sprite value band, octant,
// walk frame) the caller has computed.
type TextureOracle interface {
	WallPixel(tx, ty int) RGBColor
	PortalPixel(tx, ty int) RGBColor
	SpritePixel(tx, ty int) RGBColor
	SoldierPixel(tx, ty int) RGBColor
}

// PixelSink is the framebuffer presentation surface: a packed 8-bit RGBA
// buffer of size W*H*4, row-major, written in full by Game.Update and read
// by the host once Update returns.
type PixelSink interface {
	PutPixel(x, y int, c RGBColor)
	Present()
}
