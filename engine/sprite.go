package engine

// Sprite is a billboarded world object: pos is cell-center (x+0.5, y+0.5, z)
// plane position). value selects a 64px band in the sprite atlas (unused,
// and intentionally left at -1, for the player sprite). dist is the
// squared camera distance, refreshed every frame before the back-to-front
// sort.
type Sprite struct {
	Pos      Vec3
	Value    int
	Dist     float64
	IsPlayer bool
}

// Zorigin records one distinct portal subspace the camera has seen into
// this frame: the effective camera parameters (pos, dir, plane), the
// portal recursion depth, the accumulated rotation and the inherited
// "portal_degree" used for player-avatar octant selection inside that
// subspace.
type Zorigin struct {
	Pos          Vec3
	Dir          Vec2
	Plane        Vec2
	Depth        int
	Rotation     float64
	PortalDegree float64
}

// Zdist is the per-pixel depth-buffer entry: the hit distance and the
// portal recursion depth of the subspace that produced it. A non-player
// sprite is only drawn on pixels whose portal_depth matches its own
// subspace; the player sprite is allowed to draw across subspaces.
type Zdist struct {
	Dist        float64
	PortalDepth int
}
