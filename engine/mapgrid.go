package engine

// GridWidth, GridHeight are the fixed per-floor grid dimensions; the
// number of floors comes from the level.
const (
	GridWidth  = 100
	GridHeight = 100
)

// Map is the 3D grid of cells plus the portal-pair table. All cells and
// portals are created once at load and mutated in place; out-of-bounds
// queries return EmptyCell rather than erroring.
type Map struct {
	cells   [][][]Cell // [floor][x][y]
	portals []PortalPair
}

// NewMap constructs a map with the given number of floors, pre-filled
// with EmptyCell, and the supplied portal pairs.
func NewMap(floors int, portals []PortalPair) *Map {
	cells := make([][][]Cell, floors)
	for f := range cells {
		cells[f] = make([][]Cell, GridWidth)
		for x := range cells[f] {
			cells[f][x] = make([]Cell, GridHeight)
			for y := range cells[f][x] {
				cells[f][x][y] = EmptyCell
			}
		}
	}
	return &Map{cells: cells, portals: portals}
}

// Depth reports the number of floors.
func (m *Map) Depth() int {
	return len(m.cells)
}

// SetCell places a cell at integer (floor, x, y). Out-of-range coordinates
// are ignored (a malformed map entry is dropped rather than panicking).
func (m *Map) SetCell(floor, x, y int, c Cell) {
	if floor < 0 || floor >= len(m.cells) || x < 0 || x >= GridWidth || y < 0 || y >= GridHeight {
		return
	}
	m.cells[floor][x][y] = c
}

// Get returns the cell at position. Its first z check mirrors the
// original's `position.z as usize > self.depth()`, which is looser than
// GetMut's `> depth()-1` and is kept as is rather than unified; a z one
// past the last floor passes that check but is then caught by the floor
// index check below, so Get returns EmptyCell there, as GetMut does.
func (m *Map) Get(position Vec3) Cell {
	if position.Z < 0 || int(position.Z) > m.Depth() {
		return EmptyCell
	}
	floor := int(position.Z)
	if floor < 0 || floor >= len(m.cells) {
		return EmptyCell
	}
	x, y := int(position.X), int(position.Y)
	if x < 0 || x >= len(m.cells[floor]) {
		return EmptyCell
	}
	if y < 0 || y >= len(m.cells[floor][x]) {
		return EmptyCell
	}
	return m.cells[floor][x][y]
}

// GetMut returns a pointer to the cell at position for in-place mutation
// (Trigger, animation dissolve), strict on the z bound: a z equal to the
// last valid floor index is the limit, one stricter than Get.
func (m *Map) GetMut(position Vec3) *Cell {
	fail := &Cell{Kind: CellEmpty}
	if position.Z < 0 || int(position.Z) > m.Depth()-1 {
		return fail
	}
	floor := int(position.Z)
	if floor < 0 || floor >= len(m.cells) {
		return fail
	}
	x, y := int(position.X), int(position.Y)
	if x < 0 || x >= len(m.cells[floor]) {
		return fail
	}
	if y < 0 || y >= len(m.cells[floor][x]) {
		return fail
	}
	return &m.cells[floor][x][y]
}

// Update advances every cell's animation by dt seconds and dissolves any
// pushable panel that has just finished retracting.
func (m *Map) Update(dt float64) {
	for f := range m.cells {
		for x := range m.cells[f] {
			for y := range m.cells[f][x] {
				if m.cells[f][x][y].Update(dt) {
					m.cells[f][x][y] = EmptyCell
				}
			}
		}
	}
}

// Trigger forwards to the cell at position.
func (m *Map) Trigger(position Vec3) {
	m.GetMut(position).Trigger()
}

// PortalsAt scans the portal table linearly for a pair with a side at
// position matching dir (DirNone matches any side of a fully paired
// pair only). Returns ok=false if no pair matches.
func (m *Map) PortalsAt(position Vec3, dir Direction) (matching, other *Portal, ok bool) {
	for _, pair := range m.portals {
		if m, o, found := pair.MatchSide(position, dir); found {
			return m, o, true
		}
	}
	return nil, nil, false
}
