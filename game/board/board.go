package board

import "fmt"

// CellType identifies what happens when a player lands on a cell.
type CellType string

const (
	CellStart    CellType = "start"
	CellBattle   CellType = "battle"
	CellShop     CellType = "shop"
	CellLifeCard CellType = "life_card"
	CellRelic    CellType = "relic"
	CellResource CellType = "resource"
	CellEnigma   CellType = "enigma"
	CellAlliance CellType = "alliance"
	CellProphecy CellType = "prophecy"
	CellThrone   CellType = "throne"
	CellEnergy   CellType = "energy"
	CellNormal   CellType = "normal"
)

// Size is the number of cells on the ring.
const Size = 40

// Regions of the map, in board order. Alliance cells carry one each.
const (
	RegionNorth = "norte"
	RegionEast  = "leste"
	RegionSouth = "sul"
	RegionWest  = "oeste"
)

// Regions lists all four region names.
var Regions = []string{RegionNorth, RegionEast, RegionSouth, RegionWest}

// Cell is one fixed board position.
type Cell struct {
	Position    int      `json:"position"`
	Type        CellType `json:"type"`
	Region      string   `json:"region,omitempty"`
	Description string   `json:"description"`
}

// Cells is the authored 40-cell board. Position 0 is the start cell; the
// table never changes at runtime.
var Cells = [Size]Cell{
	{Position: 0, Type: CellStart, Description: "Starting Gate"},

	// North region, cells 1-10.
	{Position: 1, Type: CellEnergy, Description: "Energy Node"},
	{Position: 2, Type: CellAlliance, Region: RegionNorth, Description: "Alliance of the North"},
	{Position: 3, Type: CellRelic, Description: "Ancient Relic"},
	{Position: 4, Type: CellNormal, Description: "Open Road"},
	{Position: 5, Type: CellBattle, Description: "Battle Grounds"},
	{Position: 6, Type: CellResource, Description: "Resource Market"},
	{Position: 7, Type: CellEnigma, Description: "Rune Enigma"},
	{Position: 8, Type: CellLifeCard, Description: "Card of Life"},
	{Position: 9, Type: CellProphecy, Description: "Prophecy Shrine"},
	{Position: 10, Type: CellNormal, Description: "Open Road"},

	// East region, cells 11-20.
	{Position: 11, Type: CellAlliance, Region: RegionEast, Description: "Alliance of the East"},
	{Position: 12, Type: CellBattle, Description: "Battle Grounds"},
	{Position: 13, Type: CellRelic, Description: "Ancient Relic"},
	{Position: 14, Type: CellEnergy, Description: "Energy Node"},
	{Position: 15, Type: CellShop, Description: "Grand Bazaar"},
	{Position: 16, Type: CellNormal, Description: "Open Road"},
	{Position: 17, Type: CellEnigma, Description: "Rune Enigma"},
	{Position: 18, Type: CellLifeCard, Description: "Card of Life"},
	{Position: 19, Type: CellResource, Description: "Resource Market"},
	{Position: 20, Type: CellThrone, Description: "Sacred Throne"},

	// South region, cells 21-30.
	{Position: 21, Type: CellNormal, Description: "Open Road"},
	{Position: 22, Type: CellEnergy, Description: "Energy Node"},
	{Position: 23, Type: CellAlliance, Region: RegionSouth, Description: "Alliance of the South"},
	{Position: 24, Type: CellProphecy, Description: "Prophecy Shrine"},
	{Position: 25, Type: CellRelic, Description: "Ancient Relic"},
	{Position: 26, Type: CellBattle, Description: "Battle Grounds"},
	{Position: 27, Type: CellNormal, Description: "Open Road"},
	{Position: 28, Type: CellLifeCard, Description: "Card of Life"},
	{Position: 29, Type: CellResource, Description: "Resource Market"},
	{Position: 30, Type: CellEnigma, Description: "Rune Enigma"},

	// West region, cells 31-39.
	{Position: 31, Type: CellNormal, Description: "Open Road"},
	{Position: 32, Type: CellAlliance, Region: RegionWest, Description: "Alliance of the West"},
	{Position: 33, Type: CellEnergy, Description: "Energy Node"},
	{Position: 34, Type: CellProphecy, Description: "Prophecy Shrine"},
	{Position: 35, Type: CellBattle, Description: "Battle Grounds"},
	{Position: 36, Type: CellNormal, Description: "Open Road"},
	{Position: 37, Type: CellEnigma, Description: "Rune Enigma"},
	{Position: 38, Type: CellEnergy, Description: "Energy Node"},
	{Position: 39, Type: CellLifeCard, Description: "Card of Life"},
}

// CellAt returns the cell at the given position.
func CellAt(position int) (Cell, error) {
	if position < 0 || position >= Size {
		return Cell{}, fmt.Errorf("position out of range: %d", position)
	}
	return Cells[position], nil
}

// CellsOfType returns every cell of the given type, in board order.
func CellsOfType(t CellType) []Cell {
	var out []Cell
	for _, c := range Cells {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}

// RingDistance returns how many forward steps separate from and to on the
// ring. The board only moves forward, so this is directional.
func RingDistance(from, to int) int {
	d := (to - from) % Size
	if d < 0 {
		d += Size
	}
	return d
}

// ValidCellType reports whether t is one of the closed set of cell types.
func ValidCellType(t CellType) bool {
	switch t {
	case CellStart, CellBattle, CellShop, CellLifeCard, CellRelic, CellResource,
		CellEnigma, CellAlliance, CellProphecy, CellThrone, CellEnergy, CellNormal:
		return true
	}
	return false
}
