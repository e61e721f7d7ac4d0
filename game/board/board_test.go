package board

import (
	"math/rand"
	"testing"
)

func TestBoardShape(t *testing.T) {
	if len(Cells) != Size {
		t.Fatalf("expected %d cells, got %d", Size, len(Cells))
	}
	for i, c := range Cells {
		if c.Position != i {
			t.Errorf("cell %d has position %d", i, c.Position)
		}
		if !ValidCellType(c.Type) {
			t.Errorf("cell %d has invalid type %q", i, c.Type)
		}
	}
	if Cells[0].Type != CellStart {
		t.Errorf("cell 0 should be start, got %q", Cells[0].Type)
	}
	for i := 1; i < Size; i++ {
		if Cells[i].Type == CellStart {
			t.Errorf("unexpected second start cell at %d", i)
		}
	}
}

func TestCellTypeDistribution(t *testing.T) {
	tests := []struct {
		cellType  CellType
		positions []int
	}{
		{CellEnergy, []int{1, 14, 22, 33, 38}},
		{CellAlliance, []int{2, 11, 23, 32}},
		{CellRelic, []int{3, 13, 25}},
		{CellNormal, []int{4, 10, 16, 21, 27, 31, 36}},
		{CellBattle, []int{5, 12, 26, 35}},
		{CellResource, []int{6, 19, 29}},
		{CellEnigma, []int{7, 17, 30, 37}},
		{CellLifeCard, []int{8, 18, 28, 39}},
		{CellProphecy, []int{9, 24, 34}},
		{CellShop, []int{15}},
		{CellThrone, []int{20}},
	}

	for _, tt := range tests {
		cells := CellsOfType(tt.cellType)
		if len(cells) != len(tt.positions) {
			t.Errorf("%s: expected %d cells, got %d", tt.cellType, len(tt.positions), len(cells))
			continue
		}
		for i, c := range cells {
			if c.Position != tt.positions[i] {
				t.Errorf("%s: expected position %d, got %d", tt.cellType, tt.positions[i], c.Position)
			}
		}
	}
}

func TestAllianceRegions(t *testing.T) {
	want := map[int]string{
		2:  RegionNorth,
		11: RegionEast,
		23: RegionSouth,
		32: RegionWest,
	}
	for pos, region := range want {
		cell, err := CellAt(pos)
		if err != nil {
			t.Fatalf("CellAt(%d): %v", pos, err)
		}
		if cell.Region != region {
			t.Errorf("cell %d: expected region %q, got %q", pos, region, cell.Region)
		}
	}
	for _, c := range Cells {
		if c.Type != CellAlliance && c.Region != "" {
			t.Errorf("non-alliance cell %d carries region %q", c.Position, c.Region)
		}
	}
}

func TestCellAtBounds(t *testing.T) {
	if _, err := CellAt(-1); err == nil {
		t.Error("expected error for position -1")
	}
	if _, err := CellAt(Size); err == nil {
		t.Errorf("expected error for position %d", Size)
	}
	cell, err := CellAt(20)
	if err != nil {
		t.Fatalf("CellAt(20): %v", err)
	}
	if cell.Type != CellThrone {
		t.Errorf("expected throne at 20, got %q", cell.Type)
	}
}

func TestRingDistance(t *testing.T) {
	tests := []struct {
		from, to, want int
	}{
		{0, 0, 0},
		{0, 5, 5},
		{38, 2, 4},
		{39, 0, 1},
		{5, 5, 0},
		{20, 19, 39},
	}
	for _, tt := range tests {
		if got := RingDistance(tt.from, tt.to); got != tt.want {
			t.Errorf("RingDistance(%d, %d) = %d, want %d", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestDrawFlavorEventNeutralSign(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	sawPositive, sawNegative := false, false
	for i := 0; i < 500; i++ {
		ev := DrawFlavorEvent(rng)
		if ev.Kind == FlavorNeutral {
			if ev.Credits > 0 {
				sawPositive = true
			}
			if ev.Credits < 0 {
				sawNegative = true
			}
		}
		if ev.Credits == 0 {
			t.Fatalf("event %s resolved to zero credits", ev.ID)
		}
	}
	if !sawPositive || !sawNegative {
		t.Errorf("neutral events never resolved both ways: positive=%v negative=%v", sawPositive, sawNegative)
	}
}
