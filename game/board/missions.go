package board

import "fmt"

// Mission identifiers. Each player is assigned exactly one at game start.
const (
	MissionRelics    = 1 // collect 3 ancient relics
	MissionResources = 2 // amass 12 resource units
	MissionDuels     = 3 // win 3 direct duels
	MissionEnigma    = 4 // solve the rune enigma
	MissionAlliance  = 5 // collect a mark in all 4 regions
	MissionProphecy  = 6 // fulfil 3 prophecies
	MissionThrone    = 7 // claim and defend the sacred throne
	MissionEnergy    = 8 // activate 5 energy nodes
)

// Completion thresholds for the counter-based missions.
const (
	RelicsNeeded     = 3
	ResourcesNeeded  = 12
	DuelsNeeded      = 3
	AllianceNeeded   = 4
	PropheciesNeeded = 3
	EnergyNeeded     = 5
)

// EnigmaHintCap is the most hints a rune-mission player can accumulate.
const EnigmaHintCap = 5

// Mission is a player's secret long-term win condition.
type Mission struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Missions lists all eight missions in ID order.
var Missions = []Mission{
	{ID: MissionRelics, Title: "Keeper of Relics",
		Description: "Collect 3 ancient relics scattered across the board."},
	{ID: MissionResources, Title: "Master of Resources",
		Description: "Amass 12 resource units (gold, gems or artifacts) before anyone else."},
	{ID: MissionDuels, Title: "Arena Champion",
		Description: "Win 3 direct duels against other players."},
	{ID: MissionEnigma, Title: "Rune Enigma",
		Description: "Complete a full lap, then answer the rune enigma correctly."},
	{ID: MissionAlliance, Title: "Alliance Builder",
		Description: "Visit all 4 regions and collect an alliance mark in each."},
	{ID: MissionProphecy, Title: "Chosen of the Oracle",
		Description: "Find and fulfil 3 prophecies revealed at hidden shrines."},
	{ID: MissionThrone, Title: "Usurper of the Empty Throne",
		Description: "Claim the sacred throne and defeat every challenger."},
	{ID: MissionEnergy, Title: "Awakening of the Flow",
		Description: "Activate 5 energy nodes to restore the balance."},
}

// MissionByID looks up a mission by its identifier.
func MissionByID(id int) (Mission, error) {
	for _, m := range Missions {
		if m.ID == id {
			return m, nil
		}
	}
	return Mission{}, fmt.Errorf("unknown mission id: %d", id)
}
