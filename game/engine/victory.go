package engine

import (
	"fmt"

	"github.com/ivanValieri/jogotabuleiro1/game/board"
)

// Win reasons recorded on the victory event.
const (
	WinMission      = "mission_complete"
	WinAttrition    = "attrition"
	WinLastStanding = "last_standing"
)

// checkVictory sweeps the completion predicates after a mutation. The
// first satisfied predicate ends the game; later ties are moot because
// the sweep runs after every encounter.
func (g *Game) checkVictory() {
	if g.state.Status != StatusActive {
		return
	}

	active := g.state.ActivePlayers()
	for _, p := range active {
		if missionComplete(p) {
			m, _ := board.MissionByID(p.MissionID)
			g.emit(Event{
				Type: EventVictory, PlayerID: p.ID, Reason: WinMission,
				Message: fmt.Sprintf("%s completed \"%s\" and wins the game!", p.Name, m.Title),
			})
			return
		}
	}

	// Attrition: a lone human outlasting fully bankrupt AI opposition.
	var humans, ais []*Player
	for _, p := range active {
		if p.IsAI {
			ais = append(ais, p)
		} else {
			humans = append(humans, p)
		}
	}
	if len(humans) == 1 && len(ais) > 0 {
		broke := true
		for _, a := range ais {
			if a.Credits > 0 {
				broke = false
				break
			}
		}
		if broke {
			g.emit(Event{
				Type: EventVictory, PlayerID: humans[0].ID, Reason: WinAttrition,
				Message: fmt.Sprintf("%s outlasted every bankrupt rival!", humans[0].Name),
			})
			return
		}
	}

	// Eliminations can leave a single survivor.
	if len(active) == 1 && len(g.state.Players) > 1 {
		g.emit(Event{
			Type: EventVictory, PlayerID: active[0].ID, Reason: WinLastStanding,
			Message: fmt.Sprintf("%s is the last one standing!", active[0].Name),
		})
	}
}

// missionComplete checks the player's own completion predicate.
func missionComplete(p *Player) bool {
	switch p.MissionID {
	case board.MissionRelics:
		return p.Progress.Relics >= board.RelicsNeeded
	case board.MissionResources:
		return p.Progress.Resources >= board.ResourcesNeeded
	case board.MissionDuels:
		return p.Progress.DuelsWon >= board.DuelsNeeded
	case board.MissionEnigma:
		return p.Progress.EnigmaAnswered
	case board.MissionAlliance:
		return len(p.Progress.AllianceMarks) >= board.AllianceNeeded
	case board.MissionProphecy:
		return p.Progress.Prophecies >= board.PropheciesNeeded
	case board.MissionThrone:
		return p.Progress.ThroneDefended
	case board.MissionEnergy:
		return p.Progress.EnergyPoints >= board.EnergyNeeded
	}
	return false
}
