package game

import (
	"fmt"

	"bigfive-server/pkg/deck"
)

// scoring constants
const (
	basePoints  = 3
	zebraPoints = 6
)

// checkCompletion evaluates the target area after a placement. On a complete
// big five the acting player scores, the area's cards (both players', field
// and special) move to the shared discard pile, and any block is lifted.
// Returns the points awarded (0 when incomplete) and a summary message.
func (g *Game) checkCompletion(areaID, actor int) (int, string) {
	area := g.areas[areaID]
	if len(area.cards) == 0 {
		return 0, ""
	}

	animals := area.animals()

	// only specials the acting player placed here count towards eligibility;
	// the opponent's wildcards and zebras in the same area are ignored
	var wildcardUsed deck.Animal
	if len(animals) == len(deck.BigFive)-1 && area.ownsWildcard(actor) {
		for _, animal := range deck.BigFive {
			if !animals[animal] {
				wildcardUsed = animal
				animals[animal] = true
				break
			}
		}
	}

	for _, animal := range deck.BigFive {
		if !animals[animal] {
			return 0, ""
		}
	}

	points := basePoints
	if area.ownsSpecial(actor, deck.Zebra) {
		points = zebraPoints
	}

	player := g.players[actor]
	player.score += points

	g.discard = append(g.discard, area.clear()...)

	summary := fmt.Sprintf("%s completed the big five in area %d for %d points", player.Name, areaID+1, points)
	if wildcardUsed != "" {
		summary = fmt.Sprintf("%s (a wildcard stood in for the %s)", summary, wildcardUsed)
	}

	g.sendLogMessages(newLogMessage(player.ID, nil, summary))

	return points, summary
}
