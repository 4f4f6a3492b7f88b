package game

import (
	"fmt"
	"strings"

	"bigfive-server/pkg/deck"
)

// resolveSpecial applies the card's behavior before placement and returns the
// message for the acting player. Effects resolve synchronously and exactly
// once; every special yields a message even when nothing changed.
func (g *Game) resolveSpecial(card *deck.Card, actor, areaID int) string {
	player := g.players[actor]
	opponent := g.opponentOf(actor)
	area := g.areas[areaID]

	switch card.Special {
	case deck.Chameleon, deck.BigFiveSpotter:
		// no immediate effect; counts as a wildcard at completion time
		msg := fmt.Sprintf("%s places a %s in area %d; it can stand in for a missing animal", player.Name, card, areaID+1)
		g.sendLogMessages(newLogMessage(player.ID, card, msg))
		return msg

	case deck.Zebra:
		area.blocked = true
		area.blockedFor = 1 - actor
		msg := fmt.Sprintf("%s places a zebra in area %d; the area is now blocked for %s", player.Name, areaID+1, opponent.Name)
		g.sendLogMessages(newLogMessage(player.ID, card, msg))
		return msg

	case deck.Crocodile:
		if len(opponent.hand) == 0 {
			msg := fmt.Sprintf("%s plays a crocodile, but %s has no cards to steal", player.Name, opponent.Name)
			g.sendLogMessages(newLogMessage(player.ID, card, msg))
			return msg
		}

		stolen := opponent.removeCardAt(g.rand.Intn(len(opponent.hand)))
		player.AddCard(stolen)

		g.sendLogMessages(newLogMessage(player.ID, card, "%s plays a crocodile and steals a card from %s", player.Name, opponent.Name))
		return fmt.Sprintf("%s plays a crocodile and steals a %s from %s", player.Name, stolen, opponent.Name)

	case deck.Giraffe:
		peeked := g.deck.Peek(3)
		// the log message stays vague; only the acting player learns the cards
		g.sendLogMessages(newLogMessage(player.ID, card, "%s plays a giraffe and peeks at the deck", player.Name))

		if len(peeked) == 0 {
			return fmt.Sprintf("%s plays a giraffe, but the deck is empty", player.Name)
		}

		names := make([]string, len(peeked))
		for i, c := range peeked {
			names[i] = c.String()
		}

		return fmt.Sprintf("%s plays a giraffe and sees the next draws: %s", player.Name, strings.Join(names, ", "))

	case deck.Vulture:
		if len(g.discard) == 0 {
			msg := fmt.Sprintf("%s plays a vulture, but the discard pile is empty", player.Name)
			g.sendLogMessages(newLogMessage(player.ID, card, msg))
			return msg
		}

		taken := g.discard[len(g.discard)-1]
		g.discard = g.discard[:len(g.discard)-1]
		player.AddCard(taken)

		msg := fmt.Sprintf("%s plays a vulture and takes the %s from the discard pile", player.Name, taken)
		g.sendLogMessages(newLogMessage(player.ID, card, msg))
		return msg

	case deck.PolarBear:
		opponent.frozen = true
		msg := fmt.Sprintf("%s plays a polar bear; %s will skip their next turn", player.Name, opponent.Name)
		g.sendLogMessages(newLogMessage(player.ID, card, msg))
		return msg
	}

	panic(fmt.Sprintf("unknown special: %s", card.Special))
}
