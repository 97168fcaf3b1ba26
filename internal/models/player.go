package models

// Player is a seat at the table and the cards currently in their hand.
type Player struct {
	ID    int    `json:"id"`
	Cards []Card `json:"cards"`
}

// HasCard reports whether c is in the player's hand.
func (p Player) HasCard(c Card) bool {
	for _, held := range p.Cards {
		if held == c {
			return true
		}
	}
	return false
}
