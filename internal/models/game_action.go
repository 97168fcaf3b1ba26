package models

// Move is a proposed line submitted by a player. Version is the state version
// the player saw when choosing the line.
type Move struct {
	PlayerID int         `json:"player_id"`
	Version  int         `json:"version"`
	Line     []Placement `json:"line"`
}
