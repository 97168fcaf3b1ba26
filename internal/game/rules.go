// internal/game/rules.go
package game

import (
	"fmt"
	"math"
)

// HouseRules holds the table options that change how a game is dealt.
type HouseRules struct {
	HandSize    int   `json:"handSize"`    // cards dealt to each player and the hand size kept by drawing; default 4
	ShuffleSeed int64 `json:"shuffleSeed"` // seed for the deal; 0 seeds from the clock
}

// DefaultHouseRules returns the standard table options.
func DefaultHouseRules() HouseRules {
	return HouseRules{HandSize: 4}
}

// MaxPlayers returns how many players a full deck can deal under these rules,
// leaving one card for the starter tile.
func (rules HouseRules) MaxPlayers() int {
	if rules.HandSize < 1 {
		return 0
	}
	return (DeckSize - 1) / rules.HandSize
}

// Update will update the house rules with the new rules provided.
// If a rule is not set or defined, it will be ignored, and the old value will persist.
func (rules *HouseRules) Update(newRules map[string]interface{}) error {
	if val, exists := newRules["handSize"]; exists && val != nil {
		n, err := toInt(val, "handSize")
		if err != nil {
			return err
		}
		if n < 1 {
			return fmt.Errorf("handSize must be at least 1")
		}
		rules.HandSize = n
	}
	if val, exists := newRules["shuffleSeed"]; exists && val != nil {
		n, err := toInt(val, "shuffleSeed")
		if err != nil {
			return err
		}
		rules.ShuffleSeed = int64(n)
	}
	return nil
}

// ParseRules converts a map of rules to a HouseRules struct. It will ensure the types are valid.
func ParseRules(rules map[string]interface{}, current HouseRules) (HouseRules, error) {
	houseRules := current
	err := houseRules.Update(rules)
	return houseRules, err
}

// toInt accepts the float64 that encoding/json produces as well as plain ints.
func toInt(val interface{}, key string) (int, error) {
	switch v := val.(type) {
	case float64:
		if v != math.Trunc(v) || v >= math.MaxInt64 || v < math.MinInt64 {
			return 0, fmt.Errorf("%s must be a whole number, got %v", key, v)
		}
		return int(v), nil
	case int:
		return v, nil
	case int64:
		return int(v), nil
	default:
		return 0, fmt.Errorf("invalid type for %s", key)
	}
}
