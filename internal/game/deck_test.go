package game

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/jason-s-yu/qwirkle/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDeck(t *testing.T) {
	deck := BuildDeck()
	require.Len(t, deck, 64)

	seen := make(map[models.Card]bool)
	for _, c := range deck {
		assert.False(t, seen[c], "duplicate card %s", c)
		seen[c] = true
		assert.True(t, IsDeckCard(c))
	}
	for _, color := range Colors() {
		for _, number := range Numbers() {
			for _, shape := range Shapes() {
				assert.True(t, seen[card(color, number, shape)], "missing %s-%d-%s", color, number, shape)
			}
		}
	}

	// color-major, then number, then shape
	assert.Equal(t, card(models.Red, 1, models.Cross), deck[0])
	assert.Equal(t, card(models.Red, 1, models.Square), deck[1])
	assert.Equal(t, card(models.Red, 2, models.Cross), deck[4])
	assert.Equal(t, card(models.Green, 1, models.Cross), deck[16])
	assert.Equal(t, card(models.Yellow, 4, models.Triangle), deck[63])
}

func TestDomainsAreCopies(t *testing.T) {
	assert.Equal(t, DeckSize, len(Colors())*len(Numbers())*len(Shapes()))

	c := Colors()
	c[0] = "purple"
	_ = append(Shapes(), "star")

	assert.Equal(t, models.Red, Colors()[0])
	assert.Len(t, Shapes(), 4)
	assert.Len(t, BuildDeck(), DeckSize)
	assert.False(t, IsDeckCard(card("purple", 1, models.Cross)))
}

func TestIsDeckCard(t *testing.T) {
	assert.True(t, IsDeckCard(card(models.Blue, 3, models.Circle)))
	assert.False(t, IsDeckCard(card("purple", 3, models.Circle)))
	assert.False(t, IsDeckCard(card(models.Blue, 5, models.Circle)))
	assert.False(t, IsDeckCard(card(models.Blue, 3, "star")))
}

func TestShuffleDeckLeavesInputAlone(t *testing.T) {
	deck := BuildDeck()
	shuffled := ShuffleDeck(deck, rand.New(rand.NewSource(1)))
	assert.Equal(t, BuildDeck(), deck)
	assert.ElementsMatch(t, deck, shuffled)
}

func TestDealConservation(t *testing.T) {
	for players := 1; players <= 15; players++ {
		state, err := Deal(players, DefaultHouseRules(), rand.New(rand.NewSource(int64(players))))
		require.NoError(t, err, "players=%d", players)

		assert.Equal(t, 64, len(state.Deck)+players*4+1, "players=%d", players)
		require.Len(t, state.Players, players)
		for i, p := range state.Players {
			assert.Equal(t, i+1, p.ID)
			assert.Len(t, p.Cards, 4)
		}
		require.Equal(t, 1, state.Board.Len())
		_, ok := state.Board.At(StarterCell)
		assert.True(t, ok, "starter tile should sit at (0,0)")
		assert.NotEqual(t, uuid.Nil, state.ID)
		requireConserved(t, state)
	}
}

func TestDealTakesFromTheFront(t *testing.T) {
	shuffled := ShuffleDeck(BuildDeck(), rand.New(rand.NewSource(7)))
	state, err := Deal(2, DefaultHouseRules(), rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	assert.Equal(t, shuffled[0:4], state.Players[0].Cards)
	assert.Equal(t, shuffled[4:8], state.Players[1].Cards)
	starter, _ := state.Board.At(StarterCell)
	assert.Equal(t, shuffled[8], starter.Card)
	assert.Equal(t, shuffled[9:], state.Deck)
}

func TestDealLimits(t *testing.T) {
	_, err := CreateGame(16)
	assert.ErrorIs(t, err, ErrTooManyPlayers)

	// huge counts must not wrap around the deck check
	_, err = CreateGame(math.MaxInt)
	assert.ErrorIs(t, err, ErrTooManyPlayers)
	_, err = Deal(4, HouseRules{HandSize: math.MaxInt}, nil)
	assert.ErrorIs(t, err, ErrTooManyPlayers)
	_, err = Deal(math.MaxInt, HouseRules{HandSize: math.MaxInt}, nil)
	assert.ErrorIs(t, err, ErrTooManyPlayers)

	_, err = CreateGame(0)
	assert.ErrorIs(t, err, ErrNoPlayers)

	_, err = Deal(2, HouseRules{HandSize: 0}, nil)
	assert.Error(t, err)

	rules := HouseRules{HandSize: 6}
	assert.Equal(t, 10, rules.MaxPlayers())
	_, err = Deal(11, rules, nil)
	assert.ErrorIs(t, err, ErrTooManyPlayers)

	state, err := Deal(10, rules, nil)
	require.NoError(t, err)
	assert.Len(t, state.Deck, 3)
	requireConserved(t, state)
}

func TestDealSeedIsDeterministic(t *testing.T) {
	rules := HouseRules{HandSize: 4, ShuffleSeed: 99}
	a, err := Deal(3, rules, nil)
	require.NoError(t, err)
	b, err := Deal(3, rules, nil)
	require.NoError(t, err)

	assert.Equal(t, a.Deck, b.Deck)
	assert.Equal(t, a.Players, b.Players)
	assert.NotEqual(t, a.ID, b.ID)
}
