package game

import (
	"math/rand"

	"github.com/google/uuid"
)

// purgeCount is the number of cards removed face down from every age deck to
// mirror the physical setup.
const purgeCount = 3

// guildCount is the number of guild cards mixed into the final age.
const guildCount = 3

// DeckController holds the draw pile for the current age.
type DeckController struct {
	cards []Card
	rng   *rand.Rand
}

// NewDeckController creates an empty deck using rng for every shuffle and
// draw.
func NewDeckController(rng *rand.Rand) *DeckController {
	return &DeckController{cards: nil, rng: rng}
}

// Size returns the number of cards remaining in the pile.
func (d *DeckController) Size() int {
	return len(d.cards)
}

// Reset rebuilds the pile for the given age: copy the fixed catalogue,
// shuffle, purge three cards, and for the final age shuffle in three random
// guild cards after the purge. Every card gets a fresh UID here; identifiers
// are not stable across ages.
func (d *DeckController) Reset(age Age) error {
	catalog := catalogForAge(age)
	if catalog == nil {
		return invariant("no catalogue for age %s", age)
	}

	d.cards = make([]Card, len(catalog))
	copy(d.cards, catalog)
	d.shuffle()

	for i := 0; i < purgeCount; i++ {
		if _, err := d.Draw(); err != nil {
			return err
		}
	}

	if age == Age3 {
		guilds := make([]Card, len(guildCards))
		copy(guilds, guildCards)
		shuffleCards(d.rng, guilds)
		d.cards = append(d.cards, guilds[:guildCount]...)
		d.shuffle()
	}

	back := age.Back()
	for i := range d.cards {
		d.cards[i].UID = uuid.NewString()
		d.cards[i].Back = back
	}

	return nil
}

// Draw removes and returns one uniformly random remaining card. An empty
// deck is an engine invariant failure: the catalogue sizes and stage
// capacities are fixed so legal play can never exhaust the pile.
func (d *DeckController) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, invariant("draw from an empty deck")
	}

	i := d.rng.Intn(len(d.cards))
	card := d.cards[i]
	d.cards = append(d.cards[:i], d.cards[i+1:]...)
	return card, nil
}

// shuffle applies a uniform random permutation by repeatedly moving a
// uniformly chosen remaining card to the output, which is equivalent to
// Fisher-Yates.
func (d *DeckController) shuffle() {
	shuffleCards(d.rng, d.cards)
}

func shuffleCards(rng *rand.Rand, cards []Card) {
	shuffled := make([]Card, 0, len(cards))
	remaining := append([]Card(nil), cards...)
	for len(remaining) > 0 {
		i := rng.Intn(len(remaining))
		shuffled = append(shuffled, remaining[i])
		remaining = append(remaining[:i], remaining[i+1:]...)
	}
	copy(cards, shuffled)
}
