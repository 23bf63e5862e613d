package game

// startingCoins is every player's opening treasury.
const startingCoins = 7

// baseTradeRate is the coin cost of buying a resource from the bank before
// the opponent's production markup.
const baseTradeRate = 2

// PlayerController tracks one player's economy. Derived views (resources,
// wildcard pools, link symbols, science categories, victory points) are
// recomputed from the owned cards on every access, never cached.
type PlayerController struct {
	id             string
	name           string
	side           Side
	cards          []Card
	coins          int
	scienceTokens  []ScienceToken
	wonders        []Wonder
	warPenaltyTier int
	discounts      []ResourceDiscount
}

// NewPlayerController creates a player with the starting treasury and no
// holdings.
func NewPlayerController(id, name string, side Side) *PlayerController {
	return &PlayerController{
		id:    id,
		name:  name,
		side:  side,
		coins: startingCoins,
	}
}

func (p *PlayerController) ID() string   { return p.id }
func (p *PlayerController) Name() string { return p.name }
func (p *PlayerController) Side() Side   { return p.side }
func (p *PlayerController) Coins() int   { return p.coins }

// WarPenaltyTier returns the player's current looting tier, one of 0, 2, 5.
func (p *PlayerController) WarPenaltyTier() int { return p.warPenaltyTier }

// Cards returns a copy of the player's owned cards in acquisition order.
func (p *PlayerController) Cards() []Card {
	return append([]Card(nil), p.cards...)
}

// ScienceTokens returns a copy of the player's held progress tokens.
func (p *PlayerController) ScienceTokens() []ScienceToken {
	return append([]ScienceToken(nil), p.scienceTokens...)
}

// Wonders returns a copy of the player's wonders, claimed or not.
func (p *PlayerController) Wonders() []Wonder {
	return append([]Wonder(nil), p.wonders...)
}

// Resources returns the multiset of resources produced by the player's
// production cards.
func (p *PlayerController) Resources() []Resource {
	var resources []Resource
	for _, card := range p.cards {
		if card.Type == CardTypeBrownProduction || card.Type == CardTypeGrayProduction {
			resources = append(resources, card.Produces...)
		}
	}
	return resources
}

// WildcardResources returns one resource group per commercial wildcard card;
// any single member of a group can stand in for one required resource.
func (p *PlayerController) WildcardResources() [][]Resource {
	var groups [][]Resource
	for _, card := range p.cards {
		if card.Type != CardTypeYellowCommercial {
			continue
		}
		switch card.Commercial {
		case CommercialAnyBrownResource:
			groups = append(groups, brownResources)
		case CommercialAnyGrayResource:
			groups = append(groups, grayResources)
		}
	}
	return groups
}

// LinkSymbols returns every link symbol the player's cards grant.
func (p *PlayerController) LinkSymbols() []LinkSymbol {
	var symbols []LinkSymbol
	for _, card := range p.cards {
		if card.ProvidesLink != LinkNone {
			symbols = append(symbols, card.ProvidesLink)
		}
	}
	return symbols
}

// HasLinkSymbol reports whether the player owns a card granting the symbol.
func (p *PlayerController) HasLinkSymbol(symbol LinkSymbol) bool {
	for _, owned := range p.LinkSymbols() {
		if owned == symbol {
			return true
		}
	}
	return false
}

// UniqueScienceTypes returns the distinct science categories the player has
// collected. A held LAW token counts as the law category.
func (p *PlayerController) UniqueScienceTypes() []ScienceType {
	var types []ScienceType
	seen := make(map[ScienceType]bool)
	for _, card := range p.cards {
		if card.Type == CardTypeGreenScience && !seen[card.Science] {
			seen[card.Science] = true
			types = append(types, card.Science)
		}
	}

	for _, token := range p.scienceTokens {
		if token == TokenLaw {
			types = append(types, ScienceLaw)
			break
		}
	}

	return types
}

// WondersClaimed returns the wonders the player has built.
func (p *PlayerController) WondersClaimed() []Wonder {
	var claimed []Wonder
	for _, wonder := range p.wonders {
		if wonder.ClaimedWith != "" {
			claimed = append(claimed, wonder)
		}
	}
	return claimed
}

// CardTypeCount returns how many owned cards have the given category.
func (p *PlayerController) CardTypeCount(cardType CardType) int {
	count := 0
	for _, card := range p.cards {
		if card.Type == cardType {
			count++
		}
	}
	return count
}

// ResourceCount returns how many units of one resource kind the player
// produces.
func (p *PlayerController) ResourceCount(resource Resource) int {
	count := 0
	for _, produced := range p.Resources() {
		if produced == resource {
			count++
		}
	}
	return count
}

// canAffordWithResources walks the card's resource cost against the given
// production multiset and, optionally, the wildcard pools. When a required
// resource is covered by both a wildcard group and a direct match, the
// wildcard is the one consumed; wildcard pools are exhausted first.
func (p *PlayerController) canAffordWithResources(card Card, resources []Resource, useWildcards bool) bool {
	resourcesLeft := append([]Resource(nil), resources...)
	var wildcardsLeft [][]Resource
	if useWildcards {
		wildcardsLeft = p.WildcardResources()
	}

	for _, required := range card.ResourceCost {
		direct := indexOfResource(resourcesLeft, required)
		wildcard := indexOfWildcard(wildcardsLeft, required)

		switch {
		case direct == -1 && wildcard == -1:
			return false
		case wildcard != -1:
			wildcardsLeft = append(wildcardsLeft[:wildcard], wildcardsLeft[wildcard+1:]...)
		default:
			resourcesLeft = append(resourcesLeft[:direct], resourcesLeft[direct+1:]...)
		}
	}

	return true
}

// CanAffordCard reports whether the player can buy the card outright: the
// coin cost fits the treasury and the resource cost is satisfiable from
// owned production plus wildcard pools.
func (p *PlayerController) CanAffordCard(card Card) bool {
	if card.CoinCost > p.coins {
		return false
	}
	return p.canAffordWithResources(card, p.Resources(), true)
}

// TradingCostForCard returns the coins needed to cover the card's resource
// cost through trade. Each resource not covered by owned production or
// wildcards costs the player's fixed discount rate for that kind if one is
// held, otherwise the base rate plus the opponent's production count of it.
func (p *PlayerController) TradingCostForCard(card Card, opponent *PlayerController) int {
	tradingCost := 0
	resourcesLeft := p.Resources()
	wildcardsLeft := p.WildcardResources()

	for _, required := range card.ResourceCost {
		direct := indexOfResource(resourcesLeft, required)
		wildcard := indexOfWildcard(wildcardsLeft, required)

		switch {
		case direct == -1 && wildcard == -1:
			if rate, ok := p.discountFor(required); ok {
				tradingCost += rate
			} else {
				tradingCost += baseTradeRate + opponent.ResourceCount(required)
			}
		case wildcard != -1:
			wildcardsLeft = append(wildcardsLeft[:wildcard], wildcardsLeft[wildcard+1:]...)
		default:
			resourcesLeft = append(resourcesLeft[:direct], resourcesLeft[direct+1:]...)
		}
	}

	return tradingCost
}

// CanTradeForCard reports whether coin cost plus trading cost fits the
// treasury.
func (p *PlayerController) CanTradeForCard(card Card, opponent *PlayerController) bool {
	return card.CoinCost+p.TradingCostForCard(card, opponent) <= p.coins
}

func (p *PlayerController) discountFor(resource Resource) (int, bool) {
	for _, discount := range p.discounts {
		if discount.Type == resource {
			return discount.CoinsPer, true
		}
	}
	return 0, false
}

// AddCard adds a purchased card to the player's holdings.
func (p *PlayerController) AddCard(card Card) {
	p.cards = append(p.cards, card)
}

// AddScienceToken grants a progress token.
func (p *PlayerController) AddScienceToken(token ScienceToken) {
	p.scienceTokens = append(p.scienceTokens, token)
}

// ChargeCoins deducts coins, clamping the balance at zero.
func (p *PlayerController) ChargeCoins(coins int) {
	p.coins -= coins
	if p.coins < 0 {
		p.coins = 0
	}
}

// GiveCoins adds coins to the treasury.
func (p *PlayerController) GiveCoins(coins int) {
	p.coins += coins
}

// ApplyResourceDiscount fixes the trade price of one resource kind.
func (p *PlayerController) ApplyResourceDiscount(resource Resource, coinsPer int) {
	p.discounts = append(p.discounts, ResourceDiscount{Type: resource, CoinsPer: coinsPer})
}

// UpdateWarProgress escalates the player's looting tier when the conflict
// track swings against them: tier 0 becomes 2 at magnitude 3 paying 2 coins,
// tier 2 becomes 5 at magnitude 6 paying 5 more. Tiers only ever increase
// and the favored side is untouched.
func (p *PlayerController) UpdateWarProgress(conflictValue int) {
	if (conflictValue > 0 && p.side == SideA) || (conflictValue < 0 && p.side == SideB) {
		return
	}

	magnitude := conflictValue
	if magnitude < 0 {
		magnitude = -magnitude
	}

	if p.warPenaltyTier == 2 && magnitude >= 6 {
		p.warPenaltyTier = 5
		p.ChargeCoins(5)
	} else if p.warPenaltyTier == 0 && magnitude >= 3 {
		p.warPenaltyTier = 2
		p.ChargeCoins(2)
	}
}

// VictoryPoints tallies the player's building points, guild formulas, science
// token points and treasury points. Conflict bonus points are added by the
// game controller at final scoring.
func (p *PlayerController) VictoryPoints() int {
	total := 0

	for _, card := range p.cards {
		switch card.Type {
		case CardTypeBlueVictory, CardTypeGreenScience, CardTypeYellowCommercial:
			total += card.VictoryPoints
		case CardTypePurpleGuild:
			total += p.guildPoints(card)
		}
	}

	for _, token := range p.scienceTokens {
		switch token {
		case TokenAgriculture:
			total += 4
		case TokenPhilosophy:
			total += 7
		case TokenMathematics:
			total += 3 * len(p.scienceTokens)
		}
	}

	total += p.coins / 3

	return total
}

func (p *PlayerController) guildPoints(card Card) int {
	switch card.Guild {
	case GuildVictoryPointsPerCoins:
		return card.VictoryPoints * (p.coins / card.GuildCoinsPer)
	case GuildVictoryPointsPerWonder:
		return card.VictoryPoints * len(p.WondersClaimed())
	case GuildVictoryPointsPerCardType:
		points := 0
		for _, cardType := range card.GuildCardTypes {
			points += card.VictoryPoints * p.CardTypeCount(cardType)
		}
		return points
	default:
		return 0
	}
}

func indexOfResource(resources []Resource, want Resource) int {
	for i, resource := range resources {
		if resource == want {
			return i
		}
	}
	return -1
}

func indexOfWildcard(groups [][]Resource, want Resource) int {
	for i, group := range groups {
		for _, resource := range group {
			if resource == want {
				return i
			}
		}
	}
	return -1
}
