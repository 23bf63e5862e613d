package game

import "fmt"

// Resource represents a tradable production resource.
type Resource int

const (
	ResourceWood Resource = iota
	ResourceClay
	ResourceStone
	ResourceGlass
	ResourcePapyrus
)

var resourceNames = map[Resource]string{
	ResourceWood:    "WOOD",
	ResourceClay:    "CLAY",
	ResourceStone:   "STONE",
	ResourceGlass:   "GLASS",
	ResourcePapyrus: "PAPYRUS",
}

func (r Resource) String() string {
	if name, ok := resourceNames[r]; ok {
		return name
	}
	return fmt.Sprintf("RESOURCE_%d", int(r))
}

// brownResources and grayResources are the wildcard groups that commercial
// cards can substitute into.
var (
	brownResources = []Resource{ResourceWood, ResourceStone, ResourceClay}
	grayResources  = []Resource{ResourceGlass, ResourcePapyrus}
)

// CardType represents the category of a card.
type CardType int

const (
	CardTypeBrownProduction CardType = iota
	CardTypeGrayProduction
	CardTypeYellowCommercial
	CardTypeGreenScience
	CardTypeBlueVictory
	CardTypeRedArmy
	CardTypePurpleGuild
)

var cardTypeNames = map[CardType]string{
	CardTypeBrownProduction:  "BROWN_PRODUCTION",
	CardTypeGrayProduction:   "GRAY_PRODUCTION",
	CardTypeYellowCommercial: "YELLOW_COMMERCIAL",
	CardTypeGreenScience:     "GREEN_SCIENCE",
	CardTypeBlueVictory:      "BLUE_VICTORY",
	CardTypeRedArmy:          "RED_ARMY",
	CardTypePurpleGuild:      "PURPLE_GUILD",
}

func (t CardType) String() string {
	if name, ok := cardTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("CARD_TYPE_%d", int(t))
}

// CommercialType distinguishes the wildcard-producing commercial cards.
type CommercialType int

const (
	CommercialNone CommercialType = iota
	CommercialAnyBrownResource
	CommercialAnyGrayResource
)

// ScienceType is the science category a green card belongs to. Collecting
// six distinct categories is an instant win.
type ScienceType int

const (
	ScienceWheel ScienceType = iota
	ScienceMortar
	ScienceQuill
	ScienceGyroscope
	ScienceSunDial
	SciencePendulum
	ScienceLaw
)

var scienceTypeNames = map[ScienceType]string{
	ScienceWheel:     "WHEEL",
	ScienceMortar:    "MORTAR",
	ScienceQuill:     "QUILL",
	ScienceGyroscope: "GYROSCOPE",
	ScienceSunDial:   "SUN_DIAL",
	SciencePendulum:  "PENDULUM",
	ScienceLaw:       "LAW",
}

func (s ScienceType) String() string {
	if name, ok := scienceTypeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("SCIENCE_%d", int(s))
}

// LinkSymbol is a symbol a card grants; a later card carrying the matching
// buy-with symbol is acquired for free.
type LinkSymbol int

const (
	LinkNone LinkSymbol = iota
	LinkHorseshoe
	LinkSword
	LinkTower
	LinkBook
	LinkGear
	LinkMask
	LinkMoon
	LinkDrop
	LinkHarp
	LinkLamp
	LinkColumn
	LinkSun
	LinkTarget
	LinkHelmet
	LinkSenate
	LinkVase
	LinkBarrel
)

var linkSymbolNames = map[LinkSymbol]string{
	LinkNone:      "",
	LinkHorseshoe: "HORSESHOE",
	LinkSword:     "SWORD",
	LinkTower:     "TOWER",
	LinkBook:      "BOOK",
	LinkGear:      "GEAR",
	LinkMask:      "MASK",
	LinkMoon:      "MOON",
	LinkDrop:      "DROP",
	LinkHarp:      "HARP",
	LinkLamp:      "LAMP",
	LinkColumn:    "COLUMN",
	LinkSun:       "SUN",
	LinkTarget:    "TARGET",
	LinkHelmet:    "HELMET",
	LinkSenate:    "SENATE",
	LinkVase:      "VASE",
	LinkBarrel:    "BARREL",
}

func (l LinkSymbol) String() string {
	if name, ok := linkSymbolNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LINK_%d", int(l))
}

// GuildType tags the scoring formula of a purple guild card.
type GuildType int

const (
	GuildVictoryPointsPerCoins GuildType = iota
	GuildVictoryPointsPerWonder
	GuildVictoryPointsPerCardType
)

// EffectKind tags a purchase-time effect. Effects are plain data dispatched
// through a fixed table in GameController, never callables embedded on cards.
type EffectKind int

const (
	EffectArmyPoints EffectKind = iota
	EffectResourceDiscount
	EffectCoins
	EffectCoinsPerCardType
	EffectCoinsPerWonder
)

// Effect is a tagged purchase-time effect. Only the fields relevant to the
// Kind are set.
type Effect struct {
	Kind             EffectKind
	ArmyPoints       int
	Discounted       []Resource
	Coins            int
	CoinsPerCardType int
	CardTypes        []CardType
	CoinsPerWonder   int
}

// AgeBack identifies the back design of a face-down card, the only thing a
// sanitized projection may reveal about it.
type AgeBack int

const (
	AgeBackOne AgeBack = iota
	AgeBackTwo
	AgeBackThree
)

var ageBackNames = map[AgeBack]string{
	AgeBackOne:   "AGE_1",
	AgeBackTwo:   "AGE_2",
	AgeBackThree: "AGE_3",
}

func (b AgeBack) String() string {
	if name, ok := ageBackNames[b]; ok {
		return name
	}
	return fmt.Sprintf("AGE_BACK_%d", int(b))
}

// Card is a catalogue entry plus a per-game unique identifier. Catalogue
// fields are never mutated after deck construction.
type Card struct {
	UID          string
	Name         string
	Type         CardType
	ResourceCost []Resource
	CoinCost     int
	Produces     []Resource
	Commercial   CommercialType
	Science      ScienceType
	ProvidesLink LinkSymbol
	BuyWithLink  LinkSymbol
	VictoryPoints int

	// Guild scoring formula fields, meaningful only for purple cards.
	Guild          GuildType
	GuildCoinsPer  int
	GuildCardTypes []CardType

	// Purchase-time effect, nil for cards without one.
	Effect *Effect

	// Back shown while the card sits face down on the stage.
	Back AgeBack
}

// ResourceDiscount fixes the trade price of one resource kind.
type ResourceDiscount struct {
	Type     Resource
	CoinsPer int
}

// Wonder is held by a player and claimed by pairing it with a card. Wonder
// construction is not wired into scoring yet; the shape exists so claimed
// counts can feed guild and effect formulas.
type Wonder struct {
	Name        string
	ClaimedWith string // card UID, empty while unclaimed
}

// ScienceToken is one of the ten progress tokens.
type ScienceToken int

const (
	TokenAgriculture ScienceToken = iota
	TokenArchitecture
	TokenEconomy
	TokenLaw
	TokenMasonry
	TokenMathematics
	TokenPhilosophy
	TokenStrategy
	TokenTheology
	TokenUrbanism
)

var scienceTokenNames = map[ScienceToken]string{
	TokenAgriculture:  "AGRICULTURE",
	TokenArchitecture: "ARCHITECTURE",
	TokenEconomy:      "ECONOMY",
	TokenLaw:          "LAW",
	TokenMasonry:      "MASONRY",
	TokenMathematics:  "MATHEMATICS",
	TokenPhilosophy:   "PHILOSOPHY",
	TokenStrategy:     "STRATEGY",
	TokenTheology:     "THEOLOGY",
	TokenUrbanism:     "URBANISM",
}

func (t ScienceToken) String() string {
	if name, ok := scienceTokenNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TOKEN_%d", int(t))
}

// Age is one of the three sequential game phases.
type Age int

const (
	Age1 Age = iota + 1
	Age2
	Age3
)

func (a Age) String() string {
	switch a {
	case Age1:
		return "AGE_1"
	case Age2:
		return "AGE_2"
	case Age3:
		return "AGE_3"
	default:
		return fmt.Sprintf("AGE_%d", int(a))
	}
}

// Back returns the card back used for this age's face-down cards.
func (a Age) Back() AgeBack {
	switch a {
	case Age2:
		return AgeBackTwo
	case Age3:
		return AgeBackThree
	default:
		return AgeBackOne
	}
}

// Side identifies one of the two seats.
type Side string

const (
	SideA Side = "A"
	SideB Side = "B"
)

// Other returns the opposing side.
func (s Side) Other() Side {
	if s == SideA {
		return SideB
	}
	return SideA
}
