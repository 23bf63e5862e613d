package game

// Fixed card catalogues and pyramid layouts, one set per age. Catalogue
// entries are templates; DeckController copies them and assigns fresh UIDs on
// every age reset.

// Stage row templates. Each rune is a cell: 'U' face up, 'D' face down,
// 'P' permanently empty padding. All rows of one age share the same width so
// the parity adjacency rule can index covering cells directly.
var (
	age1StageRows = []string{
		"PPUUPP",
		"PPDDDP",
		"PUUUUP",
		"PDDDDD",
		"UUUUUU",
	}
	age2StageRows = []string{
		"UUUUUU",
		"PDDDDD",
		"PUUUUP",
		"PPDDDP",
		"PPUUPP",
	}
	age3StageRows = []string{
		"PPUUPP",
		"PPDDDP",
		"PUUUUP",
		"PPDPDP",
		"PUUUUP",
		"PPDDDP",
		"PPUUPP",
	}
)

func stageRowsForAge(age Age) []string {
	switch age {
	case Age1:
		return age1StageRows
	case Age2:
		return age2StageRows
	case Age3:
		return age3StageRows
	default:
		return nil
	}
}

func armyEffect(points int) *Effect {
	return &Effect{Kind: EffectArmyPoints, ArmyPoints: points}
}

func discountEffect(resources ...Resource) *Effect {
	return &Effect{Kind: EffectResourceDiscount, Discounted: resources}
}

func coinEffect(coins int) *Effect {
	return &Effect{Kind: EffectCoins, Coins: coins}
}

func coinsPerCardTypeEffect(coinsPer int, types ...CardType) *Effect {
	return &Effect{Kind: EffectCoinsPerCardType, CoinsPerCardType: coinsPer, CardTypes: types}
}

func coinsPerWonderEffect(coinsPer int) *Effect {
	return &Effect{Kind: EffectCoinsPerWonder, CoinsPerWonder: coinsPer}
}

// age1Cards holds the 23 first-age catalogue entries.
var age1Cards = []Card{
	{Name: "Lumber Yard", Type: CardTypeBrownProduction, Produces: []Resource{ResourceWood}},
	{Name: "Logging Camp", Type: CardTypeBrownProduction, CoinCost: 1, Produces: []Resource{ResourceWood}},
	{Name: "Clay Pool", Type: CardTypeBrownProduction, Produces: []Resource{ResourceClay}},
	{Name: "Clay Pit", Type: CardTypeBrownProduction, CoinCost: 1, Produces: []Resource{ResourceClay}},
	{Name: "Quarry", Type: CardTypeBrownProduction, Produces: []Resource{ResourceStone}},
	{Name: "Stone Pit", Type: CardTypeBrownProduction, CoinCost: 1, Produces: []Resource{ResourceStone}},
	{Name: "Glassworks", Type: CardTypeGrayProduction, CoinCost: 1, Produces: []Resource{ResourceGlass}},
	{Name: "Press", Type: CardTypeGrayProduction, CoinCost: 1, Produces: []Resource{ResourcePapyrus}},
	{Name: "Guard Tower", Type: CardTypeRedArmy, Effect: armyEffect(1)},
	{Name: "Stable", Type: CardTypeRedArmy, ResourceCost: []Resource{ResourceWood}, ProvidesLink: LinkHorseshoe, Effect: armyEffect(1)},
	{Name: "Garrison", Type: CardTypeRedArmy, ResourceCost: []Resource{ResourceClay}, ProvidesLink: LinkSword, Effect: armyEffect(1)},
	{Name: "Palisade", Type: CardTypeRedArmy, CoinCost: 2, ProvidesLink: LinkTower, Effect: armyEffect(1)},
	{Name: "Workshop", Type: CardTypeGreenScience, ResourceCost: []Resource{ResourcePapyrus}, Science: SciencePendulum, VictoryPoints: 1},
	{Name: "Apothecary", Type: CardTypeGreenScience, ResourceCost: []Resource{ResourceGlass}, Science: ScienceWheel, VictoryPoints: 1},
	{Name: "Scriptorium", Type: CardTypeGreenScience, CoinCost: 2, ProvidesLink: LinkBook, Science: ScienceQuill},
	{Name: "Pharmacist", Type: CardTypeGreenScience, CoinCost: 2, ProvidesLink: LinkGear, Science: ScienceMortar},
	{Name: "Theater", Type: CardTypeBlueVictory, ProvidesLink: LinkMask, VictoryPoints: 3},
	{Name: "Altar", Type: CardTypeBlueVictory, ProvidesLink: LinkMoon, VictoryPoints: 3},
	{Name: "Baths", Type: CardTypeBlueVictory, ResourceCost: []Resource{ResourceStone}, ProvidesLink: LinkDrop, VictoryPoints: 3},
	{Name: "Stone Reserve", Type: CardTypeYellowCommercial, CoinCost: 3, Effect: discountEffect(ResourceStone)},
	{Name: "Clay Reserve", Type: CardTypeYellowCommercial, CoinCost: 3, Effect: discountEffect(ResourceClay)},
	{Name: "Wood Reserve", Type: CardTypeYellowCommercial, CoinCost: 3, Effect: discountEffect(ResourceWood)},
	{Name: "Tavern", Type: CardTypeYellowCommercial, ProvidesLink: LinkVase, Effect: coinEffect(4)},
}

// age2Cards holds the 23 second-age catalogue entries.
var age2Cards = []Card{
	{Name: "Sawmill", Type: CardTypeBrownProduction, CoinCost: 2, Produces: []Resource{ResourceWood, ResourceWood}},
	{Name: "Brickyard", Type: CardTypeBrownProduction, CoinCost: 2, Produces: []Resource{ResourceClay, ResourceClay}},
	{Name: "Shelf Quarry", Type: CardTypeBrownProduction, CoinCost: 2, Produces: []Resource{ResourceStone, ResourceStone}},
	{Name: "Glassblower", Type: CardTypeGrayProduction, Produces: []Resource{ResourceGlass}},
	{Name: "Drying Room", Type: CardTypeGrayProduction, Produces: []Resource{ResourcePapyrus}},
	{Name: "Walls", Type: CardTypeRedArmy, ResourceCost: []Resource{ResourceStone, ResourceStone}, Effect: armyEffect(2)},
	{Name: "Horse Breeders", Type: CardTypeRedArmy, ResourceCost: []Resource{ResourceClay, ResourceWood}, BuyWithLink: LinkHorseshoe, Effect: armyEffect(1)},
	{Name: "Barracks", Type: CardTypeRedArmy, CoinCost: 3, BuyWithLink: LinkSword, Effect: armyEffect(1)},
	{Name: "Archery Range", Type: CardTypeRedArmy, ResourceCost: []Resource{ResourceStone, ResourceWood, ResourcePapyrus}, ProvidesLink: LinkTarget, Effect: armyEffect(2)},
	{Name: "Parade Ground", Type: CardTypeRedArmy, ResourceCost: []Resource{ResourceClay, ResourceClay, ResourceGlass}, ProvidesLink: LinkHelmet, Effect: armyEffect(2)},
	{Name: "Library", Type: CardTypeGreenScience, ResourceCost: []Resource{ResourceStone, ResourceWood, ResourceGlass}, BuyWithLink: LinkBook, Science: ScienceQuill, VictoryPoints: 2},
	{Name: "Dispensary", Type: CardTypeGreenScience, ResourceCost: []Resource{ResourceClay, ResourceClay, ResourceStone}, BuyWithLink: LinkGear, Science: ScienceMortar, VictoryPoints: 2},
	{Name: "School", Type: CardTypeGreenScience, ResourceCost: []Resource{ResourceWood, ResourcePapyrus, ResourcePapyrus}, ProvidesLink: LinkHarp, Science: ScienceWheel, VictoryPoints: 1},
	{Name: "Laboratory", Type: CardTypeGreenScience, ResourceCost: []Resource{ResourceWood, ResourceGlass, ResourceGlass}, ProvidesLink: LinkLamp, Science: SciencePendulum, VictoryPoints: 1},
	{Name: "Tribunal", Type: CardTypeBlueVictory, ResourceCost: []Resource{ResourceWood, ResourceWood, ResourceGlass}, VictoryPoints: 5},
	{Name: "Statue", Type: CardTypeBlueVictory, ResourceCost: []Resource{ResourceClay, ResourceClay}, BuyWithLink: LinkMask, ProvidesLink: LinkColumn, VictoryPoints: 4},
	{Name: "Temple", Type: CardTypeBlueVictory, ResourceCost: []Resource{ResourceWood, ResourcePapyrus}, BuyWithLink: LinkMoon, ProvidesLink: LinkSun, VictoryPoints: 4},
	{Name: "Aqueduct", Type: CardTypeBlueVictory, ResourceCost: []Resource{ResourceStone, ResourceStone, ResourceStone}, BuyWithLink: LinkDrop, VictoryPoints: 5},
	{Name: "Rostrum", Type: CardTypeBlueVictory, ResourceCost: []Resource{ResourceStone, ResourceWood}, ProvidesLink: LinkSenate, VictoryPoints: 4},
	{Name: "Forum", Type: CardTypeYellowCommercial, CoinCost: 3, ResourceCost: []Resource{ResourceClay}, Commercial: CommercialAnyGrayResource},
	{Name: "Caravansery", Type: CardTypeYellowCommercial, CoinCost: 2, ResourceCost: []Resource{ResourceGlass, ResourcePapyrus}, Commercial: CommercialAnyBrownResource},
	{Name: "Customs House", Type: CardTypeYellowCommercial, CoinCost: 4, Effect: discountEffect(ResourcePapyrus, ResourceGlass)},
	{Name: "Brewery", Type: CardTypeYellowCommercial, ProvidesLink: LinkBarrel, Effect: coinEffect(6)},
}

// age3Cards holds the 20 third-age catalogue entries; three guild cards join
// them at deck build time.
var age3Cards = []Card{
	{Name: "Arsenal", Type: CardTypeRedArmy, ResourceCost: []Resource{ResourceClay, ResourceClay, ResourceClay, ResourceWood, ResourceWood}, Effect: armyEffect(3)},
	{Name: "Courthouse", Type: CardTypeRedArmy, CoinCost: 8, Effect: armyEffect(3)},
	{Name: "Fortifications", Type: CardTypeRedArmy, ResourceCost: []Resource{ResourceStone, ResourceStone, ResourceClay, ResourcePapyrus}, BuyWithLink: LinkTower, Effect: armyEffect(2)},
	{Name: "Siege Workshop", Type: CardTypeRedArmy, ResourceCost: []Resource{ResourceWood, ResourceWood, ResourceWood, ResourceGlass}, BuyWithLink: LinkTarget, Effect: armyEffect(2)},
	{Name: "Circus", Type: CardTypeRedArmy, ResourceCost: []Resource{ResourceClay, ResourceClay, ResourceStone, ResourceStone}, BuyWithLink: LinkHelmet, Effect: armyEffect(2)},
	{Name: "Academy", Type: CardTypeGreenScience, ResourceCost: []Resource{ResourceStone, ResourceWood, ResourceGlass, ResourceGlass}, Science: ScienceSunDial, VictoryPoints: 3},
	{Name: "Study", Type: CardTypeGreenScience, ResourceCost: []Resource{ResourceWood, ResourceWood, ResourceGlass, ResourcePapyrus}, Science: ScienceSunDial, VictoryPoints: 3},
	{Name: "University", Type: CardTypeGreenScience, ResourceCost: []Resource{ResourceClay, ResourceGlass, ResourcePapyrus}, BuyWithLink: LinkHarp, Science: ScienceGyroscope, VictoryPoints: 2},
	{Name: "Observatory", Type: CardTypeGreenScience, ResourceCost: []Resource{ResourceStone, ResourcePapyrus, ResourcePapyrus}, BuyWithLink: LinkLamp, Science: ScienceGyroscope, VictoryPoints: 2},
	{Name: "Palace", Type: CardTypeBlueVictory, ResourceCost: []Resource{ResourceClay, ResourceStone, ResourceWood, ResourceGlass, ResourceGlass}, VictoryPoints: 7},
	{Name: "Town Hall", Type: CardTypeBlueVictory, ResourceCost: []Resource{ResourceStone, ResourceStone, ResourceStone, ResourceWood, ResourceWood}, VictoryPoints: 7},
	{Name: "Obelisk", Type: CardTypeBlueVictory, ResourceCost: []Resource{ResourceStone, ResourceStone, ResourceGlass}, VictoryPoints: 5},
	{Name: "Gardens", Type: CardTypeBlueVictory, ResourceCost: []Resource{ResourceClay, ResourceClay, ResourceWood, ResourceWood}, BuyWithLink: LinkColumn, VictoryPoints: 6},
	{Name: "Pantheon", Type: CardTypeBlueVictory, ResourceCost: []Resource{ResourceClay, ResourceGlass, ResourcePapyrus, ResourcePapyrus}, BuyWithLink: LinkSun, VictoryPoints: 6},
	{Name: "Senate", Type: CardTypeBlueVictory, ResourceCost: []Resource{ResourceClay, ResourceClay, ResourceStone, ResourcePapyrus}, BuyWithLink: LinkSenate, VictoryPoints: 5},
	{Name: "Chamber of Commerce", Type: CardTypeYellowCommercial, ResourceCost: []Resource{ResourcePapyrus, ResourcePapyrus}, VictoryPoints: 3, Effect: coinsPerCardTypeEffect(3, CardTypeGrayProduction)},
	{Name: "Port", Type: CardTypeYellowCommercial, ResourceCost: []Resource{ResourceWood, ResourceGlass, ResourcePapyrus}, VictoryPoints: 3, Effect: coinsPerCardTypeEffect(2, CardTypeBrownProduction)},
	{Name: "Armory", Type: CardTypeYellowCommercial, ResourceCost: []Resource{ResourceStone, ResourceStone, ResourceGlass}, VictoryPoints: 3, Effect: coinsPerCardTypeEffect(1, CardTypeRedArmy)},
	{Name: "Lighthouse", Type: CardTypeYellowCommercial, ResourceCost: []Resource{ResourceClay, ResourceClay, ResourceGlass}, BuyWithLink: LinkVase, VictoryPoints: 3, Effect: coinsPerCardTypeEffect(1, CardTypeYellowCommercial)},
	{Name: "Arena", Type: CardTypeYellowCommercial, ResourceCost: []Resource{ResourceClay, ResourceStone, ResourceWood}, BuyWithLink: LinkBarrel, VictoryPoints: 3, Effect: coinsPerWonderEffect(2)},
}

// guildCards holds the seven purple cards; three are mixed into the age 3
// deck after the purge.
var guildCards = []Card{
	{Name: "Merchants Guild", Type: CardTypePurpleGuild, ResourceCost: []Resource{ResourceClay, ResourceWood, ResourceGlass, ResourcePapyrus}, VictoryPoints: 1, Guild: GuildVictoryPointsPerCardType, GuildCardTypes: []CardType{CardTypeYellowCommercial}},
	{Name: "Shipowners Guild", Type: CardTypePurpleGuild, ResourceCost: []Resource{ResourceClay, ResourceStone, ResourceGlass, ResourcePapyrus}, VictoryPoints: 1, Guild: GuildVictoryPointsPerCardType, GuildCardTypes: []CardType{CardTypeBrownProduction, CardTypeGrayProduction}},
	{Name: "Builders Guild", Type: CardTypePurpleGuild, ResourceCost: []Resource{ResourceStone, ResourceStone, ResourceClay, ResourceWood, ResourceGlass}, VictoryPoints: 2, Guild: GuildVictoryPointsPerWonder},
	{Name: "Magistrates Guild", Type: CardTypePurpleGuild, ResourceCost: []Resource{ResourceWood, ResourceWood, ResourceClay, ResourcePapyrus}, VictoryPoints: 1, Guild: GuildVictoryPointsPerCardType, GuildCardTypes: []CardType{CardTypeBlueVictory}},
	{Name: "Scientists Guild", Type: CardTypePurpleGuild, ResourceCost: []Resource{ResourceClay, ResourceClay, ResourceWood, ResourceWood}, VictoryPoints: 1, Guild: GuildVictoryPointsPerCardType, GuildCardTypes: []CardType{CardTypeGreenScience}},
	{Name: "Moneylenders Guild", Type: CardTypePurpleGuild, ResourceCost: []Resource{ResourceStone, ResourceStone, ResourceWood, ResourceWood}, VictoryPoints: 1, Guild: GuildVictoryPointsPerCoins, GuildCoinsPer: 3},
	{Name: "Tacticians Guild", Type: CardTypePurpleGuild, ResourceCost: []Resource{ResourceStone, ResourceStone, ResourceClay, ResourcePapyrus}, VictoryPoints: 1, Guild: GuildVictoryPointsPerCardType, GuildCardTypes: []CardType{CardTypeRedArmy}},
}

func catalogForAge(age Age) []Card {
	switch age {
	case Age1:
		return age1Cards
	case Age2:
		return age2Cards
	case Age3:
		return age3Cards
	default:
		return nil
	}
}

// allScienceTokens is the ten-member token catalogue.
var allScienceTokens = []ScienceToken{
	TokenAgriculture,
	TokenArchitecture,
	TokenEconomy,
	TokenLaw,
	TokenMasonry,
	TokenMathematics,
	TokenPhilosophy,
	TokenStrategy,
	TokenTheology,
	TokenUrbanism,
}
