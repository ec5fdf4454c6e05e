package models

// TerritoryArchetype is the template territories are generated from
type TerritoryArchetype struct {
	Name        string
	Richness    ResourceRates
	SpawnWeight float64
	Eligibility Eligibility
}

// Weight returns the spawn weight
func (a TerritoryArchetype) Weight() float64 { return a.SpawnWeight }

// Catalog holds every static balance table the engines consume.
// Swapping a catalog retunes the game without touching engine logic.
type Catalog struct {
	Baseline      ResourceRates
	Buildings     map[BuildingType]*Building
	Technologies  []*Technology // application order
	Synergies     []Synergy
	Personalities map[Personality]*PersonalityProfile
	Enemies       []EnemyForce
	Events        []RandomEvent
	Archetypes    []TerritoryArchetype
}

// Building returns the definition of a building type
func (c *Catalog) Building(bt BuildingType) (*Building, error) {
	if b, ok := c.Buildings[bt]; ok {
		return b, nil
	}
	return nil, UnknownBuilding(bt)
}

// Technology returns the definition of a technology key
func (c *Catalog) Technology(key string) (*Technology, error) {
	for _, t := range c.Technologies {
		if t.Key == key {
			return t, nil
		}
	}
	return nil, UnknownTechnology(key)
}

// Profile returns the tables of a personality
func (c *Catalog) Profile(p Personality) (*PersonalityProfile, error) {
	if prof, ok := c.Personalities[p]; ok {
		return prof, nil
	}
	return nil, UnknownPersonality(p)
}

// Validate checks that every cross-reference in the catalog resolves
func (c *Catalog) Validate() error {
	for _, bt := range AllBuildingTypes() {
		if _, err := c.Building(bt); err != nil {
			return err
		}
	}
	for _, b := range c.Buildings {
		for _, req := range b.Requires {
			if _, err := c.Building(req.Type); err != nil {
				return err
			}
		}
	}
	for _, t := range c.Technologies {
		for _, pre := range t.Prerequisites {
			if _, err := c.Technology(pre); err != nil {
				return err
			}
		}
		for _, e := range t.Effects {
			if _, ok := e.Field.Stacking(); !ok {
				return &ConfigurationError{Kind: "bonus field", Key: string(e.Field)}
			}
		}
	}
	for _, s := range c.Synergies {
		for _, key := range s.Requires {
			if _, err := c.Technology(key); err != nil {
				return err
			}
		}
	}
	for _, p := range AllPersonalities() {
		prof, err := c.Profile(p)
		if err != nil {
			return err
		}
		for _, e := range prof.BuildingPriorities {
			if _, err := c.Building(BuildingType(e.Key)); err != nil {
				return err
			}
		}
		for _, e := range prof.ResearchPriorities {
			if _, err := c.Technology(e.Key); err != nil {
				return err
			}
		}
	}
	return nil
}

// DefaultCatalog returns the built-in balance tables
func DefaultCatalog() *Catalog {
	return &Catalog{
		Baseline: ResourceRates{
			Gold: 5, Food: 5, Stone: 2, Iron: 2,
			Population: 1, Influence: 1, Mana: 0.5, Energy: 1,
		},
		Buildings:     defaultBuildings(),
		Technologies:  defaultTechnologies(),
		Synergies:     defaultSynergies(),
		Personalities: defaultPersonalities(),
		Enemies:       defaultEnemies(),
		Events:        defaultEvents(),
		Archetypes:    defaultArchetypes(),
	}
}

func defaultBuildings() map[BuildingType]*Building {
	list := []*Building{
		{
			Type: Farm, MaxLevel: 30,
			BaseCost:   ResourceBundle{Gold: 50, Stone: 30},
			CostGrowth: 1.5, BaseTimeSeconds: 300, TimeGrowth: 1.4,
			ProductionPerLvl: ResourceRates{Food: 10},
		},
		{
			Type: Mine, MaxLevel: 30,
			BaseCost:   ResourceBundle{Gold: 80, Food: 20, Stone: 40},
			CostGrowth: 1.5, BaseTimeSeconds: 420, TimeGrowth: 1.4,
			ProductionPerLvl: ResourceRates{Iron: 6, Gold: 2, Food: -1},
		},
		{
			Type: Quarry, MaxLevel: 30,
			BaseCost:   ResourceBundle{Gold: 60, Food: 20},
			CostGrowth: 1.5, BaseTimeSeconds: 360, TimeGrowth: 1.4,
			ProductionPerLvl: ResourceRates{Stone: 8, Food: -1},
		},
		{
			Type: House, MaxLevel: 25,
			BaseCost:   ResourceBundle{Gold: 40, Food: 20, Stone: 40},
			CostGrowth: 1.45, BaseTimeSeconds: 240, TimeGrowth: 1.35,
			ProductionPerLvl: ResourceRates{Population: 2, Gold: 1},
		},
		{
			Type: Marketplace, MaxLevel: 20,
			BaseCost:   ResourceBundle{Gold: 150, Stone: 100, Iron: 20},
			CostGrowth: 1.55, BaseTimeSeconds: 900, TimeGrowth: 1.45,
			ProductionPerLvl: ResourceRates{Gold: 8, Influence: 1, Food: -1},
			Requires:         []BuildingRequirement{{Type: House, MinLevel: 2}},
		},
		{
			Type: Academy, MaxLevel: 20,
			BaseCost:   ResourceBundle{Gold: 200, Stone: 150, Iron: 50},
			CostGrowth: 1.6, BaseTimeSeconds: 1200, TimeGrowth: 1.5,
			ProductionPerLvl: ResourceRates{Mana: 2, Influence: 1, Energy: -1},
			Requires: []BuildingRequirement{
				{Type: House, MinLevel: 3},
				{Type: Marketplace, MinLevel: 1},
			},
		},
		{
			Type: Temple, MaxLevel: 20,
			BaseCost:   ResourceBundle{Gold: 180, Stone: 200},
			CostGrowth: 1.6, BaseTimeSeconds: 1500, TimeGrowth: 1.5,
			ProductionPerLvl: ResourceRates{Influence: 3, Mana: 1, Food: -1},
			Requires:         []BuildingRequirement{{Type: House, MinLevel: 2}},
		},
		{
			Type: Windmill, MaxLevel: 20,
			BaseCost:   ResourceBundle{Gold: 100, Stone: 60, Iron: 30},
			CostGrowth: 1.5, BaseTimeSeconds: 600, TimeGrowth: 1.4,
			ProductionPerLvl: ResourceRates{Energy: 6, Food: 2},
			Requires:         []BuildingRequirement{{Type: Farm, MinLevel: 2}},
		},
		{
			Type: Barracks, MaxLevel: 20,
			BaseCost:   ResourceBundle{Gold: 120, Food: 50, Stone: 80, Iron: 60},
			CostGrowth: 1.55, BaseTimeSeconds: 900, TimeGrowth: 1.45,
			ProductionPerLvl: ResourceRates{Food: -3, Gold: -1},
			Requires:         []BuildingRequirement{{Type: House, MinLevel: 2}},
		},
		{
			Type: Walls, MaxLevel: 20,
			BaseCost:   ResourceBundle{Gold: 100, Stone: 250, Iron: 40},
			CostGrowth: 1.55, BaseTimeSeconds: 1200, TimeGrowth: 1.45,
			ProductionPerLvl: ResourceRates{Gold: -0.5},
			Requires:         []BuildingRequirement{{Type: Barracks, MinLevel: 1}},
		},
	}

	buildings := make(map[BuildingType]*Building, len(list))
	for _, b := range list {
		buildings[b.Type] = b
	}
	return buildings
}

func defaultTechnologies() []*Technology {
	return []*Technology{
		// Tier 1
		{Key: "agriculture", Name: "Agriculture", Tier: 1,
			Cost: ResourceBundle{Gold: 300, Food: 200}, ResearchTimeSeconds: 1800,
			Effects: []Effect{{FarmProduction, 1.2}}},
		{Key: "masonry", Name: "Masonry", Tier: 1,
			Cost: ResourceBundle{Gold: 300, Stone: 250}, ResearchTimeSeconds: 1800,
			Effects: []Effect{{QuarryProduction, 1.2}}},
		{Key: "mining", Name: "Mining", Tier: 1,
			Cost: ResourceBundle{Gold: 350, Stone: 150, Iron: 100}, ResearchTimeSeconds: 1800,
			Effects: []Effect{{MineProduction, 1.2}}},
		{Key: "bronze_working", Name: "Bronze Working", Tier: 1,
			Cost: ResourceBundle{Gold: 400, Iron: 200}, ResearchTimeSeconds: 2400,
			Effects: []Effect{{CombatBonus, 1.1}, {MineProduction, 1.05}}},
		{Key: "writing", Name: "Writing", Tier: 1,
			Cost: ResourceBundle{Gold: 450, Influence: 20}, ResearchTimeSeconds: 2400,
			Effects: []Effect{{AcademyProduction, 1.15}, {ResearchSpeed, 1.1}}},

		// Tier 2
		{Key: "irrigation", Name: "Irrigation", Tier: 2,
			Cost: ResourceBundle{Gold: 900, Food: 600, Stone: 300}, ResearchTimeSeconds: 3600,
			Prerequisites: []string{"agriculture"},
			Effects:       []Effect{{FarmProduction, 1.25}, {PlaguePrevention, 0.9}}},
		{Key: "currency", Name: "Currency", Tier: 2,
			Cost: ResourceBundle{Gold: 1200, Iron: 300}, ResearchTimeSeconds: 3600,
			Prerequisites: []string{"writing", "mining"},
			Effects:       []Effect{{TradeBonus, 0.1}, {MarketProduction, 1.2}}},
		{Key: "construction", Name: "Construction", Tier: 2,
			Cost: ResourceBundle{Gold: 1000, Stone: 800, Iron: 200}, ResearchTimeSeconds: 3600,
			Prerequisites: []string{"masonry"},
			Effects:       []Effect{{ConstructionSpeed, 1.2}, {ConstructionCost, 0.9}}},
		{Key: "iron_working", Name: "Iron Working", Tier: 2,
			Cost: ResourceBundle{Gold: 1000, Iron: 700}, ResearchTimeSeconds: 4200,
			Prerequisites: []string{"bronze_working", "mining"},
			Effects:       []Effect{{CombatBonus, 1.15}, {CombatCasualties, 0.9}}},
		{Key: "philosophy", Name: "Philosophy", Tier: 2,
			Cost: ResourceBundle{Gold: 1100, Influence: 80}, ResearchTimeSeconds: 4200,
			Prerequisites: []string{"writing"},
			Effects:       []Effect{{InfluenceGeneration, 1.15}, {LoyaltyBonus, 5}}},
		{Key: "mysticism", Name: "Mysticism", Tier: 2,
			Cost: ResourceBundle{Gold: 900, Mana: 120}, ResearchTimeSeconds: 4200,
			Prerequisites: []string{"writing"},
			Effects:       []Effect{{TempleProduction, 1.2}, {ManaGeneration, 1.15}}},

		// Tier 3
		{Key: "medicine", Name: "Medicine", Tier: 3,
			Cost: ResourceBundle{Gold: 2500, Food: 1500, Mana: 200}, ResearchTimeSeconds: 7200,
			Prerequisites: []string{"irrigation", "philosophy"},
			Effects:       []Effect{{PopulationGrowth, 1.15}, {PlaguePrevention, 0.8}}},
		{Key: "banking", Name: "Banking", Tier: 3,
			Cost: ResourceBundle{Gold: 3500, Influence: 150}, ResearchTimeSeconds: 7200,
			Prerequisites: []string{"currency"},
			Effects:       []Effect{{TradeBonus, 0.15}, {AllProduction, 1.05}}},
		{Key: "caravans", Name: "Caravans", Tier: 3,
			Cost: ResourceBundle{Gold: 2000, Food: 800, Energy: 200}, ResearchTimeSeconds: 6000,
			Prerequisites: []string{"currency"},
			Effects:       []Effect{{TradeBonus, 0.05}, {UnlockCaravans, 1}}},
		{Key: "fortification", Name: "Fortification", Tier: 3,
			Cost: ResourceBundle{Gold: 2500, Stone: 2000, Iron: 800}, ResearchTimeSeconds: 7200,
			Prerequisites: []string{"construction", "iron_working"},
			Effects:       []Effect{{DefenseBonus, 1.25}, {UpkeepCost, 0.95}}},
		{Key: "tactics", Name: "Tactics", Tier: 3,
			Cost: ResourceBundle{Gold: 2200, Iron: 1200, Influence: 100}, ResearchTimeSeconds: 7200,
			Prerequisites: []string{"iron_working"},
			Effects:       []Effect{{CombatBonus, 1.1}, {CombatCasualties, 0.85}, {UnlockSiege, 1}}},
		{Key: "arcane_wards", Name: "Arcane Wards", Tier: 3,
			Cost: ResourceBundle{Gold: 2000, Mana: 600}, ResearchTimeSeconds: 7800,
			Prerequisites: []string{"mysticism", "philosophy"},
			Effects:       []Effect{{DefenseBonus, 1.1}, {ManaGeneration, 1.1}, {UnlockArcaneWards, 1}}},
		{Key: "windpower", Name: "Windpower", Tier: 3,
			Cost: ResourceBundle{Gold: 1800, Stone: 900, Energy: 150}, ResearchTimeSeconds: 6000,
			Prerequisites: []string{"construction"},
			Effects:       []Effect{{WindmillProduction, 1.3}}},
		{Key: "urban_planning", Name: "Urban Planning", Tier: 3,
			Cost: ResourceBundle{Gold: 2000, Stone: 1500, Population: 50}, ResearchTimeSeconds: 6600,
			Prerequisites: []string{"construction"},
			Effects:       []Effect{{HousingProduction, 1.2}, {PopulationGrowth, 1.1}}},
		{Key: "diplomacy", Name: "Diplomacy", Tier: 3,
			Cost: ResourceBundle{Gold: 2400, Influence: 300}, ResearchTimeSeconds: 7200,
			Prerequisites: []string{"philosophy", "currency"},
			Effects:       []Effect{{InfluenceGeneration, 1.1}, {LoyaltyBonus, 5}, {UnlockDiplomacy, 1}}},
	}
}

func defaultSynergies() []Synergy {
	return []Synergy{
		{
			Name:     "Healthy Harvests",
			Requires: []string{"irrigation", "medicine"},
			Effects:  []Effect{{PopulationGrowth, 1.2}},
		},
		{
			Name:     "Foundations of Civilization",
			Requires: []string{"agriculture", "masonry", "mining", "bronze_working", "writing"},
			Effects:  []Effect{{AllProduction, 1.1}},
		},
		{
			Name:     "Economic Mastery",
			Requires: []string{"currency", "banking", "caravans"},
			Effects:  []Effect{{TradeBonus, 0.1}, {AllProduction, 1.05}},
		},
		{
			Name:     "Art of War",
			Requires: []string{"iron_working", "tactics", "fortification"},
			Effects:  []Effect{{CombatBonus, 1.1}, {CombatCasualties, 0.9}},
		},
		{
			Name:     "Arcane Bastion",
			Requires: []string{"arcane_wards", "fortification"},
			Effects:  []Effect{{DefenseBonus, 1.1}},
		},
	}
}

func defaultPersonalities() map[Personality]*PersonalityProfile {
	return map[Personality]*PersonalityProfile{
		Conservative: {
			Personality: Conservative,
			BuildingPriorities: []PriorityEntry{
				{"farm", 10}, {"house", 9}, {"walls", 8}, {"quarry", 7}, {"windmill", 6},
				{"mine", 5}, {"temple", 4}, {"barracks", 4}, {"marketplace", 3}, {"academy", 2},
			},
			ResearchPriorities: []PriorityEntry{
				{"agriculture", 9}, {"masonry", 8}, {"irrigation", 8}, {"construction", 7},
				{"medicine", 6}, {"fortification", 6}, {"writing", 4},
			},
			ProductionModifier: ResourceRates{
				Gold: 0.95, Food: 1.15, Stone: 1.10, Iron: 1.0,
				Population: 1.05, Influence: 0.95, Mana: 0.9, Energy: 1.0,
			},
		},
		Aggressive: {
			Personality: Aggressive,
			BuildingPriorities: []PriorityEntry{
				{"barracks", 10}, {"mine", 9}, {"walls", 8}, {"farm", 7}, {"quarry", 6},
				{"house", 5}, {"windmill", 4}, {"marketplace", 3}, {"temple", 2}, {"academy", 2},
			},
			ResearchPriorities: []PriorityEntry{
				{"bronze_working", 10}, {"iron_working", 9}, {"tactics", 8}, {"mining", 7},
				{"fortification", 7}, {"masonry", 5},
			},
			ProductionModifier: ResourceRates{
				Gold: 0.95, Food: 0.95, Stone: 1.05, Iron: 1.20,
				Population: 1.0, Influence: 0.90, Mana: 0.95, Energy: 1.05,
			},
		},
		Merchant: {
			Personality: Merchant,
			BuildingPriorities: []PriorityEntry{
				{"marketplace", 10}, {"house", 8}, {"farm", 7}, {"mine", 6}, {"quarry", 5},
				{"windmill", 5}, {"academy", 4}, {"temple", 3}, {"barracks", 2}, {"walls", 2},
			},
			ResearchPriorities: []PriorityEntry{
				{"currency", 10}, {"writing", 9}, {"banking", 9}, {"caravans", 8},
				{"mining", 6}, {"agriculture", 5},
			},
			ProductionModifier: ResourceRates{
				Gold: 1.25, Food: 0.90, Stone: 0.95, Iron: 0.90,
				Population: 1.0, Influence: 1.10, Mana: 0.95, Energy: 1.0,
			},
		},
		Explorer: {
			Personality: Explorer,
			BuildingPriorities: []PriorityEntry{
				{"academy", 10}, {"windmill", 8}, {"temple", 8}, {"house", 7}, {"farm", 6},
				{"quarry", 5}, {"mine", 5}, {"marketplace", 4}, {"barracks", 3}, {"walls", 3},
			},
			ResearchPriorities: []PriorityEntry{
				{"writing", 10}, {"mysticism", 9}, {"philosophy", 8}, {"arcane_wards", 8},
				{"windpower", 7}, {"agriculture", 5},
			},
			ProductionModifier: ResourceRates{
				Gold: 1.0, Food: 0.95, Stone: 0.90, Iron: 0.95,
				Population: 1.0, Influence: 1.05, Mana: 1.20, Energy: 1.10,
			},
		},
	}
}

func defaultEnemies() []EnemyForce {
	return []EnemyForce{
		{
			Name: "Bandit Raiders", Type: Infantry,
			Strength: 30, Toughness: 20, Speed: 40, Cunning: 20,
			ThreatLevel: 1, SpawnWeight: 10, Size: 40,
			VictoryRewards:  ResourceBundle{Gold: 80, Iron: 20},
			DefeatPenalties: ResourceBundle{Gold: 100, Food: 60},
			Eligibility:     Eligibility{MinProvinceLevel: 1, MinThreat: 1, MaxThreat: 3},
		},
		{
			Name: "Wolf Pack", Type: Beast,
			Strength: 25, Toughness: 15, Speed: 60, Cunning: 10,
			ThreatLevel: 1, SpawnWeight: 8, Size: 12,
			VictoryRewards:  ResourceBundle{Food: 60},
			DefeatPenalties: ResourceBundle{Food: 80, Population: 2},
			Eligibility:     Eligibility{MinProvinceLevel: 1, MinThreat: 1, MaxThreat: 4},
		},
		{
			Name: "Goblin Skirmishers", Type: Infantry,
			Strength: 45, Toughness: 25, Speed: 50, Cunning: 35,
			ThreatLevel: 2, SpawnWeight: 7, Size: 60,
			VictoryRewards:  ResourceBundle{Gold: 120, Iron: 30, Stone: 20},
			DefeatPenalties: ResourceBundle{Gold: 150, Iron: 40},
			Eligibility:     Eligibility{MinProvinceLevel: 2, MinThreat: 1, MaxThreat: 5},
		},
		{
			Name: "Horse Nomads", Type: Cavalry,
			Strength: 70, Toughness: 35, Speed: 90, Cunning: 30,
			ThreatLevel: 3, SpawnWeight: 6, Size: 50,
			VictoryRewards:  ResourceBundle{Gold: 200, Food: 100},
			DefeatPenalties: ResourceBundle{Food: 200, Gold: 150},
			Eligibility:     Eligibility{MinProvinceLevel: 3, MinThreat: 2, MaxThreat: 6, MinAttractiveness: 1},
		},
		{
			Name: "Orc Warband", Type: Infantry,
			Strength: 110, Toughness: 80, Speed: 35, Cunning: 20,
			ThreatLevel: 4, SpawnWeight: 5, Size: 120,
			VictoryRewards:  ResourceBundle{Iron: 150, Gold: 200, Stone: 80},
			DefeatPenalties: ResourceBundle{Gold: 300, Stone: 150, Iron: 100, Population: 5},
			Eligibility:     Eligibility{MinProvinceLevel: 4, MinThreat: 3, MaxThreat: 7},
		},
		{
			Name: "Mercenary Company", Type: Cavalry,
			Strength: 140, Toughness: 90, Speed: 70, Cunning: 60,
			ThreatLevel: 5, SpawnWeight: 4, Size: 100,
			VictoryRewards:  ResourceBundle{Gold: 400},
			DefeatPenalties: ResourceBundle{Gold: 500, Influence: 20},
			Eligibility:     Eligibility{MinProvinceLevel: 5, MinThreat: 4, MaxThreat: 8, MinAttractiveness: 2},
		},
		{
			Name: "Siege Engineers", Type: Artillery,
			Strength: 180, Toughness: 60, Speed: 20, Cunning: 50,
			ThreatLevel: 6, SpawnWeight: 3, Size: 80,
			VictoryRewards:  ResourceBundle{Stone: 300, Iron: 200},
			DefeatPenalties: ResourceBundle{Stone: 400, Iron: 200},
			Eligibility:     Eligibility{MinProvinceLevel: 6, MinThreat: 5, MaxThreat: 9},
		},
		{
			Name: "Troll Clan", Type: Beast,
			Strength: 240, Toughness: 200, Speed: 30, Cunning: 15,
			ThreatLevel: 7, SpawnWeight: 3, Size: 30,
			VictoryRewards:  ResourceBundle{Food: 300, Iron: 150},
			DefeatPenalties: ResourceBundle{Food: 400, Population: 10},
			Eligibility:     Eligibility{MinProvinceLevel: 7, MinThreat: 5},
		},
		{
			Name: "Dark Cultists", Type: Arcane,
			Strength: 200, Toughness: 100, Speed: 50, Cunning: 90,
			ThreatLevel: 7, SpawnWeight: 2, Size: 60,
			VictoryRewards:  ResourceBundle{Mana: 150, Influence: 40},
			DefeatPenalties: ResourceBundle{Mana: 200, Influence: 50, Population: 8},
			Eligibility: Eligibility{
				MinProvinceLevel: 6, MinThreat: 5,
				Condition: `Resources["mana"] > 100`,
			},
		},
		{
			Name: "Ancient Dragon", Type: Beast,
			Strength: 600, Toughness: 500, Speed: 80, Cunning: 70,
			ThreatLevel: 10, SpawnWeight: 1, Size: 1,
			VictoryRewards:  ResourceBundle{Gold: 2000, Mana: 300},
			DefeatPenalties: ResourceBundle{Gold: 1500, Food: 800, Population: 20},
			Eligibility:     Eligibility{MinProvinceLevel: 12, MinThreat: 8, MinAttractiveness: 5},
		},
	}
}

func defaultEvents() []RandomEvent {
	return []RandomEvent{
		{
			Name: "Bountiful Harvest", Description: "The fields yield far beyond expectations.",
			Effects: ResourceBundle{Food: 200}, SpawnWeight: 10,
			Eligibility: Eligibility{Condition: `Buildings["farm"] >= 1`},
		},
		{
			Name: "Merchant Caravan", Description: "Traders stop by with exotic goods.",
			Effects: ResourceBundle{Gold: 150, Influence: 5}, SpawnWeight: 8,
		},
		{
			Name: "Plague", Description: "Sickness spreads through the streets.",
			Effects: ResourceBundle{Population: -15, Food: -60}, Plague: true, SpawnWeight: 4,
			Eligibility: Eligibility{MinProvinceLevel: 3},
		},
		{
			Name: "Mine Collapse", Description: "A shaft caves in, burying ore and stone.",
			Effects: ResourceBundle{Iron: -80, Stone: -40}, SpawnWeight: 4,
			Eligibility: Eligibility{Condition: `Buildings["mine"] >= 2`},
		},
		{
			Name: "Festival", Description: "The people celebrate at the treasury's expense.",
			Effects: ResourceBundle{Influence: 20, Gold: -50}, SpawnWeight: 6,
			Eligibility: Eligibility{MinProvinceLevel: 2},
		},
		{
			Name: "Mana Surge", Description: "Ley lines flare with power.",
			Effects: ResourceBundle{Mana: 80}, SpawnWeight: 3,
			Eligibility: Eligibility{Condition: `Buildings["temple"] >= 1 || Buildings["academy"] >= 1`},
		},
		{
			Name: "Storm", Description: "A violent storm batters the province.",
			Effects: ResourceBundle{Energy: -30, Food: -30}, SpawnWeight: 5,
		},
		{
			Name: "Wandering Scholars", Description: "Scholars share their learning.",
			Effects: ResourceBundle{Mana: 20, Influence: 15}, SpawnWeight: 4,
			Eligibility: Eligibility{MinProvinceLevel: 4},
		},
	}
}

func defaultArchetypes() []TerritoryArchetype {
	return []TerritoryArchetype{
		{Name: "Fertile Valley", Richness: ResourceRates{Food: 1.5, Population: 0.3}, SpawnWeight: 10},
		{Name: "Iron Hills", Richness: ResourceRates{Iron: 1.5, Stone: 0.5}, SpawnWeight: 8},
		{Name: "Stone Quarries", Richness: ResourceRates{Stone: 1.5}, SpawnWeight: 8},
		{Name: "Coastal Marsh", Richness: ResourceRates{Food: 0.8, Gold: 0.6}, SpawnWeight: 6},
		{Name: "Windswept Plateau", Richness: ResourceRates{Energy: 1.5, Stone: 0.4}, SpawnWeight: 5},
		{
			Name: "Ancient Ruins", Richness: ResourceRates{Mana: 1.0, Influence: 0.5}, SpawnWeight: 3,
			Eligibility: Eligibility{MinProvinceLevel: 5},
		},
		{
			Name: "Enchanted Forest", Richness: ResourceRates{Mana: 1.5, Food: 0.3}, SpawnWeight: 2,
			Eligibility: Eligibility{MinProvinceLevel: 8},
		},
	}
}
