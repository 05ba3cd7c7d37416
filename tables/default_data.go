package tables

// defaultTableJSON is the built-in fixture table backing Default(). It covers
// enough of the subset named in spec.md §1 (Non-goals: "the core is specified
// over a stated subset, extensible by table") to drive the package's own
// tests and to let an integrator exercise the engine before wiring a real
// dataset.
var defaultTableJSON = []byte(`{
  "type_chart": {},
  "moves": [
    {"id": "tackle", "base_power": 40, "type": "Normal", "category": "Physical", "accuracy": 1.0, "priority": 0, "max_pp": 35},
    {"id": "ember", "base_power": 40, "type": "Fire", "category": "Special", "accuracy": 1.0, "priority": 0, "max_pp": 25},
    {"id": "watergun", "base_power": 40, "type": "Water", "category": "Special", "accuracy": 1.0, "priority": 0, "max_pp": 25},
    {"id": "vinewhip", "base_power": 45, "type": "Grass", "category": "Physical", "accuracy": 1.0, "priority": 0, "max_pp": 25},
    {"id": "thunderbolt", "base_power": 90, "type": "Electric", "category": "Special", "accuracy": 1.0, "priority": 0, "max_pp": 15},
    {"id": "earthquake", "base_power": 100, "type": "Ground", "category": "Physical", "accuracy": 1.0, "priority": 0, "max_pp": 10},
    {"id": "crosschop", "base_power": 100, "type": "Fighting", "category": "Physical", "accuracy": 0.8, "priority": 0, "max_pp": 5},
    {"id": "stoneedge", "base_power": 100, "type": "Rock", "category": "Physical", "accuracy": 0.8, "priority": 0, "max_pp": 5},
    {"id": "willowisp", "base_power": 0, "type": "Fire", "category": "Status", "accuracy": 0.85, "priority": 0, "max_pp": 15, "status_inflict": "brn"},
    {"id": "toxic", "base_power": 0, "type": "Poison", "category": "Status", "accuracy": 0.9, "priority": 0, "max_pp": 10, "status_inflict": "tox"},
    {"id": "swordsdance", "base_power": 0, "type": "Normal", "category": "Status", "accuracy": 1.0, "priority": 0, "max_pp": 20, "self_boosts": {"atk": 2}},
    {"id": "recover", "base_power": 0, "type": "Normal", "category": "Status", "accuracy": 1.0, "priority": 0, "max_pp": 10},
    {"id": "quickattack", "base_power": 40, "type": "Normal", "category": "Physical", "accuracy": 1.0, "priority": 1, "max_pp": 30},
    {"id": "hyperbeam", "base_power": 150, "type": "Normal", "category": "Special", "accuracy": 0.9, "priority": 0, "max_pp": 5, "flags": ["recharge"]}
  ],
  "species": [
    {"id": "bulbasaur", "name": "Bulbasaur", "types": ["Grass", "Poison"], "dex_number": 1,
     "base_stats": {"hp": 45, "atk": 49, "def": 49, "spa": 65, "spd": 65, "spe": 45},
     "learnset": [
       {"move_id": "vinewhip", "base_power": 45, "type": "Grass", "category": "Physical"},
       {"move_id": "tackle", "base_power": 40, "type": "Normal", "category": "Physical"},
       {"move_id": "toxic", "base_power": 0, "type": "Poison", "category": "Status"},
       {"move_id": "swordsdance", "base_power": 0, "type": "Normal", "category": "Status"}
     ],
     "evolves_to": ["ivysaur"]},
    {"id": "ivysaur", "name": "Ivysaur", "types": ["Grass", "Poison"], "dex_number": 2,
     "base_stats": {"hp": 60, "atk": 62, "def": 63, "spa": 80, "spd": 80, "spe": 60},
     "learnset": [{"move_id": "vinewhip", "base_power": 45, "type": "Grass", "category": "Physical"}],
     "evolves_to": ["venusaur"]},
    {"id": "venusaur", "name": "Venusaur", "types": ["Grass", "Poison"], "dex_number": 3,
     "base_stats": {"hp": 80, "atk": 82, "def": 83, "spa": 100, "spd": 100, "spe": 80},
     "learnset": [{"move_id": "vinewhip", "base_power": 45, "type": "Grass", "category": "Physical"}]},
    {"id": "charmander", "name": "Charmander", "types": ["Fire"], "dex_number": 4,
     "base_stats": {"hp": 39, "atk": 52, "def": 43, "spa": 60, "spd": 50, "spe": 65},
     "learnset": [
       {"move_id": "ember", "base_power": 40, "type": "Fire", "category": "Special"},
       {"move_id": "tackle", "base_power": 40, "type": "Normal", "category": "Physical"}
     ],
     "evolves_to": ["charmeleon"]},
    {"id": "charmeleon", "name": "Charmeleon", "types": ["Fire"], "dex_number": 5,
     "base_stats": {"hp": 58, "atk": 64, "def": 58, "spa": 80, "spd": 65, "spe": 80},
     "learnset": [{"move_id": "ember", "base_power": 40, "type": "Fire", "category": "Special"}],
     "evolves_to": ["charizard"]},
    {"id": "charizard", "name": "Charizard", "types": ["Fire", "Flying"], "dex_number": 6,
     "base_stats": {"hp": 78, "atk": 84, "def": 78, "spa": 109, "spd": 85, "spe": 100},
     "learnset": [
       {"move_id": "ember", "base_power": 40, "type": "Fire", "category": "Special"},
       {"move_id": "earthquake", "base_power": 100, "type": "Ground", "category": "Physical"}
     ]},
    {"id": "squirtle", "name": "Squirtle", "types": ["Water"], "dex_number": 7,
     "base_stats": {"hp": 44, "atk": 48, "def": 65, "spa": 50, "spd": 64, "spe": 43},
     "learnset": [{"move_id": "watergun", "base_power": 40, "type": "Water", "category": "Special"}],
     "evolves_to": ["wartortle"]},
    {"id": "wartortle", "name": "Wartortle", "types": ["Water"], "dex_number": 8,
     "base_stats": {"hp": 59, "atk": 63, "def": 80, "spa": 65, "spd": 80, "spe": 58},
     "learnset": [{"move_id": "watergun", "base_power": 40, "type": "Water", "category": "Special"}],
     "evolves_to": ["blastoise"]},
    {"id": "blastoise", "name": "Blastoise", "types": ["Water"], "dex_number": 9,
     "base_stats": {"hp": 79, "atk": 83, "def": 100, "spa": 85, "spd": 105, "spe": 78},
     "learnset": [
       {"move_id": "watergun", "base_power": 40, "type": "Water", "category": "Special"},
       {"move_id": "earthquake", "base_power": 100, "type": "Ground", "category": "Physical"}
     ]},
    {"id": "pikachu", "name": "Pikachu", "types": ["Electric"], "dex_number": 25,
     "base_stats": {"hp": 35, "atk": 55, "def": 40, "spa": 50, "spd": 50, "spe": 90},
     "learnset": [
       {"move_id": "thunderbolt", "base_power": 90, "type": "Electric", "category": "Special"},
       {"move_id": "quickattack", "base_power": 40, "type": "Normal", "category": "Physical"}
     ]},
    {"id": "geodude", "name": "Geodude", "types": ["Rock", "Ground"], "dex_number": 74,
     "base_stats": {"hp": 40, "atk": 80, "def": 100, "spa": 30, "spd": 30, "spe": 20},
     "learnset": [
       {"move_id": "stoneedge", "base_power": 100, "type": "Rock", "category": "Physical"},
       {"move_id": "earthquake", "base_power": 100, "type": "Ground", "category": "Physical"}
     ],
     "evolves_to": ["graveler"]},
    {"id": "graveler", "name": "Graveler", "types": ["Rock", "Ground"], "dex_number": 75,
     "base_stats": {"hp": 55, "atk": 95, "def": 115, "spa": 45, "spd": 45, "spe": 35},
     "learnset": [{"move_id": "earthquake", "base_power": 100, "type": "Ground", "category": "Physical"}]},
    {"id": "machop", "name": "Machop", "types": ["Fighting"], "dex_number": 66,
     "base_stats": {"hp": 70, "atk": 80, "def": 50, "spa": 35, "spd": 35, "spe": 35},
     "learnset": [{"move_id": "crosschop", "base_power": 100, "type": "Fighting", "category": "Physical"}],
     "evolves_to": ["machoke"]},
    {"id": "machoke", "name": "Machoke", "types": ["Fighting"], "dex_number": 67,
     "base_stats": {"hp": 80, "atk": 100, "def": 70, "spa": 50, "spd": 60, "spe": 45},
     "learnset": [{"move_id": "crosschop", "base_power": 100, "type": "Fighting", "category": "Physical"}]},
    {"id": "gastly", "name": "Gastly", "types": ["Ghost", "Poison"], "dex_number": 92,
     "base_stats": {"hp": 30, "atk": 35, "def": 30, "spa": 100, "spd": 35, "spe": 80},
     "learnset": [{"move_id": "toxic", "base_power": 0, "type": "Poison", "category": "Status"}],
     "evolves_to": ["haunter"]},
    {"id": "haunter", "name": "Haunter", "types": ["Ghost", "Poison"], "dex_number": 93,
     "base_stats": {"hp": 45, "atk": 50, "def": 45, "spa": 115, "spd": 55, "spe": 95},
     "learnset": [{"move_id": "toxic", "base_power": 0, "type": "Poison", "category": "Status"}]}
  ]
}`)
