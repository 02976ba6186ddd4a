package pokeapitest

type fixture struct {
	endpoint string
	id       int
	name     string
	body     string
}

// Fixture pokemon beyond pikachu exercise the failure paths of record construction.
const (
	// GhostmonID references a missing ability, a missing species and a hidden static.
	GhostmonID = 9001
	// BrokemonID lacks the speed stat.
	BrokemonID = 9002
	// DoubleHiddenID lists static and then lightning-rod, both hidden.
	DoubleHiddenID = 9003
	// FlakymonID references an ability the server answers with 500.
	FlakymonID = 9004
)

var fixtures = []fixture{
	{"pokemon", 25, "pikachu", `{
		"id": 25,
		"name": "pikachu",
		"base_experience": 112,
		"height": 4,
		"weight": 60,
		"is_default": true,
		"abilities": [
			{"is_hidden": false, "slot": 1, "ability": {"name": "static", "url": "https://pokeapi.co/api/v2/ability/9/"}},
			{"is_hidden": true, "slot": 3, "ability": {"name": "lightning-rod", "url": "https://pokeapi.co/api/v2/ability/31/"}}
		],
		"species": {"name": "pikachu", "url": "https://pokeapi.co/api/v2/pokemon-species/25/"},
		"stats": [
			{"base_stat": 35, "effort": 0, "stat": {"name": "hp"}},
			{"base_stat": 55, "effort": 0, "stat": {"name": "attack"}},
			{"base_stat": 40, "effort": 0, "stat": {"name": "defense"}},
			{"base_stat": 50, "effort": 0, "stat": {"name": "special-attack"}},
			{"base_stat": 50, "effort": 0, "stat": {"name": "special-defense"}},
			{"base_stat": 90, "effort": 2, "stat": {"name": "speed"}}
		],
		"types": [{"slot": 1, "type": {"name": "electric", "url": "https://pokeapi.co/api/v2/type/13/"}}],
		"sprites": {
			"front_default": "https://example.invalid/sprites/25.png",
			"other": {"official-artwork": {"front_default": "https://example.invalid/artwork/25.png", "front_shiny": "https://example.invalid/artwork/shiny/25.png"}}
		}
	}`},
	{"pokemon", GhostmonID, "ghostmon", `{
		"id": 9001,
		"name": "ghostmon",
		"abilities": [
			{"is_hidden": false, "slot": 1, "ability": {"name": "no-such-ability"}},
			{"is_hidden": false, "slot": 2, "ability": null},
			{"is_hidden": true, "slot": 3, "ability": {"name": "static"}}
		],
		"species": {"name": "no-such-species"},
		"stats": [
			{"base_stat": 60, "effort": 0, "stat": {"name": "hp"}},
			{"base_stat": 65, "effort": 0, "stat": {"name": "attack"}},
			{"base_stat": 60, "effort": 0, "stat": {"name": "defense"}},
			{"base_stat": 130, "effort": 3, "stat": {"name": "special-attack"}},
			{"base_stat": 75, "effort": 0, "stat": {"name": "special-defense"}},
			{"base_stat": 110, "effort": 0, "stat": {"name": "speed"}}
		],
		"types": [{"slot": 1, "type": {"name": "ghost"}}, {"slot": 2, "type": {"name": "poison"}}],
		"sprites": null
	}`},
	{"pokemon", BrokemonID, "brokemon", `{
		"id": 9002,
		"name": "brokemon",
		"abilities": [],
		"stats": [
			{"base_stat": 10, "effort": 1, "stat": {"name": "hp"}},
			{"base_stat": 10, "effort": 0, "stat": {"name": "attack"}},
			{"base_stat": 10, "effort": 0, "stat": {"name": "defense"}},
			{"base_stat": 10, "effort": 0, "stat": {"name": "special-attack"}},
			{"base_stat": 10, "effort": 0, "stat": {"name": "special-defense"}}
		],
		"types": [{"slot": 1, "type": {"name": "normal"}}]
	}`},
	{"pokemon", DoubleHiddenID, "doublehidden", `{
		"id": 9003,
		"name": "doublehidden",
		"abilities": [
			{"is_hidden": true, "slot": 3, "ability": {"name": "static"}},
			{"is_hidden": true, "slot": 3, "ability": {"name": "lightning-rod"}}
		],
		"stats": [
			{"base_stat": 1, "effort": 0, "stat": {"name": "hp"}},
			{"base_stat": 1, "effort": 0, "stat": {"name": "attack"}},
			{"base_stat": 1, "effort": 0, "stat": {"name": "defense"}},
			{"base_stat": 1, "effort": 0, "stat": {"name": "special-attack"}},
			{"base_stat": 1, "effort": 0, "stat": {"name": "special-defense"}},
			{"base_stat": 1, "effort": 0, "stat": {"name": "speed"}}
		],
		"types": [{"slot": 1, "type": {"name": "electric"}}]
	}`},
	{"pokemon", FlakymonID, "flakymon", `{
		"id": 9004,
		"name": "flakymon",
		"abilities": [
			{"is_hidden": false, "slot": 1, "ability": {"name": "flaky-ability"}},
			{"is_hidden": false, "slot": 2, "ability": {"name": "static"}}
		],
		"species": {"name": "pikachu"},
		"stats": [
			{"base_stat": 5, "effort": 0, "stat": {"name": "hp"}},
			{"base_stat": 5, "effort": 0, "stat": {"name": "attack"}},
			{"base_stat": 5, "effort": 0, "stat": {"name": "defense"}},
			{"base_stat": 5, "effort": 0, "stat": {"name": "special-attack"}},
			{"base_stat": 5, "effort": 0, "stat": {"name": "special-defense"}},
			{"base_stat": 5, "effort": 1, "stat": {"name": "speed"}}
		],
		"types": [{"slot": 1, "type": {"name": "electric"}}]
	}`},
	{"pokemon-species", 25, "pikachu", `{
		"id": 25,
		"name": "pikachu",
		"order": 35,
		"capture_rate": 190,
		"is_baby": false,
		"is_legendary": false,
		"is_mythical": false,
		"generation": {"name": "generation-i"},
		"evolves_from_species": {"name": "pichu"},
		"pokedex_numbers": [
			{"entry_number": 25, "pokedex": {"name": "national"}},
			{"entry_number": 25, "pokedex": {"name": "kanto"}}
		],
		"genera": [
			{"genus": "ねずみポケモン", "language": {"name": "ja"}},
			{"genus": "Mouse Pokémon", "language": {"name": "en"}}
		],
		"flavor_text_entries": [
			{"flavor_text": "When several of\nthese POKéMON\ngather, their\felectricity could\nbuild and cause\nlightning storms.", "language": {"name": "en"}, "version": {"name": "red"}},
			{"flavor_text": "It keeps its tail\nraised to monitor\nits surroundings.", "language": {"name": "en"}, "version": {"name": "yellow"}}
		]
	}`},
	{"ability", 9, "static", `{
		"id": 9,
		"name": "static",
		"is_main_series": true,
		"generation": {"name": "generation-iii"},
		"effect_entries": [
			{"effect": "Whenever a move makes contact with this Pokémon, the move's user has a 30% chance of being paralyzed.", "short_effect": "Has a 30% chance of paralyzing attacking Pokémon on contact.", "language": {"name": "en"}}
		],
		"flavor_text_entries": [
			{"flavor_text": "Contact may cause\nparalysis.", "language": {"name": "en"}, "version_group": {"name": "ruby-sapphire"}}
		]
	}`},
	{"ability", 31, "lightning-rod", `{
		"id": 31,
		"name": "lightning-rod",
		"is_main_series": true,
		"generation": {"name": "generation-iii"},
		"effect_entries": [],
		"flavor_text_entries": [
			{"flavor_text": "Draws electrical\nmoves.", "language": {"name": "en"}, "version_group": {"name": "ruby-sapphire"}},
			{"flavor_text": "The Pokémon draws in all Electric-type\nmoves to boost its Sp. Atk stat.", "language": {"name": "en"}, "version_group": {"name": "sword-shield"}}
		]
	}`},
	{"type", 13, "electric", `{
		"id": 13,
		"name": "electric",
		"generation": {"name": "generation-i"},
		"move_damage_class": {"name": "special"},
		"damage_relations": {
			"no_damage_to": [{"name": "ground"}],
			"half_damage_to": [{"name": "grass"}, {"name": "electric"}, {"name": "dragon"}],
			"double_damage_to": [{"name": "water"}, {"name": "flying"}],
			"no_damage_from": [],
			"half_damage_from": [{"name": "flying"}, {"name": "steel"}, {"name": "electric"}],
			"double_damage_from": [{"name": "ground"}]
		}
	}`},
	{"type", 8, "ghost", `{
		"id": 8,
		"name": "ghost",
		"generation": {"name": "generation-i"},
		"move_damage_class": {"name": "physical"},
		"damage_relations": {
			"no_damage_to": [{"name": "normal"}],
			"half_damage_to": [{"name": "dark"}],
			"double_damage_to": [{"name": "psychic"}, {"name": "ghost"}],
			"no_damage_from": [{"name": "normal"}, {"name": "fighting"}],
			"half_damage_from": [{"name": "poison"}, {"name": "bug"}],
			"double_damage_from": [{"name": "ghost"}, {"name": "dark"}]
		}
	}`},
	{"move", 85, "thunderbolt", `{
		"id": 85,
		"name": "thunderbolt",
		"accuracy": 100,
		"effect_chance": 10,
		"pp": 15,
		"priority": 0,
		"power": 90,
		"damage_class": {"name": "special"},
		"generation": {"name": "generation-i"},
		"type": {"name": "electric"},
		"effect_entries": [
			{"effect": "Has a $effect_chance% chance to paralyze the target.", "short_effect": "Has a $effect_chance% chance to paralyze the target.", "language": {"name": "en"}}
		]
	}`},
	{"generation", 1, "generation-i", `{
		"id": 1,
		"name": "generation-i",
		"names": [{"name": "Generation I", "language": {"name": "en"}}],
		"main_region": {"name": "kanto"},
		"version_groups": [{"name": "red-blue"}, {"name": "yellow"}]
	}`},
	{"version-group", 1, "red-blue", `{
		"id": 1,
		"name": "red-blue",
		"order": 1,
		"generation": {"name": "generation-i"},
		"versions": [{"name": "red"}, {"name": "blue"}]
	}`},
	{"version-group", 2, "yellow", `{
		"id": 2,
		"name": "yellow",
		"order": 2,
		"generation": {"name": "generation-i"},
		"versions": [{"name": "yellow"}]
	}`},
	{"version", 1, "red", `{
		"id": 1,
		"name": "red",
		"names": [{"name": "Red", "language": {"name": "en"}}],
		"version_group": {"name": "red-blue"}
	}`},
	{"version", 2, "blue", `{
		"id": 2,
		"name": "blue",
		"names": [{"name": "Blue", "language": {"name": "en"}}],
		"version_group": {"name": "red-blue"}
	}`},
	{"version", 3, "yellow", `{
		"id": 3,
		"name": "yellow",
		"names": [{"name": "Yellow", "language": {"name": "en"}}],
		"version_group": {"name": "yellow"}
	}`},
}

var locationPages = map[string]string{
	"pikachu": `<!DOCTYPE html>
<html lang="en">
<head><title>Pikachu Pokédex</title></head>
<body>
<main>
<h2 id="dex-locations">Where to find Pikachu</h2>
<div class="resp-scroll">
<table class="vitals-table">
<tbody>
<tr>
<th><span class="igame red">Red</span><br><span class="igame blue">Blue</span></th>
<td><small><a href="/location/kanto-viridian-forest">Viridian Forest</a>, <a href="/location/kanto-power-plant">Power Plant</a></small></td>
</tr>
<tr>
<th><span class="igame yellow">Yellow</span></th>
<td><small>Trade/migrate from another game</small></td>
</tr>
<tr>
<th><span class="igame sword">Sword</span><span class="igame shield">Shield</span></th>
<td><small><a href="/location/galar-route-4">Route 4</a></small></td>
</tr>
</tbody>
</table>
</div>
</main>
</body>
</html>`,
	"ghostmon": `<html><body><h2>Nothing here</h2></body></html>`,
}
