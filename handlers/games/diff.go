package games

import (
	"slices"

	"api/models"
)

// diffGames returns the field-level changes between two versions of a game,
// keyed by column name. Unchanged fields are omitted so the revision log only
// records what the edit actually touched.
func diffGames(before, after models.Game) map[string]models.FieldChange {
	changes := make(map[string]models.FieldChange)

	compare := func(field string, from, to interface{}) {
		if from != to {
			changes[field] = models.FieldChange{From: from, To: to}
		}
	}

	compare("name", before.Name, after.Name)
	compare("type", before.Type, after.Type)
	compare("difficulty", before.Difficulty, after.Difficulty)
	compare("min_players", before.MinPlayers, after.MinPlayers)
	compare("max_players", before.MaxPlayers, after.MaxPlayers)
	compare("min_age", before.MinAge, after.MinAge)
	compare("min_duration", before.MinDuration, after.MinDuration)
	compare("explanation", before.Explanation, after.Explanation)
	compare("rules", before.Rules, after.Rules)
	compare("score_calculation", before.ScoreCalculation, after.ScoreCalculation)
	compare("example", before.Example, after.Example)
	compare("drinking_rules", before.DrinkingRules, after.DrinkingRules)
	compare("needs_update", before.NeedsUpdate, after.NeedsUpdate)

	if !slices.Equal(before.Materials, after.Materials) {
		changes["materials"] = models.FieldChange{From: []string(before.Materials), To: []string(after.Materials)}
	}
	if !slices.Equal(before.Expansions, after.Expansions) {
		changes["expansions"] = models.FieldChange{From: []string(before.Expansions), To: []string(after.Expansions)}
	}

	return changes
}
