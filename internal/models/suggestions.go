package models

import "math/rand/v2"

type SuggestionCategory struct {
	ID          Field    `json:"id"`
	Label       string   `json:"label"`
	Placeholder string   `json:"placeholder"`
	Suggestions []string `json:"suggestions"`
}

var Suggestions = []SuggestionCategory{
	{
		ID:          FieldTheme,
		Label:       "Theme",
		Placeholder: "e.g., The ocean at night...",
		Suggestions: []string{
			"Autumn Rain", "Lost Love", "A Coffee Shop", "Starry Night", "Hope",
			"Nature", "Technology", "Love", "Mystery", "Fantasy",
			"Urban Life", "The Cosmos", "Time Travel", "Friendship", "Solitude",
		},
	},
	{
		ID:          FieldTone,
		Label:       "Tone",
		Placeholder: "e.g., Melancholy...",
		Suggestions: []string{
			"Whimsical", "Melancholic", "Optimistic", "Mysterious", "Romantic",
			"Happy", "Sad", "Humorous", "Formal", "Dark",
			"Nostalgic", "Hopeful", "Sarcastic", "Serene", "Dramatic",
		},
	},
	{
		ID:          FieldStyle,
		Label:       "Style",
		Placeholder: "e.g., Haiku...",
		Suggestions: []string{
			"Haiku", "Free Verse", "Sonnet", "Limerick", "Acrostic",
			"Ballad", "Ode", "Elegy", "Narrative", "Villanelle",
			"Couplet", "Epigram", "Tanka", "Blank Verse", "Lyric",
		},
	},
	{
		ID:          FieldLength,
		Label:       "Length",
		Placeholder: "e.g., Short...",
		Suggestions: []string{"Short (4 lines)", "Medium (8 lines)", "Brief", "Haiku length", "Single Stanza"},
	},
}

// Randomize picks one suggestion per category. A nil rng uses the global source.
func Randomize(categories []SuggestionCategory, rng *rand.Rand) PoemConfiguration {
	var conf PoemConfiguration
	for _, category := range categories {
		if len(category.Suggestions) == 0 {
			continue
		}
		var i int
		if rng != nil {
			i = rng.IntN(len(category.Suggestions))
		} else {
			i = rand.IntN(len(category.Suggestions))
		}
		_ = conf.SetField(category.ID, category.Suggestions[i])
	}
	return conf
}
