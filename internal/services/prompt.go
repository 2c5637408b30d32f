package services

import (
	"fmt"
	"synthink/internal/models"
)

const promptTemplate = `
Write a poem that strictly adheres to the following constraints.

THEME:
"%s"
The poem must clearly and consistently explore this theme. Do not introduce unrelated imagery or concepts.

TONE:
%s
Maintain this emotional tone throughout the poem. Avoid tonal shifts unless they reinforce the chosen tone.

STYLE:
%s
Write in a manner consistent with this poetic style, including its typical voice, imagery, and structure.

LENGTH:
%s
Keep the poem concise and proportional to this length.

FORMAL CONSTRAINTS:
- No title
- No explanations or commentary
- Output only the poem text

The poem should feel deliberate, cohesive, and emotionally focused.
`

// BuildPrompt renders the instruction sent to the provider. The configuration
// must already be resolved; blank fields are rendered as they are.
func BuildPrompt(c models.PoemConfiguration) string {
	return fmt.Sprintf(promptTemplate, c.Theme, c.Tone, c.Style, c.Length)
}
