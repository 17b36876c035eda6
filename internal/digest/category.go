package digest

import "strings"

// Category labels an event row by the kind of play it drives.
type Category string

const (
	CDClassic    Category = "CD Classic"
	CommunityDay Category = "Community Day"
	ShadowRaid   Category = "Shadow Raid"
	RaidMega     Category = "Raid/Mega"
	Spotlight    Category = "Spotlight"
	Research     Category = "Research"
	EventNews    Category = "Event/News"
)

type categoryRule struct {
	keywords []string
	category Category
}

// Order matters: multi-word phrases must win over the substrings they
// contain, so "community day classic" is checked before "community day"
// and "shadow raid" before "raid".
var categoryRules = []categoryRule{
	{[]string{"community day classic"}, CDClassic},
	{[]string{"community day"}, CommunityDay},
	{[]string{"shadow raid"}, ShadowRaid},
	{[]string{"raid", "mega", "legendary"}, RaidMega},
	{[]string{"spotlight hour"}, Spotlight},
	{[]string{"research"}, Research},
}

// Classify maps an event title to its category. Titles matching no rule
// fall back to the generic Event/News bucket.
func Classify(title string) Category {
	t := strings.ToLower(title)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(t, kw) {
				return rule.category
			}
		}
	}
	return EventNews
}
