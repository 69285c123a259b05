package models

// ✅ Tag categories (fixed, never change at runtime)
const (
	TagCategoryGame         = "game"
	TagCategoryLevel        = "level"
	TagCategoryStyle        = "style"
	TagCategoryConstraints  = "constraints"
	TagCategoryAvailability = "availability"
)

// TagVocabulary maps each category to its valid tag strings
var TagVocabulary = map[string][]string{
	TagCategoryGame:         {"Valorant", "R6Siege", "Minecraft", "Fortnite", "LoL"},
	TagCategoryLevel:        {"Fer", "Or", "Diamant", "Immortel", "Noob", "Chill"},
	TagCategoryStyle:        {"Tryhard", "Détendu", "Ranked", "Fun", "PasDeTilt"},
	TagCategoryConstraints:  {"MicroObligatoire", "SansMicro", "FR", "18ans+", "Lycéen"},
	TagCategoryAvailability: {"DispoMaintenant", "WeekendOnly", "Soirée"},
}

// tagCategories is the reverse index: tag → category
var tagCategories = map[string]string{}

func init() {
	for category, tags := range TagVocabulary {
		for _, tag := range tags {
			tagCategories[tag] = category
		}
	}
}

// CategoryOf returns the category a tag belongs to. Tags outside the
// vocabulary have no category.
func CategoryOf(tag string) (string, bool) {
	category, ok := tagCategories[tag]
	return category, ok
}

// NormalizeTags collapses duplicates and drops empty strings, preserving the
// first-seen order of the input.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		normalized = append(normalized, tag)
	}
	return normalized
}
