// Package news serves articles: persistent store, file cache, static
// fallback bundle, and the read-path aggregator that chains them.
package news

// Category is one fixed topic bucket used to partition articles.
type Category struct {
	Slug        string `json:"slug"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

// Categories is the closed category set. It is configuration in spirit:
// code elsewhere never hardcodes a slug outside of tests.
var Categories = []Category{
	{Slug: "global", Label: "Global", Description: "World news and international affairs"},
	{Slug: "sports", Label: "Sports", Description: "Latest in sports worldwide"},
	{Slug: "entertainment", Label: "Entertainment", Description: "Film, music, culture and media"},
	{Slug: "technology", Label: "Technology", Description: "Tech industry, science and innovation"},
	{Slug: "business", Label: "Business", Description: "Markets, economy and corporate news"},
}

// ValidCategory reports whether slug names a configured category.
func ValidCategory(slug string) bool {
	_, ok := LookupCategory(slug)
	return ok
}

// LookupCategory returns the category for a slug.
func LookupCategory(slug string) (Category, bool) {
	for _, c := range Categories {
		if c.Slug == slug {
			return c, true
		}
	}
	return Category{}, false
}
