package models

// Category is one entry of the fixed category set items are filed under.
type Category struct {
	ID   string
	Name string
	Icon string
}

// Categories is the fixed, ordered category set.
var Categories = []Category{
	{ID: "electronics", Name: "Electronics", Icon: "📱"},
	{ID: "clothing", Name: "Clothing", Icon: "👕"},
	{ID: "accessories", Name: "Accessories", Icon: "👜"},
	{ID: "books", Name: "Books", Icon: "📚"},
	{ID: "keys", Name: "Keys", Icon: "🔑"},
	{ID: "jewelry", Name: "Jewelry", Icon: "💍"},
	{ID: "sports", Name: "Sports Equipment", Icon: "⚽"},
	{ID: "other", Name: "Other", Icon: "📦"},
}

// CategoryByID returns the category with the given id, or false if unknown.
func CategoryByID(id string) (Category, bool) {
	for _, c := range Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// CategoryName returns the display name for id, falling back to the raw id
// when it is not part of the fixed set.
func CategoryName(id string) string {
	if c, ok := CategoryByID(id); ok {
		return c.Name
	}
	return id
}
