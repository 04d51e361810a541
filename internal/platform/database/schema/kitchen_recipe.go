package schema

// KitchenRecipeTable represents the 'kitchen.recipe' table
type KitchenRecipeTable struct {
	Table        string
	ID           string
	Name         string
	Slug         string
	Instructions string
	Ingredients  string
	CreatedAt    string
	UpdatedAt    string
}

// KitchenRecipe is the schema definition for kitchen.recipe
var KitchenRecipe = KitchenRecipeTable{
	Table:        "kitchen.recipe",
	ID:           "id",
	Name:         "name",
	Slug:         "slug",
	Instructions: "instructions",
	Ingredients:  "ingredients",
	CreatedAt:    "createdat",
	UpdatedAt:    "updatedat",
}

// Columns returns all standard column names
func (t KitchenRecipeTable) Columns() []string {
	return []string{t.ID, t.Name, t.Slug, t.Instructions, t.Ingredients, t.CreatedAt, t.UpdatedAt}
}
