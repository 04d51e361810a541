package schema

// KitchenIngredientTable represents the 'kitchen.ingredient' table
type KitchenIngredientTable struct {
	Table string
	ID    string
	Name  string
}

// KitchenIngredient is the schema definition for kitchen.ingredient
var KitchenIngredient = KitchenIngredientTable{
	Table: "kitchen.ingredient",
	ID:    "id",
	Name:  "name",
}

// Columns returns all standard column names
func (t KitchenIngredientTable) Columns() []string {
	return []string{t.ID, t.Name}
}
