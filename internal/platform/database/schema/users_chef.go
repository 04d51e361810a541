package schema

// UserChefTable represents the 'users.chef' table
type UserChefTable struct {
	Table        string
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    string
}

// UserChef is the schema definition for users.chef
var UserChef = UserChefTable{
	Table:        "users.chef",
	ID:           "id",
	Username:     "username",
	PasswordHash: "passwordhash",
	CreatedAt:    "createdat",
}

// Columns returns all standard column names
func (t UserChefTable) Columns() []string {
	return []string{t.ID, t.Username, t.PasswordHash, t.CreatedAt}
}
