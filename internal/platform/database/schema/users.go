package schema

// UsersTable represents the 'users' table
type UsersTable struct {
	Table    string
	Username string
	Password string
	Name     string
	Token    string
}

// Users is the schema definition for users
var Users = UsersTable{
	Table:    "users",
	Username: "username",
	Password: "password",
	Name:     "name",
	Token:    "token",
}

// Columns returns all standard column names
func (t UsersTable) Columns() []string {
	return []string{t.Username, t.Password, t.Name, t.Token}
}
