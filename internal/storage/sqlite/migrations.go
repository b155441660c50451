package sqlite

import "database/sql"

// schema creates the tables if they are missing. There is no versioning:
// the two tables are the whole schema.
// users must be created BEFORE payments due to the foreign key constraint.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS payments (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    description TEXT NOT NULL,
    amount REAL NOT NULL,
    payee_id INTEGER NOT NULL,
    is_settled BOOLEAN DEFAULT 0,
    FOREIGN KEY (payee_id) REFERENCES users(id)
);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
