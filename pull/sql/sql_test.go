package sql_test

import (
	"context"
	dbsql "database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/lguimbarda/min-pull/pull"
	pullsql "github.com/lguimbarda/min-pull/pull/sql"
)

func setupTestDB(t *testing.T) *dbsql.DB {
	db, err := dbsql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`
		CREATE TABLE users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			age INTEGER NOT NULL
		)
	`)
	if err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	_, err = db.Exec(`INSERT INTO users (name, age) VALUES ('Alice', 30), ('Bob', 25), ('Charlie', 35)`)
	if err != nil {
		t.Fatalf("failed to insert data: %v", err)
	}
	return db
}

type User struct {
	ID   int
	Name string
	Age  int
}

func scanUser(rows *dbsql.Rows) (User, error) {
	var u User
	err := rows.Scan(&u.ID, &u.Name, &u.Age)
	return u, err
}

func TestQuery(t *testing.T) {
	db := setupTestDB(t)

	rows, err := pullsql.Query(context.Background(), db,
		"SELECT id, name, age FROM users ORDER BY id", scanUser)
	if err != nil {
		t.Fatalf("query: %v", err)
	}

	users := pull.Slice(pull.New[User](rows))
	if err := rows.Err(); err != nil {
		t.Fatalf("unexpected error after drain: %v", err)
	}

	if len(users) != 3 {
		t.Fatalf("expected 3 users, got %d", len(users))
	}
	if users[0].Name != "Alice" {
		t.Errorf("expected first user 'Alice', got %q", users[0].Name)
	}
	if users[1].Name != "Bob" {
		t.Errorf("expected second user 'Bob', got %q", users[1].Name)
	}
	if users[2].Name != "Charlie" {
		t.Errorf("expected third user 'Charlie', got %q", users[2].Name)
	}
}

func TestQueryWithArgs(t *testing.T) {
	db := setupTestDB(t)

	rows, err := pullsql.Query(context.Background(), db,
		"SELECT id, name, age FROM users WHERE age > ? ORDER BY id", scanUser, 26)
	if err != nil {
		t.Fatalf("query: %v", err)
	}

	users := pull.Slice(pull.New[User](rows))
	if err := rows.Err(); err != nil {
		t.Fatalf("unexpected error after drain: %v", err)
	}

	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].Name != "Alice" || users[1].Name != "Charlie" {
		t.Errorf("got %q and %q, want Alice and Charlie", users[0].Name, users[1].Name)
	}
}

func TestQueryScanErrorStopsIteration(t *testing.T) {
	db := setupTestDB(t)

	rows, err := pullsql.Query(context.Background(), db,
		"SELECT name FROM users ORDER BY id",
		func(r *dbsql.Rows) (User, error) {
			// Deliberately scan one column into three destinations.
			return scanUser(r)
		})
	if err != nil {
		t.Fatalf("query: %v", err)
	}

	users := pull.Slice(pull.New[User](rows))
	if len(users) != 0 {
		t.Fatalf("expected no users, got %d", len(users))
	}
	if rows.Err() == nil {
		t.Fatal("expected a scan error")
	}

	// Exhaustion after a failure is idempotent and Close is a no-op.
	if _, ok := rows.Next(); ok {
		t.Fatal("expected exhaustion after scan error")
	}
	if err := rows.Close(); err != nil {
		t.Fatalf("close after failure: %v", err)
	}
}

func TestQueryComposesWithPipeline(t *testing.T) {
	db := setupTestDB(t)

	rows, err := pullsql.Query(context.Background(), db,
		"SELECT id, name, age FROM users ORDER BY id", scanUser)
	if err != nil {
		t.Fatalf("query: %v", err)
	}

	total := pull.Fold(pull.New[User](rows), 0, func(acc int, u User) int {
		return acc + u.Age
	})
	if err := rows.Err(); err != nil {
		t.Fatalf("unexpected error after drain: %v", err)
	}
	if total != 90 {
		t.Errorf("total age = %d, want 90", total)
	}
}

func TestRowsCloseEarly(t *testing.T) {
	db := setupTestDB(t)

	rows, err := pullsql.Query(context.Background(), db,
		"SELECT id, name, age FROM users ORDER BY id", scanUser)
	if err != nil {
		t.Fatalf("query: %v", err)
	}

	if _, ok := rows.Next(); !ok {
		t.Fatal("expected a first row")
	}
	if err := rows.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if _, ok := rows.Next(); ok {
		t.Fatal("closed rows must be exhausted")
	}
	if err := rows.Err(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
