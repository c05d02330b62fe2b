package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// _foreign_keys=on so the cascade FKs behave like the production schema
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_foreign_keys=on", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createPortfolioRootTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE portfolios (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		name TEXT NOT NULL,
		title TEXT NOT NULL,
		subtitle TEXT,
		bio TEXT,
		theme TEXT,
		layout TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createPortfolioChildTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE portfolio_contacts (
		id TEXT PRIMARY KEY,
		portfolio_id TEXT NOT NULL UNIQUE REFERENCES portfolios(id) ON DELETE CASCADE,
		email TEXT,
		phone TEXT,
		location TEXT,
		linkedin_url TEXT,
		github_url TEXT,
		website_url TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE portfolio_projects (
		id TEXT PRIMARY KEY,
		portfolio_id TEXT NOT NULL REFERENCES portfolios(id) ON DELETE CASCADE,
		title TEXT NOT NULL,
		description TEXT,
		technologies TEXT,
		image_url TEXT,
		link_url TEXT,
		is_featured BOOLEAN NOT NULL DEFAULT false,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE portfolio_experiences (
		id TEXT PRIMARY KEY,
		portfolio_id TEXT NOT NULL REFERENCES portfolios(id) ON DELETE CASCADE,
		company TEXT NOT NULL,
		role TEXT NOT NULL,
		duration TEXT,
		description TEXT,
		achievements TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE portfolio_skills (
		id TEXT PRIMARY KEY,
		portfolio_id TEXT NOT NULL REFERENCES portfolios(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		level INTEGER NOT NULL DEFAULT 0,
		category TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE portfolio_services (
		id TEXT PRIMARY KEY,
		portfolio_id TEXT NOT NULL REFERENCES portfolios(id) ON DELETE CASCADE,
		title TEXT NOT NULL,
		description TEXT,
		price TEXT,
		icon TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE portfolio_testimonials (
		id TEXT PRIMARY KEY,
		portfolio_id TEXT NOT NULL REFERENCES portfolios(id) ON DELETE CASCADE,
		author TEXT NOT NULL,
		company TEXT,
		content TEXT,
		avatar_url TEXT,
		rating INTEGER NOT NULL DEFAULT 5,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE portfolio_team_members (
		id TEXT PRIMARY KEY,
		portfolio_id TEXT NOT NULL REFERENCES portfolios(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		role TEXT,
		bio TEXT,
		email TEXT,
		avatar_url TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE team_member_social_links (
		id TEXT PRIMARY KEY,
		team_member_id TEXT NOT NULL REFERENCES portfolio_team_members(id) ON DELETE CASCADE,
		platform TEXT NOT NULL,
		url TEXT NOT NULL,
		icon TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE portfolio_social_links (
		id TEXT PRIMARY KEY,
		portfolio_id TEXT NOT NULL REFERENCES portfolios(id) ON DELETE CASCADE,
		platform TEXT NOT NULL,
		url TEXT NOT NULL,
		icon TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createPortfolioTables(t *testing.T, db *gorm.DB) {
	createPortfolioRootTable(t, db)
	createPortfolioChildTables(t, db)
}

func createClientTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE clients (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		company TEXT NOT NULL,
		contact_name TEXT NOT NULL,
		email TEXT NOT NULL,
		phone TEXT,
		address TEXT,
		status TEXT NOT NULL DEFAULT 'lead',
		notes TEXT,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
}

func createInvoiceTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE invoices (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		client_id TEXT NOT NULL,
		number TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'draft',
		currency TEXT NOT NULL DEFAULT 'USD',
		issue_date DATETIME NOT NULL,
		due_date DATETIME NOT NULL,
		notes TEXT,
		total TEXT NOT NULL DEFAULT '0',
		amount_paid TEXT NOT NULL DEFAULT '0',
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE invoice_items (
		id TEXT PRIMARY KEY,
		invoice_id TEXT NOT NULL REFERENCES invoices(id) ON DELETE CASCADE,
		description TEXT NOT NULL,
		quantity TEXT NOT NULL DEFAULT '1',
		unit_price TEXT NOT NULL DEFAULT '0',
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE payments (
		id TEXT PRIMARY KEY,
		invoice_id TEXT NOT NULL,
		amount TEXT NOT NULL,
		method TEXT NOT NULL,
		reference TEXT,
		paid_at DATETIME NOT NULL,
		created_at DATETIME
	);`)
}

func createTaskTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE tasks (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		client_id TEXT,
		title TEXT NOT NULL,
		notes TEXT,
		status TEXT NOT NULL DEFAULT 'todo',
		priority TEXT NOT NULL DEFAULT 'medium',
		due_date DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createGoalTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE goals (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		title TEXT NOT NULL,
		target_value REAL NOT NULL DEFAULT 0,
		current_value REAL NOT NULL DEFAULT 0,
		unit TEXT,
		deadline DATETIME,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createEventTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE events (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		client_id TEXT,
		title TEXT NOT NULL,
		location TEXT,
		starts_at DATETIME NOT NULL,
		ends_at DATETIME NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}
