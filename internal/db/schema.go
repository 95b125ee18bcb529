package db

// SchemaSQL is the complete schema for fresh skyops installs.
//
// This is the single source of truth for the database schema. All repository
// tests load it through GetSchemaSQL(), so a repository referencing a column
// that does not exist here fails immediately with "no such column".
//
// Status and priority columns are deliberately unconstrained TEXT: rosters
// imported from external CSVs may carry unrecognized values, and those rows
// must load rather than fail. Unrecognized values simply never match any
// canonical status comparison.
const SchemaSQL = `
-- Pilot roster
CREATE TABLE IF NOT EXISTS pilots (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	skills TEXT NOT NULL DEFAULT '',
	certifications TEXT NOT NULL DEFAULT '',
	location TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL DEFAULT 'Available',
	current_assignment TEXT NOT NULL DEFAULT '',
	available_from TEXT NOT NULL DEFAULT '',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Drone fleet
CREATE TABLE IF NOT EXISTS drones (
	id TEXT PRIMARY KEY,
	model TEXT NOT NULL DEFAULT '',
	capabilities TEXT NOT NULL DEFAULT '',
	status TEXT NOT NULL DEFAULT 'Available',
	location TEXT NOT NULL DEFAULT '',
	current_assignment TEXT NOT NULL DEFAULT '',
	maintenance_due TEXT NOT NULL DEFAULT '',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Missions (projects)
CREATE TABLE IF NOT EXISTS missions (
	id TEXT PRIMARY KEY,
	client TEXT NOT NULL DEFAULT '',
	location TEXT NOT NULL DEFAULT '',
	required_skills TEXT NOT NULL DEFAULT '',
	required_certs TEXT NOT NULL DEFAULT '',
	start_date TEXT NOT NULL DEFAULT '',
	end_date TEXT NOT NULL DEFAULT '',
	priority TEXT NOT NULL DEFAULT 'Standard',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Activity log (audit trail for mutating operations)
CREATE TABLE IF NOT EXISTS activity_log (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	actor TEXT NOT NULL DEFAULT '',
	action TEXT NOT NULL,
	entity_id TEXT NOT NULL DEFAULT '',
	detail TEXT NOT NULL DEFAULT '',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Schema version bookkeeping
CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// GetSchemaSQL returns the authoritative schema SQL for use by tests and
// schema initialization.
func GetSchemaSQL() string {
	return SchemaSQL
}
