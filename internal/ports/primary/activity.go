package primary

import "context"

// ActivityEntry is one audit-trail line.
type ActivityEntry struct {
	ID        int64
	Actor     string
	Action    string
	EntityID  string
	Detail    string
	CreatedAt string
}

// ActivityService is the primary port for the activity log.
type ActivityService interface {
	// Recent returns the newest entries, newest first.
	Recent(ctx context.Context, limit int) ([]*ActivityEntry, error)
}

// TransferSummary reports how many rows an import or export touched.
type TransferSummary struct {
	Pilots   int
	Drones   int
	Missions int
}

// TransferService is the primary port for CSV import/export against the
// store.
type TransferService interface {
	// ImportCSV upserts pilots, drones, and missions from CSV files in
	// dir. Missing files are skipped, not errors.
	ImportCSV(ctx context.Context, dir string) (*TransferSummary, error)

	// ExportCSV writes the store's pilots, drones, and missions as CSV
	// files into dir.
	ExportCSV(ctx context.Context, dir string) (*TransferSummary, error)
}
