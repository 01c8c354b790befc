package sqlite

// Full current-shape DDL, used by the defensive repair pass on every
// open. IF NOT EXISTS makes each statement a no-op on a healthy schema.
const (
	createCategories = `CREATE TABLE IF NOT EXISTS categories (
    category_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    sort_order INTEGER NOT NULL,
    color TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL
);`

	createItems = `CREATE TABLE IF NOT EXISTS items (
    item_id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    category_id TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL
);`

	createLogs = `CREATE TABLE IF NOT EXISTS logs (
    log_id TEXT PRIMARY KEY,
    item_id TEXT NOT NULL,
    date TEXT NOT NULL,
    note TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL
);`

	createPrefs = `CREATE TABLE IF NOT EXISTS prefs (
    key TEXT PRIMARY KEY,
    theme TEXT NOT NULL,
    density TEXT NOT NULL
);`
)

// Secondary indexes for the queries the stores issue.
const (
	idxCategoriesSort = `CREATE INDEX IF NOT EXISTS idx_categories_sort ON categories(sort_order);`
	idxItemsCategory  = `CREATE INDEX IF NOT EXISTS idx_items_category ON items(category_id);`
	idxLogsItem       = `CREATE INDEX IF NOT EXISTS idx_logs_item ON logs(item_id);`
	idxLogsDate       = `CREATE INDEX IF NOT EXISTS idx_logs_date ON logs(date);`
	idxLogsCreated    = `CREATE INDEX IF NOT EXISTS idx_logs_created ON logs(created_at);`
)

// repairDDL lists every table and index in dependency order for the
// defensive repair pass.
var repairDDL = []string{
	createCategories,
	createItems,
	createLogs,
	createPrefs,
	idxCategoriesSort,
	idxItemsCategory,
	idxLogsItem,
	idxLogsDate,
	idxLogsCreated,
}
