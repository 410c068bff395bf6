// Package sqlite implements the SQLite storage layer for boardkit.
// One database file per data directory holds the directory records
// (spaces, sprints, users) and the board records (columns, backlog items,
// sprint backlog items, tasks, placements).
package sqlite

// Schema DDL. The CHECK constraints encode the two structural exclusivity
// rules: a column is scoped to exactly one of space/sprint, and a task is
// backed by exactly one of backlog item/sprint backlog item.
const (
	createSpaces = `CREATE TABLE IF NOT EXISTS spaces (
    space_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    seq_counter INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL
);`

	createSprints = `CREATE TABLE IF NOT EXISTS sprints (
    sprint_id TEXT PRIMARY KEY,
    space_id TEXT NOT NULL,
    name TEXT NOT NULL,
    created_at TEXT NOT NULL,
    FOREIGN KEY (space_id) REFERENCES spaces(space_id)
);`

	createUsers = `CREATE TABLE IF NOT EXISTS users (
    user_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    created_at TEXT NOT NULL
);`

	createColumns = `CREATE TABLE IF NOT EXISTS columns (
    column_id TEXT PRIMARY KEY,
    space_id TEXT,
    sprint_id TEXT,
    name TEXT NOT NULL,
    wip_limit INTEGER,
    position INTEGER NOT NULL,
    FOREIGN KEY (space_id) REFERENCES spaces(space_id),
    FOREIGN KEY (sprint_id) REFERENCES sprints(sprint_id),
    CHECK ((space_id IS NULL) <> (sprint_id IS NULL))
);`

	createBacklogItems = `CREATE TABLE IF NOT EXISTS backlog_items (
    backlog_item_id TEXT PRIMARY KEY,
    space_id TEXT NOT NULL,
    sequence_number INTEGER NOT NULL,
    title TEXT NOT NULL,
    description TEXT,
    assignee_id TEXT,
    created_by_id TEXT NOT NULL,
    created_at TEXT NOT NULL,
    FOREIGN KEY (space_id) REFERENCES spaces(space_id),
    UNIQUE (space_id, sequence_number)
);`

	createSprintBacklogItems = `CREATE TABLE IF NOT EXISTS sprint_backlog_items (
    sprint_backlog_item_id TEXT PRIMARY KEY,
    sprint_id TEXT NOT NULL,
    backlog_item_id TEXT NOT NULL UNIQUE,
    FOREIGN KEY (sprint_id) REFERENCES sprints(sprint_id),
    FOREIGN KEY (backlog_item_id) REFERENCES backlog_items(backlog_item_id)
);`

	createTasks = `CREATE TABLE IF NOT EXISTS tasks (
    task_id TEXT PRIMARY KEY,
    backlog_item_id TEXT UNIQUE,
    sprint_backlog_item_id TEXT UNIQUE,
    assignee_id TEXT,
    FOREIGN KEY (backlog_item_id) REFERENCES backlog_items(backlog_item_id),
    FOREIGN KEY (sprint_backlog_item_id) REFERENCES sprint_backlog_items(sprint_backlog_item_id),
    CHECK ((backlog_item_id IS NULL) <> (sprint_backlog_item_id IS NULL))
);`

	// task_id is the primary key: a task is placed in at most one column.
	// Deleting a task cascades to its placement.
	createColumnTasks = `CREATE TABLE IF NOT EXISTS column_tasks (
    task_id TEXT PRIMARY KEY,
    column_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    FOREIGN KEY (task_id) REFERENCES tasks(task_id) ON DELETE CASCADE,
    FOREIGN KEY (column_id) REFERENCES columns(column_id)
);`
)

// Index DDL. The partial unique indexes on column positions double as the
// guard against concurrent default-column seeding: the second seeder hits
// a constraint violation and re-reads instead of double-seeding.
const (
	idxColumnsSpacePos = `CREATE UNIQUE INDEX IF NOT EXISTS idx_columns_space_pos
    ON columns(space_id, position) WHERE space_id IS NOT NULL;`
	idxColumnsSprintPos = `CREATE UNIQUE INDEX IF NOT EXISTS idx_columns_sprint_pos
    ON columns(sprint_id, position) WHERE sprint_id IS NOT NULL;`
	idxColumnTasksColumn = `CREATE UNIQUE INDEX IF NOT EXISTS idx_column_tasks_column
    ON column_tasks(column_id, position);`
	idxBacklogItemsSpace = `CREATE INDEX IF NOT EXISTS idx_backlog_items_space
    ON backlog_items(space_id, sequence_number);`
	idxSprintBacklogSprint = `CREATE INDEX IF NOT EXISTS idx_sprint_backlog_sprint
    ON sprint_backlog_items(sprint_id);`
	idxSprintsSpace = `CREATE INDEX IF NOT EXISTS idx_sprints_space
    ON sprints(space_id);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createSpaces,
	createSprints,
	createUsers,
	createColumns,
	createBacklogItems,
	createSprintBacklogItems,
	createTasks,
	createColumnTasks,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxColumnsSpacePos,
	idxColumnsSprintPos,
	idxColumnTasksColumn,
	idxBacklogItemsSpace,
	idxSprintBacklogSprint,
	idxSprintsSpace,
}
