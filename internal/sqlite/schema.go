// Package sqlite exports the yada catalog and daily logs to a SQLite
// database so they can be queried with SQL. The text files remain the
// source of truth; the database is rebuilt from scratch on every export.
package sqlite

// Schema DDL for the export tables.
const (
	createFoods = `CREATE TABLE foods (
    food_id TEXT PRIMARY KEY,
    kind TEXT NOT NULL,
    calories REAL,
    calories_per_serving REAL
);`

	createFoodKeywords = `CREATE TABLE food_keywords (
    food_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    keyword TEXT NOT NULL,
    PRIMARY KEY (food_id, position),
    FOREIGN KEY (food_id) REFERENCES foods(food_id)
);`

	createFoodComponents = `CREATE TABLE food_components (
    food_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    component_id TEXT NOT NULL,
    servings REAL NOT NULL,
    PRIMARY KEY (food_id, position),
    FOREIGN KEY (food_id) REFERENCES foods(food_id),
    FOREIGN KEY (component_id) REFERENCES foods(food_id)
);`

	createLogEntries = `CREATE TABLE log_entries (
    log_date TEXT NOT NULL,
    iso_date TEXT NOT NULL,
    position INTEGER NOT NULL,
    food_id TEXT NOT NULL,
    servings REAL NOT NULL,
    calories REAL,
    PRIMARY KEY (log_date, position),
    FOREIGN KEY (food_id) REFERENCES foods(food_id)
);`
)

// Index DDL for common queries.
const (
	idxFoodKeywordsKeyword = `CREATE INDEX idx_food_keywords_keyword ON food_keywords(keyword);`
	idxFoodComponentsComp  = `CREATE INDEX idx_food_components_component ON food_components(component_id);`
	idxLogEntriesISODate   = `CREATE INDEX idx_log_entries_iso_date ON log_entries(iso_date);`
	idxLogEntriesFood      = `CREATE INDEX idx_log_entries_food ON log_entries(food_id);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createFoods,
	createFoodKeywords,
	createFoodComponents,
	createLogEntries,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxFoodKeywordsKeyword,
	idxFoodComponentsComp,
	idxLogEntriesISODate,
	idxLogEntriesFood,
}
