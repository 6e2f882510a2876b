package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/yada/pkg/types"
)

// Source is the read side of the catalog consumed by Export.
type Source interface {
	All() []*types.Food
	Calories(id string) (float64, error)
	types.Resolver
}

// Ledgers is the read side of the daily logs consumed by Export.
type Ledgers interface {
	Dates() []string
	Log(date string) (*types.DailyLog, error)
}

// Stats counts the rows written by Export.
type Stats struct {
	Foods   int
	Dates   int
	Entries int
}

// Export writes a fresh SQLite database at path holding every food and,
// when logs is non-nil, every ledger entry. An existing file at path is
// replaced. Calories that cannot be computed are stored as NULL.
func Export(ctx context.Context, path string, catalog Source, logs Ledgers) (Stats, error) {
	var stats Stats

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return stats, fmt.Errorf("creating export directory: %w", err)
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return stats, fmt.Errorf("removing old export: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return stats, fmt.Errorf("opening %s: %w", path, err)
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return stats, fmt.Errorf("beginning export transaction: %w", err)
	}
	defer tx.Rollback()

	for _, ddl := range append(append([]string{}, schemaDDL...), indexDDL...) {
		if _, err := tx.ExecContext(ctx, ddl); err != nil {
			return stats, fmt.Errorf("creating schema: %w", err)
		}
	}

	if stats.Foods, err = exportFoods(ctx, tx, catalog); err != nil {
		return stats, err
	}
	if logs != nil {
		if stats.Dates, stats.Entries, err = exportLogs(ctx, tx, catalog, logs); err != nil {
			return stats, err
		}
	}

	if err := tx.Commit(); err != nil {
		return stats, fmt.Errorf("committing export: %w", err)
	}
	return stats, nil
}

func exportFoods(ctx context.Context, tx *sql.Tx, catalog Source) (int, error) {
	foodStmt, err := prepareInsert(ctx, tx, "foods", "food_id", "kind", "calories", "calories_per_serving")
	if err != nil {
		return 0, err
	}
	defer foodStmt.Close()
	kwStmt, err := prepareInsert(ctx, tx, "food_keywords", "food_id", "position", "keyword")
	if err != nil {
		return 0, err
	}
	defer kwStmt.Close()
	compStmt, err := prepareInsert(ctx, tx, "food_components", "food_id", "position", "component_id", "servings")
	if err != nil {
		return 0, err
	}
	defer compStmt.Close()

	foods := catalog.All()
	for _, f := range foods {
		var basic any
		if f.Kind == types.KindBasic {
			basic = f.Calories
		}
		perServing := nullCalories(catalog.Calories(f.ID))
		if _, err := foodStmt.ExecContext(ctx, f.ID, string(f.Kind), basic, perServing); err != nil {
			return 0, fmt.Errorf("inserting food %q: %w", f.ID, err)
		}
		for i, kw := range f.Keywords {
			if _, err := kwStmt.ExecContext(ctx, f.ID, i, kw); err != nil {
				return 0, fmt.Errorf("inserting keyword of %q: %w", f.ID, err)
			}
		}
		for i, c := range f.Components {
			if _, err := compStmt.ExecContext(ctx, f.ID, i, c.FoodID, c.Servings); err != nil {
				return 0, fmt.Errorf("inserting component of %q: %w", f.ID, err)
			}
		}
	}
	return len(foods), nil
}

func exportLogs(ctx context.Context, tx *sql.Tx, r types.Resolver, logs Ledgers) (dates, entries int, err error) {
	stmt, err := prepareInsert(ctx, tx, "log_entries", "log_date", "iso_date", "position", "food_id", "servings", "calories")
	if err != nil {
		return 0, 0, err
	}
	defer stmt.Close()

	for _, date := range logs.Dates() {
		iso, err := types.ISODate(date)
		if err != nil {
			return 0, 0, err
		}
		l, err := logs.Log(date)
		if err != nil {
			return 0, 0, err
		}
		for i, e := range l.Entries() {
			cal := nullCalories(e.TotalCalories(r))
			if _, err := stmt.ExecContext(ctx, date, iso, i, e.FoodID, e.Servings, cal); err != nil {
				return 0, 0, fmt.Errorf("inserting entry %d of %s: %w", i, date, err)
			}
			entries++
		}
		dates++
	}
	return dates, entries, nil
}

// prepareInsert prepares an INSERT of the given columns into table.
func prepareInsert(ctx context.Context, tx *sql.Tx, table string, columns ...string) (*sql.Stmt, error) {
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(columns, ", "), placeholders)
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("preparing insert for %s: %w", table, err)
	}
	return stmt, nil
}

// nullCalories maps a failed calorie computation to SQL NULL.
func nullCalories(v float64, err error) sql.NullFloat64 {
	if err != nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: v, Valid: true}
}
