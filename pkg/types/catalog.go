package types

// Catalog owns every registered food, keyed by ID, and persists them to the
// basic and composite food files. Iteration order is ascending ID order.
type Catalog interface {
	Resolver

	// Load replaces the catalog contents with the persisted foods. Basic
	// foods load first, then composites. Malformed lines are reported and
	// skipped; only a missing or unreadable file fails the load.
	Load() error

	// Save writes the basic and composite files, each with a format header.
	Save() error

	// AddBasic registers a basic food. Returns ErrDuplicateID if the ID is
	// taken; the catalog is unchanged on error.
	AddBasic(f *Food) error

	// AddComposite registers a composite food. Returns ErrDuplicateID if the
	// ID is taken, ErrFoodNotFound if a component is unknown, and
	// ErrCyclicComposition if a component path leads back to the food.
	AddComposite(f *Food) error

	// FindMatchingAll returns the foods whose keywords match every term.
	FindMatchingAll(terms []string) []*Food

	// FindMatchingAny returns the foods whose keywords match any term. An
	// empty term list returns every food.
	FindMatchingAny(terms []string) []*Food

	// All returns every food.
	All() []*Food

	// Calories returns the calories per serving of the food with the ID.
	Calories(id string) (float64, error)

	// Len returns the number of foods.
	Len() int

	// Close saves the catalog once and releases it. Idempotent. After Close,
	// mutating operations return ErrClosed.
	Close() error
}

// LogBook keeps one DailyLog per date and an undo stack of ledger
// mutations.
type LogBook interface {
	// Load replaces every ledger with the persisted ones, resolving food IDs
	// through r. Entries with unknown foods and blocks under invalid dates
	// are reported and skipped. The undo stack is cleared.
	Load(r Resolver) error

	// Save writes every ledger in ascending date-string order.
	Save() error

	// Log returns the ledger for date, creating an empty one on first use.
	// Returns ErrInvalidDate without creating anything if date is invalid.
	Log(date string) (*DailyLog, error)

	// Dates returns the dates that have a ledger, in ascending string order.
	Dates() []string

	// AddUndoAction pushes an undo record. Callers push one record right
	// after each successful add or remove.
	AddUndoAction(item UndoItem)

	// Undo pops the most recent record and reverses it. Returns
	// ErrNothingToUndo when the stack is empty.
	Undo() (UndoItem, error)

	// UndoDepth returns the number of records on the undo stack.
	UndoDepth() int
}
