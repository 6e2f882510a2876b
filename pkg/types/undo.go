package types

// UndoAction is the kind of ledger mutation an UndoItem reverses.
type UndoAction string

// Undo actions.
const (
	ActionAdd    UndoAction = "ADD"
	ActionRemove UndoAction = "REMOVE"
)

// UndoItem records one ledger mutation so it can be reversed.
//
// For ActionAdd, EntryID identifies the added entry; when it is empty or the
// entry is gone, undo falls back to removing the last entry of the date. For
// ActionRemove, FoodID, Servings, Index and EntryID describe the removed
// entry so it can be put back where it was.
type UndoItem struct {
	Action   UndoAction
	Date     string
	FoodID   string
	Servings float64
	Index    int
	EntryID  string
}

// AddedUndo builds the undo record for an entry appended to date.
func AddedUndo(date string, e Entry, index int) UndoItem {
	return UndoItem{
		Action:   ActionAdd,
		Date:     date,
		FoodID:   e.FoodID,
		Servings: e.Servings,
		Index:    index,
		EntryID:  e.EntryID,
	}
}

// RemovedUndo builds the undo record for an entry removed from index of date.
func RemovedUndo(date string, e Entry, index int) UndoItem {
	return UndoItem{
		Action:   ActionRemove,
		Date:     date,
		FoodID:   e.FoodID,
		Servings: e.Servings,
		Index:    index,
		EntryID:  e.EntryID,
	}
}
