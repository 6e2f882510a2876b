package types

import (
	"fmt"

	"github.com/google/uuid"
)

// Entry is one consumption record of a ledger.
type Entry struct {
	EntryID  string  // UUID v7 assigned when the entry is added; not persisted.
	FoodID   string  // ID of the consumed food.
	Servings float64 // Number of servings consumed.
}

// TotalCalories returns the food's calories per serving times the servings,
// resolving the food through r.
func (e Entry) TotalCalories(r Resolver) (float64, error) {
	f, err := r.GetByID(e.FoodID)
	if err != nil {
		return 0, err
	}
	cal, err := f.CaloriesPerServing(r)
	if err != nil {
		return 0, err
	}
	return cal * e.Servings, nil
}

// newEntryID generates a UUID v7 string.
func newEntryID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

// DailyLog is the ordered ledger for one date. Entries are addressed by
// position, so order is part of the ledger's meaning.
type DailyLog struct {
	Date    string
	entries []Entry
}

// NewDailyLog creates an empty ledger for date.
func NewDailyLog(date string) *DailyLog {
	return &DailyLog{Date: date}
}

// AddEntry appends an entry and returns it. Servings are not validated.
func (l *DailyLog) AddEntry(foodID string, servings float64) Entry {
	e := Entry{EntryID: newEntryID(), FoodID: foodID, Servings: servings}
	l.entries = append(l.entries, e)
	return e
}

// RemoveEntry removes the entry at index and shifts the rest left.
// Returns ErrIndexOutOfRange without mutating when index is out of bounds.
func (l *DailyLog) RemoveEntry(index int) (Entry, error) {
	if index < 0 || index >= len(l.entries) {
		return Entry{}, fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, index, len(l.entries))
	}
	e := l.entries[index]
	l.entries = append(l.entries[:index], l.entries[index+1:]...)
	return e, nil
}

// InsertEntry puts e at index when index is within the current entries and
// appends it otherwise. An entry without an EntryID gets a fresh one.
func (l *DailyLog) InsertEntry(e Entry, index int) Entry {
	if e.EntryID == "" {
		e.EntryID = newEntryID()
	}
	if index >= 0 && index < len(l.entries) {
		l.entries = append(l.entries, Entry{})
		copy(l.entries[index+1:], l.entries[index:])
		l.entries[index] = e
		return e
	}
	l.entries = append(l.entries, e)
	return e
}

// Entry returns the entry at index.
func (l *DailyLog) Entry(index int) (Entry, error) {
	if index < 0 || index >= len(l.entries) {
		return Entry{}, fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, index, len(l.entries))
	}
	return l.entries[index], nil
}

// Entries returns a copy of the entries in ledger order.
func (l *DailyLog) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries.
func (l *DailyLog) Len() int {
	return len(l.entries)
}

// IndexOfEntry returns the position of the entry with the given ID, or -1.
func (l *DailyLog) IndexOfEntry(entryID string) int {
	if entryID == "" {
		return -1
	}
	for i, e := range l.entries {
		if e.EntryID == entryID {
			return i
		}
	}
	return -1
}

// TotalCalories sums the calories of every entry.
func (l *DailyLog) TotalCalories(r Resolver) (float64, error) {
	total := 0.0
	for _, e := range l.entries {
		cal, err := e.TotalCalories(r)
		if err != nil {
			return 0, err
		}
		total += cal
	}
	return total, nil
}

// Clear drops every entry. It is not recorded for undo.
func (l *DailyLog) Clear() {
	l.entries = nil
}
