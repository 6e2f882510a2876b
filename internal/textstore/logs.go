package textstore

import (
	"fmt"
	"log/slog"
	"math"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/mesh-intelligence/yada/pkg/types"
)

const datePrefix = "DATE:"

// LogManager implements types.LogBook over the daily log file.
type LogManager struct {
	mu     sync.Mutex
	path   string
	logs   map[string]*types.DailyLog
	undo   []types.UndoItem
	logger *slog.Logger
}

var _ types.LogBook = (*LogManager)(nil)

// NewLogManager creates an empty log manager persisted to path.
func NewLogManager(path string, opts ...Option) *LogManager {
	o := buildOptions(opts)
	return &LogManager{
		path:   path,
		logs:   make(map[string]*types.DailyLog),
		logger: o.logger,
	}
}

// Load replaces every ledger with the ones in the log file. Food IDs are
// checked against r, which must already be loaded.
func (m *LogManager) Load(r types.Resolver) error {
	lines, err := readLines(m.path)
	if err != nil {
		return fmt.Errorf("loading logs: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.logs = make(map[string]*types.DailyLog)
	m.undo = nil

	var current *types.DailyLog
	skip := func(i int, line string, err error) {
		reportSkipped(m.logger, &types.ParseError{File: m.path, Line: i + 1, Text: line, Err: err})
	}

	for i, line := range lines {
		if isComment(line) {
			continue
		}
		if rest, ok := strings.CutPrefix(line, datePrefix); ok {
			date := strings.TrimSpace(rest)
			if err := types.ValidateDate(date); err != nil {
				skip(i, line, err)
				current = nil
				continue
			}
			if _, seen := m.logs[date]; seen {
				m.logger.Warn("date block repeated, replacing earlier entries", "file", m.path, "line", i+1, "date", date)
			}
			current = types.NewDailyLog(date)
			m.logs[date] = current
			continue
		}
		if current == nil {
			skip(i, line, fmt.Errorf("%w: entry outside a valid date block", types.ErrMalformedLine))
			continue
		}
		foodID, servings, err := parseEntry(line)
		if err != nil {
			skip(i, line, err)
			continue
		}
		if _, err := r.GetByID(foodID); err != nil {
			skip(i, line, err)
			continue
		}
		current.AddEntry(foodID, servings)
	}

	m.logger.Debug("logs loaded", "dates", len(m.logs))
	return nil
}

// parseEntry splits a "foodId,servings" line.
func parseEntry(line string) (string, float64, error) {
	id, raw, ok := strings.Cut(strings.TrimSpace(line), ",")
	id = strings.TrimSpace(id)
	if !ok || id == "" {
		return "", 0, fmt.Errorf("%w: expected foodId,servings", types.ErrMalformedLine)
	}
	servings, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(servings) || math.IsInf(servings, 0) {
		return "", 0, fmt.Errorf("%w: bad servings %q", types.ErrMalformedLine, raw)
	}
	return id, servings, nil
}

// Save writes every ledger in ascending date-string order. The order is
// lexicographic on DD-MM-YYYY, so it is not chronological across months.
func (m *LogManager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var lines []string
	for _, date := range m.datesLocked() {
		lines = append(lines, datePrefix+" "+date)
		for _, e := range m.logs[date].Entries() {
			lines = append(lines, e.FoodID+","+types.FormatNumber(e.Servings))
		}
		lines = append(lines, "")
	}
	if err := writeLines(m.path, lines); err != nil {
		return fmt.Errorf("saving logs: %w", err)
	}
	return nil
}

// Log returns the ledger for date, creating it on first use.
func (m *LogManager) Log(date string) (*types.DailyLog, error) {
	if err := types.ValidateDate(date); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	l, ok := m.logs[date]
	if !ok {
		l = types.NewDailyLog(date)
		m.logs[date] = l
	}
	return l, nil
}

// Dates returns every date with a ledger in ascending string order.
func (m *LogManager) Dates() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.datesLocked()
}

func (m *LogManager) datesLocked() []string {
	dates := make([]string, 0, len(m.logs))
	for d := range m.logs {
		dates = append(dates, d)
	}
	slices.Sort(dates)
	return dates
}

// AddUndoAction pushes item onto the undo stack.
func (m *LogManager) AddUndoAction(item types.UndoItem) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.undo = append(m.undo, item)
}

// Undo pops the most recent undo record and reverses it.
//
// An ADD removes the entry carrying the recorded EntryID. Records without a
// known EntryID remove the last entry of the date instead. A REMOVE puts the
// entry back at its recorded index, appending when the index is past the end.
func (m *LogManager) Undo() (types.UndoItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.undo) == 0 {
		return types.UndoItem{}, types.ErrNothingToUndo
	}
	item := m.undo[len(m.undo)-1]
	m.undo = m.undo[:len(m.undo)-1]

	l, ok := m.logs[item.Date]
	if !ok {
		l = types.NewDailyLog(item.Date)
		m.logs[item.Date] = l
	}

	switch item.Action {
	case types.ActionAdd:
		idx := l.IndexOfEntry(item.EntryID)
		if idx < 0 {
			idx = l.Len() - 1
		}
		if idx >= 0 {
			if _, err := l.RemoveEntry(idx); err != nil {
				return item, err
			}
		}
	case types.ActionRemove:
		l.InsertEntry(types.Entry{
			EntryID:  item.EntryID,
			FoodID:   item.FoodID,
			Servings: item.Servings,
		}, item.Index)
	default:
		return item, fmt.Errorf("unknown undo action %q", item.Action)
	}

	m.logger.Debug("undo", "action", item.Action, "date", item.Date, "food", item.FoodID)
	return item, nil
}

// UndoDepth returns the number of records on the undo stack.
func (m *LogManager) UndoDepth() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.undo)
}
