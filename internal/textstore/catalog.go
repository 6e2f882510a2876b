package textstore

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/mesh-intelligence/yada/pkg/types"
)

// foodMap is the arena of foods keyed by ID. It resolves IDs without
// locking so the catalog can use it while holding its own lock.
type foodMap map[string]*types.Food

func (m foodMap) GetByID(id string) (*types.Food, error) {
	f, ok := m[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", types.ErrFoodNotFound, id)
	}
	return f, nil
}

// sorted returns the foods in ascending ID order, keeping those accepted by
// keep.
func (m foodMap) sorted(keep func(*types.Food) bool) []*types.Food {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	out := make([]*types.Food, 0, len(ids))
	for _, id := range ids {
		if f := m[id]; keep == nil || keep(f) {
			out = append(out, f)
		}
	}
	return out
}

// Catalog implements types.Catalog over the basic and composite food files.
// It is the single owner of every food; other holders refer to foods by ID.
type Catalog struct {
	mu            sync.RWMutex
	basicPath     string
	compositePath string
	foods         foodMap
	logger        *slog.Logger
	closed        bool
}

var _ types.Catalog = (*Catalog)(nil)

// NewCatalog creates an empty catalog persisted to the given files. Call Load
// to read existing foods.
func NewCatalog(basicPath, compositePath string, opts ...Option) *Catalog {
	o := buildOptions(opts)
	return &Catalog{
		basicPath:     basicPath,
		compositePath: compositePath,
		foods:         make(foodMap),
		logger:        o.logger,
	}
}

// Load replaces the catalog contents with the foods in the basic file and
// then the composite file. A composite may only reference foods from earlier
// lines; a forward reference fails that line alone. Duplicate IDs keep the
// first definition.
func (c *Catalog) Load() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return types.ErrClosed
	}

	c.foods = make(foodMap)

	basic, err := readLines(c.basicPath)
	if err != nil {
		return fmt.Errorf("loading basic foods: %w", err)
	}
	c.loadRecords(c.basicPath, basic, func(line string) (*types.Food, error) {
		return types.ParseBasicFood(line)
	})

	composite, err := readLines(c.compositePath)
	if err != nil {
		return fmt.Errorf("loading composite foods: %w", err)
	}
	c.loadRecords(c.compositePath, composite, func(line string) (*types.Food, error) {
		return types.ParseCompositeFood(line, c.foods)
	})

	c.logger.Debug("catalog loaded", "foods", len(c.foods))
	return nil
}

// loadRecords parses each data line with parse and registers the result,
// reporting and skipping lines that fail. A repeated ID replaces the earlier
// definition. The caller must hold c.mu.
func (c *Catalog) loadRecords(path string, lines []string, parse func(string) (*types.Food, error)) {
	for i, line := range lines {
		if isComment(line) {
			continue
		}
		f, err := parse(line)
		if err == nil {
			err = types.CheckComposition(f, c.foods)
		}
		if err != nil {
			reportSkipped(c.logger, &types.ParseError{File: path, Line: i + 1, Text: line, Err: err})
			continue
		}
		if _, exists := c.foods[f.ID]; exists {
			c.logger.Warn("food redefined, later line wins", "file", path, "line", i+1, "id", f.ID)
		}
		c.foods[f.ID] = f
	}
}

// Save writes both catalog files in ascending ID order.
func (c *Catalog) Save() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return types.ErrClosed
	}
	return c.saveLocked()
}

func (c *Catalog) saveLocked() error {
	basic := strings.Split(types.BasicFoodsHeader, "\n")
	composite := strings.Split(types.CompositeFoodsHeader, "\n")
	for _, f := range c.foods.sorted(nil) {
		switch f.Kind {
		case types.KindBasic:
			basic = append(basic, f.String())
		case types.KindComposite:
			composite = append(composite, f.String())
		}
	}
	if err := writeLines(c.basicPath, basic); err != nil {
		return fmt.Errorf("saving basic foods: %w", err)
	}
	if err := writeLines(c.compositePath, composite); err != nil {
		return fmt.Errorf("saving composite foods: %w", err)
	}
	return nil
}

// AddBasic registers a basic food. Returns ErrDuplicateID if the ID exists.
func (c *Catalog) AddBasic(f *types.Food) error {
	if f == nil || f.Kind != types.KindBasic {
		return types.ErrWrongKind
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return types.ErrClosed
	}
	if _, exists := c.foods[f.ID]; exists {
		return fmt.Errorf("%w: %q", types.ErrDuplicateID, f.ID)
	}
	c.foods[f.ID] = f
	return nil
}

// AddComposite registers a composite food after checking that its
// components exist and that none of them leads back to it.
func (c *Catalog) AddComposite(f *types.Food) error {
	if f == nil || f.Kind != types.KindComposite {
		return types.ErrWrongKind
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return types.ErrClosed
	}
	if _, exists := c.foods[f.ID]; exists {
		return fmt.Errorf("%w: %q", types.ErrDuplicateID, f.ID)
	}
	if err := types.CheckComposition(f, c.foods); err != nil {
		return err
	}
	c.foods[f.ID] = f
	return nil
}

// GetByID returns the food with the given ID.
func (c *Catalog) GetByID(id string) (*types.Food, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.foods.GetByID(id)
}

// FindMatchingAll returns the foods matching every term, in ID order.
func (c *Catalog) FindMatchingAll(terms []string) []*types.Food {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.foods.sorted(func(f *types.Food) bool { return f.MatchesAllKeywords(terms) })
}

// FindMatchingAny returns the foods matching any term, in ID order.
func (c *Catalog) FindMatchingAny(terms []string) []*types.Food {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.foods.sorted(func(f *types.Food) bool { return f.MatchesAnyKeyword(terms) })
}

// All returns every food in ID order.
func (c *Catalog) All() []*types.Food {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.foods.sorted(nil)
}

// Calories returns the calories per serving of the food with the given ID.
func (c *Catalog) Calories(id string) (float64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := c.foods.GetByID(id)
	if err != nil {
		return 0, err
	}
	return f.CaloriesPerServing(c.foods)
}

// Len returns the number of foods.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.foods)
}

// Close saves the catalog and marks it closed. Only the first call saves;
// later calls return nil.
func (c *Catalog) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	if err := c.saveLocked(); err != nil {
		return fmt.Errorf("saving on close: %w", err)
	}
	return nil
}
