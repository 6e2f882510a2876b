package types

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// FoodKind tags the variant of a Food. The values double as the record
// prefixes in the text format.
type FoodKind string

// Food kinds.
const (
	KindBasic     FoodKind = "BASIC"
	KindComposite FoodKind = "COMPOSITE"
)

// Component is one weighted ingredient of a composite food.
type Component struct {
	FoodID   string  // ID of the referenced food.
	Servings float64 // Servings of the referenced food per serving of the composite.
}

// Food is an entry of the catalog. ID is immutable once the food is
// registered. Calories is meaningful only for basic foods and Components only
// for composite foods.
type Food struct {
	ID         string
	Keywords   []string
	Kind       FoodKind
	Calories   float64
	Components []Component
}

// Resolver looks up foods by ID. The catalog is the canonical Resolver.
type Resolver interface {
	// GetByID returns the food with the given ID or an error wrapping
	// ErrFoodNotFound.
	GetByID(id string) (*Food, error)
}

// NewBasicFood creates a basic food with fixed calories per serving.
// Duplicate keywords are dropped.
func NewBasicFood(id string, keywords []string, calories float64) *Food {
	f := &Food{ID: id, Kind: KindBasic, Calories: calories}
	for _, kw := range keywords {
		f.AddKeyword(kw)
	}
	return f
}

// NewCompositeFood creates a composite food with no components.
func NewCompositeFood(id string, keywords []string) *Food {
	f := &Food{ID: id, Kind: KindComposite}
	for _, kw := range keywords {
		f.AddKeyword(kw)
	}
	return f
}

// IsComposite reports whether f is a composite food.
func (f *Food) IsComposite() bool {
	return f.Kind == KindComposite
}

// AddKeyword appends kw unless the exact same string is already present.
// The check is case-sensitive even though searching is not.
func (f *Food) AddKeyword(kw string) {
	if kw == "" || slices.Contains(f.Keywords, kw) {
		return
	}
	f.Keywords = append(f.Keywords, kw)
}

// SetCalories updates the calories per serving of a basic food.
func (f *Food) SetCalories(calories float64) error {
	if f.Kind != KindBasic {
		return ErrWrongKind
	}
	if calories < 0 || math.IsNaN(calories) || math.IsInf(calories, 0) {
		return fmt.Errorf("%w: calories must be a non-negative number", ErrInvalidFood)
	}
	f.Calories = calories
	return nil
}

// AddComponent adds servings of the food foodID to a composite. Adding a food
// that is already a component increases its servings.
func (f *Food) AddComponent(foodID string, servings float64) error {
	if f.Kind != KindComposite {
		return ErrWrongKind
	}
	for i := range f.Components {
		if f.Components[i].FoodID == foodID {
			f.Components[i].Servings += servings
			return nil
		}
	}
	f.Components = append(f.Components, Component{FoodID: foodID, Servings: servings})
	return nil
}

// keywordMatches reports whether term occurs anywhere inside keyword,
// ignoring case.
func keywordMatches(term, keyword string) bool {
	return strings.Contains(strings.ToLower(keyword), strings.ToLower(term))
}

func (f *Food) matchesTerm(term string) bool {
	for _, kw := range f.Keywords {
		if keywordMatches(term, kw) {
			return true
		}
	}
	return false
}

// MatchesAllKeywords reports whether every term matches at least one keyword.
// An empty term list matches.
func (f *Food) MatchesAllKeywords(terms []string) bool {
	for _, term := range terms {
		if !f.matchesTerm(term) {
			return false
		}
	}
	return true
}

// MatchesAnyKeyword reports whether at least one term matches at least one
// keyword. An empty term list matches every food.
func (f *Food) MatchesAnyKeyword(terms []string) bool {
	if len(terms) == 0 {
		return true
	}
	for _, term := range terms {
		if f.matchesTerm(term) {
			return true
		}
	}
	return false
}

// CaloriesPerServing returns the calories in one serving of f. For composite
// foods the value is recomputed from the components on every call, resolving
// each component through r. A composition that reaches itself returns
// ErrCyclicComposition instead of recursing forever.
func (f *Food) CaloriesPerServing(r Resolver) (float64, error) {
	return f.calories(r, make(map[string]bool))
}

func (f *Food) calories(r Resolver, path map[string]bool) (float64, error) {
	switch f.Kind {
	case KindBasic:
		return f.Calories, nil
	case KindComposite:
		if path[f.ID] {
			return 0, fmt.Errorf("%w: %s", ErrCyclicComposition, f.ID)
		}
		path[f.ID] = true
		defer delete(path, f.ID)

		total := 0.0
		for _, c := range f.Components {
			sub, err := r.GetByID(c.FoodID)
			if err != nil {
				return 0, fmt.Errorf("component %q of %q: %w", c.FoodID, f.ID, err)
			}
			cal, err := sub.calories(r, path)
			if err != nil {
				return 0, err
			}
			total += cal * c.Servings
		}
		return total, nil
	default:
		return 0, fmt.Errorf("%w: unknown kind %q", ErrInvalidFood, f.Kind)
	}
}

// CheckComposition verifies that every component of the composite f resolves
// through r and that no component path leads back to f. Basic foods always
// pass.
func CheckComposition(f *Food, r Resolver) error {
	if f.Kind != KindComposite {
		return nil
	}
	done := make(map[string]bool)
	var visit func(id string) error
	visit = func(id string) error {
		if id == f.ID {
			return fmt.Errorf("%w: %s", ErrCyclicComposition, f.ID)
		}
		if done[id] {
			return nil
		}
		done[id] = true
		sub, err := r.GetByID(id)
		if err != nil {
			return err
		}
		for _, c := range sub.Components {
			if err := visit(c.FoodID); err != nil {
				return err
			}
		}
		return nil
	}
	for _, c := range f.Components {
		if err := visit(c.FoodID); err != nil {
			return err
		}
	}
	return nil
}

// reservedChars cannot appear in IDs or keywords because the text format
// uses them as separators.
const reservedChars = ":,;=\r\n"

// Validate checks that f can be stored and written back in the text format.
func (f *Food) Validate() error {
	id := strings.TrimSpace(f.ID)
	if id == "" || id != f.ID || strings.ContainsAny(f.ID, reservedChars) || strings.HasPrefix(f.ID, "#") {
		return fmt.Errorf("%w: bad ID %q", ErrInvalidFood, f.ID)
	}
	for _, kw := range f.Keywords {
		if kw == "" || strings.ContainsAny(kw, reservedChars) {
			return fmt.Errorf("%w: bad keyword %q", ErrInvalidFood, kw)
		}
	}
	switch f.Kind {
	case KindBasic:
		if f.Calories < 0 || math.IsNaN(f.Calories) || math.IsInf(f.Calories, 0) {
			return fmt.Errorf("%w: calories must be a non-negative number", ErrInvalidFood)
		}
	case KindComposite:
		for _, c := range f.Components {
			if c.FoodID == "" || strings.ContainsAny(c.FoodID, reservedChars) {
				return fmt.Errorf("%w: bad component ID %q", ErrInvalidFood, c.FoodID)
			}
			if c.Servings < 0 || math.IsNaN(c.Servings) || math.IsInf(c.Servings, 0) {
				return fmt.Errorf("%w: servings of %q must be a non-negative number", ErrInvalidFood, c.FoodID)
			}
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidFood, f.Kind)
	}
	return nil
}

// Describe renders f for display. Calories that cannot be resolved are
// reported inline rather than failing the whole description.
func (f *Food) Describe(r Resolver) string {
	var b strings.Builder
	switch f.Kind {
	case KindComposite:
		fmt.Fprintf(&b, "Composite Food: %s\n", f.ID)
	default:
		fmt.Fprintf(&b, "Basic Food: %s\n", f.ID)
	}
	fmt.Fprintf(&b, "  Keywords: %s\n", strings.Join(f.Keywords, ", "))
	if f.Kind == KindComposite {
		b.WriteString("  Components:\n")
		for _, c := range f.Components {
			fmt.Fprintf(&b, "    %s: %s serving(s)\n", c.FoodID, FormatNumber(c.Servings))
		}
	}
	cal, err := f.CaloriesPerServing(r)
	if err != nil {
		fmt.Fprintf(&b, "  Calories per serving: unavailable (%v)\n", err)
	} else {
		fmt.Fprintf(&b, "  Calories per serving: %s\n", FormatNumber(cal))
	}
	return b.String()
}
