package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Headers written at the top of the catalog files.
const (
	BasicFoodsHeader     = "# Basic Foods Database\n# Format: BASIC:id:keyword1,keyword2,...:calories"
	CompositeFoodsHeader = "# Composite Foods Database\n# Format: COMPOSITE:id:keyword1,keyword2,...:foodId=servings;foodId=servings;..."
)

// FormatNumber renders a float in the shortest decimal form that parses back
// to the same value.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// String renders f as a single line of the catalog text format:
//
//	BASIC:<id>:<kw1>,<kw2>:<calories>
//	COMPOSITE:<id>:<kw1>,<kw2>:<id1>=<servings1>;<id2>=<servings2>
func (f *Food) String() string {
	var b strings.Builder
	b.WriteString(string(f.Kind))
	b.WriteByte(':')
	b.WriteString(f.ID)
	b.WriteByte(':')
	b.WriteString(strings.Join(f.Keywords, ","))
	b.WriteByte(':')
	switch f.Kind {
	case KindComposite:
		for i, c := range f.Components {
			if i > 0 {
				b.WriteByte(';')
			}
			b.WriteString(c.FoodID)
			b.WriteByte('=')
			b.WriteString(FormatNumber(c.Servings))
		}
	default:
		b.WriteString(FormatNumber(f.Calories))
	}
	return b.String()
}

// splitRecord splits a catalog line into its id, keywords and payload after
// checking the kind prefix.
func splitRecord(line string, kind FoodKind) (id string, keywords []string, payload string, err error) {
	parts := strings.SplitN(line, ":", 4)
	if len(parts) != 4 {
		return "", nil, "", fmt.Errorf("%w: expected 4 ':'-separated fields", ErrMalformedLine)
	}
	if FoodKind(parts[0]) != kind {
		return "", nil, "", fmt.Errorf("%w: not a %s record", ErrMalformedLine, kind)
	}
	id = strings.TrimSpace(parts[1])
	if id == "" {
		return "", nil, "", fmt.Errorf("%w: empty food ID", ErrMalformedLine)
	}
	for _, kw := range strings.Split(parts[2], ",") {
		if kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return id, keywords, parts[3], nil
}

// ParseBasicFood parses a BASIC record.
func ParseBasicFood(line string) (*Food, error) {
	id, keywords, payload, err := splitRecord(line, KindBasic)
	if err != nil {
		return nil, err
	}
	calories, err := strconv.ParseFloat(strings.TrimSpace(payload), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad calories %q", ErrMalformedLine, payload)
	}
	f := NewBasicFood(id, keywords, calories)
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}

// ParseCompositeFood parses a COMPOSITE record. Every component must already
// resolve through r; a component that does not fails the whole record with
// ErrFoodNotFound.
func ParseCompositeFood(line string, r Resolver) (*Food, error) {
	id, keywords, payload, err := splitRecord(line, KindComposite)
	if err != nil {
		return nil, err
	}
	f := NewCompositeFood(id, keywords)
	for _, part := range strings.Split(payload, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		foodID, servingsStr, ok := strings.Cut(part, "=")
		if !ok {
			return nil, fmt.Errorf("%w: component %q lacks '='", ErrMalformedLine, part)
		}
		foodID = strings.TrimSpace(foodID)
		servings, err := strconv.ParseFloat(strings.TrimSpace(servingsStr), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad servings %q", ErrMalformedLine, servingsStr)
		}
		if _, err := r.GetByID(foodID); err != nil {
			return nil, fmt.Errorf("component %q: %w", foodID, err)
		}
		if err := f.AddComponent(foodID, servings); err != nil {
			return nil, err
		}
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return f, nil
}
