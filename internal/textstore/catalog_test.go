// Tests for the text-file food catalog: loading, persistence, registration,
// and search.
package textstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/yada/pkg/types"
)

const sampleBasic = `# Basic Foods Database
BASIC:apple:fruit,red:95
BASIC:bread:grain,bakery:80
BASIC:peanut_butter:spread,nuts:94
`

const sampleComposite = `# Composite Foods Database
COMPOSITE:pb_sandwich:lunch,sandwich:bread=2;peanut_butter=1
`

func newTestCatalog(t *testing.T, basic, composite string, opts ...Option) *Catalog {
	t.Helper()
	dir := t.TempDir()
	bp := writeFile(t, dir, "basic_foods.txt", basic)
	cp := writeFile(t, dir, "composite_foods.txt", composite)
	c := NewCatalog(bp, cp, opts...)
	require.NoError(t, c.Load())
	return c
}

func TestCatalogLoad(t *testing.T) {
	c := newTestCatalog(t, sampleBasic, sampleComposite)

	assert.Equal(t, 4, c.Len())

	cal, err := c.Calories("pb_sandwich")
	require.NoError(t, err)
	assert.Equal(t, 254.0, cal)

	f, err := c.GetByID("apple")
	require.NoError(t, err)
	assert.Equal(t, types.KindBasic, f.Kind)
	assert.Equal(t, []string{"fruit", "red"}, f.Keywords)
}

func TestCatalogLoadSkipsBadLines(t *testing.T) {
	logger, buf := captureLogger()
	basic := sampleBasic + "BASIC:broken:x:notanumber\nnonsense\n"
	composite := "COMPOSITE:ahead:x:later=1\nCOMPOSITE:later:x:apple=1\n"

	c := newTestCatalog(t, basic, composite, WithLogger(logger))

	// apple, bread, peanut_butter, later
	assert.Equal(t, 4, c.Len())
	assert.Equal(t, 3, countSkipped(buf))

	_, err := c.GetByID("ahead")
	assert.ErrorIs(t, err, types.ErrFoodNotFound)
}

func TestCatalogLoadRedefinedID(t *testing.T) {
	tests := []struct {
		name      string
		basic     string
		composite string
		wantKind  types.FoodKind
		wantCal   float64
		wantSkips int
	}{
		{
			name:     "later basic line wins",
			basic:    "BASIC:apple:fruit:95\nBASIC:apple:fruit:50\n",
			wantKind: types.KindBasic,
			wantCal:  50,
		},
		{
			name:      "composite replaces basic",
			basic:     "BASIC:apple:fruit:95\nBASIC:bread:grain:80\n",
			composite: "COMPOSITE:apple:fruit:bread=2\n",
			wantKind:  types.KindComposite,
			wantCal:   160,
		},
		{
			name:      "self-referencing redefinition is skipped",
			basic:     "BASIC:apple:fruit:95\n",
			composite: "COMPOSITE:apple:fruit:apple=2\n",
			wantKind:  types.KindBasic,
			wantCal:   95,
			wantSkips: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := captureLogger()
			c := newTestCatalog(t, tt.basic, tt.composite, WithLogger(logger))

			f, err := c.GetByID("apple")
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, f.Kind)
			cal, err := c.Calories("apple")
			require.NoError(t, err)
			assert.InDelta(t, tt.wantCal, cal, 1e-9)
			assert.Equal(t, tt.wantSkips, countSkipped(buf))
		})
	}
}

func TestCatalogLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	c := NewCatalog(filepath.Join(dir, "b.txt"), filepath.Join(dir, "c.txt"))

	err := c.Load()
	require.Error(t, err)
	assert.True(t, IsNotExist(err))
	assert.Equal(t, 0, c.Len())
}

func TestCatalogSaveRoundTrip(t *testing.T) {
	c := newTestCatalog(t, sampleBasic, sampleComposite)

	require.NoError(t, c.AddBasic(types.NewBasicFood("milk", []string{"dairy"}, 42.5)))
	require.NoError(t, c.Save())

	assert.Equal(t,
		types.BasicFoodsHeader+"\n"+
			"BASIC:apple:fruit,red:95\n"+
			"BASIC:bread:grain,bakery:80\n"+
			"BASIC:milk:dairy:42.5\n"+
			"BASIC:peanut_butter:spread,nuts:94\n",
		readFile(t, c.basicPath))
	assert.Equal(t,
		types.CompositeFoodsHeader+"\n"+
			"COMPOSITE:pb_sandwich:lunch,sandwich:bread=2;peanut_butter=1\n",
		readFile(t, c.compositePath))

	reloaded := NewCatalog(c.basicPath, c.compositePath)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, c.Len(), reloaded.Len())
	for _, f := range c.All() {
		got, err := reloaded.GetByID(f.ID)
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
}

func TestCatalogAdd(t *testing.T) {
	t.Run("duplicate basic", func(t *testing.T) {
		c := newTestCatalog(t, sampleBasic, sampleComposite)
		err := c.AddBasic(types.NewBasicFood("apple", nil, 1))
		assert.ErrorIs(t, err, types.ErrDuplicateID)

		f, _ := c.GetByID("apple")
		assert.Equal(t, 95.0, f.Calories)
	})

	t.Run("duplicate across kinds", func(t *testing.T) {
		c := newTestCatalog(t, sampleBasic, sampleComposite)
		comp := types.NewCompositeFood("bread", nil)
		require.NoError(t, comp.AddComponent("apple", 1))
		assert.ErrorIs(t, c.AddComposite(comp), types.ErrDuplicateID)
	})

	t.Run("wrong kind", func(t *testing.T) {
		c := newTestCatalog(t, sampleBasic, sampleComposite)
		assert.ErrorIs(t, c.AddBasic(types.NewCompositeFood("x", nil)), types.ErrWrongKind)
		assert.ErrorIs(t, c.AddComposite(types.NewBasicFood("x", nil, 1)), types.ErrWrongKind)
	})

	t.Run("unknown component", func(t *testing.T) {
		c := newTestCatalog(t, sampleBasic, sampleComposite)
		comp := types.NewCompositeFood("salad", nil)
		require.NoError(t, comp.AddComponent("lettuce", 1))
		assert.ErrorIs(t, c.AddComposite(comp), types.ErrFoodNotFound)
		assert.Equal(t, 4, c.Len())
	})

	t.Run("self reference", func(t *testing.T) {
		c := newTestCatalog(t, sampleBasic, sampleComposite)
		comp := types.NewCompositeFood("loop", nil)
		require.NoError(t, comp.AddComponent("loop", 1))
		assert.ErrorIs(t, c.AddComposite(comp), types.ErrCyclicComposition)
	})

	t.Run("nested composite", func(t *testing.T) {
		c := newTestCatalog(t, sampleBasic, sampleComposite)
		lunch := types.NewCompositeFood("lunch", []string{"meal"})
		require.NoError(t, lunch.AddComponent("pb_sandwich", 1))
		require.NoError(t, lunch.AddComponent("apple", 1))
		require.NoError(t, c.AddComposite(lunch))

		cal, err := c.Calories("lunch")
		require.NoError(t, err)
		assert.Equal(t, 349.0, cal)
	})
}

func TestCatalogSearch(t *testing.T) {
	c := newTestCatalog(t, sampleBasic, sampleComposite)

	ids := func(foods []*types.Food) []string {
		out := []string{}
		for _, f := range foods {
			out = append(out, f.ID)
		}
		return out
	}

	tests := []struct {
		name  string
		all   bool
		terms []string
		want  []string
	}{
		{"all single term substring", true, []string{"RE"}, []string{"apple", "peanut_butter"}},
		{"all two terms", true, []string{"fruit", "red"}, []string{"apple"}},
		{"all no match", true, []string{"fruit", "grain"}, []string{}},
		{"any two terms", false, []string{"fruit", "grain"}, []string{"apple", "bread"}},
		{"any empty terms", false, nil, []string{"apple", "bread", "pb_sandwich", "peanut_butter"}},
		{"all empty terms", true, nil, []string{"apple", "bread", "pb_sandwich", "peanut_butter"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []*types.Food
			if tt.all {
				got = c.FindMatchingAll(tt.terms)
			} else {
				got = c.FindMatchingAny(tt.terms)
			}
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestCatalogCaloriesRecomputed(t *testing.T) {
	c := newTestCatalog(t, sampleBasic, sampleComposite)

	bread, err := c.GetByID("bread")
	require.NoError(t, err)
	require.NoError(t, bread.SetCalories(100))

	cal, err := c.Calories("pb_sandwich")
	require.NoError(t, err)
	assert.Equal(t, 294.0, cal)
}

func TestCatalogClose(t *testing.T) {
	c := newTestCatalog(t, sampleBasic, sampleComposite)
	require.NoError(t, c.AddBasic(types.NewBasicFood("milk", []string{"dairy"}, 42)))

	require.NoError(t, c.Close())
	assert.Contains(t, readFile(t, c.basicPath), "BASIC:milk:dairy:42\n")

	assert.NoError(t, c.Close(), "second close is a no-op")
	assert.ErrorIs(t, c.Save(), types.ErrClosed)
	assert.ErrorIs(t, c.AddBasic(types.NewBasicFood("egg", nil, 70)), types.ErrClosed)
	assert.ErrorIs(t, c.Load(), types.ErrClosed)
}
