package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicFoodRoundTrip(t *testing.T) {
	foods := []*Food{
		NewBasicFood("apple", []string{"fruit", "Red Apple"}, 95),
		NewBasicFood("oil", []string{"fat"}, 119.5),
		NewBasicFood("water", nil, 0),
		NewBasicFood("tiny", []string{"x"}, 0.1),
	}
	for _, f := range foods {
		t.Run(f.ID, func(t *testing.T) {
			line := f.String()
			got, err := ParseBasicFood(line)
			require.NoError(t, err)
			assert.Equal(t, f.ID, got.ID)
			assert.Equal(t, f.Keywords, got.Keywords)
			assert.Equal(t, f.Calories, got.Calories)
			assert.Equal(t, line, got.String())
		})
	}
}

func TestBasicFoodString(t *testing.T) {
	f := NewBasicFood("apple", []string{"fruit", "red"}, 95)
	assert.Equal(t, "BASIC:apple:fruit,red:95", f.String())
}

func TestCompositeFoodRoundTrip(t *testing.T) {
	apple := NewBasicFood("apple", []string{"fruit"}, 95)
	pb := NewBasicFood("peanutButter", []string{"spread"}, 188)
	snack := NewCompositeFood("appleWithPB", []string{"snack", "quick"})
	require.NoError(t, snack.AddComponent("apple", 1))
	require.NoError(t, snack.AddComponent("peanutButter", 0.5))
	r := resolverOf(apple, pb)

	line := snack.String()
	assert.Equal(t, "COMPOSITE:appleWithPB:snack,quick:apple=1;peanutButter=0.5", line)

	got, err := ParseCompositeFood(line, r)
	require.NoError(t, err)
	assert.Equal(t, snack.ID, got.ID)
	assert.Equal(t, snack.Keywords, got.Keywords)
	assert.Equal(t, snack.Components, got.Components)

	want, err := snack.CaloriesPerServing(r)
	require.NoError(t, err)
	cal, err := got.CaloriesPerServing(r)
	require.NoError(t, err)
	assert.Equal(t, want, cal)
}

func TestParseBasicFoodErrors(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantErr error
	}{
		{name: "too few fields", line: "BASIC:apple:fruit", wantErr: ErrMalformedLine},
		{name: "wrong prefix", line: "COMPOSITE:apple:fruit:95", wantErr: ErrMalformedLine},
		{name: "lower-case prefix", line: "basic:apple:fruit:95", wantErr: ErrMalformedLine},
		{name: "empty id", line: "BASIC::fruit:95", wantErr: ErrMalformedLine},
		{name: "calories not a number", line: "BASIC:apple:fruit:lots", wantErr: ErrMalformedLine},
		{name: "negative calories", line: "BASIC:apple:fruit:-3", wantErr: ErrInvalidFood},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBasicFood(tt.line)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseBasicFoodTolerance(t *testing.T) {
	f, err := ParseBasicFood("BASIC:apple:fruit,,red,fruit: 95 ")
	require.NoError(t, err)
	assert.Equal(t, []string{"fruit", "red"}, f.Keywords, "empty and duplicate keywords dropped")
	assert.Equal(t, 95.0, f.Calories)

	f, err = ParseBasicFood("BASIC:water::0")
	require.NoError(t, err)
	assert.Empty(t, f.Keywords)
}

func TestParseCompositeFoodErrors(t *testing.T) {
	r := resolverOf(NewBasicFood("apple", nil, 95))

	tests := []struct {
		name    string
		line    string
		wantErr error
	}{
		{name: "unknown component", line: "COMPOSITE:c:k:pear=1", wantErr: ErrFoodNotFound},
		{name: "component without servings", line: "COMPOSITE:c:k:apple", wantErr: ErrMalformedLine},
		{name: "servings not a number", line: "COMPOSITE:c:k:apple=two", wantErr: ErrMalformedLine},
		{name: "basic prefix", line: "BASIC:c:k:95", wantErr: ErrMalformedLine},
		{name: "negative servings", line: "COMPOSITE:c:k:apple=-1", wantErr: ErrInvalidFood},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCompositeFood(tt.line, r)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseCompositeFoodEmptyAndTrailingSeparators(t *testing.T) {
	r := resolverOf(NewBasicFood("apple", nil, 95))

	f, err := ParseCompositeFood("COMPOSITE:empty:k:", r)
	require.NoError(t, err)
	assert.Empty(t, f.Components)

	f, err = ParseCompositeFood("COMPOSITE:c:k:apple=1;apple=2;", r)
	require.NoError(t, err)
	assert.Equal(t, []Component{{FoodID: "apple", Servings: 3}}, f.Components)
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "95", FormatNumber(95))
	assert.Equal(t, "0.5", FormatNumber(0.5))
	assert.Equal(t, "1234567", FormatNumber(1234567))
	assert.Equal(t, "0.1", FormatNumber(0.1))
}
