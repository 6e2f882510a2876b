package types

import (
	"errors"
	"fmt"
	"strings"
)

// Gender values accepted by Profile.SetGender.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// ActivityLevel selects the multiplier applied to the basal estimate.
type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityVery      ActivityLevel = "very"
	ActivityExtra     ActivityLevel = "extra"
)

// activityMultipliers maps each activity level to its multiplier.
var activityMultipliers = map[ActivityLevel]float64{
	ActivitySedentary: 1.2,
	ActivityLight:     1.375,
	ActivityModerate:  1.55,
	ActivityVery:      1.725,
	ActivityExtra:     1.9,
}

// ActivityLevels lists the activity levels from least to most active.
var ActivityLevels = []ActivityLevel{
	ActivitySedentary,
	ActivityLight,
	ActivityModerate,
	ActivityVery,
	ActivityExtra,
}

// CalorieMethod selects the basal metabolic rate formula.
type CalorieMethod string

const (
	MethodHarrisBenedict CalorieMethod = "harris-benedict"
	MethodMifflinStJeor  CalorieMethod = "mifflin-st-jeor"
)

// CalorieMethods lists the supported formulas.
var CalorieMethods = []CalorieMethod{MethodHarrisBenedict, MethodMifflinStJeor}

// Profile validation errors.
var (
	ErrInvalidGender        = errors.New("gender must be male or female")
	ErrInvalidHeight        = errors.New("height must be positive")
	ErrInvalidWeight        = errors.New("weight must be positive")
	ErrInvalidAge           = errors.New("age must be positive")
	ErrInvalidActivityLevel = errors.New("unknown activity level")
	ErrInvalidMethod        = errors.New("unknown calorie calculation method")
	ErrProfileIncomplete    = errors.New("profile is incomplete")
)

// Profile holds the personal data used to estimate a daily calorie target.
// Setters reject invalid values and leave the profile unchanged.
type Profile struct {
	Gender   Gender        `yaml:"gender"`
	HeightCM float64       `yaml:"height_cm"`
	WeightKG float64       `yaml:"weight_kg"`
	Age      int           `yaml:"age"`
	Activity ActivityLevel `yaml:"activity_level"`
	Method   CalorieMethod `yaml:"method"`
}

// NewProfile returns an empty profile: sedentary, Harris-Benedict.
func NewProfile() *Profile {
	return &Profile{Activity: ActivitySedentary, Method: MethodHarrisBenedict}
}

// SetGender accepts "male" or "female" in any case, or "m"/"f".
func (p *Profile) SetGender(g string) error {
	switch strings.ToLower(strings.TrimSpace(g)) {
	case "male", "m":
		p.Gender = GenderMale
	case "female", "f":
		p.Gender = GenderFemale
	default:
		return fmt.Errorf("%w: %q", ErrInvalidGender, g)
	}
	return nil
}

// SetHeight sets the height in centimetres.
func (p *Profile) SetHeight(cm float64) error {
	if !(cm > 0) {
		return ErrInvalidHeight
	}
	p.HeightCM = cm
	return nil
}

// SetWeight sets the weight in kilograms.
func (p *Profile) SetWeight(kg float64) error {
	if !(kg > 0) {
		return ErrInvalidWeight
	}
	p.WeightKG = kg
	return nil
}

// SetAge sets the age in years.
func (p *Profile) SetAge(years int) error {
	if years <= 0 {
		return ErrInvalidAge
	}
	p.Age = years
	return nil
}

// SetActivityLevel sets the activity level.
func (p *Profile) SetActivityLevel(level ActivityLevel) error {
	if _, ok := activityMultipliers[level]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidActivityLevel, level)
	}
	p.Activity = level
	return nil
}

// SetMethod sets the calorie calculation method.
func (p *Profile) SetMethod(m CalorieMethod) error {
	switch m {
	case MethodHarrisBenedict, MethodMifflinStJeor:
		p.Method = m
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidMethod, m)
}

// Complete reports whether every field needed by TargetCalories is set.
func (p *Profile) Complete() bool {
	return p.Gender != "" && p.HeightCM > 0 && p.WeightKG > 0 && p.Age > 0
}

// Validate checks a profile read from storage. Unset personal fields are
// allowed; set fields must be valid.
func (p *Profile) Validate() error {
	if p.Gender != "" && p.Gender != GenderMale && p.Gender != GenderFemale {
		return fmt.Errorf("%w: %q", ErrInvalidGender, p.Gender)
	}
	if p.HeightCM < 0 {
		return ErrInvalidHeight
	}
	if p.WeightKG < 0 {
		return ErrInvalidWeight
	}
	if p.Age < 0 {
		return ErrInvalidAge
	}
	if _, ok := activityMultipliers[p.Activity]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidActivityLevel, p.Activity)
	}
	if p.Method != MethodHarrisBenedict && p.Method != MethodMifflinStJeor {
		return fmt.Errorf("%w: %q", ErrInvalidMethod, p.Method)
	}
	return nil
}

// TargetCalories estimates the daily calorie need: the basal rate from the
// selected formula times the activity multiplier.
func (p *Profile) TargetCalories() (float64, error) {
	if !p.Complete() {
		return 0, ErrProfileIncomplete
	}
	mult, ok := activityMultipliers[p.Activity]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidActivityLevel, p.Activity)
	}
	w, h, a := p.WeightKG, p.HeightCM, float64(p.Age)

	var base float64
	switch p.Method {
	case MethodHarrisBenedict:
		if p.Gender == GenderMale {
			base = 88.362 + 13.397*w + 4.799*h - 5.677*a
		} else {
			base = 447.593 + 9.247*w + 3.098*h - 4.330*a
		}
	case MethodMifflinStJeor:
		base = 10*w + 6.25*h - 5*a
		if p.Gender == GenderMale {
			base += 5
		} else {
			base -= 161
		}
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMethod, p.Method)
	}
	return base * mult, nil
}
