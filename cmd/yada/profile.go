// Profile commands: the personal data behind the daily calorie target.
package main

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/yada/pkg/types"
)

func newProfileCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the diet profile",
	}
	cmd.AddCommand(newProfileShowCmd(a), newProfileSetCmd(a))
	return cmd
}

func newProfileShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the profile and daily calorie target",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			p := a.store.Profile
			printTitle(out, "Profile")
			printTable(out, []any{"FIELD", "VALUE"}, [][]any{
				{"gender", orUnset(string(p.Gender))},
				{"height (cm)", orUnsetNumber(p.HeightCM)},
				{"weight (kg)", orUnsetNumber(p.WeightKG)},
				{"age", orUnsetNumber(float64(p.Age))},
				{"activity", p.Activity},
				{"method", p.Method},
			})
			target, err := a.store.TargetCalories()
			if errors.Is(err, types.ErrProfileIncomplete) {
				_, _ = faintColor.Fprintln(out, "Target: set gender, height, weight and age to compute it.")
				return nil
			}
			if err != nil {
				return err
			}
			_, _ = totalColor.Fprintf(out, "Target: %s cal/day\n", formatCalories(target, nil))
			return nil
		},
	}
}

func newProfileSetCmd(a *app) *cobra.Command {
	var (
		gender, activity, method string
		height, weight           string
		age                      int
	)
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update profile fields",
		Long: "Update profile fields. Either every given field is applied or none is.\n" +
			"Activity levels: " + joinLevels() + ".\n" +
			"Methods: " + joinMethods() + ".",
		Example:     "  yada profile set --gender f --height 165 --weight 60 --age 30 --activity moderate",
		Args:        exactArgs(0),
		Annotations: map[string]string{annotationMutates: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			p := *a.store.Profile
			flags := cmd.Flags()

			if flags.Changed("gender") {
				if err := p.SetGender(gender); err != nil {
					return err
				}
			}
			if flags.Changed("height") {
				v, err := parseNumber("height", height)
				if err != nil {
					return err
				}
				if err := p.SetHeight(v); err != nil {
					return err
				}
			}
			if flags.Changed("weight") {
				v, err := parseNumber("weight", weight)
				if err != nil {
					return err
				}
				if err := p.SetWeight(v); err != nil {
					return err
				}
			}
			if flags.Changed("age") {
				if err := p.SetAge(age); err != nil {
					return err
				}
			}
			if flags.Changed("activity") {
				if err := p.SetActivityLevel(types.ActivityLevel(strings.ToLower(activity))); err != nil {
					return err
				}
			}
			if flags.Changed("method") {
				if err := p.SetMethod(types.CalorieMethod(strings.ToLower(method))); err != nil {
					return err
				}
			}

			*a.store.Profile = p
			printOK(cmd.OutOrStdout(), "Profile updated")
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&gender, "gender", "", "male or female")
	f.StringVar(&height, "height", "", "height in centimetres")
	f.StringVar(&weight, "weight", "", "weight in kilograms")
	f.IntVar(&age, "age", 0, "age in years")
	f.StringVar(&activity, "activity", "", "activity level")
	f.StringVar(&method, "method", "", "calorie calculation method")
	return cmd
}

func orUnset(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func orUnsetNumber(v float64) string {
	if v == 0 {
		return "-"
	}
	return types.FormatNumber(v)
}

func joinLevels() string {
	names := make([]string, len(types.ActivityLevels))
	for i, l := range types.ActivityLevels {
		names[i] = string(l)
	}
	return strings.Join(names, ", ")
}

func joinMethods() string {
	names := make([]string, len(types.CalorieMethods))
	for i, m := range types.CalorieMethods {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}
