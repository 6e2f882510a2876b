// Food commands: register, search, and inspect catalog entries.
package main

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/yada/pkg/types"
)

func newFoodCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "food",
		Short: "Manage the food catalog",
	}
	cmd.AddCommand(
		newFoodAddCmd(a),
		newFoodCompositeCmd(a),
		newFoodSetCaloriesCmd(a),
		newFoodSearchCmd(a),
		newFoodListCmd(a),
		newFoodShowCmd(a),
	)
	return cmd
}

func newFoodAddCmd(a *app) *cobra.Command {
	var (
		calories string
		keywords []string
	)
	cmd := &cobra.Command{
		Use:         "add <id>",
		Short:       "Add a basic food",
		Example:     "  yada food add apple --calories 95 --keyword fruit --keyword red",
		Args:        exactArgs(1),
		Annotations: map[string]string{annotationMutates: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, err := parseNumber("calories", calories)
			if err != nil {
				return err
			}
			f := types.NewBasicFood(args[0], keywords, cal)
			if err := f.Validate(); err != nil {
				return err
			}
			if err := a.store.Catalog.AddBasic(f); err != nil {
				return err
			}
			printOK(cmd.OutOrStdout(), "Added basic food %s (%s cal)", f.ID, types.FormatNumber(f.Calories))
			return nil
		},
	}
	cmd.Flags().StringVarP(&calories, "calories", "c", "", "calories per serving")
	cmd.Flags().StringSliceVarP(&keywords, "keyword", "k", nil, "keyword (repeatable, or comma separated)")
	_ = cmd.MarkFlagRequired("calories")
	return cmd
}

func newFoodCompositeCmd(a *app) *cobra.Command {
	var (
		keywords   []string
		components []string
	)
	cmd := &cobra.Command{
		Use:         "composite <id>",
		Short:       "Add a composite food made of other foods",
		Example:     "  yada food composite pb_sandwich -k lunch --component bread=2 --component peanut_butter=1",
		Args:        exactArgs(1),
		Annotations: map[string]string{annotationMutates: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			f := types.NewCompositeFood(args[0], keywords)
			for _, c := range components {
				id, servings, ok := strings.Cut(c, "=")
				if !ok {
					return fmt.Errorf("%w: component %q must be foodId=servings", errUsage, c)
				}
				n, err := parseNumber("servings", servings)
				if err != nil {
					return err
				}
				if err := f.AddComponent(strings.TrimSpace(id), n); err != nil {
					return err
				}
			}
			if err := f.Validate(); err != nil {
				return err
			}
			if err := a.store.Catalog.AddComposite(f); err != nil {
				return err
			}
			cal, err := a.store.Catalog.Calories(f.ID)
			printOK(cmd.OutOrStdout(), "Added composite food %s (%s cal)", f.ID, formatCalories(cal, err))
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&keywords, "keyword", "k", nil, "keyword (repeatable, or comma separated)")
	cmd.Flags().StringArrayVar(&components, "component", nil, "component as foodId=servings (repeatable)")
	_ = cmd.MarkFlagRequired("component")
	return cmd
}

func newFoodSetCaloriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:         "set-calories <id> <calories>",
		Short:       "Change the calories per serving of a basic food",
		Args:        exactArgs(2),
		Annotations: map[string]string{annotationMutates: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cal, err := parseNumber("calories", args[1])
			if err != nil {
				return err
			}
			f, err := a.store.Catalog.GetByID(args[0])
			if err != nil {
				return err
			}
			if err := f.SetCalories(cal); err != nil {
				return fmt.Errorf("%s: %w", f.ID, err)
			}
			printOK(cmd.OutOrStdout(), "Set %s to %s cal", f.ID, types.FormatNumber(cal))
			return nil
		},
	}
}

func newFoodSearchCmd(a *app) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "search [term...]",
		Short: "Find foods whose keywords contain the terms",
		Long: "Find foods whose keywords contain any of the terms, ignoring case.\n" +
			"With --all a food must match every term.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var foods []*types.Food
			if all {
				foods = a.store.Catalog.FindMatchingAll(args)
			} else {
				foods = a.store.Catalog.FindMatchingAny(args)
			}
			printFoods(cmd.OutOrStdout(), foods, a.store.Catalog)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "require every term to match")
	return cmd
}

func newFoodListCmd(a *app) *cobra.Command {
	var idPattern string
	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List every food",
		Example: "  yada food list --id 'pb_*'",
		Args:    exactArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			foods, err := filterByID(a.store.Catalog.All(), idPattern)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printTitle(out, fmt.Sprintf("Foods (%d)", len(foods)))
			printFoods(out, foods, a.store.Catalog)
			return nil
		},
	}
	cmd.Flags().StringVar(&idPattern, "id", "", "only foods whose ID matches this glob")
	return cmd
}

// filterByID keeps the foods whose ID matches the glob pattern. An empty
// pattern keeps every food.
func filterByID(foods []*types.Food, pattern string) ([]*types.Food, error) {
	if pattern == "" {
		return foods, nil
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: bad pattern %q", errUsage, pattern)
	}
	var out []*types.Food
	for _, f := range foods {
		ok, err := doublestar.Match(pattern, f.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errUsage, err)
		}
		if ok {
			out = append(out, f)
		}
	}
	return out, nil
}

func newFoodShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Describe a food",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.store.Catalog.GetByID(args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), f.Describe(a.store.Catalog))
			return nil
		},
	}
}
