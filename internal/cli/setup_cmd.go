package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/snacks/internal/cli/formatter"
	"github.com/alexanderramin/snacks/internal/domain"
	"github.com/alexanderramin/snacks/internal/service"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var equipmentLabels = map[domain.Equipment]string{
	domain.EquipmentPullupBar: "Pull-up bar",
	domain.EquipmentDumbbells: "Dumbbells",
	domain.EquipmentBarbell:   "Barbell",
	domain.EquipmentTreadmill: "Treadmill",
}

func newSetupCmd(app *App) *cobra.Command {
	var equipmentFlag []string
	var sessionSize int

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Configure available equipment and session size",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			profile, err := app.Profile.Get(ctx)
			if err != nil {
				return err
			}

			equipment := profile.Equipment
			size := profile.SessionSize

			if cmd.Flags().Changed("equipment") || cmd.Flags().Changed("session-size") {
				if cmd.Flags().Changed("equipment") {
					equipment, err = parseEquipmentFlag(equipmentFlag)
					if err != nil {
						return err
					}
				}
				if cmd.Flags().Changed("session-size") {
					size = sessionSize
				}
			} else {
				if !app.interactive() {
					return fmt.Errorf("stdin is not a terminal; use --equipment and --session-size")
				}
				equipment, size, err = promptSetup(equipment, size)
				if err != nil {
					return err
				}
			}

			if err := app.Profile.Update(ctx, equipment, size); err != nil {
				return err
			}

			summary := equipment.String()
			if summary == "" {
				summary = "bodyweight only"
			}
			fmt.Printf("%s equipment: %s, session size: %d\n",
				formatter.StyleGreen.Render("Profile saved."), summary, size)

			if _, err := app.Workouts.PlanSession(ctx); errors.Is(err, service.ErrNoExercises) {
				fmt.Println(formatter.StyleYellow.Render("No exercises are usable with this profile; check your equipment choices."))
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&equipmentFlag, "equipment", nil,
		"Equipment you own (pullup_bar, dumbbells, barbell, treadmill); pass \"none\" for bodyweight only")
	cmd.Flags().IntVar(&sessionSize, "session-size", 0, "Exercises per session")

	return cmd
}

// promptSetup runs the interactive form, pre-filled from the stored profile.
func promptSetup(current domain.EquipmentSet, currentSize int) (domain.EquipmentSet, int, error) {
	options := make([]huh.Option[string], 0, len(domain.AllEquipment))
	for _, e := range domain.AllEquipment {
		options = append(options, huh.NewOption(equipmentLabels[e], string(e)).Selected(current[e]))
	}

	selected := current.Names()
	size := strconv.Itoa(currentSize)

	form := huh.NewForm(huh.NewGroup(
		huh.NewMultiSelect[string]().
			Title("Which equipment do you have?").
			Description("Space to toggle, enter to confirm").
			Options(options...).
			Value(&selected),
		huh.NewInput().
			Title("Exercises per session").
			Value(&size).
			Validate(validateSessionSize),
	)).WithTheme(snacksHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return nil, 0, fmt.Errorf("running setup form: %w", err)
	}

	set := make(domain.EquipmentSet, len(selected))
	for _, name := range selected {
		set[domain.Equipment(name)] = true
	}
	n, err := strconv.Atoi(strings.TrimSpace(size))
	if err != nil {
		return nil, 0, fmt.Errorf("parsing session size: %w", err)
	}
	return set, n, nil
}

// parseEquipmentFlag validates the --equipment values. The sentinel "none"
// clears the set so scripts can distinguish "no change" from "no equipment".
func parseEquipmentFlag(values []string) (domain.EquipmentSet, error) {
	if len(values) == 1 && strings.EqualFold(values[0], "none") {
		return nil, nil
	}
	set := make(domain.EquipmentSet, len(values))
	for _, v := range values {
		v = strings.TrimSpace(strings.ToLower(v))
		if !domain.ValidEquipment[v] {
			return nil, fmt.Errorf("unknown equipment %q (valid: pullup_bar, dumbbells, barbell, treadmill)", v)
		}
		set[domain.Equipment(v)] = true
	}
	return set, nil
}

func validateSessionSize(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("enter a number")
	}
	if n < 1 {
		return fmt.Errorf("at least 1 exercise per session")
	}
	return nil
}
