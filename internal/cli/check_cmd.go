package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/kesteai/internal/analytics"
	"github.com/alexanderramin/kesteai/internal/cli/formatter"
	"github.com/alexanderramin/kesteai/internal/repository"
)

var checkKinds = []string{"validity", "duplicates", "conflicts"}

// errProblemsFound makes check exit non-zero after the report is printed.
var errProblemsFound = errors.New("timetable has problems")

func newCheckCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:       "check [validity|duplicates|conflicts]",
		Short:     "Report invalid, duplicate or double-booked lessons",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: checkKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds := checkKinds
			if len(args) == 1 {
				kinds = args
			}
			report, problems, err := runChecks(cmd.Context(), a.Runtime.Store, kinds)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), report)
			if problems > 0 {
				return errProblemsFound
			}
			return nil
		},
	}
}

func runChecks(ctx context.Context, store *repository.Store, kinds []string) (string, int, error) {
	lessons, err := store.ListLessons(ctx)
	if err != nil {
		return "", 0, fmt.Errorf("listing lessons: %w", err)
	}

	var report string
	problems := 0
	for _, kind := range kinds {
		switch kind {
		case "validity":
			ref, err := loadReference(ctx, store)
			if err != nil {
				return "", 0, err
			}
			issues := analytics.CheckValidity(lessons, ref)
			problems += len(issues)
			report += formatter.FormatValidity(issues)
		case "duplicates":
			dups := analytics.FindDuplicates(lessons)
			problems += len(dups)
			report += formatter.FormatDuplicates(dups)
		case "conflicts":
			conflicts := analytics.FindConflicts(lessons)
			problems += len(conflicts)
			report += formatter.FormatConflicts(conflicts)
		}
		report += "\n"
	}
	return report, problems, nil
}

func loadReference(ctx context.Context, store *repository.Store) (analytics.Reference, error) {
	groups, err := store.ListGroups(ctx)
	if err != nil {
		return analytics.Reference{}, fmt.Errorf("listing groups: %w", err)
	}
	teachers, err := store.ListTeachers(ctx)
	if err != nil {
		return analytics.Reference{}, fmt.Errorf("listing teachers: %w", err)
	}
	subjects, err := store.ListSubjects(ctx)
	if err != nil {
		return analytics.Reference{}, fmt.Errorf("listing subjects: %w", err)
	}
	rooms, err := store.ListRooms(ctx)
	if err != nil {
		return analytics.Reference{}, fmt.Errorf("listing rooms: %w", err)
	}
	return analytics.NewReference(groups, teachers, subjects, rooms), nil
}
