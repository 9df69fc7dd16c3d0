package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/kesteai/internal/importer"
)

func newSeedCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "seed <file.json>",
		Short: "Import groups, teachers, rooms, subjects and lessons from a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := importer.LoadSeedSchema(args[0])
			if err != nil {
				return err
			}
			if errs := importer.ValidateSeedSchema(schema); len(errs) > 0 {
				return fmt.Errorf("seed file is invalid:\n%w", errors.Join(errs...))
			}

			res, err := importer.Apply(cmd.Context(), a.Runtime.Store, a.Runtime.IDs, schema)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Seeded %d groups, %d teachers, %d rooms, %d subjects, %d lessons",
				res.Groups, res.Teachers, res.Rooms, res.Subjects, res.Lessons)
			if res.NoticeSet {
				fmt.Fprint(out, " and the notice")
			}
			fmt.Fprintln(out, ".")
			return nil
		},
	}
}
