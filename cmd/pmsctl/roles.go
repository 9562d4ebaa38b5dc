package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func rolesCmd() *cobra.Command {
	var flag string

	cmd := &cobra.Command{
		Use:   "roles [empId]",
		Short: "Show role assignments and divisions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, user, err := apiClient()
			if err != nil {
				return err
			}
			empID, err := resolveEmpID(args, user)
			if err != nil {
				return err
			}

			sheet, err := c.Roles(cmd.Context(), empID, flag)
			if err != nil {
				return fmt.Errorf("load roles: %s", describeErr(err))
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "FUNCTION\tTITLE\tDIVISION\tP\tM\tA\tR\tD")
			for _, a := range sheet.Roles {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%d\t%d\n",
					a.Role.FunctionCode, a.FunctionTitle, a.Division,
					a.Role.Perform, a.Role.Manage, a.Role.Audit,
					a.Role.Rescue, a.Role.Define)
			}
			w.Flush()

			if len(sheet.Divisions) > 0 {
				fmt.Println()
				fmt.Println("Divisions:")
				for _, d := range sheet.Divisions {
					fmt.Printf("  %s  %s\n", d.DivisionCode, d.Division)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flag, "flag", "", "A for all assignments, E for editable only")
	return cmd
}
