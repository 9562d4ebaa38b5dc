package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"pms/internal/client"
	"pms/internal/tableview"
)

func weeksCmd() *cobra.Command {
	var (
		status   string
		sortBy   string
		desc     bool
		page     int
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "weeks [empId]",
		Short: "List recent weeks with summary counters",
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

			listing, err := c.WeekListing(cmd.Context(), empID)
			if err != nil {
				return fmt.Errorf("load weeks: %s", describeErr(err))
			}

			var filter tableview.FilterSpec
			if status != "" {
				filter = tableview.FieldEquals("Status", status)
			}
			projection := tableview.Project(
				client.Records(client.WeekDetails(listing)),
				filter,
				tableview.SortSpec{Field: sortBy, Descending: desc},
				tableview.PageSpec{Index: page, Size: pageSize},
				"Status",
			)

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "  WEEK\tSTART\tEND\tWD\tH\tL\tWFH\tWFO\tED\tEFFORTS\tSTATUS")
			for i, row := range projection.Rows {
				marker := " "
				if projection.RowStyleFlags[i] {
					marker = "*"
				}
				fmt.Fprintf(w, "%s %v\t%v\t%v\t%v\t%v\t%v\t%v\t%v\t%v\t%v\t%v\n",
					marker, row["WeekNumber"], row["StartDate"], row["EndDate"],
					row["WD"], row["H"], row["L"], row["WFH"], row["WFO"],
					row["ED"], row["Efforts"], row["Status"])
			}
			w.Flush()
			fmt.Printf("%d of %d weeks\n", len(projection.Rows), projection.TotalCount)
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by status label (e.g. Reviewed)")
	cmd.Flags().StringVar(&sortBy, "sort", "", "sort by column (e.g. WeekNumber, Efforts)")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort descending")
	cmd.Flags().IntVar(&page, "page", 0, "zero-based page index")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "rows per page (0 = all)")
	return cmd
}
