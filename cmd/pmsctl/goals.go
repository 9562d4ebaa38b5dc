package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"pms/internal/client"
	"pms/internal/client/session"
	"pms/internal/tableview"
)

func goalsCmd() *cobra.Command {
	var (
		weeksFlag string
		sortBy    string
		desc      bool
		page      int
		pageSize  int
	)

	cmd := &cobra.Command{
		Use:   "goals [empId]",
		Short: "List weekly goal rows grouped by goal",
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
			weeks, err := parseWeeksFlag(weeksFlag)
			if err != nil {
				return err
			}

			pageData, err := c.WeeklyGoals(cmd.Context(), empID, weeks)
			if err != nil {
				return fmt.Errorf("load goals: %s", describeErr(err))
			}

			projection := tableview.Project(
				client.Records(client.GoalRows(pageData.Goals)),
				tableview.FilterSpec{},
				tableview.SortSpec{Field: sortBy, Descending: desc},
				tableview.PageSpec{Index: page, Size: pageSize},
				"GoalID",
			)

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "  GOAL\tTITLE\tWEEK\tEFFORT\tSTATUS\tRATING")
			for i, row := range projection.Rows {
				marker := " "
				if projection.RowStyleFlags[i] {
					marker = "*"
				}
				fmt.Fprintf(w, "%s %v\t%v\t%v\t%v\t%v\t%v\n",
					marker, row["GoalID"], row["Title"], row["WeekNumber"],
					row["Effort"], row["Status"], row["OwnRating"])
			}
			w.Flush()

			if len(pageData.GoalsSummary) > 0 {
				fmt.Println()
				sw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(sw, "GOAL\tTOTAL EFFORT\tSHARE")
				for _, s := range pageData.GoalsSummary {
					fmt.Fprintf(sw, "%s\t%.1f\t%.2f%%\n", s.GoalID, s.Effort, s.EffortsPercentage)
				}
				sw.Flush()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&weeksFlag, "weeks", "", "comma-separated week numbers (empty = all)")
	cmd.Flags().StringVar(&sortBy, "sort", "", "sort by column (e.g. WeekNumber, Effort)")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort descending")
	cmd.Flags().IntVar(&page, "page", 0, "zero-based page index")
	cmd.Flags().IntVar(&pageSize, "page-size", 0, "rows per page (0 = all)")
	return cmd
}

func parseWeeksFlag(raw string) ([]int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	weeks := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid week number %q", p)
		}
		weeks = append(weeks, n)
	}
	return weeks, nil
}

// resolveEmpID takes the positional employee id when given, otherwise
// falls back to the signed-in user.
func resolveEmpID(args []string, user *session.User) (int, error) {
	if len(args) > 0 {
		empID, err := strconv.Atoi(args[0])
		if err != nil {
			return 0, fmt.Errorf("invalid empId %q", args[0])
		}
		return empID, nil
	}
	if user == nil {
		return 0, errors.New("not logged in; pass an empId or run pmsctl login")
	}
	return user.EmpID, nil
}
