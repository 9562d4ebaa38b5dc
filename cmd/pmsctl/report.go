package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func reportCmd() *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "report <empId> <weekId>",
		Short: "Download the weekly report PDF",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			empID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid empId %q", args[0])
			}
			weekID, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid weekId %q", args[1])
			}

			c, _, err := apiClient()
			if err != nil {
				return err
			}

			pdf, err := c.Report(cmd.Context(), empID, weekID)
			if err != nil {
				return fmt.Errorf("download report: %s", describeErr(err))
			}

			if outFile == "" {
				outFile = fmt.Sprintf("weekly-%d-%d.pdf", empID, weekID)
			}
			if err := os.WriteFile(outFile, pdf, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", outFile, err)
			}
			fmt.Printf("Wrote %s (%d bytes)\n", outFile, len(pdf))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default weekly-<empId>-<weekId>.pdf)")
	return cmd
}
