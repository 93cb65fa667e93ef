package vulnticket

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vulnticket/vulnticket/internal/table"
)

func init() {
	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Validate a scan export's columns before building tickets",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := table.Load(args[0], flagSheet)
			var missing *table.MissingColumnsError
			if errors.As(err, &missing) {
				fmt.Fprintln(cmd.OutOrStdout(), "Missing required columns:")
				for _, col := range missing.Columns {
					fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", col)
				}
				return fmt.Errorf("%d required columns missing", len(missing.Columns))
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OK: all required columns present, %d data rows\n", len(records))
			return nil
		},
	}
	rootCmd.AddCommand(cmd)
}
