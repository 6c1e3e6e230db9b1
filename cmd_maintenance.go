package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	purgeDays   int
	exportLimit int
)

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete stored estimate requests past the retention period",
	RunE: func(cmd *cobra.Command, args []string) error {
		days := cfg.Retention.MaxAgeDays
		if purgeDays > 0 {
			days = purgeDays
		}
		if days <= 0 {
			return fmt.Errorf("retention is disabled; pass --days")
		}

		a := buildApp(cmd.Context(), cfg, logger)
		defer a.Close()

		n, err := a.submissions.Purge(cmd.Context(), time.Duration(days)*24*time.Hour)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted %d submissions older than %d days\n", n, days)
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write stored estimate requests as JSON lines",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := buildApp(cmd.Context(), cfg, logger)
		defer a.Close()

		subs, err := a.submissions.List(cmd.Context(), exportLimit)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		for _, s := range subs {
			if err := enc.Encode(s); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	purgeCmd.Flags().IntVar(&purgeDays, "days", 0, "override retention.max_age_days")
	exportCmd.Flags().IntVar(&exportLimit, "limit", 0, "newest N submissions (0 = all)")
}
