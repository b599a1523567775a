package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/billel/trivia/internal/opentdb"
	"github.com/billel/trivia/internal/ui/theme"
)

// countConcurrency bounds parallel count requests; the API rate-limits bursts.
const countConcurrency = 4

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List trivia categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		withCounts, _ := cmd.Flags().GetBool("counts")

		switch output {
		case "table", "json", "yaml":
		default:
			return fmt.Errorf("unknown output format %q (want table, json or yaml)", output)
		}

		env, err := setup(cmd)
		if err != nil {
			return err
		}
		defer env.close()

		ctx := cmd.Context()

		cats, err := env.client.ListCategories(ctx)
		if err != nil {
			return fmt.Errorf("list categories: %w", err)
		}

		rows := make([]categoryRow, len(cats))
		for i, c := range cats {
			rows[i] = categoryRow{ID: c.ID, Name: c.Name}
		}

		if withCounts {
			ids := make([]int, len(cats))
			for i, c := range cats {
				ids[i] = c.ID
			}
			counts, err := env.client.CountAll(ctx, ids, countConcurrency)
			if err != nil {
				return fmt.Errorf("count questions: %w", err)
			}
			attachCounts(rows, counts)
		}

		return writeCategories(cmd.OutOrStdout(), output, rows, withCounts)
	},
}

func init() {
	categoriesCmd.Flags().Bool("counts", false, "Include per-difficulty question counts")
	categoriesCmd.Flags().StringP("output", "o", "table", "Output format: table, json or yaml")
}

type categoryRow struct {
	ID     int                    `json:"id" yaml:"id"`
	Name   string                 `json:"name" yaml:"name"`
	Counts *opentdb.CategoryCount `json:"counts,omitempty" yaml:"counts,omitempty"`
}

func attachCounts(rows []categoryRow, counts []opentdb.CategoryCount) {
	byID := make(map[int]opentdb.CategoryCount, len(counts))
	for _, c := range counts {
		byID[c.CategoryID] = c
	}
	for i := range rows {
		if c, ok := byID[rows[i].ID]; ok {
			rows[i].Counts = &c
		}
	}
}

func writeCategories(w io.Writer, format string, rows []categoryRow, withCounts bool) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return err
		}
		return enc.Close()
	}

	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, "No categories found.")
		return err
	}

	header := lipgloss.NewStyle().Bold(true).Foreground(theme.Primary)
	if withCounts {
		fmt.Fprintln(w, header.Render(fmt.Sprintf("%-5s  %-44s  %6s  %6s  %6s  %6s", "ID", "Name", "Total", "Easy", "Medium", "Hard")))
		fmt.Fprintln(w, strings.Repeat("─", 82))
	} else {
		fmt.Fprintln(w, header.Render(fmt.Sprintf("%-5s  %s", "ID", "Name")))
		fmt.Fprintln(w, strings.Repeat("─", 52))
	}

	for _, r := range rows {
		if withCounts && r.Counts != nil {
			fmt.Fprintf(w, "%-5d  %-44s  %6d  %6d  %6d  %6d\n",
				r.ID, r.Name, r.Counts.Total, r.Counts.Easy, r.Counts.Medium, r.Counts.Hard)
			continue
		}
		fmt.Fprintf(w, "%-5d  %s\n", r.ID, r.Name)
	}
	return nil
}
