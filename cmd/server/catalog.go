package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"hostpro/application"
	"hostpro/domain/catalog"
	"hostpro/infrastructure/serialization"
)

type catalogOptions struct {
	jsonOutput bool
}

// catalogSummary is the machine-readable form of the catalog command output.
type catalogSummary struct {
	Plans    []catalogPlan `json:"plans"`
	TLDs     int           `json:"tlds"`
	Services int           `json:"services"`
	Invoices int           `json:"invoices"`
	Tickets  int           `json:"tickets"`
	Paid     float64       `json:"paid"`
	Due      float64       `json:"outstanding"`
}

type catalogPlan struct {
	Name    string  `json:"name"`
	Monthly float64 `json:"monthly"`
	Yearly  float64 `json:"yearly"`
}

func newCatalogCmd() *cobra.Command {
	opts := &catalogOptions{}

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print a summary of the embedded mock catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := catalog.Load()
			if err != nil {
				return fmt.Errorf("catalog: %w", err)
			}
			return runCatalog(cmd.OutOrStdout(), c, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func summarize(c *catalog.Catalog) catalogSummary {
	totals := application.NewCatalogService(c).Totals()

	s := catalogSummary{
		TLDs:     len(c.TLDs),
		Services: len(c.Services),
		Invoices: totals.Count,
		Tickets:  len(c.Tickets),
		Paid:     totals.Paid,
		Due:      totals.Outstanding,
	}
	for _, p := range c.Plans {
		s.Plans = append(s.Plans, catalogPlan{Name: p.Name, Monthly: p.MonthlyPrice, Yearly: p.YearlyPrice})
	}
	return s
}

func runCatalog(out io.Writer, c *catalog.Catalog, opts *catalogOptions) error {
	s := summarize(c)
	if opts.jsonOutput {
		return serialization.Encode(out, s)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PLAN\tMONTHLY\tYEARLY")
	for _, p := range s.Plans {
		fmt.Fprintf(w, "%s\t$%s\t$%s\n", p.Name, humanize.FormatFloat("#,###.##", p.Monthly), humanize.FormatFloat("#,###.##", p.Yearly))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%d domain extensions, %d services, %d tickets\n", s.TLDs, s.Services, s.Tickets)
	fmt.Fprintf(out, "%d invoices: $%s paid, $%s outstanding\n",
		s.Invoices, humanize.FormatFloat("#,###.##", s.Paid), humanize.FormatFloat("#,###.##", s.Due))
	return nil
}
