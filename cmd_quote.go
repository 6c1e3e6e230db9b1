package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"soffit-quote/domain"
	"soffit-quote/repository"
	"soffit-quote/service"
)

var quoteFlags struct {
	linearFeet   float64
	overhang     float64
	installation string
	material     string
	serviceType  string
	zip          string
	asJSON       bool
}

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Price a job from the command line",
	Long: `Runs the estimator with the configured price table and prints the result.

Example:
  soffit-quote quote --linear-feet 150 --overhang 1.5 --material vinyl --service remove_replace`,
	RunE: runQuote,
}

func init() {
	f := quoteCmd.Flags()
	f.Float64Var(&quoteFlags.linearFeet, "linear-feet", 0, "total soffit run in feet")
	f.Float64Var(&quoteFlags.overhang, "overhang", 0, "overhang depth in feet")
	f.StringVar(&quoteFlags.installation, "installation", string(domain.InstallationSoffitFascia), "soffit_fascia | double_j")
	f.StringVar(&quoteFlags.material, "material", string(domain.MaterialAluminum), "aluminum | vinyl")
	f.StringVar(&quoteFlags.serviceType, "service", string(domain.ServiceNewConstruction), "new_construction | remove_replace | repair")
	f.StringVar(&quoteFlags.zip, "zip", "", "optional Florida ZIP code")
	f.BoolVar(&quoteFlags.asJSON, "json", false, "print the full estimate as JSON")
	_ = quoteCmd.MarkFlagRequired("linear-feet")
	_ = quoteCmd.MarkFlagRequired("overhang")
}

func runQuote(cmd *cobra.Command, args []string) error {
	cache := repository.NewMemoryCache()
	defer cache.Close()

	svc := service.NewQuoteService(
		service.NewEstimator(cfg.Pricing),
		repository.NewEstimateRepositoryMemory(),
		cache,
		logger,
	)

	result, err := svc.Quote(cmd.Context(), domain.QuoteRequest{
		LinearFeet:       quoteFlags.linearFeet,
		OverhangFeet:     quoteFlags.overhang,
		InstallationType: quoteFlags.installation,
		MaterialType:     quoteFlags.material,
		ServiceType:      quoteFlags.serviceType,
		ZipCode:          quoteFlags.zip,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if quoteFlags.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	printEstimate(out, result.Estimate)
	return nil
}

func printEstimate(w io.Writer, e domain.CostEstimate) {
	q := e.Quantities
	b := e.MaterialBreakdown
	fmt.Fprintf(w, "%s, %g ft x %g ft overhang\n", e.Installation.Name, e.LinearFeet, e.OverhangFeet)
	fmt.Fprintf(w, "  soffit panels  %4d  %s\n", q.SoffitPanels, service.FormatCurrency(b.Soffit))
	fmt.Fprintf(w, "  j-channel      %4d  %s\n", q.JChannel, service.FormatCurrency(b.JChannel))
	fmt.Fprintf(w, "  fascia         %4d  %s\n", q.Fascia, service.FormatCurrency(b.Fascia))
	fmt.Fprintf(w, "  nail boxes     %4d  %s\n", q.NailBoxes, service.FormatCurrency(b.Nails))
	fmt.Fprintf(w, "materials  %s\n", service.FormatCurrency(e.MaterialCost))
	fmt.Fprintf(w, "labor      %s\n", service.FormatCurrency(e.LaborCost))
	if e.VolumeDiscountApplied {
		fmt.Fprintf(w, "discount  -%s\n", service.FormatCurrency(e.DiscountAmount))
	}
	if e.RepairMinimumApplied {
		fmt.Fprintln(w, "repair minimum applied")
	}
	fmt.Fprintf(w, "subtotal   %s\n", service.FormatCurrency(e.TotalCost))
	fmt.Fprintf(w, "tax %.1f%%  %s\n", e.TaxRate*100, service.FormatCurrency(e.TaxAmount))
	fmt.Fprintf(w, "total      %s\n", service.FormatCurrency(e.FinalTotal))
}
