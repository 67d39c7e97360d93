package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/printforge/printforge/pkg/ingest"
	"github.com/printforge/printforge/pkg/pricing"
)

var (
	quoteMaterial string
	quoteScale    float64
)

var quoteCmd = &cobra.Command{
	Use:   "quote [file]",
	Short: "Price a print of the model",
	Long: `Estimate the model's volume and price a print in the chosen material.
The scale multiplier is applied cubically, since volume is a third-power
quantity. Use "printforge materials" to list available materials.`,
	Args: cobra.ExactArgs(1),
	Run:  runQuote,
}

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List the material catalog",
	Run:   runMaterials,
}

func init() {
	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(materialsCmd)

	quoteCmd.Flags().StringVarP(&quoteMaterial, "material", "m", pricing.DefaultMaterialID, "material identifier")
	quoteCmd.Flags().Float64VarP(&quoteScale, "scale", "s", 1.0, "linear scale multiplier")
}

func runQuote(cmd *cobra.Command, args []string) {
	filename := args[0]

	mat, err := pricing.Lookup(quoteMaterial)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
		os.Exit(1)
	}
	mesh, err := ingest.Ingest(data, filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing model: %v\n", err)
		os.Exit(1)
	}

	scale := pricing.ClampScale(quoteScale)
	if scale != quoteScale {
		fmt.Fprintf(os.Stderr, "scale %g clamped to %g\n", quoteScale, scale)
	}
	q := pricing.Derive(mesh, scale, mat)

	fmt.Println("Print Quote")
	fmt.Println("===========")
	fmt.Printf("Material: %s\n", mat.Name)
	fmt.Printf("Scale: %.2f\n", q.Scale)
	fmt.Printf("Volume: %.4f cm³\n", q.VolumeCm3)
	fmt.Printf("Price: %.2f %s\n", q.Cost, q.Currency)
}

func runMaterials(cmd *cobra.Command, args []string) {
	fmt.Println("Materials")
	fmt.Println("=========")
	for _, m := range pricing.Profiles() {
		fmt.Printf("  %-10s %-18s %.2f %s/cm³\n", m.ID, m.Name, m.CostPerCm3, pricing.Currency)
	}
}
