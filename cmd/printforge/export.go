package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/printforge/printforge/pkg/export"
	"github.com/printforge/printforge/pkg/ingest"
	"github.com/printforge/printforge/pkg/pricing"
)

var (
	exportOut      string
	exportBinary   bool
	exportMaterial string
	exportScale    float64
	exportBudget   int
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the model as a glTF scene",
	Long: `Convert a model file to a glTF 2.0 scene. The scale multiplier is
written as the node transform so consumers see both the geometry and its
intended real-world scale. Meshes over the triangle budget are decimated.`,
	Args: cobra.ExactArgs(1),
	Run:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output path (default: fixed artifact filename)")
	exportCmd.Flags().BoolVar(&exportBinary, "binary", true, "write a GLB container instead of JSON glTF")
	exportCmd.Flags().StringVarP(&exportMaterial, "material", "m", "", "export with this material's appearance (default: neutral)")
	exportCmd.Flags().Float64VarP(&exportScale, "scale", "s", 1.0, "linear scale multiplier")
	exportCmd.Flags().IntVar(&exportBudget, "triangle-budget", export.DefaultTriangleBudget, "decimate meshes above this triangle count")
}

func runExport(cmd *cobra.Command, args []string) {
	filename := args[0]

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

	opts := export.Options{
		Scale:  pricing.ClampScale(exportScale),
		Binary: exportBinary,
	}
	if exportMaterial != "" {
		mat, err := pricing.Lookup(exportMaterial)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		opts.Material = &mat
	}

	before := mesh.TriangleCount()
	mesh = export.Decimate(mesh, exportBudget)
	if mesh.TriangleCount() < before {
		fmt.Fprintf(os.Stderr, "decimated %d triangles to %d\n", before, mesh.TriangleCount())
	}

	out, err := export.GLTF(mesh, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting: %v\n", err)
		os.Exit(1)
	}

	path := exportOut
	if path == "" {
		path = opts.FileName()
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%d bytes, %s)\n", path, len(out), opts.ContentType())
}
