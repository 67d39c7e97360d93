package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/printforge/printforge/pkg/ingest"
	"github.com/printforge/printforge/pkg/units"
	"github.com/printforge/printforge/pkg/volume"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display geometry information about a model file",
	Long:  "Show triangle count, bounding box, the detected unit scale and the estimated volume.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
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

	factor := units.Factor(mesh)
	box := mesh.BoundingBox()
	size := box.Size()

	fmt.Println("Model Information")
	fmt.Println("=================")
	if mesh.Name != "" {
		fmt.Printf("Name: %s\n", mesh.Name)
	}
	fmt.Printf("File: %s\n\n", filename)

	fmt.Printf("Triangles: %d\n", mesh.TriangleCount())
	fmt.Printf("Bounding box: (%.4f, %.4f, %.4f) to (%.4f, %.4f, %.4f)\n",
		box.Min.X, box.Min.Y, box.Min.Z, box.Max.X, box.Max.Y, box.Max.Z)
	fmt.Printf("Dimensions: %.4f x %.4f x %.4f raw units\n", size.X, size.Y, size.Z)

	unit := "meters"
	if factor == units.MillimeterFactor {
		unit = "millimeters"
	}
	fmt.Printf("Detected unit: %s (factor %g)\n", unit, factor)
	fmt.Printf("Estimated volume: %.4f cm³\n", volume.EstimateCm3(mesh, factor))
}
