package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "printforge",
	Short: "Estimate print volume and cost for 3D model files",
	Long: `printforge analyzes STL and OBJ model files: it estimates the enclosed
volume with a unit heuristic, prices the print against the material catalog,
and exports glTF scenes for downstream tools.`,
	Version: "1.0.0",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
