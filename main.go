// =============================================================================
// Bulk Claim Converter - Main Entry Point
// =============================================================================
//
// CLI for converting provider bulk claim submission files (legacy CSV and
// bulk-load XML) into the canonical submission model used downstream.
//
// USAGE:
//   bulkclaim process       - Convert all submission files in the input directory
//   bulkclaim inspect       - Parse a single file and dump its structure
//   bulkclaim version       - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Core business logic (not for external import)
//   - pkg/           : Shared utilities
//
// =============================================================================

package main

import (
	"github.com/openlegalaid/bulkclaim/cmd"
)

func main() {
	cmd.Execute()
}
