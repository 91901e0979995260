// =============================================================================
// Transaction Merger - Main Entry Point
// =============================================================================
//
// USAGE:
//   mergetx merge          - Merge the configured transaction files
//   mergetx version        - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Parsing, merging, logging and reporting
//   - pkg/           : Shared file utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/transaction-merger/cmd"
)

func main() {
	cmd.Execute()
}
