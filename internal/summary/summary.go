// Package summary handles end-of-run reporting.
package summary

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/bethropolis/promptpack/internal/utils"
	"github.com/bethropolis/promptpack/internal/walker"
)

// DisplayResults reports the processed-file count and elapsed time through
// the logger. Quiet runs suppress this at the logger level.
func DisplayResults(log utils.Logger, counters *walker.Counters, duration time.Duration) {
	log.Info("Found and processed %d files.", counters.Processed)
	log.Info("Scan complete in %v.", duration.Round(time.Millisecond))
}

// DisplaySkippedItems prints every skipped path and its reason to output,
// sorted by path. Item lines go to the writer unconditionally; only the
// framing runs through the logger.
func DisplaySkippedItems(log utils.Logger, skippedItems []walker.SkippedItem, output io.Writer) {
	log.Info("--- Skipped Items (%d) ---", len(skippedItems))
	if len(skippedItems) == 0 {
		log.Info("No items were skipped.")
		return
	}

	sort.Slice(skippedItems, func(i, j int) bool {
		return skippedItems[i].Path < skippedItems[j].Path
	})
	for _, item := range skippedItems {
		typeStr := "FILE"
		if item.IsDir {
			typeStr = "DIR "
		}
		fmt.Fprintf(output, "Skipped %s: %-.*s [%s]\n",
			typeStr,
			50,
			item.Path,
			item.Reason,
		)
	}
	log.Info("--- End Skipped Items ---")
}
