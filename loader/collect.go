package loader

import "github.com/erraggy/greem/sdl"

// Collect flattens per-file results into one declaration sequence: file order
// first, then in-file order. Skipped files contribute nothing. The result is
// empty, never nil, when there is nothing to collect.
func Collect(results []FileResult) []sdl.Item {
	n := 0
	for _, r := range results {
		n += len(r.Declarations)
	}
	items := make([]sdl.Item, 0, n)
	for _, r := range results {
		for _, d := range r.Declarations {
			items = append(items, sdl.Item{File: r.Path, Declaration: d})
		}
	}
	return items
}
