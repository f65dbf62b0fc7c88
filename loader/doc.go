// Package loader turns glob patterns into the ordered declaration sequence
// consumed by the merger.
//
// Loading happens in three steps:
//
//  1. [Resolve] expands doublestar glob patterns (`**` supported) into a
//     de-duplicated file list. Matches of each pattern are sorted; patterns
//     are applied in the order given.
//  2. [Loader.Parse] reads and parses every file concurrently, at most
//     [Loader.Concurrency] at a time. Results land in a slice indexed by file
//     position, so the output order never depends on scheduling.
//  3. [Collect] concatenates the per-file declarations in file order, then
//     in-file order. This order defines "first occurrence" for the merger.
//
// A file that cannot be read or parsed does not fail the load. It contributes
// no declarations, is logged as a warning and is reported in [Result.Skipped].
//
// Parsed documents are cached in an LRU keyed by path and a HighwayHash of the
// content, so long-lived loaders (such as the MCP server) re-parse only files
// that changed.
package loader
