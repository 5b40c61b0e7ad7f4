// Package pipeline sequences one extraction run.
//
// A run loads the needle and haystack tables, optionally splits the
// haystack's attribute column, keeps the haystack rows whose search value
// appears in the needle's search column, writes them to the output file, and
// then computes which needle values found no row.
//
// The output file is written before unmatched values are computed, so a
// failure in the last stage still leaves the extracted rows on disk.
//
// Every stage failure is returned as a *StageError naming the stage.
// There are no retries; the first error ends the run.
package pipeline
