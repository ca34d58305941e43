// Package cleaner extracts one text column from a comma-delimited export and
// strips the inline size markers left behind by the dump.
//
// Records before a fixed index are treated as dump preamble. Blank physical
// lines count as empty records so the index agrees with line-oriented CSV
// readers that report them. Short rows are dropped silently and tallied in
// Stats.Malformed; they never abort a run.
package cleaner
