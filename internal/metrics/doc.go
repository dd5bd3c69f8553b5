// Package metrics implements the training program metrics pipeline: the
// generator producing the chronological sequence of daily records, the
// aggregation functions deriving attendance and performance summaries from
// it, and the impact assessment comparing baseline and endline records.
//
// All aggregation functions are pure functions over an immutable record
// sequence. They either return a fully valid summary or fail loudly with a
// typed error; no value is silently substituted on short sequences or zero
// denominators, since that would corrupt downstream statistics.
package metrics
