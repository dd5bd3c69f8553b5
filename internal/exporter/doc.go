// Package exporter persists record sequences as flat tabular artifacts.
// The CSV form is the canonical artifact and round-trips every field value
// exactly; the XLSX form mirrors it for spreadsheet consumers.
package exporter
