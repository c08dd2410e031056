// Package modelsel routes task categories to cost-tiered models and provides
// coarse token and budget arithmetic. Lookups are total: unknown categories
// route to sonnet and nothing in this package panics on odd input.
package modelsel
