// Package taxengine computes the shared figures of every sales document:
// normalized line items, the GST tax summary, totals with round-off, and the
// amount in words. All functions are pure and safe for concurrent use.
package taxengine
