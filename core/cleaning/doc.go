// Package cleaning implements the spreadsheet cleaning and alias-learning
// engine: deterministic extraction of size, product-name and price fields
// from messy vendor text, combined with a persistent, self-improving
// dictionary of learned corrections.
//
// # Pipeline
//
// An uploaded sheet becomes a Session holding one ParsedRow per source row.
// Assigning a column to a mode scans every row through the Matcher against
// the session's Dictionary. The operator reconciles the remainder through the
// Controller: direct edits, free-text span selections, and rule promotion.
// Promoting a correction writes the rule to the AliasStore and rescans the
// full row collection, so one rule resolves every equivalent raw string in a
// single operation. Export writes the final values back onto copies of the
// original rows.
//
// # Purity and ownership
//
// The Matcher is pure; the Dictionary is an explicit versioned collection
// mutated only by the Controller. The engine performs no I/O except through
// the AliasStore interface. Sessions are single-writer: the feature layer
// serializes operator actions per session.
package cleaning
