// Package tourney implements the domain model of a poker tournament
// results tracker: an append-only CSV ledger of tournament records,
// filters over it, and the aggregations computed from it (profit, ROI,
// ITM rate, period breakdowns and cumulative series).
//
// The package is the engine behind the 'mtt' command line tool; the
// user-facing commands live in the cmd package.
package tourney
