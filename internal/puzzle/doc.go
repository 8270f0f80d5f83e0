// Package puzzle models the daily puzzles puzzlepost delivers and predicts,
// for each one, where it is published and what it is called once delivered.
//
// A puzzle is identified by its Kind (source and variant) and the calendar
// date it belongs to. Predictor turns an Identity into a DeliverySpec using a
// fixed table of URL bases and date-token templates; an Identity whose Kind is
// not in the table is rejected with ErrUnknownPuzzle.
package puzzle
