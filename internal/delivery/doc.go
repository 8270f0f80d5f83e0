// Package delivery moves predicted puzzles from their publishers into the
// destination cloud folder.
//
// For a single puzzle the Pipeline runs four strictly sequential steps:
//
//  1. idempotency check: the destination listing already holds the canonical
//     name, so the puzzle was delivered on an earlier run;
//  2. download of the publisher URL into local storage;
//  3. readiness gate: payloads below the minimum size are placeholders for
//     puzzles that are not published yet;
//  4. upload under the canonical name (and an optional archive copy).
//
// Already-delivered and not-yet-published puzzles are successful no-ops.
// Run starts one pipeline per puzzle, waits for all of them, and reports a
// Result for each; a failure of one puzzle never stops its siblings.
package delivery
