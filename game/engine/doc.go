// Package engine implements the FlowQuest turn and cell-resolution state
// machine.
//
// A Game owns one match: the player roster, whose turn it is, the board
// encounter in flight and the append-only event log. Rolling two dice
// moves the active player around the 40-cell ring, pays the pass-start
// bonus, and dispatches the landing cell to its encounter resolver.
// Encounters that need a human choice suspend the turn on a
// PendingEncounter; automated players resolve everything inline through
// seeded random policies. After every mutation the victory evaluator
// sweeps each active player's mission predicate.
//
// All state changes flow through the event reducer: the engine emits an
// event, the reducer folds it into the live state, and Replay can rebuild
// the exact same state from the initial snapshot plus the log. That keeps
// persistence, reconnects and tests on a single source of truth.
//
// A Game is not safe for concurrent use. The service layer serializes
// access per session, which preserves the one-live-decision discipline.
package engine
