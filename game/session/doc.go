// Package session manages the lifecycle and storage of game sessions.
//
// A session binds a short case-insensitive ID to one running match, its
// rules profile and its access timestamps. The Manager keeps sessions in
// memory and, when configured with a SessionPersistence backend, writes
// them through on creation and on demand and falls back to storage on a
// cache miss.
//
// Two backends are provided:
//   - FilePersistence: one JSON document per session under a directory
//   - SQLitePersistence: one row per session in a SQLite database
//
// Both store the pre-game snapshot plus the full event log rather than
// the live state; restoring replays the log through the engine, so a
// stored session can never disagree with the rules that produced it.
package session
