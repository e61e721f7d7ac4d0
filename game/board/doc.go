// Package board defines the static FlowQuest board and its content catalogs.
//
// The board is a fixed ring of 40 cells. Each cell has a type that drives
// encounter dispatch in the engine, and alliance cells carry one of four
// region names. The package also holds the authored content tables the
// encounters draw from: missions, life cards, enigmas, shop items, resource
// offers and normal-cell flavor events.
//
// Everything in this package is immutable data plus pure selection helpers.
// Randomized selection (card draws, enigma assignment) takes the caller's
// random source so games stay reproducible under a seeded generator.
package board
