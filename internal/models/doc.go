// Package models defines the core domain model for autogallery.
//
// # Models
//
//   - Automobile: one vehicle in the gallery inventory
//
// Records have no stable identity in the data file. Within a session they are
// addressed by their 1-based position in the inventory, so removing a record
// shifts the positions of every record after it. Automobile.ID exists only to
// correlate log lines for the lifetime of one session and is never persisted.
//
// # Formatting
//
// Prices are printed in their shortest exact decimal form with a trailing
// ".0" for integral values, both on screen and in the data file, so that a
// saved file reads back to the same values.
package models
