// Package store provides the persistence layer for employees and their daily attendance.
// It keeps both tables in a single SQLite file opened in WAL mode, runs every operation
// as its own transaction, and translates uniqueness violations into ErrConflict.
package store
