// Package utils provides common utility functions for the deck-finder application.
// Its conversions turn the loosely typed values scanned from relational
// sources (ints stored as text, NULLs, byte slices) into the concrete types
// the compiler expects.
package utils
