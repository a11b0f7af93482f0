// Package inventory turns a free-text card list into a lookup table of owned
// quantities.
//
// # Grammar
//
// One item per line, blank lines ignored:
//
//	line     = [ quantity whitespace ] name
//	quantity = digit { digit }
//
// A missing quantity counts as 1. Names are trimmed and lowercased; repeated
// names are summed.
//
// # Validation
//
// Validate checks a submission before it is parsed: it must contain at least
// one non-blank line and every non-blank line must use only letters
// (including accented Latin letters), digits, spaces and the punctuation
// - , ' ’ . ( ) ! / : . Validation is all or nothing.
package inventory
