// Package io reads word lists and encodes anagram results for output.
//
// # Input
//
// [ReadWords] accepts either a JSON array of strings or plain text with one
// word per line. Blank lines are skipped; spaces inside a line are kept, so
// multi-word phrases such as "la mora" stay intact:
//
//	roma
//	amor
//	la mora
//
// # Output
//
// The document types in this package ([Generation], [Comparison],
// [Counts], [Keys], [Shuffles], [GroupsDoc], [ExamplesDoc]) describe every
// result the command line can print. [Encode] writes any of them as
// indented JSON or YAML. Text output is styled by the caller.
//
// Anagram groups are converted with [FromGroups], which keeps the
// first-occurrence order of the keys; a plain map would lose it.
package io
