// Package quiz implements a handful of pure transformations over integer
// ranges, family records and text.
//
// Every function allocates its result on each call and never mutates its
// input, so all of them are safe for concurrent use. Failures are reported
// through the sentinel errors below and can be matched with errors.Is.
package quiz
