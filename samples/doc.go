// Package samples holds a small product catalogue, a few word and number
// lists, and named queries that exercise each element operation on them.
package samples
