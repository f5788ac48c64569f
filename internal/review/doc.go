// Package review defines the structured review payload produced by the
// external reviewer, the validation rules applied at that boundary, and the
// fingerprint used as the cache key for submitted code.
//
// Fingerprints are exact-match over the raw submitted bytes: no trimming,
// dedenting, or other normalization is applied, so any byte difference in
// code or language tag yields a different key.
package review
