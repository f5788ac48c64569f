// Package dispatch runs the review workflow: fingerprint the submission,
// consult the result cache, fall through to the external model on a miss,
// and append an immutable history record either way.
package dispatch
