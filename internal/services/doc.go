// Package services defines shared utilities consumed by the review dispatch
// workflow and the API layer.
//
// Key responsibilities:
//   - Structured error markers plus the Wrap helper that tag failures for
//     consistent classification and HTTP status mapping.
//   - Context helpers that stamp request and session identifiers for logging.
package services
