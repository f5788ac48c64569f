// Package reviewer talks to the external code review model.
//
// The client sends a fixed instruction template embedding the submitted code
// and language, requests a JSON-only chat completion, and decodes the answer
// into a review.Result. Models frequently wrap JSON in code fences or prose;
// DecodeModelJSON strips that before the strict unmarshal. Any upstream
// failure, timeout, or undecodable payload surfaces as an external service
// error with no partial result. The client performs no retries: a single
// failure fails the whole request.
package reviewer
