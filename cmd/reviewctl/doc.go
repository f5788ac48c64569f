// Command reviewctl is the CLI client for the reviewd daemon. It submits
// code for review, browses session history, and reports daemon status over
// the HTTP API.
package main
