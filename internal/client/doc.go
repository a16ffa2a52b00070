// Package client implements the interactive client application runtime.
//
// It wires terminal UI flows, client services, and the background
// application-automation engine into a single process lifecycle.
package client
