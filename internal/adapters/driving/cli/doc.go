// Package cli implements the command-line interface using cobra.
// Commands call driving port interfaces; services are injected by
// main before Execute runs.
package cli
