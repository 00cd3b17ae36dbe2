// Package commands wires the labeler CLI: configuration and logging are set
// up once in the root command, and each subcommand reads an ADI log and
// writes labels or a contact list.
package commands
