// Package cli implements the interactive front end of the authentication
// client: a small REPL with register, login and whoami commands.
//
// Passwords are read without echo and wiped after use. Each command runs
// under its own request timeout taken from the configuration.
package cli
