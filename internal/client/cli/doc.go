// Package cli implements the interactive terminal client: the cobra command
// tree, the REPL, the router that follows navigation requests, and the views
// (login, directory listing, add contact, whoami, logout).
package cli
