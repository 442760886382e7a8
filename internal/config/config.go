// Package config contains global variables that are set according to
// the command line. They can be accessed from anywhere within the
// otable command.
package config

// Quiet is true if --quiet was passed on the command line.
var Quiet bool

// NoPager is true if --no-pager was passed on the command line. Tables
// are then always written straight to stdout.
var NoPager bool
