package main

import "time"

const (
	// cliSession is the history session used by the interactive commands.
	cliSession = "cli"

	// shutdownTimeout bounds graceful server shutdown.
	shutdownTimeout = 10 * time.Second
)

// Words that end an interactive chat.
var exitWords = []string{"exit", "quit"}
