package app

import "io"

// Config holds runtime wiring options for building the app.
type Config struct {
	LogLevel  string    // debug, info, warn or error; default info
	LogFormat string    // text or json; default text
	LogOutput io.Writer // optional; defaults to os.Stderr
}
