package main

// Flag names for Viper binding
const (
	// Global flags
	FlagVerbose      = "verbose"
	FlagConfig       = "config"
	FlagSettingsFile = "settings-file"
	FlagLogDir       = "log-dir"

	// Root command flags
	FlagTUI      = "tui"
	FlagPattern  = "pattern"
	FlagDuration = "duration"
	FlagSpeed    = "speed"

	// Output format flags
	FlagJSON = "json"
)
