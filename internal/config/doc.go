package config

// Package config implements the persistent configuration store: a flat
// key=value file with typed accessors, the recent-files list, the
// search/replace history file, and the application-level Settings layer with
// defaults and clamping on top of the store.
