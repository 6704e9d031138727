package platform

// Package platform contains OS integration: per-OS resolution of the user
// configuration directory from environment variables, the file paths derived
// from it, and filesystem helpers.
