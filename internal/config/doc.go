// Package config reads optional user settings from ~/.create-ceramic-app/config.yaml
// and CREATE_CERAMIC_APP_* environment variables. Settings only choose which
// git and npm executables to run and how verbose logging is.
package config
