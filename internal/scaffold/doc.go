// Package scaffold drives the create-ceramic-app session: ask for a project
// name, clone the example app, install its dependencies, show the resulting
// configuration and optionally start the dev server.
//
// Each phase fails independently. A clone failure ends the session, an
// install failure does not, and a launch failure is only logged.
// Cancelling a prompt returns ui.ErrCanceled so the caller decides how to
// exit.
package scaffold
