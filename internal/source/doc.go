// Package source fetches the example application with a shallow git clone
// and strips the clone's version-control metadata, leaving a plain
// directory tree the user owns.
package source
