// Package toolchain checks that git, node and npm are on PATH and new enough
// to fetch and run the example app. Versions are compared with semver
// constraints; nothing here is fatal to a scaffold run.
package toolchain
