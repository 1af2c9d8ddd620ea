// Package types defines the value kinds, list disciplines, commands,
// the Container interface, run configuration, and the standard errors
// shared by the simplelist interpreter.
package types
