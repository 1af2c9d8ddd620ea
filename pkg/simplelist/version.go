// Package simplelist carries release metadata for the simplelist module.
package simplelist

// Version is the release version reported by "simplelist version".
const Version = "0.1.0"
