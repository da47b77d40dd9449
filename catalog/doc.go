// Package catalog holds the fixed, ordered set of suggestion candidates and
// the prefix matcher that filters it.
//
// A Catalog is read-only once built. Loaders accept YAML, TOML and JSON files
// holding a list of {id, label} records.
package catalog
