// Package catalog owns the episode data model, the batch builder that turns
// raw dataset rows into tagged episodes, and the SQLite-backed store that
// persists the built catalog between sessions.
//
// Episodes are immutable once built: the builder runs once per dataset
// version, normalizes numeric fields with silent per-field degradation,
// assigns stable identifiers from source ordinals, computes 1-based episode
// ranks within each season, and invokes the tagger over the whole batch so
// semantic scores stay comparable across the catalog. Consumers load the
// result read-only and never mutate it.
//
// A JSON export/import of the enriched catalog is provided as a secondary
// interchange artifact alongside the database.
package catalog
