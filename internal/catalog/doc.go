// Package catalog persists the production catalog in SQLite: projects, their
// assets, sequences, and shots, plus the lookup tables (file types and asset
// categories) that drive scene file naming.
//
// The Store owns the database connection and applies the embedded migrations
// on Open. Lookup rows are seeded by migration so a fresh database can build
// asset and shot scene paths immediately. Records convert to the scenepath
// types consumed by scenepath.Builder.
package catalog
