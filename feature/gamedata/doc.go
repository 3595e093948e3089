// Package gamedata builds the linked game content model and serves
// lookups against it.
//
// It fetches the six static content tables from a configured source
// (local directory or object storage), decodes them via the tables
// subpackage, drops non-playable units, and resolves every cross-table
// reference into an immutable GameData snapshot:
//  1. Operators with their deployable skills (in declared slot order),
//     base skill unlocks (ordered by promotion gate), handbook entries
//     and alternate forms.
//  2. Items, rooms and base skills as standalone catalogs.
//
// # Components
//
//   - GameData: The immutable snapshot with ordered lookup accessors.
//   - Service: Owns the current snapshot and swaps it on reload.
//   - Handler: Exposes HTTP endpoints for lookups and reloading.
//   - Feature: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - GET /operators : List all operators; ?name= finds one by name.
//   - GET /operators/:id : Get a single operator.
//   - GET /items : List all items; ?name= finds one by name.
//   - GET /items/:id : Get a single item.
//   - GET /rooms/:type : Get a base room definition (e.g. 'TRADING').
//   - POST /reload : Fetch a fresh snapshot from the source.
package gamedata
