// Package source delivers the raw bytes of individual game data tables.
//
// A Source knows how to locate one of the six fixed tables in a game data
// tree, either on the local filesystem or in a remote object storage bucket
// laid out as <region>/gamedata/excel/<table>.json.
//
// # Error taxonomy
//
// Fetch failures are classified into two wrapped sentinels so callers can
// react differently:
//   - ErrNotFound: the table does not exist for the requested tree/region.
//     Some regional trees omit tables; callers may fall back to another region.
//   - ErrUnavailable: the tree could not be reached (I/O, network, auth).
//     Retrying is the caller's decision; sources never retry internally.
package source
