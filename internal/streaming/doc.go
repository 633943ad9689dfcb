// Package streaming models the host's deferred-load subsystem: an
// index-addressed bundle array, an index-addressed resource-loader array and
// the two lookup maps over them.
//
// Indices handed out by the tables are permanent. The only mutations are
// appending a new entry and patching an existing bundle slot in place; nothing
// is ever inserted mid-array or removed, because other parts of the host cache
// indices into both arrays.
package streaming
