// Package softasset grafts in-memory resources from content packages into the
// host's streaming tables. Each resource gets a synthetic single-resource
// bundle appended to the bundle array; when the host already ships a resource
// with the same ID, the synthetic bundle inherits the original bundle's
// dependency closure so the replacement loads with everything it needs.
//
// Grafting only appends. Existing bundle and loader indices never move.
package softasset
