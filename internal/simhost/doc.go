// Package simhost is an in-memory host. It builds loader tables from bundle
// declarations, fires the lifecycle hooks in the order a real host does, and
// reports the resulting state.
package simhost
