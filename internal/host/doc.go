// Package host describes the content-streaming host the engine attaches to:
// its lifecycle hook points and the records those hooks hand to handlers.
// Only the fields the engine reads or writes are modelled.
package host
