// Package registry provides the name-keyed stores behind the content layer.
//
// A Registry maps a normalized content name to exactly one value. Names are
// normalized on both registration and lookup, so an instance called
// "Ruin_Tower(Clone)" finds the entry registered as "Ruin_Tower".
//
// Registration is last-write-wins: registering a name twice replaces the
// earlier value without error. Packages are expected to register each logical
// name once; a second registration is treated as an explicit override.
package registry
