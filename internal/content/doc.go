// Package content holds the objects package authors build: custom locations,
// dungeons and the rooms those dungeons draw from. A Catalog owns the
// name-keyed registries for one package and the collaborators that queue the
// package's resources for grafting and its network objects for the scene.
package content
