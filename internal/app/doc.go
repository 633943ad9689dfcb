// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the primary execution lifecycle: loading
// package manifests, installing every package into a simulated host,
// running the host and reporting what the packages added. It is decoupled
// from any specific entrypoint like a CLI.
package app
