// Package settings models the host's per-package settings store: typed
// entries grouped into sections, bound with a default and optionally
// overridden from an HCL settings file or by a sync server.
package settings
