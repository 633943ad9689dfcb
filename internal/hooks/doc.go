// Package hooks provides typed interception points for host lifecycle
// methods. A Point carries prefix handlers, which may veto the host's own
// implementation, and postfix handlers, which always run after it.
package hooks
