// Package registry binds validated length-rule configurations to the
// (form, major field) keys the host form framework dispatches on.
//
// The host invokes the registry once per field during its own synchronous
// validation pass, threading its running outcome through every evaluator
// bound to that key. Registration is explicit dependency wiring rather than
// global hook tables: the engine populates a Registry at configuration time
// and hands it to the host.
//
// Invalid configurations never register. This is deliberate fail-safe
// behavior: a misconfigured rule must not break form submission, so the only
// trace it leaves is a debug log line.
package registry
