// Package launch implements the server launch step of the bootstrap
// sequence.
//
// The Launcher runs a single server process in the foreground, bound to
// 0.0.0.0 and the port from the server configuration (PORT env var,
// default 8000). It validates the port before spawning anything, so a
// malformed value fails as a startup error with no process started.
//
// The launch is a blocking wait: Run returns only when the server process
// terminates, and hands back that process's exit code unchanged. There is
// no supervision and no restart; whoever invoked the bootstrap (typically a
// container orchestrator) owns restart policy.
//
// Termination signals delivered to the launcher are forwarded to the child,
// so no orphaned listener stays bound to the port.
package launch
