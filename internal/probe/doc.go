// Package probe implements the five detection methods. Each probe turns its
// own failure modes into a failed domain.ProbeOutcome; none of them returns an
// error or depends on another probe's result.
package probe
