// Package sweep drives the two-phase organizing run: a primary sweep over
// the full source tree using content metadata, then a resort sweep over the
// holding folder using filename heuristics only. Failures are contained at
// the file boundary; one file never aborts the run.
package sweep
