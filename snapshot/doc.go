// Package snapshot provides consistent, read-only views of the book
// and their persistence. Readers bracket traversals with epoch marks
// so the reclaimer holds retired orders back while a snapshot is in
// flight; the writer/loader pair persists resting orders for fast
// restart, after which the WAL replays only the uncovered tail.
package snapshot
