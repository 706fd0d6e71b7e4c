// Package project provides type-safe definitions for 3D-printing production
// jobs and the rules governing how they change over time.
//
// # Overview
//
// A Project is one production job: its identity (master ID plus sub ID), its
// current status, the people responsible for it, the active design file and
// that file's version, shipping details, and a free-text comment ledger.
// Every mutation a Project supports appends exactly one entry to its change
// log, so the full history of a job is always reconstructable from the record
// itself.
//
// # Core Concepts
//
// The change log is a single ordered slice of structured entries. Each entry
// carries the category it belongs to (status, file, quantity, ...) and that
// category's own sequence number, which increments independently of other
// categories. Per-category counts are derived from the log rather than kept
// as separate fields; ChangeCount is the derived view. The sequence numbers
// are per-category monotonic, not globally ordered — sort by the embedded
// timestamp when a cross-category chronology is needed.
//
// File updates flagged as a new version first move the superseded file into
// the archive directory under a deterministic versioned name. The move must
// succeed before any record state changes, so a failed move leaves the
// record exactly as it was.
//
// Comment identifiers are monotonically increasing and are never reused,
// even after a comment is removed.
//
// # Usage Example
//
//	p, err := project.New("HAM", 1, "/work/cube.stl", "/work/archive",
//		map[string][]string{"Design": {"Alice"}}, 2)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	p.UpdateStatus("Printing")
//	id := p.AddComment("First test print looks good")
//
//	if err := p.UpdateFile("/work/cube_v2.stl", true); err != nil {
//		log.Fatal(err)
//	}
//	// /work/archive now contains HAM_1_v1.stl and p.FileVersion == 2.
//
// Records serialize to opaque msgpack blobs via Encode/Decode; a round trip
// reproduces the record field for field, including the change log and the
// comment id counter.
package project
