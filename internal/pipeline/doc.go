// Package pipeline runs one rename batch: list files, build the plan,
// preview, confirm, rename, and report.
//
// Run drives the batch. Discover lists the directory, Preview shows the
// plan built by the naming package, and Execute performs the renames one
// file at a time, skipping names that are already taken.
package pipeline
