// Package naming builds the new filenames of a rename batch: sequential
// suffixes (numeric or bijective base-26 letters), extension handling, the
// shared rename plan consumed by both preview and renamer, and on-disk
// collision detection.
package naming
