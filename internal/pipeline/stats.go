package pipeline

// RunStats tracks aggregate counters across a batch run.
type RunStats struct {
	Total      int   // Files listed.
	Current    int   // Files attempted so far.
	Renamed    int   // Successful renames.
	Skipped    int   // Destination already existed.
	Failed     int   // Rename call returned an error.
	TotalBytes int64 // Combined size of the listed files.
	Cancelled  bool  // Declined at the confirmation prompt.
}

// Pending returns how many listed files were never attempted, e.g. after an
// interrupt.
func (s *RunStats) Pending() int {
	return s.Total - s.Current
}
