package pipeline

// Stats tracks aggregate counters across a batch run.
type Stats struct {
	Total    int // files discovered
	Parsed   int // files parsed and probed successfully
	Skipped  int // files skipped (bad name or metadata failure)
	Sessions int // complete sessions
	Excluded int // sessions excluded for chapter gaps
}
