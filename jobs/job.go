package jobs

// Job runs until Stop is called. Stop may be called before Process starts.
type Job interface {
	Process()
	Stop()
}
