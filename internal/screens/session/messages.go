package session

// Both messages carry the sequence number of the question phase that
// scheduled them; the screen drops any whose phase has already moved on.

// timerTickMsg is sent once per tick interval while a timed question waits.
type timerTickMsg struct {
	seq int
}

// feedbackDoneMsg is sent when the feedback display period ends.
type feedbackDoneMsg struct {
	seq int
}
