package session

// Package session implements the orchestrator state machine behind the UI:
// URL entry, concurrent metadata/formats probing, download option state, job
// submission, and status polling. The UI observes the session through a
// single update callback and owns no business state of its own.
