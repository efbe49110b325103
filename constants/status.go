package constants

// JobStatus is the canonical status for rows in parse_job.
type JobStatus string

// Stable values (store these exact strings in DB).
const (
	JobStatusQueued  JobStatus = "QUEUED"   // queued for processing
	JobStatusRunning JobStatus = "RUNNING"  // in progress
	JobStatusParsed  JobStatus = "PARSED"   // extraction completed
	JobStatusFailed  JobStatus = "FAILED"   // terminal failure
)
