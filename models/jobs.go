package models

// JobStatus is the stage of one simulated job application. Transitions are
// strictly linear and one-directional; there is no rollback and no error
// state.
type JobStatus string

const (
	JobScanning              JobStatus = "Scanning"
	JobTailoringResume       JobStatus = "Tailoring Resume"
	JobGeneratingCoverLetter JobStatus = "Generating Cover Letter"
	JobEmailing              JobStatus = "Emailing"
	JobApplied               JobStatus = "Applied"
)

// jobStatusOrder fixes the forward sequence of the application pipeline.
var jobStatusOrder = []JobStatus{
	JobScanning,
	JobTailoringResume,
	JobGeneratingCoverLetter,
	JobEmailing,
	JobApplied,
}

// Next returns the status that follows s in the pipeline. Applied is
// terminal and returns itself.
func (s JobStatus) Next() JobStatus {
	for i, st := range jobStatusOrder {
		if st == s && i < len(jobStatusOrder)-1 {
			return jobStatusOrder[i+1]
		}
	}
	return JobApplied
}

// Terminal reports whether s is the final pipeline stage.
func (s JobStatus) Terminal() bool {
	return s == JobApplied
}

// JobApplication is one entry in the automation queue.
type JobApplication struct {
	ID         string    `json:"id"`
	Role       string    `json:"role"`
	Company    string    `json:"company"`
	Status     JobStatus `json:"status"`
	MatchScore int       `json:"matchScore"`

	// CoverLetter and TailoredSummary are filled by the AI call on the
	// cover-letter transition. Either may stay empty if generation failed
	// and the task was advanced with placeholder content.
	CoverLetter     string `json:"coverLetter,omitempty"`
	TailoredSummary string `json:"tailoredSummary,omitempty"`

	FeedbackRating  int    `json:"feedbackRating,omitempty"`
	FeedbackComment string `json:"feedbackComment,omitempty"`
}
