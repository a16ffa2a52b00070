package models

// DataKind names one of the known per-user data namespaces. The store keeps
// raw JSON per (userID, kind); the service layer exposes typed accessors for
// each kind instead of an open-ended bag.
type DataKind string

const (
	// DataKindRoadmap holds the user's generated RoadmapData.
	DataKindRoadmap DataKind = "roadmap"

	// DataKindCompletedCourses holds the list of completed course ids.
	DataKindCompletedCourses DataKind = "completed_courses"

	// DataKindResumeVersions holds the saved ResumeVersion history.
	DataKindResumeVersions DataKind = "resume_versions"

	// DataKindMentors holds the user's saved mentor directory entries.
	DataKindMentors DataKind = "mentors"

	// DataKindChatHistory holds the mentor chat transcript.
	DataKindChatHistory DataKind = "chat_history"
)

// KnownDataKinds lists every namespace the service layer understands.
var KnownDataKinds = []DataKind{
	DataKindRoadmap,
	DataKindCompletedCourses,
	DataKindResumeVersions,
	DataKindMentors,
	DataKindChatHistory,
}

// ResumeVersion is one saved revision of a generated resume.
type ResumeVersion struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	Name      string `json:"name"`
	Content   string `json:"content"`
}

// Mentor is a directory entry shown on the mentors page.
type Mentor struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Role      string   `json:"role"`
	Company   string   `json:"company"`
	Expertise []string `json:"expertise"`
	ImageURL  string   `json:"imageUrl"`
}
