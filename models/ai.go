package models

import "time"

// Response shapes of the remote generation API. The client treats the API as
// an opaque request/response boundary; these structs only describe the JSON
// it returns.

// RoadmapItem is one semester of a generated learning roadmap.
type RoadmapItem struct {
	Semester  int      `json:"semester"`
	Focus     string   `json:"focus"`
	Skills    []string `json:"skills"`
	Projects  []string `json:"projects"`
	Resources []string `json:"resources"`
}

// RoadmapData is a full multi-semester roadmap for one domain.
type RoadmapData struct {
	Domain  string        `json:"domain"`
	Roadmap []RoadmapItem `json:"roadmap"`
}

// ResumeAnalysis is the scored review of an uploaded resume.
type ResumeAnalysis struct {
	Score           int      `json:"score"`
	MatchedDomain   string   `json:"matchedDomain"`
	MissingSkills   []string `json:"missingSkills"`
	Strengths       []string `json:"strengths"`
	ImprovementPlan []string `json:"improvementPlan"`
}

// InterviewType selects the persona of the mock interviewer.
type InterviewType string

const (
	InterviewTechnical    InterviewType = "Technical"
	InterviewBehavioral   InterviewType = "Behavioral"
	InterviewSkepticalCTO InterviewType = "Skeptical CTO"
)

// InterviewFeedback grades one mock-interview answer.
type InterviewFeedback struct {
	Score        int    `json:"score"`
	Feedback     string `json:"feedback"`
	BetterAnswer string `json:"betterAnswer"`
}

// IndustryTrend is one data point of the market-insights report.
type IndustryTrend struct {
	Name   string  `json:"name"`
	Demand int     `json:"demand"`
	Growth float64 `json:"growth"`
}

// InsightsResponse bundles trends with their grounding sources.
type InsightsResponse struct {
	Trends  []IndustryTrend `json:"trends"`
	Sources []InsightSource `json:"sources"`
}

// InsightSource is a citation backing a trend report.
type InsightSource struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// ChatMessage is one turn of the mentor chat.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"` // "user" or "model"
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// JobApplicationDraft is the AI output consumed by the automation engine on
// the cover-letter transition.
type JobApplicationDraft struct {
	CoverLetter     string `json:"coverLetter"`
	TailoredSummary string `json:"tailoredSummary"`
}
