package domain

type IssueType string

const (
	IssueNoAssignment IssueType = "no_assignment"
	IssueUnderstaffed IssueType = "understaffed"
	IssueConflict     IssueType = "conflict"
)

type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// ScheduleIssue 是派生出来的排班问题，只读、不落盘。
type ScheduleIssue struct {
	Date        string    `json:"date"`
	Type        IssueType `json:"type"`
	Description string    `json:"description"`
	Severity    Severity  `json:"severity"`
}
