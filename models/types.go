package models

import "time"

// Candidate status constants
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Registration source constants
const (
	SourceWeb    = "web"
	SourceSystem = "system"
)

// Request types

type RegisterCandidateRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Description string `json:"description"`
	Platform    string `json:"platform"`
	Experience  string `json:"experience"`
	StudentID   string `json:"studentId"`
	Phone       string `json:"phone"`
}

type ApproveCandidateRequest struct {
	CandidateID string `json:"candidateId"`
	AdminID     string `json:"adminId"`
	Notes       string `json:"notes"`
}

type RejectCandidateRequest struct {
	CandidateID string `json:"candidateId"`
	AdminID     string `json:"adminId"`
	Reason      string `json:"reason"`
}

type CastVoteRequest struct {
	CandidateID string `json:"candidateId"`
	UserID      string `json:"userId"`
}

// Response types

type RegisterCandidateResponse struct {
	Message     string   `json:"message"`
	CandidateID string   `json:"candidateId"`
	Status      string   `json:"status"`
	NextSteps   []string `json:"nextSteps,omitempty"`
}

type CandidateListResponse struct {
	Candidates []Candidate `json:"candidates"`
	Count      int         `json:"count"`
}

type PendingCandidatesResponse struct {
	PendingCandidates []Candidate `json:"pendingCandidates"`
	Count             int         `json:"count"`
	Message           string      `json:"message,omitempty"`
}

type GroupedCandidatesResponse struct {
	Candidates CandidateGroups `json:"candidates"`
	Counts     StatusCounts    `json:"counts"`
	Total      int             `json:"total"`
}

type DecisionResponse struct {
	Message   string    `json:"message"`
	Candidate Candidate `json:"candidate"`
	Action    string    `json:"action"`
}

type AdminStatsResponse struct {
	Stats   StatusCounts `json:"stats"`
	Total   int          `json:"total"`
	Message string       `json:"message,omitempty"`
}

type CastVoteResponse struct {
	Message       string    `json:"message"`
	CandidateName string    `json:"candidateName"`
	Timestamp     time.Time `json:"timestamp"`
	VoteID        string    `json:"voteId"`
}

type VoteStatusResponse struct {
	HasVoted bool      `json:"hasVoted"`
	Vote     *VoteInfo `json:"vote"`
}

type ResultsResponse struct {
	Results         []CandidateResult `json:"results"`
	TotalVotes      int               `json:"totalVotes"`
	TotalCandidates int               `json:"totalCandidates"`
	Summary         ResultsSummary    `json:"summary"`
}

type InitResponse struct {
	Message string `json:"message"`
	Created int    `json:"created"`
	Skipped int    `json:"skipped"`
}

// Domain types

type Candidate struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Email            string            `json:"email"`
	Description      string            `json:"description"`
	Platform         string            `json:"platform"`
	Experience       string            `json:"experience"`
	StudentID        string            `json:"studentId"`
	Phone            string            `json:"phone"`
	Status           string            `json:"status"`
	RegistrationDate time.Time         `json:"registrationDate"`
	ApprovedDate     *time.Time        `json:"approvedDate"`
	ApprovedBy       *string           `json:"approvedBy"`
	ApprovalNotes    *string           `json:"approvalNotes,omitempty"`
	RejectedDate     *time.Time        `json:"rejectedDate,omitempty"`
	RejectedBy       *string           `json:"rejectedBy,omitempty"`
	RejectionReason  *string           `json:"rejectionReason,omitempty"`
	Votes            int               `json:"votes"` // informational counter; the tally is always derived from the vote store
	Metadata         CandidateMetadata `json:"metadata"`
}

type CandidateMetadata struct {
	IPAddress          string `json:"ipAddress"`
	UserAgent          string `json:"userAgent"`
	RegistrationSource string `json:"registrationSource"`
}

type CandidateGroups struct {
	Approved []Candidate `json:"approved"`
	Pending  []Candidate `json:"pending"`
	Rejected []Candidate `json:"rejected"`
}

type StatusCounts struct {
	Approved int `json:"approved"`
	Pending  int `json:"pending"`
	Rejected int `json:"rejected"`
}

type Vote struct {
	UserID        string       `json:"userId"`
	CandidateID   string       `json:"candidateId"`
	CandidateName string       `json:"candidateName"`
	Timestamp     time.Time    `json:"timestamp"`
	IPAddress     string       `json:"ipAddress,omitempty"`
	Metadata      VoteMetadata `json:"metadata"`
}

type VoteMetadata struct {
	UserAgent  string `json:"userAgent"`
	VoteSource string `json:"voteSource"`
}

type VoteInfo struct {
	CandidateID   string    `json:"candidateId"`
	CandidateName string    `json:"candidateName"`
	Timestamp     time.Time `json:"timestamp"`
}

// Results types

type CandidateResult struct {
	CandidateID string `json:"candidateId"`
	Candidate   string `json:"candidate"`
	Description string `json:"description"`
	Platform    string `json:"platform"`
	Votes       int    `json:"votes"`
	Percentage  string `json:"percentage"`
}

type ResultsSummary struct {
	Leader      string `json:"leader"`
	LeaderVotes int    `json:"leaderVotes"`
}

// Error response

type ErrorResponse struct {
	Error           string    `json:"error"`
	Message         string    `json:"message,omitempty"`
	MissingFields   []string  `json:"missingFields,omitempty"`
	DuplicateField  string    `json:"duplicateField,omitempty"`
	CandidateID     string    `json:"candidateId,omitempty"`
	CandidateStatus string    `json:"candidateStatus,omitempty"`
	PreviousVote    *VoteInfo `json:"previousVote,omitempty"`
}
