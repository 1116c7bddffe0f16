// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/danielhkuo/campus-vote/models"
	"github.com/danielhkuo/campus-vote/store"
)

// Tables names the logical store tables the election services read and write.
type Tables struct {
	Candidates string
	Votes      string
}

// RegistrationMeta is an audit snapshot captured with a registration.
// Non-authoritative: nothing is validated against it.
type RegistrationMeta struct {
	IPAddress string
	UserAgent string
	Source    string
}

// CandidateManager owns the candidate lifecycle: registration and the admin
// approve/reject decisions.
type CandidateManager struct {
	store  store.Store
	tables Tables
}

func NewCandidateManager(st store.Store, tables Tables) *CandidateManager {
	return &CandidateManager{store: st, tables: tables}
}

const defaultApprovalNotes = "Approved by admin"

// Register validates and persists a new pending candidate, returning the
// stored record.
func (m *CandidateManager) Register(ctx context.Context, req models.RegisterCandidateRequest, meta RegistrationMeta) (*models.Candidate, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	description := strings.TrimSpace(req.Description)
	platform := strings.TrimSpace(req.Platform)
	studentID := strings.TrimSpace(req.StudentID)

	missing := []string{}
	if name == "" {
		missing = append(missing, "name")
	}
	if email == "" {
		missing = append(missing, "email")
	}
	if description == "" {
		missing = append(missing, "description")
	}
	if platform == "" {
		missing = append(missing, "platform")
	}
	if studentID == "" {
		missing = append(missing, "studentId")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{MissingFields: missing}
	}

	existing, err := m.scanCandidates(ctx)
	if err != nil {
		return nil, err
	}
	// email is checked before studentId so a double collision reports email.
	for _, c := range existing {
		if c.Email == email {
			return nil, &DuplicateError{Field: "email"}
		}
	}
	for _, c := range existing {
		if c.StudentID == studentID {
			return nil, &DuplicateError{Field: "studentId"}
		}
	}

	if meta.Source == "" {
		meta.Source = models.SourceWeb
	}

	candidate := models.Candidate{
		ID:               NewCandidateID(),
		Name:             name,
		Email:            email,
		Description:      description,
		Platform:         platform,
		Experience:       strings.TrimSpace(req.Experience),
		StudentID:        studentID,
		Phone:            strings.TrimSpace(req.Phone),
		Status:           models.StatusPending,
		RegistrationDate: time.Now().UTC(),
		Metadata: models.CandidateMetadata{
			IPAddress:          meta.IPAddress,
			UserAgent:          meta.UserAgent,
			RegistrationSource: meta.Source,
		},
	}

	doc, err := json.Marshal(candidate)
	if err != nil {
		return nil, fmt.Errorf("failed to encode candidate: %w", err)
	}
	if err := m.store.Put(ctx, m.tables.Candidates, candidate.ID, doc); err != nil {
		return nil, err
	}

	slog.Info("candidate registered", "candidate_id", candidate.ID, "email", candidate.Email)
	return &candidate, nil
}

// Approve marks the candidate approved and records who decided and when.
// Re-approving refreshes the approval metadata; concurrent conflicting
// decisions are last-write-wins.
func (m *CandidateManager) Approve(ctx context.Context, candidateID, adminID, notes string) (*models.Candidate, error) {
	missing := []string{}
	if candidateID == "" {
		missing = append(missing, "candidateId")
	}
	if adminID == "" {
		missing = append(missing, "adminId")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{MissingFields: missing}
	}

	if notes == "" {
		notes = defaultApprovalNotes
	}

	updated, err := m.store.Update(ctx, m.tables.Candidates, candidateID, map[string]any{
		"status":        models.StatusApproved,
		"approvedDate":  time.Now().UTC().Format(time.RFC3339Nano),
		"approvedBy":    adminID,
		"approvalNotes": notes,
	})
	if errors.Is(err, store.ErrNotFound) {
		return nil, &NotFoundError{CandidateID: candidateID}
	}
	if err != nil {
		return nil, err
	}

	candidate, err := decodeCandidate(updated)
	if err != nil {
		return nil, err
	}

	slog.Info("candidate approved", "candidate_id", candidateID, "admin_id", adminID)
	return candidate, nil
}

// Reject marks the candidate rejected with a mandatory reason. Prior approval
// metadata is left in place as history; status alone decides eligibility.
func (m *CandidateManager) Reject(ctx context.Context, candidateID, adminID, reason string) (*models.Candidate, error) {
	missing := []string{}
	if candidateID == "" {
		missing = append(missing, "candidateId")
	}
	if adminID == "" {
		missing = append(missing, "adminId")
	}
	if reason == "" {
		missing = append(missing, "reason")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{MissingFields: missing}
	}

	updated, err := m.store.Update(ctx, m.tables.Candidates, candidateID, map[string]any{
		"status":          models.StatusRejected,
		"rejectedDate":    time.Now().UTC().Format(time.RFC3339Nano),
		"rejectedBy":      adminID,
		"rejectionReason": reason,
	})
	if errors.Is(err, store.ErrNotFound) {
		return nil, &NotFoundError{CandidateID: candidateID}
	}
	if err != nil {
		return nil, err
	}

	candidate, err := decodeCandidate(updated)
	if err != nil {
		return nil, err
	}

	slog.Info("candidate rejected", "candidate_id", candidateID, "admin_id", adminID, "reason", reason)
	return candidate, nil
}

// ListPending returns pending candidates ordered oldest-first, so the admin
// queue is reviewed in registration order.
func (m *CandidateManager) ListPending(ctx context.Context) ([]models.Candidate, error) {
	candidates, err := m.scanCandidates(ctx)
	if err != nil {
		return nil, err
	}

	pending := []models.Candidate{}
	for _, c := range candidates {
		if c.Status == models.StatusPending {
			pending = append(pending, c)
		}
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].RegistrationDate.Before(pending[j].RegistrationDate)
	})
	return pending, nil
}

// ListAll returns every candidate bucketed by status. A candidate with an
// unrecognized or missing status counts as pending.
func (m *CandidateManager) ListAll(ctx context.Context) (*models.GroupedCandidatesResponse, error) {
	candidates, err := m.scanCandidates(ctx)
	if err != nil {
		return nil, err
	}

	groups := models.CandidateGroups{
		Approved: []models.Candidate{},
		Pending:  []models.Candidate{},
		Rejected: []models.Candidate{},
	}
	for _, c := range candidates {
		switch c.Status {
		case models.StatusApproved:
			groups.Approved = append(groups.Approved, c)
		case models.StatusRejected:
			groups.Rejected = append(groups.Rejected, c)
		default:
			groups.Pending = append(groups.Pending, c)
		}
	}

	return &models.GroupedCandidatesResponse{
		Candidates: groups,
		Counts: models.StatusCounts{
			Approved: len(groups.Approved),
			Pending:  len(groups.Pending),
			Rejected: len(groups.Rejected),
		},
		Total: len(candidates),
	}, nil
}

// Stats returns per-status counts for the admin dashboard.
func (m *CandidateManager) Stats(ctx context.Context) (*models.AdminStatsResponse, error) {
	grouped, err := m.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	message := "Normal processing volume"
	if grouped.Counts.Pending > 5 {
		message = "High volume of pending applications"
	}
	return &models.AdminStatsResponse{
		Stats:   grouped.Counts,
		Total:   grouped.Total,
		Message: message,
	}, nil
}

func (m *CandidateManager) scanCandidates(ctx context.Context) ([]models.Candidate, error) {
	return scanCandidates(ctx, m.store, m.tables.Candidates)
}

func scanCandidates(ctx context.Context, st store.Store, table string) ([]models.Candidate, error) {
	docs, err := st.Scan(ctx, table)
	if err != nil {
		return nil, err
	}

	candidates := make([]models.Candidate, 0, len(docs))
	for _, doc := range docs {
		c, err := decodeCandidate(doc)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, *c)
	}
	return candidates, nil
}

func decodeCandidate(doc json.RawMessage) (*models.Candidate, error) {
	var c models.Candidate
	if err := json.Unmarshal(doc, &c); err != nil {
		return nil, fmt.Errorf("failed to decode candidate document: %w", err)
	}
	return &c, nil
}
