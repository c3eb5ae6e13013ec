package user

import (
	"time"

	"github.com/recovvo-inc/recovvo/internal/shared/biztime"
)

// SupervisorMapping is a directed edge supervisor -> subordinate granting the
// supervisor continuous visibility into the subordinate's client activity.
type SupervisorMapping struct {
	ID           uint
	SupervisorID uint
	UserID       uint
	IsDeleted    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AliasMapping grants a user delegated, time-windowed visibility into another
// user's (the alias's) mailbox. The access window controls WHEN the grant may
// be exercised; the historical window controls WHICH email content is visible.
type AliasMapping struct {
	ID                             uint
	UserID                         uint
	AliasUserID                    uint
	AliasStartDate                 *time.Time
	AliasEndDate                   *time.Time
	HistoricalEmailAccessStartDate *time.Time
	HistoricalEmailAccessEndDate   *time.Time
	MappingHistory                 []MappingHistoryEntry
	IsDeleted                      bool
	CreatedAt                      time.Time
	UpdatedAt                      time.Time
}

// MappingHistoryEntry is one record in the append-only audit log carried on
// each alias mapping.
type MappingHistoryEntry struct {
	Action    string    `json:"action"`
	ActorID   uint      `json:"actor_id"`
	Timestamp time.Time `json:"timestamp"`
}

// IsActiveAt reports whether the grant may be exercised at t. A nil start
// means active since creation; a nil end means open-ended.
func (m *AliasMapping) IsActiveAt(t time.Time) bool {
	if m.IsDeleted {
		return false
	}
	if m.AliasStartDate != nil && t.Before(*m.AliasStartDate) {
		return false
	}
	if m.AliasEndDate != nil && t.After(*m.AliasEndDate) {
		return false
	}
	return true
}

// HistoricalWindow returns the content window for this grant. Either bound
// may be nil (unbounded).
func (m *AliasMapping) HistoricalWindow() (from, to *time.Time) {
	return m.HistoricalEmailAccessStartDate, m.HistoricalEmailAccessEndDate
}

// AppendHistory records an audit entry. History is append-only; entries are
// never modified or removed.
func (m *AliasMapping) AppendHistory(action string, actorID uint) {
	m.MappingHistory = append(m.MappingHistory, MappingHistoryEntry{
		Action:    action,
		ActorID:   actorID,
		Timestamp: biztime.NowUTC(),
	})
	m.UpdatedAt = biztime.NowUTC()
}

// CollaboratorMapping is a peer-level, time-bounded mutual visibility grant
// between two users.
type CollaboratorMapping struct {
	ID             uint
	UserID         uint
	CollaboratorID uint
	StartDate      *time.Time
	EndDate        *time.Time
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsActiveAt reports whether the collaboration grant applies at t.
func (m *CollaboratorMapping) IsActiveAt(t time.Time) bool {
	if !m.IsActive {
		return false
	}
	if m.StartDate != nil && t.Before(*m.StartDate) {
		return false
	}
	if m.EndDate != nil && t.After(*m.EndDate) {
		return false
	}
	return true
}
