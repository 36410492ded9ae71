package model

import "time"

// Work order statuses that occupy a technician's calendar.
const (
	StatusScheduled       = "scheduled"
	StatusInProgress      = "in_progress"
	StatusPendingApproval = "pending_approval"
	StatusCompleted       = "completed"
	StatusCancelled       = "cancelled"
)

type WorkOrder struct {
	ID            string
	CompanyID     string
	EmployeeID    string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	JobType       string
	Description   string
	StartTime     time.Time
	EndTime       time.Time
	Status        string
	DepositCents  int64
	PaymentRef    string
	PortalKeyHash string
	CancelledAt   *time.Time
	CancelReason  string
	CreatedAt     time.Time
}

// ScheduleEvent is an internal calendar block (meeting, truck maintenance,
// hold) that consumes availability without being customer-facing work.
type ScheduleEvent struct {
	ID         string
	CompanyID  string
	EmployeeID string
	Title      string
	EventType  string
	StartTime  time.Time
	EndTime    time.Time
	CreatedAt  time.Time
}

// TimeOffEntry mirrors approved PTO owned by the company service. Rows land
// here through the time-off change events, never by direct writes.
type TimeOffEntry struct {
	ID         string
	CompanyID  string
	EmployeeID string
	StartTime  time.Time
	EndTime    time.Time
	Status     string
}

// CompanySettings is the scheduling slice of a company's configuration,
// cached locally from settings-updated events.
type CompanySettings struct {
	CompanyID             string
	Timezone              string
	WorkingDays           []int
	DayStartMinute        int
	DayEndMinute          int
	SlotStepMinutes       int
	BufferBeforeMinutes   int
	BufferAfterMinutes    int
	MinAdvanceHours       int
	MaxAdvanceDays        int
	CapacityHoursPerDay   int
	SelfSchedulingEnabled bool
	AutoApproveSelections bool
	DepositCents          int64
	UpdatedAt             time.Time
}
