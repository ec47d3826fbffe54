package models

// DashboardStatus is the lifecycle state of a draft section.
type DashboardStatus string

const (
	DashboardStatusDraft    DashboardStatus = "DRAFT"
	DashboardStatusPending  DashboardStatus = "PENDING"
	DashboardStatusApproved DashboardStatus = "APPROVED"
	DashboardStatusRejected DashboardStatus = "REJECTED"
)

// AllowSubmit reports whether a section in this state moves to PENDING on submission.
func (s DashboardStatus) AllowSubmit() bool {
	return s == DashboardStatusDraft || s == DashboardStatusRejected || s == ""
}

func (s DashboardStatus) AllowReview() bool {
	return s == DashboardStatusPending
}

// ApprovalStatus is the state of the per-campaign approval ledger row.
type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

func (s ApprovalStatus) IsValid() bool {
	switch s {
	case ApprovalStatusPending, ApprovalStatusApproved, ApprovalStatusRejected:
		return true
	}
	return false
}

// ReviewAction is the administrator decision on a submission.
type ReviewAction string

const (
	ReviewActionApprove ReviewAction = "approve"
	ReviewActionReject  ReviewAction = "reject"
)

func (a ReviewAction) IsValid() bool {
	return a == ReviewActionApprove || a == ReviewActionReject
}

// ApprovalStatus is the ledger status the action leads to.
func (a ReviewAction) ApprovalStatus() ApprovalStatus {
	if a == ReviewActionApprove {
		return ApprovalStatusApproved
	}
	return ApprovalStatusRejected
}

func (a ReviewAction) DashboardStatus() DashboardStatus {
	if a == ReviewActionApprove {
		return DashboardStatusApproved
	}
	return DashboardStatusRejected
}

// SubmissionStatus is the outcome recorded on a submission tracking row.
type SubmissionStatus string

const (
	SubmissionStatusCompleted SubmissionStatus = "completed"
	SubmissionStatusFailed    SubmissionStatus = "failed"
)
