package domain

// Role is the authorization level of a staff user.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleLegal   Role = "legal"
	RoleHR      Role = "hr"
	RoleFinance Role = "finance"
	RoleManager Role = "manager"
	RoleViewer  Role = "viewer"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleLegal, RoleHR, RoleFinance, RoleManager, RoleViewer:
		return true
	}
	return false
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// SeesAllContracts reports whether the role has global read visibility
// over contracts, tasks and dashboard data.
func (r Role) SeesAllContracts() bool {
	switch r {
	case RoleAdmin, RoleLegal, RoleHR, RoleFinance:
		return true
	}
	return false
}

// CanManageContracts reports whether the role may approve, reject, terminate
// or delete contracts and edit tasks it is not assigned to.
func (r Role) CanManageContracts() bool {
	return r == RoleAdmin || r == RoleLegal
}

// ContractType classifies the counterparty relationship.
type ContractType string

const (
	ContractTypeSupplier ContractType = "supplier"
	ContractTypeService  ContractType = "service"
	ContractTypeEmployee ContractType = "employee"
)

func (t ContractType) String() string { return string(t) }

func (t ContractType) IsValid() bool {
	switch t {
	case ContractTypeSupplier, ContractTypeService, ContractTypeEmployee:
		return true
	}
	return false
}

// ContractStatus is a position in the contract lifecycle.
type ContractStatus string

const (
	ContractStatusDraft        ContractStatus = "draft"
	ContractStatusActive       ContractStatus = "active"
	ContractStatusExpiringSoon ContractStatus = "expiring_soon"
	ContractStatusExpired      ContractStatus = "expired"
	ContractStatusRenewed      ContractStatus = "renewed"
	ContractStatusTerminated   ContractStatus = "terminated"
)

func (s ContractStatus) String() string { return string(s) }

func (s ContractStatus) IsValid() bool {
	switch s {
	case ContractStatusDraft, ContractStatusActive, ContractStatusExpiringSoon,
		ContractStatusExpired, ContractStatusRenewed, ContractStatusTerminated:
		return true
	}
	return false
}

// RequiresManager reports whether moving a contract into this status is
// restricted to admin and legal.
func (s ContractStatus) RequiresManager() bool {
	return s == ContractStatusActive || s == ContractStatusTerminated
}

// contractTransitions is the strict lifecycle graph. Only consulted when
// strict transitions are enabled.
var contractTransitions = map[ContractStatus][]ContractStatus{
	ContractStatusDraft:        {ContractStatusActive, ContractStatusTerminated},
	ContractStatusActive:       {ContractStatusExpiringSoon, ContractStatusExpired, ContractStatusRenewed, ContractStatusTerminated},
	ContractStatusExpiringSoon: {ContractStatusActive, ContractStatusExpired, ContractStatusRenewed, ContractStatusTerminated},
	ContractStatusExpired:      {ContractStatusRenewed, ContractStatusTerminated},
	ContractStatusRenewed:      {ContractStatusActive, ContractStatusTerminated},
	ContractStatusTerminated:   {},
}

// CanTransitionTo reports whether next is reachable from s in one step of
// the strict lifecycle graph. Staying in the same status is always allowed.
func (s ContractStatus) CanTransitionTo(next ContractStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range contractTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// RenewalFrequency is how often an auto-renewing contract renews.
type RenewalFrequency string

const (
	RenewalMonthly   RenewalFrequency = "monthly"
	RenewalQuarterly RenewalFrequency = "quarterly"
	RenewalBiannual  RenewalFrequency = "biannual"
	RenewalAnnual    RenewalFrequency = "annual"
	RenewalBiennial  RenewalFrequency = "biennial"
	RenewalCustom    RenewalFrequency = "custom"
)

func (f RenewalFrequency) String() string { return string(f) }

func (f RenewalFrequency) IsValid() bool {
	switch f {
	case RenewalMonthly, RenewalQuarterly, RenewalBiannual, RenewalAnnual, RenewalBiennial, RenewalCustom:
		return true
	}
	return false
}

// TaskType is the kind of work a task represents.
type TaskType string

const (
	TaskTypeApproval    TaskType = "approval"
	TaskTypeSignature   TaskType = "signature"
	TaskTypeReview      TaskType = "review"
	TaskTypeNegotiation TaskType = "negotiation"
	TaskTypeRenewal     TaskType = "renewal"
	TaskTypeTermination TaskType = "termination"
	TaskTypeCustom      TaskType = "custom"
)

func (t TaskType) String() string { return string(t) }

func (t TaskType) IsValid() bool {
	switch t {
	case TaskTypeApproval, TaskTypeSignature, TaskTypeReview, TaskTypeNegotiation,
		TaskTypeRenewal, TaskTypeTermination, TaskTypeCustom:
		return true
	}
	return false
}

// TaskStatus is a position in the task lifecycle.
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusOverdue    TaskStatus = "overdue"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

func (s TaskStatus) String() string { return string(s) }

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusOverdue, TaskStatusCancelled:
		return true
	}
	return false
}

// Priority is shared by tasks and notifications.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) String() string { return string(p) }

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// NotificationType enumerates the events a notification can describe.
type NotificationType string

const (
	NotificationContractExpiring         NotificationType = "contract_expiring"
	NotificationContractExpired          NotificationType = "contract_expired"
	NotificationContractApprovalRequired NotificationType = "contract_approval_required"
	NotificationContractApproved         NotificationType = "contract_approved"
	NotificationContractRejected         NotificationType = "contract_rejected"
	NotificationContractRenewalDue       NotificationType = "contract_renewal_due"
	NotificationContractStatusChanged    NotificationType = "contract_status_changed"
	NotificationTaskAssigned             NotificationType = "task_assigned"
	NotificationTaskDueSoon              NotificationType = "task_due_soon"
	NotificationTaskOverdue              NotificationType = "task_overdue"
	NotificationTaskCompleted            NotificationType = "task_completed"
	NotificationTaskStatusChanged        NotificationType = "task_status_changed"
	NotificationSystemAlert              NotificationType = "system_alert"
	NotificationUserMentioned            NotificationType = "user_mentioned"
)

func (t NotificationType) String() string { return string(t) }

func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationContractExpiring, NotificationContractExpired, NotificationContractApprovalRequired,
		NotificationContractApproved, NotificationContractRejected, NotificationContractRenewalDue,
		NotificationContractStatusChanged, NotificationTaskAssigned, NotificationTaskDueSoon,
		NotificationTaskOverdue, NotificationTaskCompleted, NotificationTaskStatusChanged,
		NotificationSystemAlert, NotificationUserMentioned:
		return true
	}
	return false
}

// NotificationStatus tracks whether the recipient has seen a notification.
type NotificationStatus string

const (
	NotificationStatusUnread   NotificationStatus = "unread"
	NotificationStatusRead     NotificationStatus = "read"
	NotificationStatusArchived NotificationStatus = "archived"
)

func (s NotificationStatus) String() string { return string(s) }

func (s NotificationStatus) IsValid() bool {
	switch s {
	case NotificationStatusUnread, NotificationStatusRead, NotificationStatusArchived:
		return true
	}
	return false
}

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeContract     EntityType = "contract"
	EntityTypeTask         EntityType = "task"
	EntityTypeComment      EntityType = "comment"
	EntityTypeUser         EntityType = "user"
	EntityTypeNotification EntityType = "notification"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeContract, EntityTypeTask, EntityTypeComment, EntityTypeUser, EntityTypeNotification:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate   AuditAction = "create"
	AuditActionUpdate   AuditAction = "update"
	AuditActionDelete   AuditAction = "delete"
	AuditActionApprove  AuditAction = "approve"
	AuditActionReject   AuditAction = "reject"
	AuditActionAssign   AuditAction = "assign"
	AuditActionComplete AuditAction = "complete"
	AuditActionExpire   AuditAction = "expire"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete, AuditActionApprove,
		AuditActionReject, AuditActionAssign, AuditActionComplete, AuditActionExpire:
		return true
	}
	return false
}
