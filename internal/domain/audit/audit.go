package audit

import (
	"time"

	"github.com/google/uuid"
)

// MaxEntries caps the activity log; older entries are trimmed once the
// cap is exceeded.
const MaxEntries = 2000

// Action labels written by the check-in desk and management flows.
const (
	ActionMemberCheckIn     = "تسجيل دخول عضو"
	ActionEmployeeCheckIn   = "تسجيل دخول موظف"
	ActionMemberCancel      = "إلغاء تسجيل حضور عضو"
	ActionEmployeeCancel    = "إلغاء تسجيل حضور موظف"
	ActionMemberRegistered  = "تسجيل عضو جديد"
	ActionMemberRenewed     = "تجديد اشتراك"
	ActionMemberFrozen      = "تجميد اشتراك"
	ActionMemberUnfrozen    = "إلغاء تجميد اشتراك"
	ActionMemberArchived    = "أرشفة عضو"
	ActionPaymentRecorded   = "تسجيل دفعة"
	ActionDeductionRecorded = "تسجيل خصم"
	ActionDataExported      = "تصدير البيانات"
)

// ScannerNote is appended to check-in details when the input channel
// was classified as scanner-fed.
const ScannerNote = " (عبر Card Scanner)"

// Entry is a single activity-log record.
type Entry struct {
	ID        string
	UserID    string
	Username  string
	Role      string
	Action    string
	Target    string
	Details   string
	Timestamp time.Time
}

// NewEntry creates an activity-log entry stamped with the current time.
// PRE: action is non-empty; actor fields identify the logged-in user
// POST: Returns an Entry with a fresh id and timestamp
func NewEntry(userID, username, role, action, target, details string) Entry {
	return Entry{
		ID:        "LOG-" + uuid.New().String(),
		UserID:    userID,
		Username:  username,
		Role:      role,
		Action:    action,
		Target:    target,
		Details:   details,
		Timestamp: time.Now(),
	}
}
