package models

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleOwner   Role = "owner"
	RoleCohost  Role = "cohost"
	RoleGuest   Role = "guest"
	RoleCleaner Role = "cleaner"
)

type Permission string

const (
	PermManageHouses    Permission = "houses:manage"
	PermRequestStays    Permission = "stays:request"
	PermManageStays     Permission = "stays:manage"
	PermConfirmStays    Permission = "stays:confirm"
	PermReportIssues    Permission = "issues:report"
	PermManageIssues    Permission = "issues:manage"
	PermAddShopping     Permission = "shopping:add"
	PermSuggestShopping Permission = "shopping:suggest"
	PermApproveShopping Permission = "shopping:approve"
	PermPostBoard       Permission = "board:post"
	PermManageCleaning  Permission = "cleaning:manage"
	PermManageData      Permission = "data:manage"
)

// rolePermissions is the static role to permission-set mapping. Member
// identity is immutable once created; what a member may do is derived from
// the role alone.
var rolePermissions = map[Role][]Permission{
	RoleOwner: {
		PermManageHouses, PermRequestStays, PermManageStays, PermConfirmStays,
		PermReportIssues, PermManageIssues, PermAddShopping, PermApproveShopping,
		PermPostBoard, PermManageCleaning, PermManageData,
	},
	RoleCohost: {
		PermRequestStays, PermManageStays, PermConfirmStays,
		PermReportIssues, PermManageIssues, PermAddShopping, PermApproveShopping,
		PermPostBoard, PermManageCleaning,
	},
	RoleGuest: {
		PermRequestStays, PermReportIssues, PermSuggestShopping, PermPostBoard,
	},
	RoleCleaner: {
		PermReportIssues, PermAddShopping, PermPostBoard, PermManageCleaning,
	},
}

func (r Role) Valid() bool {
	_, ok := rolePermissions[r]
	return ok
}

func (r Role) HasPermission(permission Permission) bool {
	for _, p := range rolePermissions[r] {
		if p == permission {
			return true
		}
	}
	return false
}

func (r Role) Permissions() []Permission {
	perms := rolePermissions[r]
	out := make([]Permission, len(perms))
	copy(out, perms)
	return out
}

type Member struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// MemberProfile is the public projection of a member
type MemberProfile struct {
	ID          uuid.UUID    `json:"id"`
	Name        string       `json:"name"`
	Role        Role         `json:"role"`
	Permissions []Permission `json:"permissions"`
}

func (m *Member) ToProfile() MemberProfile {
	return MemberProfile{
		ID:          m.ID,
		Name:        m.Name,
		Role:        m.Role,
		Permissions: m.Role.Permissions(),
	}
}
