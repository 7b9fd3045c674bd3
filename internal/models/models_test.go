package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(offset int) time.Time {
	return time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func TestStayStatusTransitions(t *testing.T) {
	testCases := []struct {
		from StayStatus
		to   StayStatus
		want bool
	}{
		{StayRequested, StayConfirmed, true},
		{StayRequested, StayCancelled, true},
		{StayRequested, StayActive, false},
		{StayPlanned, StayActive, true},
		{StayPlanned, StayCancelled, true},
		{StayConfirmed, StayActive, true},
		{StayConfirmed, StayCancelled, true},
		{StayConfirmed, StayCompleted, false},
		{StayActive, StayCompleted, true},
		{StayActive, StayCancelled, false},
		{StayCompleted, StayActive, false},
		{StayCancelled, StayRequested, false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.from)+"_to_"+string(tc.to), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.from.CanTransitionTo(tc.to))
		})
	}

	assert.True(t, StayCompleted.Terminal())
	assert.True(t, StayCancelled.Terminal())
	assert.False(t, StayActive.Terminal())
}

func TestIssueStatusForwardOnly(t *testing.T) {
	assert.True(t, IssueOpen.CanTransitionTo(IssuePlanned))
	assert.True(t, IssueOpen.CanTransitionTo(IssueFixed))
	assert.True(t, IssuePlanned.CanTransitionTo(IssueInProgress))
	assert.False(t, IssueInProgress.CanTransitionTo(IssuePlanned))
	assert.False(t, IssueFixed.CanTransitionTo(IssueOpen))
	assert.False(t, IssueOpen.CanTransitionTo(IssueOpen))
	assert.False(t, IssueStatus("bogus").CanTransitionTo(IssueFixed))
}

func TestStayOverlaps(t *testing.T) {
	houseID := uuid.New()

	base := Stay{HouseID: houseID, StartDate: day(2), EndDate: day(5)}

	testCases := []struct {
		name  string
		other Stay
		want  bool
	}{
		{"same range", Stay{HouseID: houseID, StartDate: day(2), EndDate: day(5)}, true},
		{"partial overlap", Stay{HouseID: houseID, StartDate: day(4), EndDate: day(7)}, true},
		{"touching end", Stay{HouseID: houseID, StartDate: day(5), EndDate: day(8)}, true},
		{"disjoint", Stay{HouseID: houseID, StartDate: day(6), EndDate: day(8)}, false},
		{"different house", Stay{HouseID: uuid.New(), StartDate: day(2), EndDate: day(5)}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, base.Overlaps(&tc.other))
		})
	}
}

func TestCopyChecklist(t *testing.T) {
	template := NewChecklist("Vacuum", "Change sheets")
	memberID := uuid.New()
	template[0].Checked = true
	template[0].CheckedBy = &memberID

	fresh := CopyChecklist(template)
	require.Len(t, fresh, 2)

	for i, item := range fresh {
		assert.Equal(t, template[i].Text, item.Text)
		assert.NotEqual(t, template[i].ID, item.ID)
		assert.False(t, item.Checked)
		assert.Nil(t, item.CheckedBy)
		assert.Nil(t, item.CheckedAt)
	}
}

func TestChecklistProgress(t *testing.T) {
	items := NewChecklist("a", "b", "c")
	items[1].Checked = true

	checked, total := ChecklistProgress(items)
	assert.Equal(t, 1, checked)
	assert.Equal(t, 3, total)

	checked, total = ChecklistProgress(nil)
	assert.Equal(t, 0, checked)
	assert.Equal(t, 0, total)
}

func TestCleaningTaskDeriveStatus(t *testing.T) {
	task := CleaningTask{Checklist: NewChecklist("Vacuum", "Change sheets")}
	assert.Equal(t, CleaningPending, task.DeriveStatus())

	task.Checklist[0].Checked = true
	assert.Equal(t, CleaningInProgress, task.DeriveStatus())

	task.Checklist[1].Checked = true
	assert.Equal(t, CleaningCompleted, task.DeriveStatus())

	// An empty checklist never reads as completed
	empty := CleaningTask{}
	assert.Equal(t, CleaningPending, empty.DeriveStatus())
}

func TestRolePermissions(t *testing.T) {
	assert.True(t, RoleOwner.HasPermission(PermManageHouses))
	assert.True(t, RoleOwner.HasPermission(PermManageData))
	assert.False(t, RoleCohost.HasPermission(PermManageHouses))
	assert.True(t, RoleCohost.HasPermission(PermConfirmStays))
	assert.True(t, RoleGuest.HasPermission(PermSuggestShopping))
	assert.False(t, RoleGuest.HasPermission(PermAddShopping))
	assert.True(t, RoleCleaner.HasPermission(PermManageCleaning))
	assert.False(t, RoleCleaner.HasPermission(PermConfirmStays))

	assert.True(t, RoleOwner.Valid())
	assert.False(t, Role("janitor").Valid())
}

func TestNotificationVisibility(t *testing.T) {
	guest := RoleGuest

	broadcast := Notification{}
	assert.True(t, broadcast.VisibleToRole(RoleOwner))
	assert.True(t, broadcast.VisibleToRole(RoleGuest))

	addressed := Notification{RecipientRole: &guest}
	assert.True(t, addressed.VisibleToRole(RoleGuest))
	assert.False(t, addressed.VisibleToRole(RoleOwner))
}

func TestShoppingPriorityRank(t *testing.T) {
	assert.Less(t, PriorityUrgent.Rank(), PriorityHigh.Rank())
	assert.Less(t, PriorityHigh.Rank(), PriorityNormal.Rank())
	assert.Less(t, PriorityNormal.Rank(), PriorityLow.Rank())

	// Unknown priorities sort after everything known
	assert.Greater(t, ShoppingPriority("bogus").Rank(), PriorityLow.Rank())
}
