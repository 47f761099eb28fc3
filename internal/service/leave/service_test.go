package leave

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhex-consulting/hrms-backend-go/internal/domain/auth"
	"github.com/jhex-consulting/hrms-backend-go/internal/domain/leave"
	"github.com/jhex-consulting/hrms-backend-go/internal/domain/role"
)

type fakeRequestRepo struct {
	leave.LeaveRequestRepository
	byID          leave.LeaveRequest
	decidedStatus leave.Status
	datesUpdated  bool
}

func (f *fakeRequestRepo) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	return f.byID, nil
}

func (f *fakeRequestRepo) Decide(ctx context.Context, id string, status leave.Status, approverID string, approvalDate time.Time, notes *string) error {
	f.decidedStatus = status
	return nil
}

func (f *fakeRequestRepo) UpdateDates(ctx context.Context, id string, startDate, endDate time.Time, totalDays int, reason *string) error {
	f.datesUpdated = true
	return nil
}

type usedIncrement struct {
	leaveType leave.Type
	days      int
}

type fakeBalanceRepo struct {
	leave.LeaveBalanceRepository
	increments []usedIncrement
}

func (f *fakeBalanceRepo) Ensure(ctx context.Context, employeeID string, year int) (leave.LeaveBalance, error) {
	return leave.LeaveBalance{
		EmployeeID:   employeeID,
		Year:         year,
		CasualLeaves: leave.DefaultCasualLeaves,
		SickLeaves:   leave.DefaultSickLeaves,
		AnnualLeaves: leave.DefaultAnnualLeaves,
	}, nil
}

func (f *fakeBalanceRepo) IncrementUsed(ctx context.Context, employeeID string, year int, leaveType leave.Type, days int) error {
	f.increments = append(f.increments, usedIncrement{leaveType: leaveType, days: days})
	return nil
}

type fakeTx struct{ pgx.Tx }

func (fakeTx) Commit(context.Context) error   { return nil }
func (fakeTx) Rollback(context.Context) error { return nil }

type fakeTxBeginner struct{}

func (fakeTxBeginner) BeginTx(ctx context.Context) (pgx.Tx, error) { return fakeTx{}, nil }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTotalDays(t *testing.T) {
	cases := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"single day", day(2025, 7, 14), day(2025, 7, 14), 1},
		{"two days", day(2025, 7, 14), day(2025, 7, 15), 2},
		{"full week", day(2025, 7, 14), day(2025, 7, 20), 7},
		{"across month boundary", day(2025, 7, 30), day(2025, 8, 2), 4},
		{"across year boundary", day(2025, 12, 30), day(2026, 1, 2), 4},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, totalDays(c.start, c.end))
		})
	}
}

func TestLeaveBalance_Available(t *testing.T) {
	balance := leave.LeaveBalance{
		CasualLeaves: leave.DefaultCasualLeaves,
		SickLeaves:   leave.DefaultSickLeaves,
		AnnualLeaves: leave.DefaultAnnualLeaves,
		UsedCasual:   3,
		UsedSick:     12,
		UsedAnnual:   5,
	}

	assert.Equal(t, 9, balance.Available(leave.TypeCasual))
	assert.Equal(t, 0, balance.Available(leave.TypeSick))
	assert.Equal(t, 16, balance.Available(leave.TypeAnnual))

	// Untracked types are effectively unlimited.
	assert.Equal(t, 999, balance.Available(leave.TypeMaternity))
	assert.Equal(t, 999, balance.Available(leave.TypePaternity))
	assert.Equal(t, 999, balance.Available(leave.TypeOther))
}

func pendingRequest(leaveType leave.Type) leave.LeaveRequest {
	return leave.LeaveRequest{
		ID:         "req-1",
		EmployeeID: "emp-2",
		LeaveType:  leaveType,
		StartDate:  day(2025, 7, 14),
		EndDate:    day(2025, 7, 16),
		TotalDays:  3,
		Status:     leave.StatusPending,
	}
}

// Updating a pending request re-runs the creation-time date rules; a range
// moved into the past is rejected before anything is written.
func TestUpdateRequest_RejectsPastStartDate(t *testing.T) {
	future := time.Now().UTC().AddDate(0, 0, 14)
	existing := leave.LeaveRequest{
		ID:         "req-1",
		EmployeeID: "emp-1",
		LeaveType:  leave.TypeCasual,
		StartDate:  future,
		EndDate:    future.AddDate(0, 0, 2),
		TotalDays:  3,
		Status:     leave.StatusPending,
	}
	repo := &fakeRequestRepo{byID: existing}
	svc := NewLeaveService(fakeTxBeginner{}, repo, &fakeBalanceRepo{}, nil)

	start := time.Now().UTC().AddDate(0, 0, -30).Format(time.DateOnly)
	end := time.Now().UTC().AddDate(0, 0, -28).Format(time.DateOnly)
	p := auth.Principal{EmployeeID: "emp-1", Role: role.RoleTechnicalExpert}

	_, err := svc.UpdateRequest(context.Background(), p, "req-1", leave.UpdateLeaveRequest{StartDate: &start, EndDate: &end})

	require.ErrorIs(t, err, leave.ErrPastStartDate)
	assert.False(t, repo.datesUpdated)
}

func TestUpdateRequest_MovesDatesForward(t *testing.T) {
	future := time.Now().UTC().AddDate(0, 0, 14)
	existing := leave.LeaveRequest{
		ID:         "req-1",
		EmployeeID: "emp-1",
		LeaveType:  leave.TypeCasual,
		StartDate:  future,
		EndDate:    future.AddDate(0, 0, 2),
		TotalDays:  3,
		Status:     leave.StatusPending,
	}
	repo := &fakeRequestRepo{byID: existing}
	svc := NewLeaveService(fakeTxBeginner{}, repo, &fakeBalanceRepo{}, nil)

	start := time.Now().UTC().AddDate(0, 0, 21).Format(time.DateOnly)
	end := time.Now().UTC().AddDate(0, 0, 23).Format(time.DateOnly)
	p := auth.Principal{EmployeeID: "emp-1", Role: role.RoleTechnicalExpert}

	_, err := svc.UpdateRequest(context.Background(), p, "req-1", leave.UpdateLeaveRequest{StartDate: &start, EndDate: &end})

	require.NoError(t, err)
	assert.True(t, repo.datesUpdated)
}

func TestDecideRequest_ApprovedDebitsMatchingCounter(t *testing.T) {
	cases := []struct {
		name      string
		leaveType leave.Type
		wantDebit bool
	}{
		{"casual", leave.TypeCasual, true},
		{"sick", leave.TypeSick, true},
		{"annual", leave.TypeAnnual, true},
		{"maternity", leave.TypeMaternity, false},
		{"other", leave.TypeOther, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			repo := &fakeRequestRepo{byID: pendingRequest(c.leaveType)}
			balances := &fakeBalanceRepo{}
			svc := NewLeaveService(fakeTxBeginner{}, repo, balances, nil)
			p := auth.Principal{EmployeeID: "emp-1", Role: role.RoleHR}

			_, err := svc.DecideRequest(context.Background(), p, "req-1", leave.DecideLeaveRequest{Status: leave.StatusApproved})

			require.NoError(t, err)
			assert.Equal(t, leave.StatusApproved, repo.decidedStatus)
			if c.wantDebit {
				require.Len(t, balances.increments, 1)
				assert.Equal(t, usedIncrement{leaveType: c.leaveType, days: 3}, balances.increments[0])
			} else {
				assert.Empty(t, balances.increments)
			}
		})
	}
}

func TestDecideRequest_RejectedTouchesNoCounter(t *testing.T) {
	repo := &fakeRequestRepo{byID: pendingRequest(leave.TypeCasual)}
	balances := &fakeBalanceRepo{}
	svc := NewLeaveService(fakeTxBeginner{}, repo, balances, nil)
	p := auth.Principal{EmployeeID: "emp-1", Role: role.RoleHR}

	_, err := svc.DecideRequest(context.Background(), p, "req-1", leave.DecideLeaveRequest{Status: leave.StatusRejected})

	require.NoError(t, err)
	assert.Equal(t, leave.StatusRejected, repo.decidedStatus)
	assert.Empty(t, balances.increments)
}

func TestLeaveType_IsBalanceTracked(t *testing.T) {
	tracked := []leave.Type{leave.TypeCasual, leave.TypeSick, leave.TypeAnnual}
	untracked := []leave.Type{leave.TypeMaternity, leave.TypePaternity, leave.TypeOther}

	for _, lt := range tracked {
		assert.True(t, lt.IsBalanceTracked(), "%s should be tracked", lt)
	}
	for _, lt := range untracked {
		assert.False(t, lt.IsBalanceTracked(), "%s should not be tracked", lt)
	}
}
