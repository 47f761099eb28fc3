package payroll

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhex-consulting/hrms-backend-go/internal/domain/auth"
	"github.com/jhex-consulting/hrms-backend-go/internal/domain/employee"
	"github.com/jhex-consulting/hrms-backend-go/internal/domain/payroll"
	"github.com/jhex-consulting/hrms-backend-go/internal/domain/role"
)

type fakePayrollRepo struct {
	payroll.PayrollRepository
	byID    payroll.PayrollRecord
	exists  bool
	created int
	updated bool
	deleted bool
}

func (f *fakePayrollRepo) ExistsForMonth(ctx context.Context, month string, employeeIDs []string, departmentID *string) (bool, error) {
	return f.exists, nil
}

func (f *fakePayrollRepo) Create(ctx context.Context, rec payroll.PayrollRecord) (payroll.PayrollRecord, error) {
	f.created++
	return rec, nil
}

func (f *fakePayrollRepo) GetByID(ctx context.Context, id string) (payroll.PayrollRecord, error) {
	return f.byID, nil
}

func (f *fakePayrollRepo) Update(ctx context.Context, rec payroll.PayrollRecord) error {
	f.updated = true
	return nil
}

func (f *fakePayrollRepo) Delete(ctx context.Context, id string) error {
	f.deleted = true
	return nil
}

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	listedActive bool
}

func (f *fakeEmployeeRepo) ListActive(ctx context.Context, employeeIDs []string, departmentID *string) ([]employee.Employee, error) {
	f.listedActive = true
	return nil, nil
}

func hrPrincipal() auth.Principal {
	return auth.Principal{EmployeeID: "emp-hr", Email: "hr@jhex.in", Role: role.RoleHR}
}

// A month that already has records fails the whole batch before any
// employee is even loaded.
func TestGenerate_ExistingMonthConflict(t *testing.T) {
	repo := &fakePayrollRepo{exists: true}
	employeeRepo := &fakeEmployeeRepo{}
	svc := NewPayrollService(repo, nil, nil, employeeRepo)

	_, err := svc.Generate(context.Background(), hrPrincipal(), payroll.GeneratePayrollRequest{Month: "2025-07"})

	require.ErrorIs(t, err, payroll.ErrPayrollAlreadyExists)
	assert.Zero(t, repo.created)
	assert.False(t, employeeRepo.listedActive)
}

func TestUpdate_SentRecordRejected(t *testing.T) {
	repo := &fakePayrollRepo{byID: payroll.PayrollRecord{ID: "pay-1", Status: payroll.StatusSent}}
	svc := NewPayrollService(repo, nil, nil, nil)

	arrears := 2
	_, err := svc.Update(context.Background(), hrPrincipal(), "pay-1", payroll.UpdatePayrollRequest{ArrearDays: &arrears})

	require.ErrorIs(t, err, payroll.ErrPayrollAlreadySent)
	assert.False(t, repo.updated)
}

func TestDelete_SentRecordRejected(t *testing.T) {
	repo := &fakePayrollRepo{byID: payroll.PayrollRecord{ID: "pay-1", Status: payroll.StatusSent}}
	svc := NewPayrollService(repo, nil, nil, nil)

	err := svc.Delete(context.Background(), hrPrincipal(), "pay-1")

	require.ErrorIs(t, err, payroll.ErrPayrollAlreadySent)
	assert.False(t, repo.deleted)
}

func TestDelete_RequiresPayrollManage(t *testing.T) {
	repo := &fakePayrollRepo{byID: payroll.PayrollRecord{ID: "pay-1", Status: payroll.StatusGenerated}}
	svc := NewPayrollService(repo, nil, nil, nil)

	p := auth.Principal{EmployeeID: "emp-9", Role: role.RoleTechnicalExpert}
	err := svc.Delete(context.Background(), p, "pay-1")

	require.ErrorIs(t, err, payroll.ErrNotAllowed)
	assert.False(t, repo.deleted)
}
