package service

import (
	"context"
	"testing"

	"github.com/zorguiala/domdom/internal/apierror"
	"github.com/zorguiala/domdom/internal/dto"
	"github.com/zorguiala/domdom/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEmployeeRepo struct {
	employees map[uuid.UUID]*model.Employee
}

func newStubEmployeeRepo() *stubEmployeeRepo {
	return &stubEmployeeRepo{employees: make(map[uuid.UUID]*model.Employee)}
}

func (r *stubEmployeeRepo) Create(_ context.Context, e *model.Employee) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	r.employees[e.ID] = e
	return nil
}

func (r *stubEmployeeRepo) FindByID(_ context.Context, id uuid.UUID) (*model.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, errNotFound
	}
	copied := *e
	return &copied, nil
}

func (r *stubEmployeeRepo) FindByEmail(_ context.Context, email string) (*model.Employee, error) {
	for _, e := range r.employees {
		if e.Email == email {
			copied := *e
			return &copied, nil
		}
	}
	return nil, errNotFound
}

func (r *stubEmployeeRepo) List(_ context.Context) ([]model.Employee, error) {
	var out []model.Employee
	for _, e := range r.employees {
		if e.Active {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *stubEmployeeRepo) Update(_ context.Context, e *model.Employee) error {
	r.employees[e.ID] = e
	return nil
}

func (r *stubEmployeeRepo) SoftDelete(_ context.Context, id uuid.UUID) error {
	e, ok := r.employees[id]
	if !ok {
		return errNotFound
	}
	e.Active = false
	return nil
}

func employeeReq(name, email string) dto.CreateEmployeeRequest {
	return dto.CreateEmployeeRequest{
		Name:     name,
		Email:    email,
		Position: "Baker",
		HireDate: "2025-03-01",
		Salary:   dec("2400"),
	}
}

func TestCreateEmployee(t *testing.T) {
	svc := NewEmployeeService(newStubEmployeeRepo())

	resp, err := svc.Create(context.Background(), employeeReq("Amel K", "amel@domdom.example"))
	require.NoError(t, err)
	assert.Equal(t, "2025-03-01", resp.HireDate)
	assert.True(t, resp.Active)

	_, err = svc.Create(context.Background(), employeeReq("Amel Bis", "amel@domdom.example"))
	require.Error(t, err)
	assert.Equal(t, apierror.KindConflict, apierror.KindOf(err))
}

func TestCreateEmployee_Validation(t *testing.T) {
	svc := NewEmployeeService(newStubEmployeeRepo())

	bad := employeeReq("Amel K", "amel@domdom.example")
	bad.HireDate = "01/03/2025"
	_, err := svc.Create(context.Background(), bad)
	require.Error(t, err)
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))

	bad = employeeReq("Amel K", "amel@domdom.example")
	bad.Salary = dec("-1")
	_, err = svc.Create(context.Background(), bad)
	require.Error(t, err)
	assert.Equal(t, apierror.KindValidation, apierror.KindOf(err))
}

func TestUpdateEmployee_EmailConflict(t *testing.T) {
	svc := NewEmployeeService(newStubEmployeeRepo())

	a, err := svc.Create(context.Background(), employeeReq("Amel K", "amel@domdom.example"))
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), employeeReq("Bilel M", "bilel@domdom.example"))
	require.NoError(t, err)

	taken := "bilel@domdom.example"
	_, err = svc.Update(context.Background(), uuid.MustParse(a.ID), dto.UpdateEmployeeRequest{Email: &taken})
	require.Error(t, err)
	assert.Equal(t, apierror.KindConflict, apierror.KindOf(err))
}

func TestDeleteEmployee_SoftDeletes(t *testing.T) {
	svc := NewEmployeeService(newStubEmployeeRepo())

	a, err := svc.Create(context.Background(), employeeReq("Amel K", "amel@domdom.example"))
	require.NoError(t, err)
	require.NoError(t, svc.Delete(context.Background(), uuid.MustParse(a.ID)))

	stored, err := svc.GetByID(context.Background(), uuid.MustParse(a.ID))
	require.NoError(t, err)
	assert.False(t, stored.Active)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}
