package services

import (
	"context"
	"errors"
	"sync/atomic"

	"neonatal-record-service/internal/domain/entities"
	"neonatal-record-service/internal/domain/repositories"
)

// Compile-time check to ensure MockPatientRepository implements PatientRepositoryContract
var _ repositories.PatientRepositoryContract = (*MockPatientRepository)(nil)

// MockPatientRepository is a mock implementation of PatientRepositoryContract.
type MockPatientRepository struct {
	CreateFunc  func(ctx context.Context, paciente *entities.Paciente) (int64, error)
	GetByIDFunc func(ctx context.Context, id int64) (*entities.Paciente, error)
	UpdateFunc  func(ctx context.Context, paciente *entities.Paciente) error
	DeleteFunc  func(ctx context.Context, id int64) error
	SearchFunc  func(ctx context.Context, query string) ([]entities.Paciente, error)
	ListAllFunc func(ctx context.Context) ([]entities.Paciente, error)

	CreateFuncCallCount  int32
	ListAllFuncCallCount int32
}

func (m *MockPatientRepository) Create(ctx context.Context, paciente *entities.Paciente) (int64, error) {
	atomic.AddInt32(&m.CreateFuncCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, paciente)
	}
	return 1, nil
}

func (m *MockPatientRepository) GetByID(ctx context.Context, id int64) (*entities.Paciente, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, errors.New("GetByIDFunc not implemented in mock")
}

func (m *MockPatientRepository) Update(ctx context.Context, paciente *entities.Paciente) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, paciente)
	}
	return errors.New("UpdateFunc not implemented in mock")
}

func (m *MockPatientRepository) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return errors.New("DeleteFunc not implemented in mock")
}

func (m *MockPatientRepository) Search(ctx context.Context, query string) ([]entities.Paciente, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query)
	}
	return nil, errors.New("SearchFunc not implemented in mock")
}

func (m *MockPatientRepository) ListAll(ctx context.Context) ([]entities.Paciente, error) {
	atomic.AddInt32(&m.ListAllFuncCallCount, 1)
	if m.ListAllFunc != nil {
		return m.ListAllFunc(ctx)
	}
	return nil, nil
}
