package testutil

import (
	"leadbot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockLeadRepository is a mock for repository.LeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) SaveLead(lead domain.Lead) error {
	args := m.Called(lead)
	return args.Error(0)
}

func (m *MockLeadRepository) CountLeads() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

// MockNotifier is a mock for service.Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(text string) error {
	args := m.Called(text)
	return args.Error(0)
}
