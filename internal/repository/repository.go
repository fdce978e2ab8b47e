package repository

import (
	"leadbot/internal/domain"
)

// LeadRepository defines lead archive operations
type LeadRepository interface {
	SaveLead(lead domain.Lead) error
	CountLeads() (int, error)
}
