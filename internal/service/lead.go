package service

import (
	"fmt"

	"leadbot/internal/domain"
	"leadbot/internal/i18n"
	"leadbot/internal/repository"

	"go.uber.org/zap"
)

// Notifier delivers lead notifications to the admin destination
type Notifier interface {
	Notify(text string) error
}

// LeadService forwards submitted leads to the admin chat and,
// when an archive is configured, records them.
type LeadService struct {
	notifier Notifier
	leadRepo repository.LeadRepository // nil when the archive is disabled
	logger   *zap.Logger
}

// NewLeadService creates a new lead service. leadRepo may be nil.
func NewLeadService(notifier Notifier, leadRepo repository.LeadRepository, logger *zap.Logger) *LeadService {
	return &LeadService{
		notifier: notifier,
		leadRepo: leadRepo,
		logger:   logger,
	}
}

// Submit notifies the admin chat about a lead and archives it.
// The archive is best effort: a failed insert is logged but never hides
// a successful notification.
func (s *LeadService) Submit(lead domain.Lead) error {
	text := lead.AdminText(i18n.T(lead.Language, i18n.KeyLead))

	notifyErr := s.notifier.Notify(text)
	if notifyErr != nil {
		s.logger.Error("Failed to notify admin chat",
			zap.Error(notifyErr),
			zap.Int64("user_id", lead.UserID),
		)
		notifyErr = fmt.Errorf("notify admin: %w", notifyErr)
	}

	if s.leadRepo != nil {
		if err := s.leadRepo.SaveLead(lead); err != nil {
			s.logger.Error("Failed to archive lead",
				zap.Error(err),
				zap.Int64("user_id", lead.UserID),
			)
		}
	}

	return notifyErr
}
