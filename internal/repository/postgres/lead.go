package postgres

import (
	"database/sql"

	"leadbot/internal/domain"
)

// LeadRepo implements repository.LeadRepository
type LeadRepo struct {
	db *sql.DB
}

// NewLeadRepo creates a new lead repository
func NewLeadRepo(db *sql.DB) *LeadRepo {
	return &LeadRepo{db: db}
}

// SaveLead inserts a submitted lead
func (r *LeadRepo) SaveLead(lead domain.Lead) error {
	query := `
		INSERT INTO leads (user_id, username, language, name, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(query,
		lead.UserID,
		lead.Username,
		lead.Language,
		lead.Name,
		lead.Comment,
		lead.CreatedAt,
	)
	return err
}

// CountLeads returns the total number of archived leads
func (r *LeadRepo) CountLeads() (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM leads`
	err := r.db.QueryRow(query).Scan(&count)
	return count, err
}
