package repository

import (
	"context"
	"database/sql"
	"errors"

	"collective-ledger/internal/audit/domain"
)

const (
	insertAuditLog = `INSERT INTO audit_logs (id, actor, action, resource, proposal_index, outcome, error_kind, ip, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	selectAuditLog = `SELECT id, actor, action, resource, proposal_index, outcome, error_kind, ip, created_at
FROM audit_logs`
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns an audit log repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetByID returns the audit log for id, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.AuditLog, error) {
	row := r.db.QueryRowContext(ctx, selectAuditLog+` WHERE id = $1`, id)
	a, err := scanAuditLog(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return a, nil
}

// List returns audit logs newest first, paginated by limit and offset.
func (r *PostgresRepository) List(ctx context.Context, limit, offset int32) ([]*domain.AuditLog, error) {
	rows, err := r.db.QueryContext(ctx, selectAuditLog+` ORDER BY created_at DESC, id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.AuditLog
	for rows.Next() {
		a, err := scanAuditLog(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Create persists the audit log. The audit log must have ID set.
func (r *PostgresRepository) Create(ctx context.Context, a *domain.AuditLog) error {
	var idx sql.NullInt32
	if a.ProposalIndex != nil {
		idx = sql.NullInt32{Int32: int32(*a.ProposalIndex), Valid: true}
	}
	_, err := r.db.ExecContext(ctx, insertAuditLog,
		a.ID, a.Actor, a.Action, a.Resource, idx, a.Outcome, a.ErrorKind, a.IP, a.CreatedAt)
	return err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAuditLog(s scanner) (*domain.AuditLog, error) {
	var (
		a   domain.AuditLog
		idx sql.NullInt32
	)
	if err := s.Scan(&a.ID, &a.Actor, &a.Action, &a.Resource, &idx, &a.Outcome, &a.ErrorKind, &a.IP, &a.CreatedAt); err != nil {
		return nil, err
	}
	if idx.Valid {
		i := int(idx.Int32)
		a.ProposalIndex = &i
	}
	return &a, nil
}
