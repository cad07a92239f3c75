package tokens

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repository struct {
	db *pgxpool.Pool
}

// creates a new refresh-token repository
func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, token *RefreshToken) error {
	_, err := r.db.Exec(ctx, queryCreateToken, token.ID, token.UserID, token.ExpiresAt)
	return err
}

func (r *repository) Revoke(ctx context.Context, tokenID string) (bool, error) {
	tag, err := r.db.Exec(ctx, queryRevokeToken, tokenID)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}

func (r *repository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	var revoked bool

	err := r.db.QueryRow(ctx, queryIsRevoked, tokenID).Scan(&revoked)
	if err != nil {
		// a token we never recorded must not be honored
		if errors.Is(err, pgx.ErrNoRows) {
			return true, nil
		}

		return false, err
	}

	return revoked, nil
}

func (r *repository) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := r.db.Exec(ctx, queryDeleteExpired)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}
