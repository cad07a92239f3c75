package users

import (
	"context"
	"errors"
	"fmt"

	apperrors "codeberg.org/clipcast/server/internal/errors"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var validate = validator.New()

type repository struct {
	db *pgxpool.Pool
}

// creates a new user repository
func NewRepository(db *pgxpool.Pool) Repository {
	return &repository{db: db}
}

// validates the fields required to provision a user. Called before any
// persistence so a failed validation never leaves a partial record.
func (req *CreateUserRequest) Validate() error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("user validation failed: %w", err)
	}

	return nil
}

func (r *repository) FindByGoogleSub(ctx context.Context, googleSub string) (*User, error) {
	return r.scanUser(r.db.QueryRow(ctx, queryFindByGoogleSub, googleSub))
}

func (r *repository) FindByID(ctx context.Context, userID string) (*User, error) {
	return r.scanUser(r.db.QueryRow(ctx, queryFindByID, userID))
}

func (r *repository) Create(ctx context.Context, req *CreateUserRequest) (*User, error) {
	user, err := r.scanUser(r.db.QueryRow(
		ctx,
		queryCreateUser,
		req.GoogleSub,
		req.Username,
		req.FirstName,
		req.LastName,
		req.Handle,
		req.Email,
	))

	if err != nil {
		if apperrors.IsUniqueViolation(err) {
			return nil, ErrDuplicate
		}

		return nil, err
	}

	return user, nil
}

func (r *repository) SetVerified(ctx context.Context, userID string) (*User, error) {
	return r.scanUser(r.db.QueryRow(ctx, querySetVerified, userID))
}

func (r *repository) AttachProfileImage(ctx context.Context, userID, fileName, contentType string, data []byte) error {
	_, err := r.db.Exec(ctx, queryAttachProfileImage, userID, fileName, contentType, data)
	return err
}

func (r *repository) GetProfileImage(ctx context.Context, handle string) (*ProfileImage, error) {
	var img ProfileImage

	err := r.db.QueryRow(ctx, queryGetProfileImageByHandle, handle).Scan(
		&img.FileName,
		&img.ContentType,
		&img.Data,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return &img, nil
}

func (r *repository) scanUser(row pgx.Row) (*User, error) {
	var user User

	err := row.Scan(
		&user.ID,
		&user.GoogleSub,
		&user.Username,
		&user.FirstName,
		&user.LastName,
		&user.Handle,
		&user.Email,
		&user.Verified,
		&user.Active,
		&user.ProfileImage,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, err
	}

	return &user, nil
}
