package tokens

const (
	queryCreateToken = `
		INSERT INTO refresh_tokens (id, user_id, expires_at)
		VALUES ($1, $2, $3)
	`

	queryRevokeToken = `
		UPDATE refresh_tokens
		SET revoked = true, revoked_at = NOW()
		WHERE id = $1 AND revoked = false
	`

	queryIsRevoked = `
		SELECT revoked
		FROM refresh_tokens
		WHERE id = $1
	`

	queryDeleteExpired = `
		DELETE FROM refresh_tokens
		WHERE expires_at < NOW()
	`
)
