package users

const (
	userColumns = `id, google_sub, username, first_name, last_name, handle, email, verified, active, profile_image, created_at, updated_at`

	queryFindByGoogleSub = `
		SELECT ` + userColumns + `
		FROM users
		WHERE google_sub = $1
	`

	queryFindByID = `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`

	queryCreateUser = `
		INSERT INTO users (google_sub, username, first_name, last_name, handle, email, verified, active)
		VALUES ($1, $2, $3, $4, $5, $6, true, true)
		RETURNING ` + userColumns + `
	`

	querySetVerified = `
		UPDATE users
		SET verified = true, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns + `
	`

	queryAttachProfileImage = `
		WITH img AS (
			INSERT INTO profile_images (user_id, file_name, content_type, data)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (user_id)
			DO UPDATE SET
				file_name = EXCLUDED.file_name,
				content_type = EXCLUDED.content_type,
				data = EXCLUDED.data,
				updated_at = NOW()
		)
		UPDATE users
		SET profile_image = $2, updated_at = NOW()
		WHERE id = $1
	`

	queryGetProfileImageByHandle = `
		SELECT pi.file_name, pi.content_type, pi.data
		FROM profile_images pi
		JOIN users u ON u.id = pi.user_id
		WHERE u.handle = $1
	`
)
