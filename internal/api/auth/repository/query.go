package authRepository

const (
	queryCreateUser = `
		INSERT INTO users (
			id,
			email,
			name,
			password,
			phone_number,
			target_role,
			is_verified,
			created_at,
			updated_at
		) VALUES (
			:id,
			:email,
			:name,
			:password,
			:phone_number,
			:target_role,
			:is_verified,
			:created_at,
			:updated_at
		)
	`

	queryGetUserByID = `
		SELECT
			id,
			email,
			name,
			password,
			phone_number,
			target_role,
			profile_photo_url,
			is_verified,
			created_at,
			updated_at
		FROM users
		WHERE id = :id
	`

	queryGetUserByEmail = `
		SELECT
			id,
			email,
			name,
			password,
			phone_number,
			target_role,
			profile_photo_url,
			is_verified,
			created_at,
			updated_at
		FROM users
		WHERE email = :email
	`

	queryUpdateProfile = `
		UPDATE users
		SET
			name = :name,
			phone_number = :phone_number,
			target_role = :target_role,
			updated_at = :updated_at
		WHERE id = :id
	`

	queryUpdateProfilePhoto = `
		UPDATE users
		SET
			profile_photo_url = :profile_photo_url,
			updated_at = :updated_at
		WHERE id = :id
	`
)
