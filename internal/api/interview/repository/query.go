package interviewRepository

const (
	queryCreateSession = `
		INSERT INTO interview_sessions (
			id,
			user_id,
			target_role,
			status,
			started_at
		) VALUES (
			:id,
			:user_id,
			:target_role,
			:status,
			:started_at
		)
	`

	queryGetSessionByID = `
		SELECT
			id,
			user_id,
			target_role,
			status,
			started_at,
			ended_at
		FROM interview_sessions
		WHERE id = :id
	`

	queryGetSessionsByUserID = `
		SELECT
			id,
			user_id,
			target_role,
			status,
			started_at,
			ended_at
		FROM interview_sessions
		WHERE user_id = :user_id
		ORDER BY started_at DESC
	`

	queryUpdateSessionStatus = `
		UPDATE interview_sessions
		SET status = :status
		WHERE id = :id
	`

	queryFinishSession = `
		UPDATE interview_sessions
		SET
			status = :status,
			ended_at = :ended_at
		WHERE id = :id
	`

	queryCreateQuestion = `
		INSERT INTO interview_questions (
			id,
			session_id,
			ordinal,
			text,
			speech_url,
			is_answered
		) VALUES (
			:id,
			:session_id,
			:ordinal,
			:text,
			:speech_url,
			:is_answered
		)
	`

	queryGetQuestionByID = `
		SELECT
			id,
			session_id,
			ordinal,
			text,
			speech_url,
			is_answered
		FROM interview_questions
		WHERE id = :id
	`

	queryGetQuestionsBySessionID = `
		SELECT
			id,
			session_id,
			ordinal,
			text,
			speech_url,
			is_answered
		FROM interview_questions
		WHERE session_id = :session_id
		ORDER BY ordinal ASC
	`

	queryMarkQuestionAnswered = `
		UPDATE interview_questions
		SET is_answered = TRUE
		WHERE id = :id
	`

	queryCreateAnswer = `
		INSERT INTO interview_answers (
			id,
			session_id,
			question_id,
			audio_url,
			transcript,
			score,
			feedback,
			posture_summary,
			emotion_summary,
			filler_word_count,
			words_per_minute,
			duration_seconds,
			created_at
		) VALUES (
			:id,
			:session_id,
			:question_id,
			:audio_url,
			:transcript,
			:score,
			:feedback,
			:posture_summary,
			:emotion_summary,
			:filler_word_count,
			:words_per_minute,
			:duration_seconds,
			:created_at
		)
	`

	queryGetAnswersBySessionID = `
		SELECT
			id,
			session_id,
			question_id,
			audio_url,
			transcript,
			score,
			feedback,
			posture_summary,
			emotion_summary,
			filler_word_count,
			words_per_minute,
			duration_seconds,
			created_at
		FROM interview_answers
		WHERE session_id = :session_id
		ORDER BY created_at ASC
	`
)
