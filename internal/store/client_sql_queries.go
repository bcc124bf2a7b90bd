package store

const (
	saveLocalSession = `INSERT INTO local_session (id, token, user_id, email, saved_at)
		VALUES (1, :token, :user_id, :email, :saved_at)
		ON CONFLICT (id) DO UPDATE
		SET token = excluded.token,
			user_id = excluded.user_id,
			email = excluded.email,
			saved_at = excluded.saved_at;`

	selectLocalSession = `SELECT token, user_id, email, saved_at FROM local_session WHERE id = 1;`

	deleteLocalSession = `DELETE FROM local_session;`
)

const (
	saveWizardSnapshot = `INSERT INTO wizard_snapshots (snapshot_key, policy_id, status, step, read_only, form_data, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (snapshot_key) DO UPDATE
		SET policy_id = excluded.policy_id,
			status = excluded.status,
			step = excluded.step,
			read_only = excluded.read_only,
			form_data = excluded.form_data,
			updated_at = excluded.updated_at;`

	selectWizardSnapshot = `SELECT policy_id, status, step, read_only, form_data, updated_at
		FROM wizard_snapshots
		WHERE snapshot_key = ?;`

	deleteWizardSnapshot = `DELETE FROM wizard_snapshots WHERE snapshot_key = ?;`
)
