package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-policy-desk/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var policyColumns = []string{
	"p.id",
	"p.owner_id",
	"p.status",
	"p.form_data",
	"p.created_at",
	"p.last_modified",
	"(SELECT count(*) FROM policy_shares s WHERE s.policy_id = p.id) AS shared_count",
}

const (
	upsertPolicy = `INSERT INTO policies AS p (id, owner_id, status, form_data, last_modified)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (id) DO UPDATE
		SET status = EXCLUDED.status,
			form_data = EXCLUDED.form_data,
			last_modified = now()
		WHERE p.owner_id = EXCLUDED.owner_id
		RETURNING p.id, p.owner_id, p.status, p.form_data, p.created_at, p.last_modified,
			(SELECT count(*) FROM policy_shares s WHERE s.policy_id = p.id) AS shared_count;`

	deletePolicy = `DELETE FROM policies WHERE id = $1 AND owner_id = $2;`

	selectPolicyOwner = `SELECT owner_id FROM policies WHERE id = $1;`

	countPolicies = `SELECT
			(SELECT count(*) FROM policies WHERE owner_id = $1 AND status = 'SUBMITTED') AS submitted,
			(SELECT count(*) FROM policies WHERE owner_id = $1 AND status = 'DRAFT') AS drafts,
			(SELECT count(*) FROM policy_shares s JOIN policies p ON p.id = s.policy_id
				WHERE s.recipient_email = $2) AS shared;`
)

const (
	insertShareGrant = `INSERT INTO policy_shares (policy_id, recipient_email, granted_by, created_at)
		VALUES (:policy_id, :recipient_email, :granted_by, now());`

	insertNotification = `INSERT INTO notifications (id, recipient_email, message, policy_id, is_read, created_at)
		VALUES (:id, :recipient_email, :message, :policy_id, false, now());`

	deleteShareGrant = `DELETE FROM policy_shares WHERE policy_id = $1 AND recipient_email = $2;`

	selectShareGrants = `SELECT policy_id, recipient_email, granted_by, created_at
		FROM policy_shares
		WHERE policy_id = $1
		ORDER BY recipient_email;`

	existsShareGrant = `SELECT EXISTS (
			SELECT 1 FROM policy_shares WHERE policy_id = $1 AND recipient_email = $2
		);`
)

const (
	selectNotifications = `SELECT id, recipient_email, message, policy_id, is_read, created_at
		FROM notifications
		WHERE recipient_email = $1
		ORDER BY created_at DESC;`

	countUnreadNotifications = `SELECT count(*) FROM notifications WHERE recipient_email = $1 AND is_read = false;`

	markNotificationRead = `UPDATE notifications SET is_read = true
		WHERE id = $1 AND recipient_email = $2
		RETURNING id, recipient_email, message, policy_id, is_read, created_at;`
)

const (
	profileColumns = `id, email, first_name, last_name, agent_code, do_name, do_code, role`

	selectProfile = `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1;`

	selectProfiles = `SELECT ` + profileColumns + ` FROM profiles ORDER BY email;`

	upsertProfile = `INSERT INTO profiles (id, email, first_name, last_name, agent_code, do_name, do_code, role)
		VALUES (:id, :email, :first_name, :last_name, :agent_code, :do_name, :do_code, :role)
		ON CONFLICT (id) DO UPDATE
		SET email = EXCLUDED.email,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			agent_code = EXCLUDED.agent_code,
			do_name = EXCLUDED.do_name,
			do_code = EXCLUDED.do_code,
			updated_at = now()
		RETURNING ` + profileColumns + `;`

	updateProfileRole = `UPDATE profiles SET role = $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + profileColumns + `;`
)

// visibleTo is the access rule: the viewer owns the row or holds a grant
// for it by email.
func visibleTo(viewer models.Identity) sq.Sqlizer {
	return sq.Or{
		sq.Eq{"p.owner_id": viewer.UserID},
		sharedWith(viewer),
	}
}

func sharedWith(viewer models.Identity) sq.Sqlizer {
	return sq.Expr(
		"EXISTS (SELECT 1 FROM policy_shares s WHERE s.policy_id = p.id AND s.recipient_email = ?)",
		viewer.Email,
	)
}

func buildGetPolicyQuery(id string, viewer models.Identity) (string, []any, error) {
	query, args, err := psql.Select(policyColumns...).
		From("policies p").
		Where(sq.Eq{"p.id": id}).
		Where(visibleTo(viewer)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildListPoliciesQuery(viewer models.Identity, filter models.PolicyFilter) (string, []any, error) {
	builder := psql.Select(policyColumns...).From("policies p")

	switch filter.Scope {
	case models.ScopeShared:
		builder = builder.Where(sharedWith(viewer))
	case models.ScopeAll:
		builder = builder.Where(visibleTo(viewer))
	case models.ScopeOwned, "":
		builder = builder.Where(sq.Eq{"p.owner_id": viewer.UserID})
	default:
		return "", nil, fmt.Errorf("%w: unknown scope %q", ErrBuildingSQLQuery, filter.Scope)
	}

	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"p.status": string(filter.Status)})
	}

	query, args, err := builder.OrderBy("p.created_at DESC").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
