package audience

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/rchdlps/gerenciador-projetos-sub002/internal/repo"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/repo/membership"
	"github.com/rchdlps/gerenciador-projetos-sub002/internal/repo/user"
)

type entDirectory struct {
	db *repo.Client
}

// NewDirectory builds the database-backed Directory.
func NewDirectory(db *repo.Client) Directory {
	return &entDirectory{db: db}
}

func (d *entDirectory) ActiveUserIDs(ctx context.Context) ([]uuid.UUID, error) {
	ids, err := d.db.User.Query().
		Where(user.IsActive(true)).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("query active users: %w", err)
	}
	return ids, nil
}

func (d *entDirectory) OrganizationMemberIDs(ctx context.Context, orgIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(orgIDs) == 0 {
		return nil, nil
	}
	rows, err := d.db.Membership.Query().
		Where(membership.OrganizationIDIn(orgIDs...)).
		Select(membership.FieldUserID).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query memberships: %w", err)
	}
	return d.activeSubset(ctx, memberUserIDs(rows))
}

func (d *entDirectory) RoleMemberIDs(ctx context.Context, orgID uuid.UUID, roles []string) ([]uuid.UUID, error) {
	if len(roles) == 0 {
		return nil, nil
	}
	roleVals := make([]membership.Role, 0, len(roles))
	for _, r := range roles {
		roleVals = append(roleVals, membership.Role(r))
	}
	rows, err := d.db.Membership.Query().
		Where(
			membership.OrganizationID(orgID),
			membership.RoleIn(roleVals...),
		).
		Select(membership.FieldUserID).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query role memberships: %w", err)
	}
	return d.activeSubset(ctx, memberUserIDs(rows))
}

func (d *entDirectory) ActiveUsers(ctx context.Context) ([]ActiveUser, error) {
	rows, err := d.db.User.Query().
		Where(user.IsActive(true)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query active users: %w", err)
	}
	out := make([]ActiveUser, 0, len(rows))
	for _, row := range rows {
		out = append(out, ActiveUser{ID: row.ID, Name: row.Name, Email: row.Email})
	}
	return out, nil
}

// activeSubset filters membership-derived user ids down to active accounts.
// Memberships reference users by raw id column, so the active check is a
// second query rather than a join.
func (d *entDirectory) activeSubset(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	active, err := d.db.User.Query().
		Where(
			user.IDIn(ids...),
			user.IsActive(true),
		).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("filter active users: %w", err)
	}
	return active, nil
}

func memberUserIDs(rows []*repo.Membership) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.UserID)
	}
	return out
}
