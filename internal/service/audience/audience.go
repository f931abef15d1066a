package audience

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// TargetType selects how a broadcast audience is resolved.
type TargetType string

const (
	TargetUser         TargetType = "user"
	TargetOrganization TargetType = "organization"
	TargetRole         TargetType = "role"
	TargetMultiOrg     TargetType = "multi_org"
	TargetAll          TargetType = "all"
)

// ParseTargetType normalizes an external target type string. The hyphenated
// spelling of multi_org is accepted for older clients.
func ParseTargetType(s string) (TargetType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "user":
		return TargetUser, nil
	case "organization":
		return TargetOrganization, nil
	case "role":
		return TargetRole, nil
	case "multi_org", "multi-org":
		return TargetMultiOrg, nil
	case "all":
		return TargetAll, nil
	default:
		return "", fmt.Errorf("unknown target type %q", s)
	}
}

// Target describes who a broadcast is addressed to. IDs holds user ids,
// organization ids or role names depending on Type. OrganizationID scopes
// role targets to one organization.
type Target struct {
	Type           TargetType
	IDs            []string
	OrganizationID *uuid.UUID
}

// ActiveUser is the slice of the user record the digest job needs.
type ActiveUser struct {
	ID    uuid.UUID
	Name  string
	Email string
}

// Directory answers membership questions. Every method returns only active
// users.
type Directory interface {
	ActiveUserIDs(ctx context.Context) ([]uuid.UUID, error)
	OrganizationMemberIDs(ctx context.Context, orgIDs []uuid.UUID) ([]uuid.UUID, error)
	RoleMemberIDs(ctx context.Context, orgID uuid.UUID, roles []string) ([]uuid.UUID, error)
	ActiveUsers(ctx context.Context) ([]ActiveUser, error)
}

// Resolve expands a target into a deduplicated list of recipient user ids.
// Unknown target types and role targets without an organization resolve to
// an empty audience rather than an error; the caller decides whether an
// empty audience is a problem.
func Resolve(ctx context.Context, dir Directory, t Target) ([]uuid.UUID, error) {
	switch t.Type {
	case TargetUser:
		ids := make([]uuid.UUID, 0, len(t.IDs))
		for _, raw := range t.IDs {
			id, err := uuid.Parse(raw)
			if err != nil {
				return nil, fmt.Errorf("parse user id %q: %w", raw, err)
			}
			ids = append(ids, id)
		}
		return dedup(ids), nil

	case TargetOrganization:
		// A single organization: the scope field wins, otherwise the first
		// id. Multiple organizations go through multi_org.
		var orgID uuid.UUID
		switch {
		case t.OrganizationID != nil:
			orgID = *t.OrganizationID
		case len(t.IDs) > 0:
			id, err := uuid.Parse(t.IDs[0])
			if err != nil {
				return nil, fmt.Errorf("parse id %q: %w", t.IDs[0], err)
			}
			orgID = id
		default:
			return nil, nil
		}
		ids, err := dir.OrganizationMemberIDs(ctx, []uuid.UUID{orgID})
		if err != nil {
			return nil, fmt.Errorf("resolve organization members: %w", err)
		}
		return dedup(ids), nil

	case TargetRole:
		if t.OrganizationID == nil {
			return nil, nil
		}
		ids, err := dir.RoleMemberIDs(ctx, *t.OrganizationID, t.IDs)
		if err != nil {
			return nil, fmt.Errorf("resolve role members: %w", err)
		}
		return dedup(ids), nil

	case TargetMultiOrg:
		orgIDs, err := parseIDs(t.IDs)
		if err != nil {
			return nil, err
		}
		if len(orgIDs) == 0 {
			return nil, nil
		}
		ids, err := dir.OrganizationMemberIDs(ctx, dedup(orgIDs))
		if err != nil {
			return nil, fmt.Errorf("resolve organization members: %w", err)
		}
		return dedup(ids), nil

	case TargetAll:
		ids, err := dir.ActiveUserIDs(ctx)
		if err != nil {
			return nil, fmt.Errorf("resolve active users: %w", err)
		}
		return dedup(ids), nil

	default:
		return nil, nil
	}
}

func parseIDs(raw []string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("parse id %q: %w", s, err)
		}
		out = append(out, id)
	}
	return out, nil
}

func dedup(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
