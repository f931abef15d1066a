package audience

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

type fakeDirectory struct {
	active  []uuid.UUID
	members map[uuid.UUID][]uuid.UUID          // orgID -> active member ids
	roles   map[uuid.UUID]map[string][]uuid.UUID // orgID -> role -> ids
}

func (f *fakeDirectory) ActiveUserIDs(_ context.Context) ([]uuid.UUID, error) {
	return f.active, nil
}

func (f *fakeDirectory) OrganizationMemberIDs(_ context.Context, orgIDs []uuid.UUID) ([]uuid.UUID, error) {
	var out []uuid.UUID
	for _, orgID := range orgIDs {
		out = append(out, f.members[orgID]...)
	}
	return out, nil
}

func (f *fakeDirectory) RoleMemberIDs(_ context.Context, orgID uuid.UUID, roles []string) ([]uuid.UUID, error) {
	var out []uuid.UUID
	for _, role := range roles {
		out = append(out, f.roles[orgID][role]...)
	}
	return out, nil
}

func (f *fakeDirectory) ActiveUsers(_ context.Context) ([]ActiveUser, error) {
	return nil, nil
}

func TestParseTargetType(t *testing.T) {
	tests := []struct {
		in      string
		want    TargetType
		wantErr bool
	}{
		{in: "user", want: TargetUser},
		{in: "organization", want: TargetOrganization},
		{in: "role", want: TargetRole},
		{in: "multi_org", want: TargetMultiOrg},
		{in: "multi-org", want: TargetMultiOrg},
		{in: "ALL", want: TargetAll},
		{in: " all ", want: TargetAll},
		{in: "team", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseTargetType(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseTargetType(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTargetType(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTargetType(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolve_UserTarget(t *testing.T) {
	u1, u2 := uuid.New(), uuid.New()
	dir := &fakeDirectory{}

	got, err := Resolve(context.Background(), dir, Target{
		Type: TargetUser,
		IDs:  []string{u1.String(), u2.String(), u1.String()},
	})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 deduplicated recipients, got %d", len(got))
	}
	if got[0] != u1 || got[1] != u2 {
		t.Errorf("expected [%s %s], got %v", u1, u2, got)
	}
}

func TestResolve_UserTargetBadID(t *testing.T) {
	_, err := Resolve(context.Background(), &fakeDirectory{}, Target{
		Type: TargetUser,
		IDs:  []string{"not-a-uuid"},
	})
	if err == nil {
		t.Error("expected error for malformed user id")
	}
}

func TestResolve_RoleWithoutOrganization(t *testing.T) {
	got, err := Resolve(context.Background(), &fakeDirectory{}, Target{
		Type: TargetRole,
		IDs:  []string{"gestor"},
	})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("role target without organization should resolve to empty, got %d", len(got))
	}
}

func TestResolve_RoleTarget(t *testing.T) {
	orgID := uuid.New()
	gestor, secretario := uuid.New(), uuid.New()
	dir := &fakeDirectory{
		roles: map[uuid.UUID]map[string][]uuid.UUID{
			orgID: {
				"gestor":     {gestor},
				"secretario": {secretario},
			},
		},
	}

	got, err := Resolve(context.Background(), dir, Target{
		Type:           TargetRole,
		IDs:            []string{"gestor", "secretario"},
		OrganizationID: &orgID,
	})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("expected both role members, got %d", len(got))
	}
}

func TestResolve_MultiOrgDedup(t *testing.T) {
	org1, org2 := uuid.New(), uuid.New()
	shared := uuid.New()
	only1 := uuid.New()
	dir := &fakeDirectory{
		members: map[uuid.UUID][]uuid.UUID{
			org1: {shared, only1},
			org2: {shared},
		},
	}

	got, err := Resolve(context.Background(), dir, Target{
		Type: TargetMultiOrg,
		IDs:  []string{org1.String(), org2.String()},
	})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("user in both orgs must appear once, got %d recipients", len(got))
	}
}

func TestResolve_OrganizationFromScopeField(t *testing.T) {
	orgID := uuid.New()
	member := uuid.New()
	dir := &fakeDirectory{
		members: map[uuid.UUID][]uuid.UUID{orgID: {member}},
	}

	got, err := Resolve(context.Background(), dir, Target{
		Type:           TargetOrganization,
		OrganizationID: &orgID,
	})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(got) != 1 || got[0] != member {
		t.Errorf("expected [%s], got %v", member, got)
	}
}

func TestResolve_OrganizationUsesFirstIDOnly(t *testing.T) {
	org1, org2 := uuid.New(), uuid.New()
	m1, m2 := uuid.New(), uuid.New()
	dir := &fakeDirectory{
		members: map[uuid.UUID][]uuid.UUID{
			org1: {m1},
			org2: {m2},
		},
	}

	got, err := Resolve(context.Background(), dir, Target{
		Type: TargetOrganization,
		IDs:  []string{org1.String(), org2.String()},
	})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(got) != 1 || got[0] != m1 {
		t.Errorf("organization target reads only the first id, expected [%s], got %v", m1, got)
	}
}

func TestResolve_AllTarget(t *testing.T) {
	u1, u2, u3 := uuid.New(), uuid.New(), uuid.New()
	dir := &fakeDirectory{active: []uuid.UUID{u1, u2, u3}}

	got, err := Resolve(context.Background(), dir, Target{Type: TargetAll})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("expected all 3 active users, got %d", len(got))
	}
}

func TestResolve_UnknownType(t *testing.T) {
	got, err := Resolve(context.Background(), &fakeDirectory{}, Target{Type: TargetType("team")})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("unknown target type should resolve to empty, got %d", len(got))
	}
}
