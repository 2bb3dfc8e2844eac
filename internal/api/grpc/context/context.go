package context

import (
	"context"
	"strings"

	"github.com/dtroode/bankcards-server/internal/model"
	"github.com/google/uuid"
	"google.golang.org/grpc/metadata"
)

// Metadata keys used to carry the authenticated principal in gRPC context.
const (
	userIDKey   string = "user_id"
	usernameKey string = "username"
	rolesKey    string = "roles"
)

// Manager represents a gRPC context manager for principal operations.
// It stores the principal in incoming metadata so that handlers behind the
// auth interceptor can read it back.
type Manager struct{}

// NewManager creates a new gRPC context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetPrincipalToContext sets the principal in the incoming gRPC metadata.
// Existing values for the same keys are overwritten, so a client can't smuggle
// its own identity past the interceptor.
func (m *Manager) SetPrincipalToContext(ctx context.Context, principal model.Principal) context.Context {
	roles := make([]string, 0, len(principal.Roles))
	for _, r := range principal.Roles {
		roles = append(roles, string(r))
	}

	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		md = metadata.New(nil)
	} else {
		md = md.Copy()
	}
	md.Set(userIDKey, principal.UserID.String())
	md.Set(usernameKey, principal.Username)
	md.Set(rolesKey, strings.Join(roles, ","))

	return metadata.NewIncomingContext(ctx, md)
}

// GetPrincipalFromContext retrieves the principal from gRPC context metadata.
// Unknown roles are ignored.
func (m *Manager) GetPrincipalFromContext(ctx context.Context) (*model.Principal, bool) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, false
	}

	userIDs := md.Get(userIDKey)
	if len(userIDs) == 0 {
		return nil, false
	}

	userID, err := uuid.Parse(userIDs[0])
	if err != nil {
		return nil, false
	}

	principal := &model.Principal{UserID: userID}
	if values := md.Get(usernameKey); len(values) > 0 {
		principal.Username = values[0]
	}
	if values := md.Get(rolesKey); len(values) > 0 && values[0] != "" {
		for _, s := range strings.Split(values[0], ",") {
			role, err := model.ParseRole(s)
			if err != nil {
				continue
			}
			principal.Roles = append(principal.Roles, role)
		}
	}

	return principal, true
}
