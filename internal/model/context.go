package model

import "context"

// ContextManager carries the request principal through a context.
type ContextManager interface {
	SetPrincipalToContext(ctx context.Context, principal Principal) context.Context
	GetPrincipalFromContext(ctx context.Context) (*Principal, bool)
}
