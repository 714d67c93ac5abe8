package api

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

type keyType string

const (
	profileIDKey keyType = "profileID"
	roleKey      keyType = "role"
)

// ctxWithSession adds the authenticated profile ID and role to the context
func ctxWithSession(ctx context.Context, profileID uuid.UUID, role string) context.Context {
	ctx = context.WithValue(ctx, profileIDKey, profileID)
	return context.WithValue(ctx, roleKey, role)
}

// ctxGetProfileID retrieves the authenticated profile ID from the context
func ctxGetProfileID(ctx context.Context) (uuid.UUID, error) {
	value := ctx.Value(profileIDKey)
	if value == nil {
		return uuid.Nil, errors.New("profile ID not found in context")
	}
	id, ok := value.(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("profile ID in context is not a uuid")
	}
	return id, nil
}

// ctxGetRole retrieves the authenticated role from the context
func ctxGetRole(ctx context.Context) (string, error) {
	value := ctx.Value(roleKey)
	if value == nil {
		return "", errors.New("role not found in context")
	}
	role, ok := value.(string)
	if !ok {
		return "", errors.New("role in context is not a string")
	}
	return role, nil
}
