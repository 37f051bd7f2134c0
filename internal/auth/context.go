package auth

import (
	"context"

	"digiraksha/internal/models"
)

type contextKeyUserType struct{}

var contextKeyUser = &contextKeyUserType{}

func ContextWithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, contextKeyUser, user)
}

// UserFromContext returns the authenticated user placed by the auth middleware.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(contextKeyUser).(*models.User)
	return user, ok && user != nil
}
