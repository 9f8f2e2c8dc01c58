package auth

import (
	"context"

	"github.com/curioswitch/go-usegcp/middleware/firebaseauth"
)

// UserID returns the uid of the signed-in user.
func UserID(ctx context.Context) string {
	return firebaseauth.TokenFromContext(ctx).UID
}

// Email returns the email identity of the signed-in user, if present.
func Email(ctx context.Context) string {
	tok := firebaseauth.TokenFromContext(ctx)
	if id, ok := tok.Firebase.Identities["email"]; ok {
		if idAny, ok := id.([]any); ok && len(idAny) > 0 {
			if email, ok := idAny[0].(string); ok {
				return email
			}
		}
	}
	return ""
}
