package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/shiftboard/shiftboard-backend-go/internal/domain/auth"
	"github.com/shiftboard/shiftboard-backend-go/internal/domain/user"
	"github.com/shiftboard/shiftboard-backend-go/internal/handler/http/response"
)

func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// Identity extracts the acting user's identity from verified JWT claims.
// Returns false if the claims are missing or malformed; callers should have
// AuthRequired ahead of them in the chain.
func Identity(r *http.Request) (auth.Identity, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return auth.Identity{}, false
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return auth.Identity{}, false
	}
	roleStr, ok := claims["role"].(string)
	if !ok {
		return auth.Identity{}, false
	}

	identity := auth.Identity{
		UserID: userID,
		Role:   user.Role(roleStr),
	}
	if employeeID, ok := claims["employee_id"].(string); ok && employeeID != "" {
		identity.EmployeeID = &employeeID
	}
	return identity, true
}
