package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/karobarhq/payroll-backend-go/internal/handler/http/response"
)

// AuthRequired rejects requests without a verified access token carrying a
// company_id claim. Token issuance is external; this service only consumes.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.Unauthorized(w, "Missing access token")
				return
			}

			companyID, ok := claims["company_id"].(string)
			if !ok || companyID == "" {
				response.Unauthorized(w, "Token has no company scope")
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
