package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/yarnuri/stampclock/internal/auth"
	"github.com/yarnuri/stampclock/internal/directory"
)

var _ = Describe("Auth Handler", func() {
	var (
		repo    *mockUserRepository
		tokens  *auth.JWTTokenGenerator
		handler *auth.Handler
	)

	BeforeEach(func() {
		repo = newMockUserRepository()
		repo.add(1, "admin", "admin123", directory.RoleAdmin)
		repo.add(2, "yar", "password123", directory.RoleEmployee)

		tokens = auth.NewJWTTokenGenerator("test-secret", time.Hour)
		handler = auth.NewHandler(auth.NewService(repo, tokens, testLogger()))
	})

	login := func(username, password string) *httptest.ResponseRecorder {
		body := `{"username":"` + username + `","password":"` + password + `"}`
		rec := httptest.NewRecorder()
		handler.Login(rec, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body)))
		return rec
	}

	Describe("POST /auth/login", func() {
		It("should return a token and the user on valid credentials", func() {
			rec := login("yar", "password123")
			Expect(rec.Code).To(Equal(http.StatusOK))

			var resp auth.LoginResponse
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.AccessToken).NotTo(BeEmpty())
			Expect(resp.User.Username).To(Equal("yar"))
		})

		It("should not leak password material in the response", func() {
			rec := login("yar", "password123")
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).NotTo(ContainSubstring("password123"))
			Expect(rec.Body.String()).NotTo(ContainSubstring("$2a$"))
		})

		It("should return 401 with a localized message on bad credentials", func() {
			rec := login("yar", "wrong")
			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
			Expect(rec.Body.String()).To(ContainSubstring("Fel användarnamn eller lösenord"))
		})

		It("should return 400 on a malformed body", func() {
			rec := httptest.NewRecorder()
			handler.Login(rec, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{`)))
			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("RequireAdmin", func() {
		var protected http.Handler

		BeforeEach(func() {
			protected = handler.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				claims, ok := auth.ClaimsFromContext(r.Context())
				Expect(ok).To(BeTrue())
				Expect(claims.Role).To(Equal(directory.RoleAdmin))
				w.WriteHeader(http.StatusOK)
			}))
		})

		request := func(authorization string) *httptest.ResponseRecorder {
			req := httptest.NewRequest(http.MethodGet, "/users", nil)
			if authorization != "" {
				req.Header.Set("Authorization", authorization)
			}
			rec := httptest.NewRecorder()
			protected.ServeHTTP(rec, req)
			return rec
		}

		It("should return 401 without a token", func() {
			Expect(request("").Code).To(Equal(http.StatusUnauthorized))
		})

		It("should return 401 for a garbage token", func() {
			Expect(request("Bearer not-a-jwt").Code).To(Equal(http.StatusUnauthorized))
		})

		It("should return 403 for an employee token", func() {
			token, err := tokens.GenerateAccessToken(2, "yar", directory.RoleEmployee)
			Expect(err).NotTo(HaveOccurred())
			Expect(request("Bearer " + token).Code).To(Equal(http.StatusForbidden))
		})

		It("should pass an admin token through with claims in context", func() {
			token, err := tokens.GenerateAccessToken(1, "admin", directory.RoleAdmin)
			Expect(err).NotTo(HaveOccurred())
			Expect(request("Bearer " + token).Code).To(Equal(http.StatusOK))
		})
	})
})
