package directory_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	"github.com/yarnuri/stampclock/internal/directory"
)

var _ = Describe("Directory Handler", func() {
	var (
		repo    *mockUserRepository
		svc     *directory.Service
		handler *directory.Handler
	)

	BeforeEach(func() {
		repo = newMockUserRepository()
		svc = directory.NewService(repo, bcrypt.MinCost, testLogger())
		handler = directory.NewHandler(svc)
	})

	Describe("GET /users", func() {
		It("should return an empty array for an empty roster", func() {
			rec := httptest.NewRecorder()
			handler.ListUsers(rec, httptest.NewRequest(http.MethodGet, "/users", nil))

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(strings.TrimSpace(rec.Body.String())).To(Equal("[]"))
		})

		It("should never expose password material", func() {
			_, err := svc.CreateUser(directory.CreateUserDTO{Username: "bob", Password: "hemligt", Name: "Bob"})
			Expect(err).NotTo(HaveOccurred())

			rec := httptest.NewRecorder()
			handler.ListUsers(rec, httptest.NewRequest(http.MethodGet, "/users", nil))

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).NotTo(ContainSubstring("password"))
			Expect(rec.Body.String()).NotTo(ContainSubstring("hemligt"))
			Expect(rec.Body.String()).NotTo(ContainSubstring("$2a$"))
		})
	})

	Describe("POST /users", func() {
		It("should create a user and return it", func() {
			body := `{"username":"bob","password":"p","name":"Bob","role":"employee"}`
			rec := httptest.NewRecorder()
			handler.CreateUser(rec, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body)))

			Expect(rec.Code).To(Equal(http.StatusOK))

			var user directory.User
			Expect(json.Unmarshal(rec.Body.Bytes(), &user)).To(Succeed())
			Expect(user.ID).NotTo(BeZero())
			Expect(user.Username).To(Equal("bob"))
		})

		It("should return 400 with the duplicate message on a username collision", func() {
			body := `{"username":"bob","password":"p","name":"Bob"}`
			handler.CreateUser(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body)))

			rec := httptest.NewRecorder()
			handler.CreateUser(rec, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(body)))

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
			Expect(rec.Body.String()).To(ContainSubstring("Användarnamnet finns redan"))
		})

		It("should return 400 on missing fields", func() {
			rec := httptest.NewRecorder()
			handler.CreateUser(rec, httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"name":"Bob"}`)))

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("PUT /users", func() {
		It("should return 404 for an unknown id", func() {
			body := `{"id":42,"username":"x","name":"X"}`
			rec := httptest.NewRecorder()
			handler.UpdateUser(rec, httptest.NewRequest(http.MethodPut, "/users", strings.NewReader(body)))

			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})

		It("should return 400 when renaming onto an existing username", func() {
			_, err := svc.CreateUser(directory.CreateUserDTO{Username: "alice", Password: "p", Name: "Alice"})
			Expect(err).NotTo(HaveOccurred())
			bob, err := svc.CreateUser(directory.CreateUserDTO{Username: "bob", Password: "p", Name: "Bob"})
			Expect(err).NotTo(HaveOccurred())

			body := `{"id":` + strconv.FormatInt(bob.ID, 10) + `,"username":"alice","name":"Bob"}`
			rec := httptest.NewRecorder()
			handler.UpdateUser(rec, httptest.NewRequest(http.MethodPut, "/users", strings.NewReader(body)))

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("DELETE /users", func() {
		It("should return 400 when id is missing", func() {
			rec := httptest.NewRecorder()
			handler.DeleteUser(rec, httptest.NewRequest(http.MethodDelete, "/users", nil))

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("should return 404 for an unknown id", func() {
			rec := httptest.NewRecorder()
			handler.DeleteUser(rec, httptest.NewRequest(http.MethodDelete, "/users?id=42", nil))

			Expect(rec.Code).To(Equal(http.StatusNotFound))
		})

		It("should return 403 for the bootstrap admin account", func() {
			Expect(svc.EnsureDefaults()).To(Succeed())

			users, err := svc.ListUsers()
			Expect(err).NotTo(HaveOccurred())
			var adminID int64
			for _, u := range users {
				if u.Username == directory.ReservedAdminUsername {
					adminID = u.ID
				}
			}

			rec := httptest.NewRecorder()
			handler.DeleteUser(rec, httptest.NewRequest(http.MethodDelete, "/users?id="+strconv.FormatInt(adminID, 10), nil))

			Expect(rec.Code).To(Equal(http.StatusForbidden))
		})

		It("should delete and confirm with success", func() {
			created, err := svc.CreateUser(directory.CreateUserDTO{Username: "bob", Password: "p", Name: "Bob"})
			Expect(err).NotTo(HaveOccurred())

			rec := httptest.NewRecorder()
			handler.DeleteUser(rec, httptest.NewRequest(http.MethodDelete, "/users?id="+strconv.FormatInt(created.ID, 10), nil))

			Expect(rec.Code).To(Equal(http.StatusOK))

			var resp directory.DeleteUserResponse
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Success).To(BeTrue())
		})
	})
})
