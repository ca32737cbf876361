package stamp_test

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/yarnuri/stampclock/internal/stamp"
)

var _ = Describe("Stamp Handler", func() {
	var (
		repo    *mockStampRepository
		handler *stamp.Handler
	)

	BeforeEach(func() {
		repo = newMockStampRepository()
		handler = stamp.NewHandler(stamp.NewService(repo, slog.Default()))
	})

	Describe("POST /stamp", func() {
		It("should record a stamp and return the derived state", func() {
			req := httptest.NewRequest(http.MethodPost, "/stamp", strings.NewReader(`{"username":"yar","type":"in"}`))
			rec := httptest.NewRecorder()

			handler.Record(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))

			var resp stamp.RecordStampResponse
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Success).To(BeTrue())
			Expect(resp.StampID).To(Equal(int64(1)))
			Expect(resp.IsStampedIn).To(BeTrue())
		})

		It("should return 400 when username is missing", func() {
			req := httptest.NewRequest(http.MethodPost, "/stamp", strings.NewReader(`{"type":"in"}`))
			rec := httptest.NewRecorder()

			handler.Record(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("should return 400 when type is missing", func() {
			req := httptest.NewRequest(http.MethodPost, "/stamp", strings.NewReader(`{"username":"yar"}`))
			rec := httptest.NewRecorder()

			handler.Record(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("should return 400 on a malformed body", func() {
			req := httptest.NewRequest(http.MethodPost, "/stamp", strings.NewReader(`{`))
			rec := httptest.NewRecorder()

			handler.Record(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("should return 500 when the store is unreachable", func() {
			repo.createError = errors.New("connection refused")
			req := httptest.NewRequest(http.MethodPost, "/stamp", strings.NewReader(`{"username":"yar","type":"in"}`))
			rec := httptest.NewRecorder()

			handler.Record(rec, req)

			Expect(rec.Code).To(Equal(http.StatusInternalServerError))
			Expect(rec.Body.String()).NotTo(ContainSubstring("connection refused"))
		})
	})

	Describe("POST /stamp/status", func() {
		It("should return 400 when username is missing", func() {
			req := httptest.NewRequest(http.MethodPost, "/stamp/status", strings.NewReader(`{}`))
			rec := httptest.NewRecorder()

			handler.Status(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("should return a null lastStamp for a fresh user", func() {
			req := httptest.NewRequest(http.MethodPost, "/stamp/status", strings.NewReader(`{"username":"nobody"}`))
			rec := httptest.NewRecorder()

			handler.Status(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))

			var resp map[string]json.RawMessage
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(string(resp["isStampedIn"])).To(Equal("false"))
			Expect(string(resp["stampId"])).To(Equal("null"))
			Expect(string(resp["lastStamp"])).To(Equal("null"))
		})

		It("should reflect the most recent event", func() {
			recReq := httptest.NewRequest(http.MethodPost, "/stamp", strings.NewReader(`{"username":"yar","type":"in"}`))
			handler.Record(httptest.NewRecorder(), recReq)

			req := httptest.NewRequest(http.MethodPost, "/stamp/status", strings.NewReader(`{"username":"yar"}`))
			rec := httptest.NewRecorder()

			handler.Status(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))

			var status stamp.Status
			Expect(json.Unmarshal(rec.Body.Bytes(), &status)).To(Succeed())
			Expect(status.IsStampedIn).To(BeTrue())
			Expect(status.LastStamp).NotTo(BeNil())
			Expect(status.LastStamp.Type).To(Equal(stamp.TypeIn))
		})
	})

	Describe("GET /stamp/history", func() {
		It("should return 400 without a username", func() {
			req := httptest.NewRequest(http.MethodGet, "/stamp/history", nil)
			rec := httptest.NewRecorder()

			handler.History(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("should return recent events newest first", func() {
			for _, t := range []string{"in", "out", "in"} {
				body := strings.NewReader(`{"username":"yar","type":"` + t + `"}`)
				handler.Record(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/stamp", body))
			}

			req := httptest.NewRequest(http.MethodGet, "/stamp/history?username=yar&limit=2", nil)
			rec := httptest.NewRecorder()

			handler.History(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))

			var resp stamp.HistoryResponse
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.History).To(HaveLen(2))
			Expect(resp.History[0].Type).To(Equal(stamp.TypeIn))
			Expect(resp.History[1].Type).To(Equal(stamp.TypeOut))
		})
	})
})
