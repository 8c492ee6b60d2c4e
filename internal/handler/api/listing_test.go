//go:build unit

package api_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"sdi-showcase/internal/handler/api"
	reqdto "sdi-showcase/internal/handler/dto/request"
	resdto "sdi-showcase/internal/handler/dto/response"
	"sdi-showcase/internal/pkg/config"
	"sdi-showcase/internal/pkg/errs"
	"sdi-showcase/internal/usecase/commands"
	"sdi-showcase/internal/usecase/forms"
	"sdi-showcase/internal/usecase/queries"
	"sdi-showcase/internal/usecase/readmodel"
	"sdi-showcase/internal/usecase/shared"
	"sdi-showcase/tests/common/builder"
	"sdi-showcase/tests/common/httptest"
	"sdi-showcase/tests/common/testutil"
	commandsmock "sdi-showcase/tests/mock/commands"
	queriesmock "sdi-showcase/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ListingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockListingCommands
	mockQueries  *queriesmock.MockListingQueries
	handler      *api.ListingHandler
}

func (s *ListingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	reqdto.RegisterValidators()
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockListingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockListingQueries(s.mockCtrl)
	s.handler = api.NewListingHandler(s.mockCommands, s.mockQueries, config.UploadConfig{MaxImageBytes: 1 << 10, MaxFiles: 2})

	s.router.GET("/listings", s.handler.List)
	s.router.POST("/listings", s.handler.Create)
	s.router.GET("/listings/draft", s.handler.GetDraft)
	s.router.PATCH("/listings/draft", s.handler.PatchDraft)
	s.router.DELETE("/listings/draft", s.handler.ResetDraft)
	s.router.POST("/listings/draft/images", s.handler.AttachImages)
	s.router.GET("/listings/:id", s.handler.Get)
	s.router.DELETE("/listings/:id", s.handler.Delete)
	s.router.GET("/listings/:id/export", s.handler.Export)
}

func (s *ListingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestListingHandlerSuite(t *testing.T) {
	suite.Run(t, new(ListingHandlerTestSuite))
}

type testCaseListing struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ListingHandlerTestSuite) TestCreate() {
	url := "/listings"

	reqBody := builder.NewListingBuilder().BuildCreateRequestDTO()
	returnRM := builder.NewListingBuilder().BuildRM()

	bound := []testCaseListing{
		{name: "title length OK (200 chars)", mutate: testutil.Field("title", strings.Repeat("a", 200)), expectCode: http.StatusCreated},
		{name: "title length invalid (201 chars)", mutate: testutil.Field("title", strings.Repeat("a", 201)), expectCode: http.StatusBadRequest},
		{name: "price length OK (64 chars)", mutate: testutil.Field("price", strings.Repeat("9", 64)), expectCode: http.StatusCreated},
		{name: "price length invalid (65 chars)", mutate: testutil.Field("price", strings.Repeat("9", 65)), expectCode: http.StatusBadRequest},
		{name: "free-text price OK", mutate: testutil.Field("price", "Consultar"), expectCode: http.StatusCreated},
		{name: "empty video url OK", mutate: testutil.Field("video_url", ""), expectCode: http.StatusCreated},
		{name: "video url invalid", mutate: testutil.Field("video_url", "not a url"), expectCode: http.StatusBadRequest},
	}

	missing := []testCaseListing{
		{name: "missing field: title (required)", mutate: testutil.Field("title", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: price (required)", mutate: testutil.Field("price", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: description (optional)", mutate: testutil.Field("description", nil), expectCode: http.StatusCreated},
	}

	empty := []testCaseListing{
		{name: "empty title", mutate: testutil.Field("title", ""), expectCode: http.StatusBadRequest},
		{name: "blank title", mutate: testutil.Field("title", "   "), expectCode: http.StatusBadRequest},
		{name: "blank price", mutate: testutil.Field("price", "\t"), expectCode: http.StatusBadRequest},
	}

	allValidationTestCases := [][]testCaseListing{bound, missing, empty}

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), reqBody.ToFields()).
			Return(&returnRM, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var response resdto.ListingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnRM.ID, response.ID)
		s.Equal(returnRM.Title, response.Title)
		s.Equal("https://www.youtube.com/embed/dQw4w9WgXcQ", response.EmbedURL)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/listings/" + returnRM.ID.String()})
	})

	s.Run("success: empty body submits the current draft", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Nil()).
			Return(&returnRM, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, testCaseGroup := range allValidationTestCases {
			for _, tc := range testCaseGroup {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any()).
							Return(&returnRM, nil).Times(1)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap)
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
					}
				})
			}
		}
	})

	s.Run("error: 400 Bad Request on malformed JSON", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, "application/json", []byte(`{"title":`))
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "draft fails domain validation",
				commandsError:  errs.Validation(errors.New("title is required")),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid request",
			},
			{
				name:           "slot write failed",
				commandsError:  errs.Mark(errors.New("disk full"), errs.ErrStorage),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Submit(gomock.Any(), reqBody.ToFields()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: validation detail names the failing field", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Nil()).
			Return(nil, errs.Validation(errors.New("price is required"))).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		s.Contains(rec.Body.String(), `"detail":"price is required"`)
	})
}

// ================================================================================
// TestList / TestGet
// ================================================================================

func (s *ListingHandlerTestSuite) TestList() {
	s.Run("success: newest first as returned by the query", func() {
		newer := builder.NewListingBuilder().WithTitle("PH en Palermo").BuildRM()
		older := builder.NewListingBuilder().WithVideoURL("").BuildRM()
		s.mockQueries.EXPECT().List(gomock.Any()).Return([]readmodel.ListingRM{newer, older}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/listings", nil)

		var response []resdto.ListingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal(newer.ID, response[0].ID)
		s.Equal(older.ID, response[1].ID)
		s.Empty(response[1].EmbedURL)
	})

	s.Run("success: empty collection is an empty array", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return([]readmodel.ListingRM{}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/listings", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})
}

func (s *ListingHandlerTestSuite) TestGet() {
	rm := builder.NewListingBuilder().BuildRM()

	s.Run("success: returns 200 OK", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), rm.ID).Return(&rm, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/listings/"+rm.ID.String(), nil)

		var response resdto.ListingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(rm.Price, response.Price)
		s.Len(response.Images, 1)
	})

	s.Run("error: 404 Not Found for unknown id", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).
			Return(nil, errs.Mark(queries.ErrListingNotFound, errs.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/listings/"+id.String(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})

	s.Run("error: 400 Bad Request for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/listings/123", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

// ================================================================================
// TestDelete / TestExport
// ================================================================================

func (s *ListingHandlerTestSuite) TestDelete() {
	s.Run("success: 204 whether or not the listing existed", func() {
		for _, removed := range []bool{true, false} {
			id := uuid.New()
			s.mockCommands.EXPECT().Remove(gomock.Any(), id).Return(removed, nil).Times(1)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/listings/"+id.String(), nil)
			s.Equal(http.StatusNoContent, rec.Code)
			s.Empty(rec.Body.String())
		}
	})

	s.Run("error: 500 when the collection cannot be persisted", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Remove(gomock.Any(), id).
			Return(true, errs.Mark(errors.New("disk full"), errs.ErrStorage)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/listings/"+id.String(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})

	s.Run("error: 400 Bad Request for malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/listings/nope", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *ListingHandlerTestSuite) TestExport() {
	s.Run("success: JSON text as plain text", func() {
		id := uuid.New()
		payload := []byte("{\n  \"id\": \"" + id.String() + "\"\n}")
		s.mockQueries.EXPECT().Export(gomock.Any(), id).Return(payload, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/listings/"+id.String()+"/export", nil)
		s.Equal(http.StatusOK, rec.Code)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Content-Type": "text/plain; charset=utf-8"})
		s.Equal(string(payload), rec.Body.String())
	})

	s.Run("error: 404 Not Found for unknown id", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().Export(gomock.Any(), id).
			Return(nil, errs.Mark(queries.ErrListingNotFound, errs.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/listings/"+id.String()+"/export", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}

// ================================================================================
// Draft
// ================================================================================

func (s *ListingHandlerTestSuite) TestDraft() {
	draft := forms.ListingDraft{
		Title:    "Casa quinta",
		Price:    "USD 95.000",
		Images:   []readmodel.ImageRM{{Name: "pileta.jpg", URL: "/api/blobs/" + uuid.NewString()}},
		VideoURL: "https://youtu.be/dQw4w9WgXcQ",
	}

	s.Run("get: returns the draft with its embed url", func() {
		s.mockQueries.EXPECT().Draft(gomock.Any()).Return(draft).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/listings/draft", nil)

		var response resdto.ListingDraftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(draft.Title, response.Title)
		s.Len(response.Images, 1)
		s.Equal("https://www.youtube.com/embed/dQw4w9WgXcQ", response.EmbedURL)
	})

	s.Run("patch: only sent fields reach the command", func() {
		title := "Casa quinta con pileta"
		s.mockCommands.EXPECT().PatchDraft(gomock.Any(), commands.ListingDraftPatch{Title: &title}).
			Return(draft).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/listings/draft", map[string]any{"title": title})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("patch: blank values are allowed while editing", func() {
		blank := ""
		s.mockCommands.EXPECT().PatchDraft(gomock.Any(), commands.ListingDraftPatch{Price: &blank}).
			Return(forms.ListingDraft{}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/listings/draft", map[string]any{"price": ""})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("patch: 400 when a field is too long", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/listings/draft", map[string]any{"title": strings.Repeat("a", 201)})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("reset: returns the blank draft", func() {
		s.mockCommands.EXPECT().ResetDraft(gomock.Any()).Return(forms.ListingDraft{}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/listings/draft", nil)
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"title":"","price":"","description":"","images":[],"videoUrl":""}`, rec.Body.String())
	})
}

// ================================================================================
// TestAttachImages
// ================================================================================

func (s *ListingHandlerTestSuite) TestAttachImages() {
	url := "/listings/draft/images"
	png := []byte("\x89PNG\r\n\x1a\n")

	s.Run("success: every selected file reaches the command in order", func() {
		s.mockCommands.EXPECT().AttachImages(gomock.Any(), gomock.Len(2)).
			DoAndReturn(func(_ context.Context, uploads []shared.ImageUpload) (forms.ListingDraft, error) {
				s.Equal("frente.png", uploads[0].Name)
				s.Equal("patio.png", uploads[1].Name)
				s.Equal(png, uploads[0].Data)
				return forms.ListingDraft{}.WithImages(
					readmodel.ImageRM{Name: "frente.png", URL: "/api/blobs/1"},
					readmodel.ImageRM{Name: "patio.png", URL: "/api/blobs/2"},
				), nil
			}).Times(1)

		rec := httptest.PerformMultipart(s.T(), s.router, url, "images", []httptest.UploadFile{
			{Name: "frente.png", Data: png},
			{Name: "patio.png", Data: png},
		})

		var response resdto.ListingDraftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Images, 2)
	})

	s.Run("error: 400 when more files than allowed", func() {
		rec := httptest.PerformMultipart(s.T(), s.router, url, "images", []httptest.UploadFile{
			{Name: "a.png", Data: png}, {Name: "b.png", Data: png}, {Name: "c.png", Data: png},
		})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Too many files")
	})

	s.Run("success: no file cap when MaxFiles is zero", func() {
		h := api.NewListingHandler(s.mockCommands, s.mockQueries, config.UploadConfig{MaxImageBytes: 1 << 10})
		r := gin.New()
		r.POST(url, h.AttachImages)

		files := make([]httptest.UploadFile, 25)
		for i := range files {
			files[i] = httptest.UploadFile{Name: fmt.Sprintf("foto-%02d.png", i), Data: png}
		}
		s.mockCommands.EXPECT().AttachImages(gomock.Any(), gomock.Len(len(files))).
			Return(forms.ListingDraft{}, nil).Times(1)

		rec := httptest.PerformMultipart(s.T(), r, url, "images", files)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 when a file is too large", func() {
		big := append(append([]byte{}, png...), make([]byte, 1<<10)...)
		rec := httptest.PerformMultipart(s.T(), s.router, url, "images", []httptest.UploadFile{{Name: "big.png", Data: big}})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid file")
	})

	s.Run("error: 400 when the body is not multipart", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"images": []string{"a"}})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid multipart form")
	})

	s.Run("error: 400 when the upload is rejected", func() {
		s.mockCommands.EXPECT().AttachImages(gomock.Any(), gomock.Len(1)).
			Return(forms.ListingDraft{}, errs.Validation(errors.New("uploaded file is not an image"))).Times(1)

		rec := httptest.PerformMultipart(s.T(), s.router, url, "images", []httptest.UploadFile{{Name: "notes.txt", Data: []byte("hello")}})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}
