//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"coach-booking-api/internal/domain/authz"
	"coach-booking-api/internal/domain/review"
	"coach-booking-api/internal/handler/api"
	resdto "coach-booking-api/internal/handler/dto/response"
	"coach-booking-api/internal/pkg/errs"
	"coach-booking-api/internal/usecase/commands"
	"coach-booking-api/internal/usecase/queries"
	"coach-booking-api/tests/common/builder"
	"coach-booking-api/tests/common/httptest"
	"coach-booking-api/tests/common/testutil"
	commandsmock "coach-booking-api/tests/mock/commands"
	queriesmock "coach-booking-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReviewCommands
	mockQueries  *queriesmock.MockReviewQueries
	handler      *api.ReviewHandler
	actor        authz.Actor
}

func (s *ReviewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReviewCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReviewQueries(s.mockCtrl)
	s.handler = api.NewReviewHandler(s.mockCommands, s.mockQueries)
	s.actor = newMember()

	auth := fakeAuth(s.actor)
	s.router.POST("/reviews", auth, s.handler.Create)
	s.router.GET("/reviews/:id", s.handler.Get)
	s.router.PUT("/reviews/:id", auth, s.handler.Update)
	s.router.DELETE("/reviews/:id", auth, s.handler.Delete)
	s.router.POST("/coaches/:id/reviews", auth, s.handler.AddCoachReview)
	s.router.GET("/activities/:id/reviews", s.handler.ListByActivity)
	s.router.GET("/activities/:id/rating", s.handler.ActivityRating)
	s.router.GET("/coaches/:id/rating", s.handler.CoachRating)
}

func (s *ReviewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}

type errorCase struct {
	name           string
	err            error
	expectedStatus int
	expectedMsg    string
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReviewHandlerTestSuite) TestCreate() {
	url := "/reviews"

	reqBody := builder.NewReviewBuilder().BuildCreateRequestDTO()
	returnView := builder.NewReviewBuilder().BuildViewQuery()
	result := &commands.ReviewResult{ID: returnView.ID, ActivityID: returnView.ActivityID, CoachID: returnView.CoachID, Rating: 5}

	s.Run("success: returns 201 Created with the stored review", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, reqBody.ToInput()).
			Return(result, nil).Times(1)
		s.mockQueries.EXPECT().Get(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID.String(), response.ID)
		s.Equal(returnView.Rating, response.Rating)
		s.Equal(returnView.CoachID.String(), response.CoachID)
	})

	s.Run("error: 400 Bad Request on malformed body", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: activity_id", mutate: testutil.Field("activity_id", nil)},
			{name: "missing field: rating", mutate: testutil.Field("rating", nil)},
			{name: "activity_id is not a uuid", mutate: testutil.Field("activity_id", "not-a-uuid")},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []errorCase{
			{name: "rating out of range", err: review.ErrInvalidRating, expectedStatus: http.StatusBadRequest, expectedMsg: "rating must be between 1 and 5"},
			{name: "no completed reservation", err: review.ErrNotEligible, expectedStatus: http.StatusForbidden, expectedMsg: "no completed"},
			{name: "duplicate review", err: errs.Mark(errors.New("unique violation"), review.ErrAlreadyReviewed), expectedStatus: http.StatusBadRequest},
			{name: "unknown activity", err: errs.Wrap(review.ErrNotFound, "lookup"), expectedStatus: http.StatusNotFound},
			{name: "internal server error", err: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, reqBody.ToInput()).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestAddCoachReview
// ================================================================================

func (s *ReviewHandlerTestSuite) TestAddCoachReview() {
	coachID := uuid.New()
	url := "/coaches/" + coachID.String() + "/reviews"

	reqBody := builder.NewReviewBuilder().WithCoachID(coachID).BuildCreateRequestDTO()
	returnView := builder.NewReviewBuilder().WithCoachID(coachID).BuildViewQuery()

	s.Run("success: passes the coach from the path", func() {
		s.mockCommands.EXPECT().AddCoachReview(gomock.Any(), s.actor, coachID, reqBody.ToInput()).
			Return(&commands.ReviewResult{ID: returnView.ID, CoachID: coachID}, nil).Times(1)
		s.mockQueries.EXPECT().Get(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(coachID.String(), response.CoachID)
	})

	s.Run("error: 400 Bad Request for invalid coach id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/coaches/nope/reviews", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 400 Bad Request when activity belongs to another coach", func() {
		s.mockCommands.EXPECT().AddCoachReview(gomock.Any(), s.actor, coachID, gomock.Any()).
			Return(nil, commands.ErrActivityCoachMismatch).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "activity is not run by this coach")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ReviewHandlerTestSuite) TestGet() {
	reviewID := uuid.New()
	url := "/reviews/" + reviewID.String()

	returnView := builder.NewReviewBuilder().BuildViewQuery()
	returnView.ID = reviewID

	s.Run("success: returns 200 OK with ReviewResponse", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), reviewID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(reviewID.String(), response.ID)
		s.Equal(returnView.Rating, response.Rating)
		s.Equal(returnView.Comment, response.Comment)
		s.Equal(returnView.MemberEmail, response.MemberEmail)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reviews/invalid-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: maps query errors to proper statuses", func() {
		testCases := []errorCase{
			{name: "review not found", err: review.ErrNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "review not found"},
			{name: "internal server error", err: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().Get(gomock.Any(), reviewID).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *ReviewHandlerTestSuite) TestUpdate() {
	reviewID := uuid.New()
	url := "/reviews/" + reviewID.String()

	reqBody := builder.NewReviewBuilder().WithRating(3).WithComment("Decent").BuildUpdateRequestDTO()
	returnView := builder.NewReviewBuilder().WithRating(3).WithComment("Decent").BuildViewQuery()
	returnView.ID = reviewID

	s.Run("success: returns 200 OK with the updated review", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), s.actor, reviewID, reqBody.ToInput()).
			Return(&commands.ReviewResult{ID: reviewID, Rating: 3}, nil).Times(1)
		s.mockQueries.EXPECT().Get(gomock.Any(), reviewID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")

		var response resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int32(3), response.Rating)
	})

	s.Run("success: comment-only update leaves rating nil", func() {
		body := map[string]any{"comment": "Changed my mind"}
		s.mockCommands.EXPECT().Update(gomock.Any(), s.actor, reviewID, gomock.Any()).
			DoAndReturn(func(_ any, _ authz.Actor, _ uuid.UUID, in commands.UpdateReviewInput) (*commands.ReviewResult, error) {
				s.Nil(in.Rating)
				s.Require().NotNil(in.Comment)
				s.Equal("Changed my mind", *in.Comment)
				return &commands.ReviewResult{ID: reviewID}, nil
			}).Times(1)
		s.mockQueries.EXPECT().Get(gomock.Any(), reviewID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/reviews/invalid-uuid", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []errorCase{
			{name: "not the author", err: authz.ErrForbidden, expectedStatus: http.StatusForbidden, expectedMsg: "action not permitted"},
			{name: "review not found", err: review.ErrNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "review not found"},
			{name: "rating out of range", err: review.ErrInvalidRating, expectedStatus: http.StatusBadRequest},
			{name: "internal server error", err: errors.New("database error"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Update(gomock.Any(), s.actor, reviewID, gomock.Any()).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *ReviewHandlerTestSuite) TestDelete() {
	reviewID := uuid.New()
	url := "/reviews/" + reviewID.String()

	s.Run("success: returns 200 OK", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.actor, reviewID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Review deleted", body["message"])
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reviews/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 403 Forbidden for someone else's review", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), s.actor, reviewID).
			Return(authz.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})
}

// ================================================================================
// TestListByActivity
// ================================================================================

func (s *ReviewHandlerTestSuite) TestListByActivity() {
	activityID := uuid.New()
	url := "/activities/" + activityID.String() + "/reviews"

	items := []*queries.ReviewListItem{
		builder.NewReviewBuilder().WithActivityID(activityID).BuildListItem(),
		builder.NewReviewBuilder().WithActivityID(activityID).AsPoorRating().BuildListItem(),
	}

	s.Run("success: returns items and next cursor", func() {
		next := &queries.Cursor{After: "next-page"}
		s.mockQueries.EXPECT().ListByActivity(gomock.Any(), activityID, (*queries.Cursor)(nil), 2).
			Return(items, next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?limit=2", nil, "")

		var response resdto.ReviewListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 2)
		s.Equal("next-page", response.NextCursor)
		s.Equal(int32(1), response.Items[1].Rating)
	})

	s.Run("success: forwards the cursor and omits next on the last page", func() {
		s.mockQueries.EXPECT().ListByActivity(gomock.Any(), activityID, &queries.Cursor{After: "abc"}, 0).
			Return(items[:1], nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?after=abc", nil, "")

		var response resdto.ReviewListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 1)
		s.Empty(response.NextCursor)
	})

	s.Run("error: 400 Bad Request for a tampered cursor", func() {
		s.mockQueries.EXPECT().ListByActivity(gomock.Any(), activityID, gomock.Any(), gomock.Any()).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?after=tampered", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid cursor")
	})
}

// ================================================================================
// TestRatings
// ================================================================================

func (s *ReviewHandlerTestSuite) TestRatings() {
	targetID := uuid.New()
	view := &queries.RatingView{TargetID: targetID, Rating: 4.5, ReviewsCount: 2}

	s.Run("success: activity rating", func() {
		s.mockQueries.EXPECT().ActivityRating(gomock.Any(), targetID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/activities/"+targetID.String()+"/rating", nil, "")

		var response resdto.RatingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.InDelta(4.5, response.Rating, 1e-9)
		s.Equal(int32(2), response.ReviewsCount)
	})

	s.Run("success: coach rating", func() {
		s.mockQueries.EXPECT().CoachRating(gomock.Any(), targetID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/coaches/"+targetID.String()+"/rating", nil, "")

		var response resdto.RatingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(targetID.String(), response.TargetID)
	})

	s.Run("error: 404 Not Found for unknown coach", func() {
		s.mockQueries.EXPECT().CoachRating(gomock.Any(), targetID).
			Return(nil, errs.Class("coach not found", errs.ErrNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/coaches/"+targetID.String()+"/rating", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "coach not found")
	})
}
