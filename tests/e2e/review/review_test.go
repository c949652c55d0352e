//go:build e2e

package review_test

import (
	"fmt"
	"net/http"
	nethttptest "net/http/httptest"
	"sync"
	"testing"

	"coach-booking-api/internal/domain/reservation"
	"coach-booking-api/internal/domain/user"
	"coach-booking-api/internal/handler/dto/request"
	"coach-booking-api/internal/handler/dto/response"
	"coach-booking-api/tests/common/authtest"
	"coach-booking-api/tests/common/builder"
	"coach-booking-api/tests/common/dbtest"
	"coach-booking-api/tests/common/httptest"
	"coach-booking-api/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reviewsURL         = "/api/reviews"
	activityReviewsURL = "/api/activities/%s/reviews"
	activityRatingURL  = "/api/activities/%s/rating"
	coachReviewsURL    = "/api/coaches/%s/reviews"
	coachRatingURL     = "/api/coaches/%s/rating"
)

type ReviewSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *ReviewSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *ReviewSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestReviewSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReviewSuite))
}

type fixture struct {
	memberID, coachID, activityID uuid.UUID
	memberToken, coachToken       string
}

func (s *ReviewSuite) seed(t *testing.T, email string) fixture {
	t.Helper()
	coachID := dbtest.CreateTestUser(t, s.DB, "coach@example.com", string(user.RoleCoach))
	memberID := dbtest.CreateTestUser(t, s.DB, email, string(user.RoleMember))
	return fixture{
		memberID:    memberID,
		coachID:     coachID,
		activityID:  dbtest.CreateTestActivity(t, s.DB, coachID, "Morning Yoga"),
		memberToken: s.jwt.GenerateToken(t, memberID, user.RoleMember),
		coachToken:  s.jwt.GenerateToken(t, coachID, user.RoleCoach),
	}
}

func (s *ReviewSuite) completed(t *testing.T, f fixture) {
	t.Helper()
	dbtest.CreateTestReservation(t, s.DB, f.memberID, f.activityID, string(reservation.StatusCompleted))
}

func (s *ReviewSuite) createReview(t *testing.T, f fixture, rating int) response.ReviewResponse {
	t.Helper()
	req := builder.NewReviewBuilder().WithActivityID(f.activityID).WithRating(rating).BuildCreateRequestDTO()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, req, f.memberToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var res response.ReviewResponse
	httptest.DecodeResponseBody(t, w.Body, &res)
	return res
}

func (s *ReviewSuite) rating(t *testing.T, urlFormat string, id uuid.UUID) response.RatingResponse {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(urlFormat, id), nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res response.RatingResponse
	httptest.DecodeResponseBody(t, w.Body, &res)
	return res
}

// =============================================================================
// TestCreateReview
// =============================================================================

func (s *ReviewSuite) TestCreateReview() {
	s.Run("success: review after a completed session updates both ratings", func() {
		t := s.T()
		f := s.seed(t, "member@example.com")
		s.completed(t, f)

		got := s.createReview(t, f, 4)
		expected := response.ReviewResponse{
			MemberID:      f.memberID.String(),
			MemberEmail:   "member@example.com",
			ActivityID:    f.activityID.String(),
			ActivityTitle: "Morning Yoga",
			CoachID:       f.coachID.String(),
			Rating:        4,
			Comment:       ptr("Great session!"),
		}
		opts := cmpopts.IgnoreFields(response.ReviewResponse{}, "ID", "CreatedAt", "UpdatedAt")
		if diff := cmp.Diff(expected, got, opts); diff != "" {
			t.Errorf("review mismatch (-want +got):\n%s", diff)
		}

		require.Equal(t, response.RatingResponse{TargetID: f.activityID.String(), Rating: 4, ReviewsCount: 1},
			s.rating(t, activityRatingURL, f.activityID))
		require.Equal(t, response.RatingResponse{TargetID: f.coachID.String(), Rating: 4, ReviewsCount: 1},
			s.rating(t, coachRatingURL, f.coachID))

		// the coach hears about the review
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/notifications", nil, f.coachToken)
		var inbox []response.NotificationResponse
		httptest.DecodeResponseBody(t, w.Body, &inbox)
		require.Len(t, inbox, 1)
		require.Equal(t, "review", inbox[0].Type)
	})

	s.Run("success: coach rating averages across activities", func() {
		t := s.T()
		first := s.seed(t, "a@example.com")
		s.completed(t, first)
		s.createReview(t, first, 5)

		second := s.seed(t, "b@example.com")
		s.completed(t, second)
		s.createReview(t, second, 2)

		require.Equal(t, response.RatingResponse{TargetID: first.coachID.String(), Rating: 3.5, ReviewsCount: 2},
			s.rating(t, coachRatingURL, first.coachID))
		require.Equal(t, int32(1), s.rating(t, activityRatingURL, second.activityID).ReviewsCount)
	})

	s.Run("success: coach-scoped endpoint", func() {
		t := s.T()
		f := s.seed(t, "member@example.com")
		s.completed(t, f)

		req := builder.NewReviewBuilder().WithActivityID(f.activityID).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(coachReviewsURL, f.coachID), req, f.memberToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	})

	s.Run("success: concurrent reviews of one activity are all counted", func() {
		t := s.T()
		f := s.seed(t, "member@example.com")
		s.completed(t, f)

		ratings := []int{5, 4, 3, 2, 1, 5, 4, 3}
		tokens := make([]string, len(ratings))
		tokens[0] = f.memberToken
		for i := 1; i < len(ratings); i++ {
			memberID := dbtest.CreateTestUser(t, s.DB, fmt.Sprintf("member%d@example.com", i), string(user.RoleMember))
			dbtest.CreateTestReservation(t, s.DB, memberID, f.activityID, string(reservation.StatusCompleted))
			tokens[i] = s.jwt.GenerateToken(t, memberID, user.RoleMember)
		}

		recorders := make([]*nethttptest.ResponseRecorder, len(ratings))
		var wg sync.WaitGroup
		for i, value := range ratings {
			wg.Add(1)
			go func(i, value int) {
				defer wg.Done()
				req := builder.NewReviewBuilder().WithActivityID(f.activityID).WithRating(value).BuildCreateRequestDTO()
				recorders[i] = httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, req, tokens[i])
			}(i, value)
		}
		wg.Wait()

		sum := 0
		for i, w := range recorders {
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
			sum += ratings[i]
		}
		mean := float64(sum) / float64(len(ratings))

		activity := s.rating(t, activityRatingURL, f.activityID)
		require.Equal(t, int32(len(ratings)), activity.ReviewsCount)
		require.InDelta(t, mean, activity.Rating, 1e-9)

		coach := s.rating(t, coachRatingURL, f.coachID)
		require.Equal(t, int32(len(ratings)), coach.ReviewsCount)
		require.InDelta(t, mean, coach.Rating, 1e-9)
	})

	s.Run("error: 400 when the coach does not run the activity", func() {
		t := s.T()
		f := s.seed(t, "member@example.com")
		s.completed(t, f)

		req := builder.NewReviewBuilder().WithActivityID(f.activityID).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, fmt.Sprintf(coachReviewsURL, uuid.New()), req, f.memberToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "activity is not run by this coach")
	})

	s.Run("error: 403 without a completed reservation", func() {
		t := s.T()
		f := s.seed(t, "member@example.com")
		dbtest.CreateTestReservation(t, s.DB, f.memberID, f.activityID, string(reservation.StatusPending))

		req := builder.NewReviewBuilder().WithActivityID(f.activityID).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, req, f.memberToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "no completed, unreviewed reservation")
	})

	s.Run("error: 400 on a second review of the same activity", func() {
		t := s.T()
		f := s.seed(t, "member@example.com")
		s.completed(t, f)
		s.completed(t, f)
		s.createReview(t, f, 5)

		req := builder.NewReviewBuilder().WithActivityID(f.activityID).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, req, f.memberToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "review already exists")
	})

	s.Run("error: 400 when rating is out of range", func() {
		t := s.T()
		f := s.seed(t, "member@example.com")
		s.completed(t, f)

		req := builder.NewReviewBuilder().WithActivityID(f.activityID).WithRating(6).BuildCreateRequestDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, req, f.memberToken)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "rating must be between 1 and 5")
	})
}

// =============================================================================
// TestUpdateAndDelete
// =============================================================================

func (s *ReviewSuite) TestUpdateAndDelete() {
	s.Run("success: update recomputes the rating", func() {
		t := s.T()
		f := s.seed(t, "member@example.com")
		s.completed(t, f)
		created := s.createReview(t, f, 5)

		newRating := 2
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, reviewsURL+"/"+created.ID,
			request.UpdateReviewRequest{Rating: &newRating}, f.memberToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var updated response.ReviewResponse
		httptest.DecodeResponseBody(t, w.Body, &updated)
		require.Equal(t, int32(2), updated.Rating)
		require.Equal(t, ptr("Great session!"), updated.Comment)
		require.InDelta(t, 2.0, s.rating(t, activityRatingURL, f.activityID).Rating, 0.001)
	})

	s.Run("error: 403 when someone else edits", func() {
		t := s.T()
		f := s.seed(t, "member@example.com")
		s.completed(t, f)
		created := s.createReview(t, f, 5)

		newRating := 1
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, reviewsURL+"/"+created.ID,
			request.UpdateReviewRequest{Rating: &newRating}, f.coachToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")
	})

	s.Run("success: delete resets an empty aggregate to zero", func() {
		t := s.T()
		f := s.seed(t, "member@example.com")
		s.completed(t, f)
		created := s.createReview(t, f, 4)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, reviewsURL+"/"+created.ID, nil, f.memberToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		require.Equal(t, response.RatingResponse{TargetID: f.activityID.String()}, s.rating(t, activityRatingURL, f.activityID))
		require.Equal(t, response.RatingResponse{TargetID: f.coachID.String()}, s.rating(t, coachRatingURL, f.coachID))

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, reviewsURL+"/"+created.ID, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "review not found")
	})
}

// =============================================================================
// TestListByActivity
// =============================================================================

func (s *ReviewSuite) TestListByActivity() {
	s.Run("success: cursor pagination", func() {
		t := s.T()
		coachID := dbtest.CreateTestUser(t, s.DB, "coach@example.com", string(user.RoleCoach))
		activityID := dbtest.CreateTestActivity(t, s.DB, coachID, "Morning Yoga")
		for i := range 3 {
			memberID := dbtest.CreateTestUser(t, s.DB, fmt.Sprintf("m%d@example.com", i), string(user.RoleMember))
			dbtest.CreateTestReservation(t, s.DB, memberID, activityID, string(reservation.StatusCompleted))
			s.createReview(t, fixture{
				memberID:    memberID,
				activityID:  activityID,
				memberToken: s.jwt.GenerateToken(t, memberID, user.RoleMember),
			}, i+3)
		}

		url := fmt.Sprintf(activityReviewsURL, activityID)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, url+"?limit=2", nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var first response.ReviewListResponse
		httptest.DecodeResponseBody(t, w.Body, &first)
		require.Len(t, first.Items, 2)
		require.Equal(t, "m2@example.com", first.Items[0].MemberEmail)
		require.NotEmpty(t, first.NextCursor)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, url+"?limit=2&after="+first.NextCursor, nil, "")
		var second response.ReviewListResponse
		httptest.DecodeResponseBody(t, w.Body, &second)
		require.Len(t, second.Items, 1)
		require.Equal(t, "m0@example.com", second.Items[0].MemberEmail)
		require.Empty(t, second.NextCursor)
	})

	s.Run("error: 400 on a tampered cursor", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(activityReviewsURL, uuid.New())+"?after=tampered", nil, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func ptr(s string) *string { return &s }
