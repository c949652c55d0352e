//go:build e2e

package booking_test

import (
	"net/http"
	"testing"
	"time"

	"coach-booking-api/internal/domain/notification"
	"coach-booking-api/internal/domain/user"
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
	reservationsURL  = "/api/reservations"
	notificationsURL = "/api/notifications"
)

type BookingSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func (s *BookingSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(BookingSuite))
}

type actors struct {
	memberID, coachID, activityID uuid.UUID
	memberToken, coachToken       string
}

func (s *BookingSuite) seed(t *testing.T) actors {
	t.Helper()
	memberID := dbtest.CreateTestUser(t, s.DB, "member@example.com", string(user.RoleMember))
	coachID := dbtest.CreateTestUser(t, s.DB, "coach@example.com", string(user.RoleCoach))
	return actors{
		memberID:    memberID,
		coachID:     coachID,
		activityID:  dbtest.CreateTestActivity(t, s.DB, coachID, "Morning Yoga"),
		memberToken: s.jwt.GenerateToken(t, memberID, user.RoleMember),
		coachToken:  s.jwt.GenerateToken(t, coachID, user.RoleCoach),
	}
}

func (s *BookingSuite) book(t *testing.T, a actors) response.ReservationResponse {
	t.Helper()
	reqBody := builder.NewReservationBuilder().WithActivityID(a.activityID).BuildCreateRequestDTO()
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, a.memberToken)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var res response.ReservationResponse
	httptest.DecodeResponseBody(t, w.Body, &res)
	return res
}

// =============================================================================
// TestReservationLifecycle
// =============================================================================

func (s *BookingSuite) TestReservationLifecycle() {
	s.Run("success: member books, coach confirms and completes", func() {
		t := s.T()
		a := s.seed(t)

		created := s.book(t, a)
		expected := response.ReservationResponse{
			MemberID:      a.memberID.String(),
			ActivityID:    a.activityID.String(),
			ActivityTitle: "Morning Yoga",
			CoachID:       a.coachID.String(),
			DayOfWeek:     "monday",
			Date:          "2025-03-03",
			StartTime:     "10:00",
			EndTime:       "11:00",
			Status:        "pending",
		}
		opts := cmpopts.IgnoreFields(response.ReservationResponse{}, "ID", "CreatedAt", "UpdatedAt")
		if diff := cmp.Diff(expected, created, opts); diff != "" {
			t.Errorf("reservation mismatch (-want +got):\n%s", diff)
		}

		statusURL := reservationsURL + "/" + created.ID + "/status"
		w := httptest.PerformRequest(t, s.Router, http.MethodPut, statusURL, map[string]string{"status": "confirmed"}, a.coachToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, reservationsURL+"/"+created.ID+"/complete", nil, a.coachToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var completed response.ReservationResponse
		httptest.DecodeResponseBody(t, w.Body, &completed)
		require.Equal(t, "completed", completed.Status)
		require.False(t, completed.Reviewed)

		// coach: new booking; member: confirmed + completed
		s.assertInbox(t, a.coachToken, "new_reservation")
		s.assertInbox(t, a.memberToken, "reservation", "reservation")
	})

	s.Run("success: new booking is broadcast to the coach", func() {
		t := s.T()
		a := s.seed(t)
		hints := s.SubscribeHints(t)

		s.book(t, a)

		select {
		case h := <-hints:
			require.Equal(t, notification.TypeNewReservation, h.Type)
			require.Equal(t, []uuid.UUID{a.coachID}, h.Recipients)
		case <-time.After(5 * time.Second):
			t.Fatal("no notification hint published")
		}
	})

	s.Run("error: 409 when skipping confirmation", func() {
		t := s.T()
		a := s.seed(t)
		created := s.book(t, a)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, reservationsURL+"/"+created.ID+"/complete", nil, a.coachToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "transition not allowed")
	})

	s.Run("error: 403 when a member tries to confirm", func() {
		t := s.T()
		a := s.seed(t)
		created := s.book(t, a)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, reservationsURL+"/"+created.ID+"/status", map[string]string{"status": "confirmed"}, a.memberToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")
	})

	s.Run("success: member cancels and the coach is told", func() {
		t := s.T()
		a := s.seed(t)
		created := s.book(t, a)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, reservationsURL+"/"+created.ID+"/cancel", nil, a.memberToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		s.assertInbox(t, a.coachToken, "reservation", "new_reservation")

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, reservationsURL+"/"+created.ID+"/cancel", nil, a.memberToken)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "")
	})

	s.Run("error: 401 without a token", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL, nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")
		httptest.AssertHeaders(t, w, map[string]string{"Content-Type": "application/json; charset=utf-8"})
		require.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	s.Run("error: 401 with an expired token", func() {
		t := s.T()
		a := s.seed(t)
		expired := s.jwt.CreateExpiredToken(t, a.memberID, user.RoleMember)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL, nil, expired)
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})
}

// =============================================================================
// TestListMine
// =============================================================================

func (s *BookingSuite) TestListMine() {
	s.Run("success: pages newest first until exhausted", func() {
		t := s.T()
		a := s.seed(t)
		var ids []string
		for range 3 {
			ids = append(ids, s.book(t, a).ID)
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"?limit=2", nil, a.memberToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var first response.ReservationListResponse
		httptest.DecodeResponseBody(t, w.Body, &first)
		require.Len(t, first.Items, 2)
		require.NotEmpty(t, first.NextCursor)
		require.Equal(t, ids[2], first.Items[0].ID)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"?limit=2&after="+first.NextCursor, nil, a.memberToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var second response.ReservationListResponse
		httptest.DecodeResponseBody(t, w.Body, &second)
		require.Len(t, second.Items, 1)
		require.Empty(t, second.NextCursor)
		require.Equal(t, ids[0], second.Items[0].ID)
	})
}

// =============================================================================
// TestNotifications
// =============================================================================

func (s *BookingSuite) TestNotifications() {
	s.Run("success: read flags and counts", func() {
		t := s.T()
		a := s.seed(t)
		s.book(t, a)
		s.book(t, a)

		var count response.UnreadCountResponse
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, notificationsURL+"/unread-count", nil, a.coachToken)
		require.Equal(t, http.StatusOK, w.Code)
		httptest.DecodeResponseBody(t, w.Body, &count)
		require.Equal(t, int64(2), count.Count)

		var inbox []response.NotificationResponse
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, notificationsURL, nil, a.coachToken)
		httptest.DecodeResponseBody(t, w.Body, &inbox)
		require.Len(t, inbox, 2)

		w = httptest.PerformRequest(t, s.Router, http.MethodPut, notificationsURL+"/"+inbox[0].ID+"/read", nil, a.coachToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		// the member cannot touch the coach's inbox
		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, notificationsURL+"/"+inbox[1].ID, nil, a.memberToken)
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")

		var marked response.MarkAllReadResponse
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, notificationsURL+"/read-all", nil, a.coachToken)
		httptest.DecodeResponseBody(t, w.Body, &marked)
		require.Equal(t, int64(1), marked.Updated)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, notificationsURL+"?unread=true", nil, a.coachToken)
		var unread []response.NotificationResponse
		httptest.DecodeResponseBody(t, w.Body, &unread)
		require.Empty(t, unread)
	})

	s.Run("success: contact form reaches the seeded admin", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/contact", map[string]string{
			"name":    "Jo",
			"email":   "jo@example.com",
			"subject": "Pricing",
			"message": "Group rates?",
		}, "")
		require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())

		var res response.ContactResponse
		httptest.DecodeResponseBody(t, w.Body, &res)
		require.Equal(t, response.ContactResponse{Delivered: 1, Failed: 0}, res)
	})
}

// assertInbox checks notification types newest first.
func (s *BookingSuite) assertInbox(t *testing.T, token string, types ...string) {
	t.Helper()
	w := httptest.PerformRequest(t, s.Router, http.MethodGet, notificationsURL, nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var inbox []response.NotificationResponse
	httptest.DecodeResponseBody(t, w.Body, &inbox)
	got := make([]string, len(inbox))
	for i, n := range inbox {
		got[i] = n.Type
	}
	require.Equal(t, types, got)
}
