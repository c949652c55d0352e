package api

import (
	"net/http"

	reqdto "coach-booking-api/internal/handler/dto/request"
	resdto "coach-booking-api/internal/handler/dto/response"
	"coach-booking-api/internal/handler/httperr"
	"coach-booking-api/internal/usecase/commands"
	"coach-booking-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReviewHandler struct {
	cmds commands.ReviewCommands
	q    queries.ReviewQueries
}

func NewReviewHandler(cmds commands.ReviewCommands, q queries.ReviewQueries) *ReviewHandler {
	return &ReviewHandler{cmds: cmds, q: q}
}

// @Summary Create review
// @Description Review an activity the caller has a completed, unreviewed reservation for
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReviewRequest true "Create review request"
// @Success 201 {object} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	a, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), a, req.ToInput())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	h.respond(c, http.StatusCreated, result.ID)
}

// @Summary Review a coach's activity
// @Description Same as creating a review, but the activity must belong to the coach in the path
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coach ID"
// @Param request body reqdto.CreateReviewRequest true "Create review request"
// @Success 201 {object} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /coaches/{id}/reviews [post]
func (h *ReviewHandler) AddCoachReview(c *gin.Context) {
	coachID, ok := pathID(c, "id")
	if !ok {
		return
	}
	a, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	result, err := h.cmds.AddCoachReview(c.Request.Context(), a, coachID, req.ToInput())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	h.respond(c, http.StatusCreated, result.ID)
}

// @Summary Get review
// @Tags reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reviews/{id} [get]
func (h *ReviewHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	h.respond(c, http.StatusOK, id)
}

// @Summary Update review
// @Description Author edits rating and/or comment
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param request body reqdto.UpdateReviewRequest true "Update review request"
// @Success 200 {object} resdto.ReviewResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reviews/{id} [put]
func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	a, ok := actor(c)
	if !ok {
		return
	}
	var req reqdto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	if _, err := h.cmds.Update(c.Request.Context(), a, id, req.ToInput()); err != nil {
		httperr.FromError(c, err)
		return
	}
	h.respond(c, http.StatusOK, id)
}

// @Summary Delete review
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	a, ok := actor(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), a, id); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}

// @Summary List activity reviews
// @Description Newest first with keyset pagination
// @Tags reviews
// @Produce json
// @Param id path string true "Activity ID"
// @Param limit query int false "Max items (default 20, max 100)"
// @Param after query string false "Cursor from the previous page"
// @Success 200 {object} resdto.ReviewListResponse
// @Failure 400 {object} httperr.Response
// @Router /activities/{id}/reviews [get]
func (h *ReviewHandler) ListByActivity(c *gin.Context) {
	activityID, ok := pathID(c, "id")
	if !ok {
		return
	}
	cursor, limit := pageParams(c)

	items, next, err := h.q.ListByActivity(c.Request.Context(), activityID, cursor, limit)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviewList(items, next))
}

// @Summary Activity rating
// @Tags reviews
// @Produce json
// @Param id path string true "Activity ID"
// @Success 200 {object} resdto.RatingResponse
// @Failure 404 {object} httperr.Response
// @Router /activities/{id}/rating [get]
func (h *ReviewHandler) ActivityRating(c *gin.Context) {
	activityID, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.ActivityRating(c.Request.Context(), activityID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRatingView(view))
}

// @Summary Coach rating
// @Description Mean over every review of the coach's activities
// @Tags reviews
// @Produce json
// @Param id path string true "Coach ID"
// @Success 200 {object} resdto.RatingResponse
// @Failure 404 {object} httperr.Response
// @Router /coaches/{id}/rating [get]
func (h *ReviewHandler) CoachRating(c *gin.Context) {
	coachID, ok := pathID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.CoachRating(c.Request.Context(), coachID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRatingView(view))
}

func (h *ReviewHandler) respond(c *gin.Context, status int, id uuid.UUID) {
	view, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(status, resdto.FromReviewView(view))
}
