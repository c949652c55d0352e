package api

import (
	"net/http"

	reqdto "coach-booking-api/internal/handler/dto/request"
	resdto "coach-booking-api/internal/handler/dto/response"
	"coach-booking-api/internal/handler/httperr"
	"coach-booking-api/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	cmds commands.ContactCommands
}

func NewContactHandler(cmds commands.ContactCommands) *ContactHandler {
	return &ContactHandler{cmds: cmds}
}

// @Summary Send a contact message
// @Description Notifies every admin. Partial delivery still returns 202.
// @Tags contact
// @Accept json
// @Produce json
// @Param request body reqdto.ContactMessageRequest true "Contact message"
// @Success 202 {object} resdto.ContactResponse
// @Failure 400 {object} httperr.Response
// @Router /contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req reqdto.ContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	result, err := h.cmds.Submit(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, resdto.FromDispatchResult(result))
}
