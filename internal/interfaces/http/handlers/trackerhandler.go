package handlers

import (
	"github.com/gin-gonic/gin"

	trackeruc "glowtrack/internal/application/tracker/usecases"
	"glowtrack/internal/interfaces/dto"
	"glowtrack/internal/interfaces/http/middleware"
	"glowtrack/internal/shared/errors"
	"glowtrack/internal/shared/logger"
	"glowtrack/internal/shared/utils"
)

type TrackerHandler struct {
	recordTracker *trackeruc.RecordTrackerUseCase
	logger        logger.Interface
}

func NewTrackerHandler(recordTracker *trackeruc.RecordTrackerUseCase, logger logger.Interface) *TrackerHandler {
	return &TrackerHandler{
		recordTracker: recordTracker,
		logger:        logger,
	}
}

func (h *TrackerHandler) Record(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("User not authenticated"))
		return
	}

	var req dto.RecordTrackerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for record tracker", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("Invalid request body"))
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.recordTracker.Execute(c.Request.Context(), userID, trackeruc.RecordTrackerInput{
		ClassSummary: req.ClassSummary,
		ImageURL:     req.ImageURL,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.RecordTrackerResponse{
		Tracker: dto.NewTrackerResponse(result.Tracker),
		Created: result.Created,
		Streak:  result.Streak,
	})
}
