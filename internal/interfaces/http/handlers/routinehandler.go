package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	routineuc "glowtrack/internal/application/routine/usecases"
	"glowtrack/internal/interfaces/dto"
	"glowtrack/internal/interfaces/http/middleware"
	"glowtrack/internal/shared/errors"
	"glowtrack/internal/shared/logger"
	"glowtrack/internal/shared/utils"
)

type RoutineHandler struct {
	createRoutine     *routineuc.CreateRoutineUseCase
	getRoutine        *routineuc.GetRoutineUseCase
	getTodayDay       *routineuc.GetTodayDayUseCase
	updateDay         *routineuc.UpdateDayUseCase
	markSessionDone   *routineuc.MarkSessionDoneUseCase
	updatePushToken   *routineuc.UpdatePushTokenUseCase
	updateRoutineName *routineuc.UpdateRoutineNameUseCase
	patchRoutine      *routineuc.PatchRoutineUseCase
	logger            logger.Interface
}

func NewRoutineHandler(
	createRoutine *routineuc.CreateRoutineUseCase,
	getRoutine *routineuc.GetRoutineUseCase,
	getTodayDay *routineuc.GetTodayDayUseCase,
	updateDay *routineuc.UpdateDayUseCase,
	markSessionDone *routineuc.MarkSessionDoneUseCase,
	updatePushToken *routineuc.UpdatePushTokenUseCase,
	updateRoutineName *routineuc.UpdateRoutineNameUseCase,
	patchRoutine *routineuc.PatchRoutineUseCase,
	logger logger.Interface,
) *RoutineHandler {
	return &RoutineHandler{
		createRoutine:     createRoutine,
		getRoutine:        getRoutine,
		getTodayDay:       getTodayDay,
		updateDay:         updateDay,
		markSessionDone:   markSessionDone,
		updatePushToken:   updatePushToken,
		updateRoutineName: updateRoutineName,
		patchRoutine:      patchRoutine,
		logger:            logger,
	}
}

func (h *RoutineHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("User not authenticated"))
		return
	}

	r, err := h.createRoutine.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, dto.NewRoutineResponse(r), "Routine ready")
}

func (h *RoutineHandler) Get(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("User not authenticated"))
		return
	}

	r, err := h.getRoutine.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.NewRoutineResponse(r))
}

func (h *RoutineHandler) GetToday(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("User not authenticated"))
		return
	}

	view, err := h.getTodayDay.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.TodayResponse{
		RoutineName: view.RoutineName,
		Day:         dto.NewDayResponse(view.Today),
	})
}

func (h *RoutineHandler) UpdateDay(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("User not authenticated"))
		return
	}

	var req dto.UpdateDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update day", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("Invalid request body"))
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	day, err := h.updateDay.Execute(c.Request.Context(), userID, req.DayOfWeek, req.ToSessions())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.NewDayResponse(day), "Day updated")
}

func (h *RoutineHandler) MarkSessionDone(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("User not authenticated"))
		return
	}

	var req dto.MarkSessionDoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for mark session done", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("Invalid request body"))
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.markSessionDone.Execute(c.Request.Context(), userID, req.DayOfWeek, req.Time)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.MarkSessionDoneResponse{
		Day:         dto.NewDayResponse(result.Day),
		Changed:     result.Changed,
		OutOfWindow: result.OutOfWindow,
	})
}

func (h *RoutineHandler) Patch(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("User not authenticated"))
		return
	}

	var req dto.PatchRoutineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("Invalid request body"))
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	r, err := h.patchRoutine.Execute(c.Request.Context(), userID, routineuc.PatchRoutineInput{
		Name:      req.Name,
		PushToken: req.PushToken,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, dto.NewRoutineResponse(r), "Routine updated")
}

func (h *RoutineHandler) UpdatePushToken(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("User not authenticated"))
		return
	}

	var req dto.UpdatePushTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("Invalid request body"))
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.updatePushToken.Execute(c.Request.Context(), userID, req.PushToken); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Push token updated", nil)
}

func (h *RoutineHandler) UpdateName(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("User not authenticated"))
		return
	}

	var req dto.UpdateRoutineNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("Invalid request body"))
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.updateRoutineName.Execute(c.Request.Context(), userID, req.Name); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Routine name updated", nil)
}
