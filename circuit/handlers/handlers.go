package handlers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/phoenix-social/circuitguard/circuit"

	"github.com/carlmjohnson/versioninfo"
	"github.com/labstack/echo/v4"
)

type Handlers struct {
	engine *circuit.Engine
}

func NewHandlers(engine *circuit.Engine) *Handlers {
	return &Handlers{
		engine: engine,
	}
}

type HealthStatus struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Message string `json:"msg,omitempty"`
}

func (h *Handlers) Health(c echo.Context) error {
	return c.JSON(200, HealthStatus{
		Status:  "ok",
		Version: versioninfo.Short(),
	})
}

type ActionBody struct {
	UserID     uint64 `json:"userID"`
	TargetID   uint64 `json:"targetID"`
	ActionType string `json:"actionType"`
	// Optional; defaults to server time when absent.
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

func (h *Handlers) PostAction(c echo.Context) error {
	var body ActionBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(400, fmt.Sprintf("invalid body: %s", err))
	}

	actionType, err := circuit.ParseActionType(body.ActionType)
	if err != nil {
		return c.JSON(400, fmt.Sprintf("invalid action type: %s", err))
	}
	if body.UserID == 0 {
		return c.JSON(400, "userID is required")
	}
	if body.TargetID == 0 {
		return c.JSON(400, "targetID is required")
	}

	now := time.Now()
	timestamp := now
	if body.Timestamp != nil {
		timestamp = *body.Timestamp
	}

	decision := h.engine.ShouldCountAction(circuit.NegativeAction{
		UserID:     body.UserID,
		TargetID:   body.TargetID,
		ActionType: actionType,
		Timestamp:  timestamp,
	}, now)

	return c.JSON(200, decision)
}

type StatusResponse struct {
	TargetID uint64               `json:"targetID"`
	State    circuit.CircuitState `json:"state"`
	Reason   string               `json:"reason"`
}

func (h *Handlers) GetStatus(c echo.Context) error {
	targetID, err := strconv.ParseUint(c.QueryParam("targetID"), 10, 64)
	if err != nil {
		return c.JSON(400, fmt.Sprintf("invalid targetID: %s", err))
	}

	state := h.engine.GetCircuitStatus(targetID)
	return c.JSON(200, StatusResponse{
		TargetID: targetID,
		State:    state,
		Reason:   state.Reason(h.engine.Config()),
	})
}
