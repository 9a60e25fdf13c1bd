// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"wakeup/internal/delivery/http/middleware"
	"wakeup/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AlarmHandler     *handler.AlarmHandler
	ChallengeHandler *handler.ChallengeHandler
	DeviceHandler    *handler.DeviceHandler
	TestHandler      *handler.TestHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	alarmHandler     *handler.AlarmHandler
	challengeHandler *handler.ChallengeHandler
	deviceHandler    *handler.DeviceHandler
	testHandler      *handler.TestHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		alarmHandler:     params.AlarmHandler,
		challengeHandler: params.ChallengeHandler,
		deviceHandler:    params.DeviceHandler,
		testHandler:      params.TestHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Test routes for middleware validation
	testGroup := e.Group("/test")
	{
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)
		testGroup.GET("/auth", r.testHandler.TestAuthMiddleware, r.authMiddleware.Authenticate)
	}

	// Alarm routes that require authentication
	alarmGroup := e.Group("/alarms")
	alarmGroup.Use(r.authMiddleware.Authenticate)
	{
		alarmGroup.POST("", r.alarmHandler.CreateAlarm)
		alarmGroup.GET("", r.alarmHandler.ListAlarms)
		alarmGroup.PUT("/:id", r.alarmHandler.UpdateAlarm)
		alarmGroup.PATCH("/:id/enabled", r.alarmHandler.SetAlarmEnabled)
		alarmGroup.DELETE("/:id", r.alarmHandler.DeleteAlarm)
	}

	// Challenge record and live session routes
	challengeGroup := e.Group("/challenges")
	challengeGroup.Use(r.authMiddleware.Authenticate)
	{
		challengeGroup.GET("/pending", r.challengeHandler.GetPending)
		challengeGroup.GET("/history", r.challengeHandler.GetHistory)
		challengeGroup.POST("/session/recover", r.challengeHandler.RecoverSession)
		challengeGroup.POST("/session/attempt", r.challengeHandler.SubmitAttempt)
		challengeGroup.DELETE("/session", r.challengeHandler.CloseSession)
	}

	// Device routes for push notification targets
	deviceGroup := e.Group("/devices")
	deviceGroup.Use(r.authMiddleware.Authenticate)
	{
		deviceGroup.POST("", r.deviceHandler.RegisterDevice)
		deviceGroup.GET("", r.deviceHandler.GetUserDevices)
		deviceGroup.PUT("/:id/token", r.deviceHandler.UpdateFCMToken)
		deviceGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}
}
