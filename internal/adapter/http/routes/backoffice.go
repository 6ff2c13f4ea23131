package routes

import (
	"delta33_backoffice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAppointments = "/appointments"
	PathBudgets      = "/budgets"
	PathTraces       = "/traces"
	PathSurveys      = "/surveys"
	PathStats        = "/stats"
	PathDaily        = "/daily"
	PathSettings     = "/settings"
	PathAuth         = "/auth"
)

type backofficeHandlers struct {
	appointment *handlers.AppointmentHandler
	budget      *handlers.BudgetHandler
	trace       *handlers.TraceHandler
	survey      *handlers.SurveyHandler
	stats       *handlers.StatsHandler
	daily       *handlers.DailyHandler
	settings    *handlers.SettingsHandler
	auth        *handlers.AuthHandler
}

// addPublicRoutes covers the surface reachable without a session: the login
// gate and the guest appointment request form.
func addPublicRoutes(rg *gin.RouterGroup, h backofficeHandlers) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", h.auth.Login)
		auth.POST("/logout", h.auth.Logout)
	}

	rg.POST(PathAppointments+"/guest", h.appointment.ScheduleGuest)
}

// addBackofficeRoutes covers the management surface behind the session gate.
func addBackofficeRoutes(rg *gin.RouterGroup, h backofficeHandlers) {
	appointments := rg.Group(PathAppointments)
	{
		appointments.POST("", h.appointment.Schedule)
		appointments.GET("", h.appointment.List)
		appointments.GET("/:id", h.appointment.GetByID)
	}

	budgets := rg.Group(PathBudgets)
	{
		budgets.POST("", h.budget.Create)
		budgets.POST("/preview", h.budget.Preview)
		budgets.GET("", h.budget.List)
	}

	traces := rg.Group(PathTraces)
	{
		traces.POST("", h.trace.Log)
		traces.GET("", h.trace.List)
	}

	surveys := rg.Group(PathSurveys)
	{
		surveys.POST("", h.survey.Submit)
		surveys.GET("", h.survey.List)
	}

	rg.GET(PathStats, h.stats.Dashboard)
	rg.GET(PathDaily, h.daily.Today)

	settings := rg.Group(PathSettings)
	{
		settings.GET("/export", h.settings.Export)
		settings.POST("/restore", h.settings.Restore)
		settings.GET("/install-hint", h.settings.InstallHint)
		settings.POST("/install-hint", h.settings.MarkInstallHint)
	}
}
