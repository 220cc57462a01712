package router

import (
	stderrors "errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"calorietracker/internal/errors"
	"calorietracker/internal/handler"
	"calorietracker/internal/service"
)

// maxBodySize caps request bodies, image uploads included.
const maxBodySize = "12M"

// Handlers groups the HTTP handlers mounted under /api.
type Handlers struct {
	Auth     *handler.AuthHandler
	Profile  *handler.ProfileHandler
	Ledger   *handler.LedgerHandler
	Summary  *handler.SummaryHandler
	Analysis *handler.AnalysisHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, h Handlers, authService service.AuthService) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit(maxBodySize))

	e.Validator = &CustomValidator{validator: newValidator()}

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	api.POST("/register", h.Auth.Register)
	api.POST("/login", h.Auth.Login)

	// Secured routes (require a valid, unrevoked bearer token)
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		ContextKey:  handler.UserContextKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return authService.Authenticate(c.Request().Context(), auth)
		},
		ErrorHandler: authErrorHandler,
	}))

	secured.POST("/logout", h.Auth.Logout)
	secured.GET("/profile", h.Profile.GetProfile)
	secured.POST("/upload-profile-photo", h.Profile.UploadProfilePhoto)
	secured.POST("/analyze-food", h.Analysis.AnalyzeFood)
	secured.POST("/add-food", h.Ledger.AddFood)
	secured.POST("/add-activity", h.Ledger.AddActivity)
	secured.GET("/daily-summary", h.Summary.DailySummary)
	secured.GET("/weekly-summary", h.Summary.WeeklySummary)
}

// authErrorHandler answers 401 for bad, missing or revoked tokens. Storage
// failures while resolving the subject keep their own status.
func authErrorHandler(c echo.Context, err error) error {
	var parseErr *echojwt.TokenParsingError
	if stderrors.As(err, &parseErr) && !stderrors.Is(parseErr.Err, errors.ErrUnauthorized) {
		log.Printf("auth: resolving token subject failed: %v", parseErr.Err)
		httpErr := errors.MapErrorToHTTP(parseErr.Err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
		Error: "invalid or expired token",
		Code:  "UNAUTHORIZED",
	})
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

func newValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
