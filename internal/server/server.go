package server

import (
	"net/http"
	"shop-admin/internal/auth"
	"shop-admin/internal/handler"
	"shop-admin/internal/metrics"
	"shop-admin/internal/middleware"
	"shop-admin/internal/service"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

const serviceName = "shop-admin"

type Options struct {
	Admins        *auth.AllowList
	Sessions      *auth.SessionCodec
	SessionCookie string
	LoginPath     string
	Renderer      echo.Renderer
	Logger        zerolog.Logger
}

type Server struct {
	echo              *echo.Echo
	opts              Options
	adminOrderHandler *handler.AdminOrderHandler
}

func NewServer(adminOrderService service.AdminOrderService, opts Options) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Renderer = opts.Renderer
	e.HTTPErrorHandler = errorHandler(e, opts.Logger)

	e.Use(requestLogger(opts.Logger))
	e.Use(echomw.Recover())
	e.Use(metrics.Middleware(serviceName))

	s := &Server{
		echo:              e,
		opts:              opts,
		adminOrderHandler: handler.NewAdminOrderHandler(adminOrderService),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := s.echo.Group("/api")
	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// -------- admin (read-only) --------
	admin := s.echo.Group("/admin",
		middleware.AuthMiddleware(s.opts.Sessions, s.opts.SessionCookie, s.opts.Logger),
		middleware.RequireAdmin(s.opts.Admins, s.opts.LoginPath),
	)
	admin.GET("/orders", s.adminOrderHandler.ListOrders)
}

// ServeHTTP exposes the router for in-process tests.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}

func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}

func errorHandler(e *echo.Echo, log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if he, ok := err.(*echo.HTTPError); !ok || he.Code >= http.StatusInternalServerError {
			log.Error().Err(err).Str("path", c.Request().URL.Path).Msg("request failed")
		}
		e.DefaultHTTPErrorHandler(err, c)
	}
}
