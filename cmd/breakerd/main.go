package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/phoenix-social/circuitguard/circuit"
	"github.com/phoenix-social/circuitguard/circuit/handlers"

	"github.com/carlmjohnson/versioninfo"
	_ "github.com/joho/godotenv/autoload"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	slogecho "github.com/samber/slog-echo"
	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.App{
		Name:    "breakerd",
		Usage:   "negative-action protection circuit daemon",
		Version: versioninfo.Short(),
	}

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "debug",
			Usage:   "enable debug logging",
			EnvVars: []string{"BREAKERD_DEBUG"},
		},
		&cli.IntFlag{
			Name:    "port",
			Usage:   "listen port for http server",
			Value:   2470,
			EnvVars: []string{"BREAKERD_PORT"},
		},
	}

	app.Action = Breakerd

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

func Breakerd(cctx *cli.Context) error {
	logLevel := slog.LevelInfo
	if cctx.Bool("debug") {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	engine := circuit.NewEngine(circuit.DefaultCircuitConfig(), logger)

	e := echo.New()
	e.HideBanner = true

	h := handlers.NewHandlers(engine)

	e.Use(slogecho.New(logger))
	e.Use(echoprometheus.NewMiddleware("breakerd"))

	e.GET("/_health", h.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/debug/*", echo.WrapHandler(http.DefaultServeMux))

	e.POST("/action", h.PostAction)
	e.GET("/status", h.GetStatus)

	return e.Start(fmt.Sprintf(":%d", cctx.Int("port")))
}
