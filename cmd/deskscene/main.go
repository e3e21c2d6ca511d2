// Command deskscene renders a fixed 3D desk arrangement with two-pass
// shadow mapping. A fly camera explores the scene; P and O switch
// between perspective and orthographic projection.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/obradley/deskscene/internal/app"
	"github.com/obradley/deskscene/internal/config"
	"github.com/obradley/deskscene/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting renderer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.String("textures", cfg.Assets.TextureDir),
		zap.String("shaders", cfg.Assets.ShaderDir),
	)

	a, err := app.New(cfg)
	if err != nil {
		logger.Error("startup failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	defer a.Close()

	a.Run()
	logger.Info("shutdown")
}
