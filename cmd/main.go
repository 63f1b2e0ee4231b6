package main

import (
	"context"
	"fmt"
	"os"

	fyneapp "fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"seed-segmenter/config"
	"seed-segmenter/internal/container"
	"seed-segmenter/internal/infrastructure/imageio"
	"seed-segmenter/internal/infrastructure/storage"
	"seed-segmenter/internal/infrastructure/vision"
	"seed-segmenter/internal/logger"
	"seed-segmenter/internal/ui"
)

const appID = "seed-segmenter"

const rootLong = `Opens the image in a window. Left click places a foreground marker,
right click a background marker, the Segment button shows the watershed result.

Segmentation needs OpenCV: build with "go build -tags gocv ./cmd".
Without the tag the Segment button reports that the segmenter is unavailable.`

// cfg загружается один раз перед любой командой
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:          "seed-segmenter <image>",
	Short:        "Interactive marker-seeded watershed segmentation",
	Long:         rootLong,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := logger.Init(cfg.LogMode); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDesktop(cmd.Context(), args[0])
	},
}

// syncLogs сбрасывает буфер логгера перед выходом
var syncLogs = logger.Sync

func main() {
	rootCmd.AddCommand(botCmd)
	if err := execute(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

// execute запускает команду и сбрасывает логи при любом исходе,
// в том числе когда RunE вернул ошибку.
func execute(args []string) error {
	defer syncLogs()

	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func newContainer() *container.Container {
	return container.New(storage.NewMemorySessionRepository(), imageio.NewLoader(), vision.NewWatershedSegmenter())
}

func runDesktop(ctx context.Context, path string) error {
	c := newContainer()

	session, err := c.SessionService.Get(ctx, 0)
	if err != nil {
		return err
	}

	// Без изображения работать не с чем: ошибка загрузки завершает процесс.
	if err := c.SegmentationService.Open(session, path); err != nil {
		logger.Log.Error("failed to load image", zap.String("path", path), zap.Error(err))
		return err
	}

	a := fyneapp.NewWithID(appID)
	ui.NewWindow(a, cfg.WindowTitle, session, c.Dispatcher).ShowAndRun()
	return nil
}
