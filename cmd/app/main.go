package main

import (
	"go.uber.org/fx"

	"github.com/yourusername/video-downloader-bot/internal/app"
)

func main() {
	fx.New(app.CreateApp()).Run()
}
