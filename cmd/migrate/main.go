package main

import (
	"log/slog"
	"os"

	"coach-booking-api/internal/infra/db"
	"coach-booking-api/internal/pkg/config"

	"github.com/joho/godotenv"
)

// usage: migrate [up|down]
func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info(".envファイルが見つかりません。環境変数を使用します")
	}

	cfg, err := config.LoadDBConfig()
	if err != nil {
		slog.Error("設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}

	direction := db.Up
	if len(os.Args) > 1 && os.Args[1] == string(db.Down) {
		direction = db.Down
	}

	dir, err := db.FindMigrationsDir()
	if err != nil {
		slog.Error("マイグレーションディレクトリが見つかりません", "error", err)
		os.Exit(1)
	}

	if err := db.Migrate(cfg, dir, direction); err != nil {
		slog.Error("マイグレーションに失敗しました", "direction", direction, "error", err)
		os.Exit(1)
	}
	slog.Info("マイグレーションが完了しました", "direction", direction)
}
