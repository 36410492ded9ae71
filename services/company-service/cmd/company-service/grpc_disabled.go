//go:build !protogen

package main

import (
	"context"
	"log/slog"

	"github.com/trademate-pro/backend/libs/db"
	"github.com/trademate-pro/backend/services/company-service/internal/storage"
)

func startGrpcServer(_ context.Context, _ *slog.Logger, _ *db.Pool, _ *storage.Repository) error {
	return nil
}
