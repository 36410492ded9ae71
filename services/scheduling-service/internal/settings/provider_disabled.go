//go:build !protogen

package settings

import "log/slog"

// NewCompanyConfigProvider returns the cache-backed provider. The gRPC
// variant that asks company-service directly is only compiled when the
// generated protobuf stubs are present.
func NewCompanyConfigProvider(logger *slog.Logger, store SettingsStore, _ string) (Provider, error) {
	return NewCacheProvider(store, logger), nil
}
