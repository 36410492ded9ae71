//go:build protogen

package settings

import (
	"context"
	"log/slog"
	"time"

	"github.com/trademate-pro/backend/libs/grpcx"
	companyv1 "github.com/trademate-pro/backend/protos/gen/company/v1"
	"github.com/trademate-pro/backend/services/scheduling-service/internal/model"
)

type grpcProvider struct {
	client   companyv1.CompanyServiceClient
	fallback Provider
	logger   *slog.Logger
}

func NewCompanyConfigProvider(logger *slog.Logger, store SettingsStore, addr string) (Provider, error) {
	cache := NewCacheProvider(store, logger)
	if addr == "" {
		return cache, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, err := grpcx.Dial(ctx, addr, grpcx.DialOptions{Timeout: 5 * time.Second})
	if err != nil {
		logger.Warn("grpc config provider unavailable, using cache", "err", err)
		return cache, nil
	}

	logger.Info("grpc config provider enabled", "addr", addr)
	return &grpcProvider{client: companyv1.NewCompanyServiceClient(conn), fallback: cache, logger: logger}, nil
}

func (p *grpcProvider) SchedulingConfig(ctx context.Context, companyID string) (SchedulingConfig, error) {
	resp, err := p.client.GetSchedulingConfig(ctx, &companyv1.SchedulingConfigRequest{CompanyId: companyID})
	if err != nil {
		p.logger.Warn("grpc config lookup failed, using cache", "company_id", companyID, "err", err)
		return p.fallback.SchedulingConfig(ctx, companyID)
	}

	s := model.CompanySettings{
		CompanyID:             companyID,
		Timezone:              resp.GetTimezone(),
		DayStartMinute:        int(resp.GetDayStartMinute()),
		DayEndMinute:          int(resp.GetDayEndMinute()),
		SlotStepMinutes:       int(resp.GetSlotStepMinutes()),
		BufferBeforeMinutes:   int(resp.GetBufferBeforeMinutes()),
		BufferAfterMinutes:    int(resp.GetBufferAfterMinutes()),
		MinAdvanceHours:       int(resp.GetMinAdvanceHours()),
		MaxAdvanceDays:        int(resp.GetMaxAdvanceDays()),
		CapacityHoursPerDay:   int(resp.GetCapacityHoursPerDay()),
		SelfSchedulingEnabled: resp.GetSelfSchedulingEnabled(),
		AutoApproveSelections: resp.GetAutoApproveSelections(),
		DepositCents:          resp.GetDepositCents(),
	}
	for _, d := range resp.GetWorkingDays() {
		s.WorkingDays = append(s.WorkingDays, int(d))
	}
	return FromModel(s, p.logger), nil
}
