//go:build protogen

package grpcserver

import (
	"context"

	"github.com/trademate-pro/backend/libs/db"
	companyv1 "github.com/trademate-pro/backend/protos/gen/company/v1"
	"github.com/trademate-pro/backend/services/company-service/internal/storage"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type server struct {
	companyv1.UnimplementedCompanyServiceServer
	pool *db.Pool
	repo *storage.Repository
}

func Register(grpcServer *grpc.Server, pool *db.Pool, repo *storage.Repository) {
	companyv1.RegisterCompanyServiceServer(grpcServer, &server{pool: pool, repo: repo})
}

func (s *server) GetSchedulingConfig(ctx context.Context, req *companyv1.SchedulingConfigRequest) (*companyv1.SchedulingConfigResponse, error) {
	cfg, err := s.repo.GetOrCreateSettings(ctx, req.GetCompanyId())
	if err != nil {
		return nil, err
	}

	days := make([]int32, 0, len(cfg.WorkingDays))
	for _, d := range cfg.WorkingDays {
		days = append(days, int32(d))
	}

	return &companyv1.SchedulingConfigResponse{
		CompanyId:             cfg.CompanyID,
		Timezone:              cfg.Timezone,
		WorkingDays:           days,
		DayStartMinute:        int32(cfg.DayStartMinute),
		DayEndMinute:          int32(cfg.DayEndMinute),
		SlotStepMinutes:       int32(cfg.SlotStepMinutes),
		BufferBeforeMinutes:   int32(cfg.BufferBeforeMinutes),
		BufferAfterMinutes:    int32(cfg.BufferAfterMinutes),
		MinAdvanceHours:       int32(cfg.MinAdvanceHours),
		MaxAdvanceDays:        int32(cfg.MaxAdvanceDays),
		CapacityHoursPerDay:   int32(cfg.CapacityHoursPerDay),
		SelfSchedulingEnabled: cfg.SelfSchedulingEnabled,
		AutoApproveSelections: cfg.AutoApproveSelections,
		DepositCents:          cfg.DepositCents,
	}, nil
}

func (s *server) ListTimeOff(ctx context.Context, req *companyv1.ListTimeOffRequest) (*companyv1.ListTimeOffResponse, error) {
	start := req.GetRangeStart().AsTime()
	end := req.GetRangeEnd().AsTime()
	entries, err := s.repo.ListTimeOff(ctx, req.GetCompanyId(), start, end)
	if err != nil {
		return nil, err
	}

	resp := &companyv1.ListTimeOffResponse{}
	for _, t := range entries {
		resp.Entries = append(resp.Entries, &companyv1.TimeOffEntry{
			EntryId:    t.ID,
			EmployeeId: t.EmployeeID,
			StartTime:  timestamppb.New(t.StartTime),
			EndTime:    timestamppb.New(t.EndTime),
			Status:     t.Status,
		})
	}
	return resp, nil
}
