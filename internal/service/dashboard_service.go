package service

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
	"rokto.app/bloodlink/internal/dto"
	"rokto.app/bloodlink/internal/repository"
)

const adminStatsCacheKey = "dashboard:admin_stats"

type DashboardService interface {
	AdminStats(ctx context.Context) (*dto.AdminStats, error)
	DonorStats(ctx context.Context, userID uuid.UUID) (*dto.DonorStats, error)
	VolunteerStats(ctx context.Context) (*dto.VolunteerStats, error)
}

type dashboardService struct {
	userRepo    repository.UserRepository
	requestRepo repository.RequestRepository
	blogRepo    repository.BlogRepository
	fundingRepo repository.FundingRepository
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewDashboardService(
	userRepo repository.UserRepository,
	requestRepo repository.RequestRepository,
	blogRepo repository.BlogRepository,
	fundingRepo repository.FundingRepository,
	redisClient *redis.Client,
	cacheTTL time.Duration,
) DashboardService {
	return &dashboardService{
		userRepo:    userRepo,
		requestRepo: requestRepo,
		blogRepo:    blogRepo,
		fundingRepo: fundingRepo,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// AdminStats fetches the four admin counters concurrently. If any fetch
// fails the whole call fails; partial dashboards are never returned.
func (s *dashboardService) AdminStats(ctx context.Context) (*dto.AdminStats, error) {
	if cached := s.readCache(ctx); cached != nil {
		return cached, nil
	}

	var stats dto.AdminStats
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.userRepo.Count(gctx)
		stats.TotalUsers = count
		return err
	})
	g.Go(func() error {
		total, err := s.fundingRepo.TotalRaised(gctx)
		stats.TotalFunding = total
		return err
	})
	g.Go(func() error {
		count, err := s.requestRepo.Count(gctx)
		stats.TotalRequests = count
		return err
	})
	g.Go(func() error {
		count, err := s.blogRepo.Count(gctx)
		stats.TotalBlogs = count
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.writeCache(ctx, &stats)
	return &stats, nil
}

func (s *dashboardService) DonorStats(ctx context.Context, userID uuid.UUID) (*dto.DonorStats, error) {
	var stats dto.DonorStats
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.requestRepo.CountByRequester(gctx, userID)
		stats.MyRequests = count
		return err
	})
	g.Go(func() error {
		recent, err := s.requestRepo.FindRecentByRequester(gctx, userID, 3)
		stats.RecentRequests = recent
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *dashboardService) VolunteerStats(ctx context.Context) (*dto.VolunteerStats, error) {
	var stats dto.VolunteerStats
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.requestRepo.Count(gctx)
		stats.TotalRequests = count
		return err
	})
	g.Go(func() error {
		byStatus, err := s.requestRepo.CountByStatus(gctx)
		stats.ByStatus = byStatus
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *dashboardService) readCache(ctx context.Context) *dto.AdminStats {
	if s.redisClient == nil {
		return nil
	}

	raw, err := s.redisClient.Get(ctx, adminStatsCacheKey).Bytes()
	if err != nil {
		return nil
	}

	var stats dto.AdminStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil
	}
	return &stats
}

func (s *dashboardService) writeCache(ctx context.Context, stats *dto.AdminStats) {
	if s.redisClient == nil {
		return
	}

	payload, err := json.Marshal(stats)
	if err != nil {
		return
	}

	if err := s.redisClient.Set(ctx, adminStatsCacheKey, payload, s.cacheTTL).Err(); err != nil {
		log.Printf("failed to cache admin stats: %v", err)
	}
}
