package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"anoa.com/yayasanalhikmah/internal/repository"
	"github.com/redis/go-redis/v9"
)

const (
	visitorDateFormat  = "2006-01-02"
	pendingVisitorKey  = "pending:visitor_dates"
	visitorDedupWindow = 24 * time.Hour
)

// VisitorService counts website visits. Increments go through redis INCR
// (or an atomic SQL upsert when redis is absent), never read-then-write, so
// concurrent visitors cannot overwrite each other's increment. A visitor is
// counted at most once per day via a dedup key.
type VisitorService interface {
	RecordVisit(ctx context.Context, visitorID string) error
	VisitorsToday(ctx context.Context) (int64, error)
	VisitorsTotal(ctx context.Context) (int64, error)
	// StartSyncWorker periodically flushes redis counters into the
	// visitor_stats table. Blocks until ctx is done.
	StartSyncWorker(ctx context.Context)
}

type visitorService struct {
	repo        repository.VisitorRepository
	redisClient *redis.Client
}

func NewVisitorService(repo repository.VisitorRepository, redisClient *redis.Client) VisitorService {
	return &visitorService{
		repo:        repo,
		redisClient: redisClient,
	}
}

func (s *visitorService) RecordVisit(ctx context.Context, visitorID string) error {
	date := time.Now().Format(visitorDateFormat)

	if s.redisClient == nil {
		// Without redis the upsert itself is the atomic increment; the
		// once-per-day dedup is then the caller's responsibility.
		return s.repo.AddToDate(ctx, date, 1)
	}

	dedupKey := fmt.Sprintf("visitor:seen:%s:%s", date, visitorID)
	wasSet, err := s.redisClient.SetNX(ctx, dedupKey, "1", visitorDedupWindow).Result()
	if err != nil {
		return fmt.Errorf("failed to check visitor dedup: %w", err)
	}
	if !wasSet {
		// Already counted today.
		return nil
	}

	countKey := fmt.Sprintf("visitor:count:%s", date)
	if _, err := s.redisClient.Incr(ctx, countKey).Result(); err != nil {
		return fmt.Errorf("failed to increment visitor count: %w", err)
	}

	if _, err := s.redisClient.SAdd(ctx, pendingVisitorKey, date).Result(); err != nil {
		return fmt.Errorf("failed to mark pending sync: %w", err)
	}

	return nil
}

func (s *visitorService) VisitorsToday(ctx context.Context) (int64, error) {
	date := time.Now().Format(visitorDateFormat)

	dbCount, err := s.repo.CountForDate(ctx, date)
	if err != nil {
		return 0, err
	}

	if s.redisClient == nil {
		return dbCount, nil
	}

	// Unflushed redis increments still count.
	countKey := fmt.Sprintf("visitor:count:%s", date)
	val, err := s.redisClient.Get(ctx, countKey).Result()
	if err != nil {
		if err == redis.Nil {
			return dbCount, nil
		}
		return dbCount, nil
	}

	pending, _ := strconv.ParseInt(val, 10, 64)
	return dbCount + pending, nil
}

func (s *visitorService) VisitorsTotal(ctx context.Context) (int64, error) {
	return s.repo.Total(ctx)
}

func (s *visitorService) StartSyncWorker(ctx context.Context) {
	if s.redisClient == nil {
		return
	}

	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.flush(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (s *visitorService) flush(ctx context.Context) {
	dates, err := s.redisClient.SMembers(ctx, pendingVisitorKey).Result()
	if err != nil {
		log.Printf("visitor sync: failed to read pending dates: %v", err)
		return
	}

	for _, date := range dates {
		countKey := fmt.Sprintf("visitor:count:%s", date)

		// GetDel keeps the flush atomic against concurrent INCRs: an
		// increment lands either in this flush or the next, never lost.
		val, err := s.redisClient.GetDel(ctx, countKey).Result()
		if err != nil {
			if err != redis.Nil {
				log.Printf("visitor sync: failed to read counter for %s: %v", date, err)
			}
			continue
		}

		count, err := strconv.ParseInt(val, 10, 64)
		if err != nil || count == 0 {
			continue
		}

		if err := s.repo.AddToDate(ctx, date, count); err != nil {
			log.Printf("visitor sync: failed to flush %s: %v", date, err)
			// Put the count back so it is retried next tick.
			s.redisClient.IncrBy(ctx, countKey, count)
			continue
		}

		s.redisClient.SRem(ctx, pendingVisitorKey, date)
	}
}
