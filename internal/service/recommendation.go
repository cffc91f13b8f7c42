package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/pageza/ahara/backend/internal/logger"
	"github.com/pageza/ahara/backend/internal/metrics"
	"github.com/pageza/ahara/backend/internal/models"
	"github.com/pageza/ahara/backend/internal/repository"
	"github.com/pageza/ahara/backend/internal/scoring"
	"golang.org/x/sync/errgroup"
)

const (
	// DefaultBatchSize is how many foods one generation keeps.
	DefaultBatchSize = 8
	// DefaultPersistConcurrency bounds the parallel row writes and food joins.
	DefaultPersistConcurrency = 4
)

// RecommendationOptions tune a RecommendationService. Zero values take the defaults.
type RecommendationOptions struct {
	BatchSize          int
	PersistConcurrency int
	Now                func() time.Time
}

// RecommendationService runs the fetch-or-generate lifecycle for each user's
// recommendations and records their ratings.
type RecommendationService struct {
	profiles    repository.ProfileRepository
	foods       repository.FoodRepository
	recs        repository.RecommendationRepository
	engine      *scoring.Engine
	sessions    *SessionRegistry
	log         *logger.Logger
	batchSize   int
	concurrency int
	now         func() time.Time
}

var _ IRecommendationService = (*RecommendationService)(nil)

func NewRecommendationService(
	profiles repository.ProfileRepository,
	foods repository.FoodRepository,
	recs repository.RecommendationRepository,
	engine *scoring.Engine,
	sessions *SessionRegistry,
	baseLog *logger.Logger,
	opts RecommendationOptions,
) *RecommendationService {
	if opts.BatchSize <= 0 {
		opts.BatchSize = DefaultBatchSize
	}
	if opts.PersistConcurrency <= 0 {
		opts.PersistConcurrency = DefaultPersistConcurrency
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &RecommendationService{
		profiles:    profiles,
		foods:       foods,
		recs:        recs,
		engine:      engine,
		sessions:    sessions,
		log:         baseLog.With("service", "RecommendationService"),
		batchSize:   opts.BatchSize,
		concurrency: opts.PersistConcurrency,
		now:         opts.Now,
	}
}

// Snapshot returns the user's current session.
func (s *RecommendationService) Snapshot(userID uuid.UUID) Session {
	return s.sessions.Snapshot(userID)
}

// Invalidate drops the user's session so the next Load starts from the store.
func (s *RecommendationService) Invalidate(userID uuid.UUID) {
	s.sessions.Invalidate(userID)
}

// Load shows the user's most recent recommendations, generating a batch when
// none exist. A failed read is reported and does not trigger generation.
func (s *RecommendationService) Load(ctx context.Context, userID uuid.UUID) (Session, error) {
	token, prev := s.sessions.begin(userID)

	recs, err := s.listStored(ctx, userID, token, prev)
	if err != nil {
		return Session{}, err
	}
	if len(recs) == 0 {
		return s.generate(ctx, userID, token, prev)
	}
	return s.showStored(ctx, userID, token, recs)
}

// loadStored is Load without the generate fallback. With nothing stored the
// session is left as it was.
func (s *RecommendationService) loadStored(ctx context.Context, userID uuid.UUID) (Session, error) {
	token, prev := s.sessions.begin(userID)

	recs, err := s.listStored(ctx, userID, token, prev)
	if err != nil {
		return Session{}, err
	}
	if len(recs) == 0 {
		return s.apply(userID, token, "load", func(ss *Session) { *ss = prev })
	}
	return s.showStored(ctx, userID, token, recs)
}

func (s *RecommendationService) listStored(ctx context.Context, userID uuid.UUID, token uint64, prev Session) ([]models.Recommendation, error) {
	recs, err := s.recs.ListByUser(ctx, userID, s.batchSize)
	if err != nil {
		s.log.Error("failed to list recommendations", "op", "list_recommendations", "user_id", userID, "error", err)
		metrics.RecordStoreError("list_recommendations")
		s.sessions.restore(userID, token, prev, "")
		return nil, storeError("list recommendations")
	}
	return recs, nil
}

func (s *RecommendationService) showStored(ctx context.Context, userID uuid.UUID, token uint64, recs []models.Recommendation) (Session, error) {
	s.joinFoods(ctx, recs)

	return s.apply(userID, token, "load", func(ss *Session) {
		ss.State = StatePopulated
		ss.Outcome = OutcomeLoaded
		ss.Notice = ""
		ss.Recommendations = recs
	})
}

// Generate scores the catalog against the user's profile and persists a new batch.
func (s *RecommendationService) Generate(ctx context.Context, userID uuid.UUID) (Session, error) {
	token, prev := s.sessions.begin(userID)
	return s.generate(ctx, userID, token, prev)
}

func (s *RecommendationService) generate(ctx context.Context, userID uuid.UUID, token uint64, prev Session) (Session, error) {
	start := s.now()

	if userID == uuid.Nil {
		return s.noProfile(userID, token, prev, start)
	}

	profile, err := s.profiles.FindByUser(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return s.noProfile(userID, token, prev, start)
	}
	if err != nil {
		s.log.Error("failed to read profile", "op", "find_profile", "user_id", userID, "error", err)
		metrics.RecordStoreError("find_profile")
		metrics.RecordGeneration("store_error", s.now().Sub(start))
		s.sessions.restore(userID, token, prev, "")
		return Session{}, storeError("read profile")
	}

	foods, err := s.foods.List(ctx)
	if err != nil {
		s.log.Error("failed to list foods", "op", "list_foods", "user_id", userID, "error", err)
		metrics.RecordStoreError("list_foods")
		metrics.RecordGeneration("store_error", s.now().Sub(start))
		s.sessions.restore(userID, token, prev, "")
		return Session{}, storeError("list foods")
	}

	if len(foods) == 0 {
		metrics.RecordGeneration(string(OutcomeEmptyCatalog), s.now().Sub(start))
		return s.apply(userID, token, "generate", func(ss *Session) {
			ss.State = StateEmpty
			ss.Outcome = OutcomeEmptyCatalog
			ss.Notice = ""
			ss.Recommendations = nil
		})
	}

	ranked := s.engine.Rank(foods, profile, s.batchSize)
	stored := s.persist(ctx, userID, ranked)
	metrics.RecordPersisted(len(stored), len(ranked)-len(stored))

	if len(stored) == 0 {
		metrics.RecordGeneration(string(OutcomeGenerationFailed), s.now().Sub(start))
		return s.apply(userID, token, "generate", func(ss *Session) {
			ss.State = StateEmpty
			ss.Outcome = OutcomeGenerationFailed
			ss.Notice = NoticeGenerationFailed
			ss.Recommendations = nil
		})
	}

	metrics.RecordGeneration(string(OutcomeGenerated), s.now().Sub(start))
	s.log.Info("generated recommendations", "user_id", userID, "count", len(stored), "dropped", len(ranked)-len(stored))
	return s.apply(userID, token, "generate", func(ss *Session) {
		ss.State = StatePopulated
		ss.Outcome = OutcomeGenerated
		ss.Notice = NoticeGenerated
		ss.Recommendations = stored
	})
}

func (s *RecommendationService) noProfile(userID uuid.UUID, token uint64, prev Session, start time.Time) (Session, error) {
	metrics.RecordGeneration(string(OutcomeNoProfile), s.now().Sub(start))
	sess, ok := s.sessions.restore(userID, token, prev, OutcomeNoProfile)
	if !ok {
		metrics.RecordStale("generate")
		return Session{}, ErrSuperseded
	}
	return sess, nil
}

func (s *RecommendationService) apply(userID uuid.UUID, token uint64, op string, fn func(*Session)) (Session, error) {
	sess, ok := s.sessions.finish(userID, token, fn)
	if !ok {
		metrics.RecordStale(op)
		s.log.Debug("discarding superseded result", "op", op, "user_id", userID)
		return Session{}, ErrSuperseded
	}
	return sess, nil
}

// persist writes each ranked food as its own row. Failed writes are logged
// and left out; the rest keep their rank order and share one generated_at.
func (s *RecommendationService) persist(ctx context.Context, userID uuid.UUID, ranked []scoring.Scored) []models.Recommendation {
	generatedAt := s.now().UTC()
	results := make([]*models.Recommendation, len(ranked))

	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, item := range ranked {
		g.Go(func() error {
			rec := &models.Recommendation{
				UserID:      userID,
				FoodID:      item.Food.ID,
				Score:       item.Result.Score,
				HealthMatch: item.Result.HealthMatch,
				Reason:      item.Result.Reason,
				Rank:        i,
				GeneratedAt: generatedAt,
			}
			stored, err := s.recs.Create(ctx, rec)
			if err != nil {
				s.log.Error("failed to persist recommendation", "op", "create_recommendation", "user_id", userID, "food_id", item.Food.ID, "error", err)
				metrics.RecordStoreError("create_recommendation")
				return nil
			}
			stored.Food = item.Food
			results[i] = stored
			return nil
		})
	}
	_ = g.Wait()

	out := make([]models.Recommendation, 0, len(results))
	for _, rec := range results {
		if rec != nil {
			out = append(out, *rec)
		}
	}
	return out
}

// joinFoods attaches each recommendation's catalog entry. A food that can no
// longer be read leaves Food nil.
func (s *RecommendationService) joinFoods(ctx context.Context, recs []models.Recommendation) {
	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i := range recs {
		g.Go(func() error {
			food, err := s.foods.Get(ctx, recs[i].FoodID)
			switch {
			case err == nil:
				recs[i].Food = food
			case errors.Is(err, repository.ErrNotFound):
				metrics.RecordJoinMiss()
				s.log.Warn("recommended food missing from catalog", "recommendation_id", recs[i].ID, "food_id", recs[i].FoodID)
			default:
				metrics.RecordStoreError("get_food")
				s.log.Error("failed to join food", "op", "get_food", "food_id", recs[i].FoodID, "error", err)
			}
			return nil
		})
	}
	_ = g.Wait()
}
