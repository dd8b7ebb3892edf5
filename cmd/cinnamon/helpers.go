package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cinnamonledger/cinnamon/internal/budget"
	"github.com/cinnamonledger/cinnamon/internal/cache"
	"github.com/cinnamonledger/cinnamon/internal/config"
	"github.com/cinnamonledger/cinnamon/internal/engine"
	"github.com/cinnamonledger/cinnamon/internal/llm"
	"github.com/cinnamonledger/cinnamon/internal/rules"
	"github.com/cinnamonledger/cinnamon/internal/service"
	"github.com/cinnamonledger/cinnamon/internal/storage"
)

// initStorage loads the configuration, opens the configured SQLite database,
// and applies migrations. The loaded settings are returned so commands do not
// read the configuration twice.
func initStorage(ctx context.Context) (service.Storage, config.Settings, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, config.Settings{}, err
	}

	store, err := storage.NewSQLiteStorage(settings.Database.Path)
	if err != nil {
		return nil, config.Settings{}, fmt.Errorf("failed to open database: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, config.Settings{}, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, settings, nil
}

// buildEngine assembles the classification engine from configuration: the
// rule matcher from stored rules (seeding defaults into an empty table), the
// cache and budget backends (Redis when configured, in-memory otherwise), and
// the fallback classifier when an API key is present.
func buildEngine(ctx context.Context, store service.Storage, settings config.Settings) (*engine.Engine, func(), error) {
	logger := slog.Default()
	var cleanups []func()
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	ruleSet, err := store.GetRules(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load rules: %w", err)
	}
	if len(ruleSet) == 0 {
		ruleSet = rules.DefaultRules()
		if err := store.SaveRules(ctx, ruleSet); err != nil {
			return nil, nil, fmt.Errorf("failed to seed default rules: %w", err)
		}
		logger.Info("Seeded default rule set", "rules", len(ruleSet))
	}

	matcher, err := rules.NewMatcher(ruleSet)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build rule matcher: %w", err)
	}

	var classCache service.Cache
	var budgetStore service.BudgetStore
	if settings.Redis.Addr != "" {
		redisCache, cacheErr := cache.NewRedis(cache.RedisConfig{
			Addr:     settings.Redis.Addr,
			Password: settings.Redis.Password,
			DB:       settings.Redis.DB,
		})
		if cacheErr != nil {
			cleanup()
			return nil, nil, fmt.Errorf("failed to connect cache: %w", cacheErr)
		}
		cleanups = append(cleanups, func() { _ = redisCache.Close() })

		redisBudget, budgetErr := budget.NewRedis(budget.RedisConfig{
			Addr:     settings.Redis.Addr,
			Password: settings.Redis.Password,
			DB:       settings.Redis.DB,
		})
		if budgetErr != nil {
			cleanup()
			return nil, nil, fmt.Errorf("failed to connect budget store: %w", budgetErr)
		}
		cleanups = append(cleanups, func() { _ = redisBudget.Close() })

		classCache = redisCache
		budgetStore = redisBudget
	} else {
		memCache := cache.NewMemory()
		cleanups = append(cleanups, memCache.Close)
		classCache = memCache
		budgetStore = budget.NewMemory()
	}

	var classifier service.Classifier
	if settings.Fallback.APIKey != "" {
		llmClassifier, llmErr := llm.NewClassifier(llm.Config{
			Provider:    settings.Fallback.Provider,
			APIKey:      settings.Fallback.APIKey,
			Model:       settings.Fallback.Model,
			RateLimit:   settings.Fallback.RateLimit,
			Temperature: settings.Fallback.Temperature,
			MaxTokens:   settings.Fallback.MaxTokens,
			Timeout:     settings.Fallback.Timeout,
		}, logger)
		if llmErr != nil {
			cleanup()
			return nil, nil, fmt.Errorf("failed to create fallback classifier: %w", llmErr)
		}
		cleanups = append(cleanups, func() { _ = llmClassifier.Close() })
		classifier = llmClassifier
	} else {
		logger.Warn("No fallback API key configured, unmatched transactions will be Uncategorized")
	}

	eng := engine.NewWithConfig(matcher, classifier, classCache, budgetStore, logger, engine.Config{
		HighConfidenceThreshold: settings.Engine.HighConfidenceThreshold,
		CacheTTL:                settings.Engine.CacheTTL,
		DailyBudgetCap:          settings.Engine.DailyBudgetCap,
		FallbackTimeout:         settings.Engine.FallbackTimeout,
		BatchWorkers:            settings.Engine.BatchWorkers,
	})

	return eng, cleanup, nil
}
