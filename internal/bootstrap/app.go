package bootstrap

import (
	"context"
	"fmt"
	"log"
	"strings"

	"vision-backend/internal/analysis"
	"vision-backend/internal/classify"
	"vision-backend/internal/classify/rekognition"
	"vision-backend/internal/shared/config"
)

// App holds shared dependencies, constructed once per process and passed by
// reference into the pipeline.
type App struct {
	Config     config.Config
	Classifier classify.Client
	Store      analysis.ResultStore
	Service    *analysis.Service
}

// Build prepares shared dependencies for one process lifetime.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.Branch) == "" {
		cfg.Branch = "beta"
	}
	if strings.TrimSpace(cfg.Environment) == "" {
		cfg.Environment = cfg.Branch
	}
	ctx := context.Background()

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	classifier, err := buildClassifier(ctx, cfg)
	if err != nil {
		return nil, err
	}

	policy := analysis.PolicyFor(cfg.Branch)
	if cfg.MaxLabels > 0 {
		policy.MaxLabels = cfg.MaxLabels
	}
	if cfg.MinConfidence > 0 {
		policy.MinConfidence = cfg.MinConfidence
	}

	return &App{
		Config:     cfg,
		Classifier: classifier,
		Store:      store,
		Service: &analysis.Service{
			Classifier:  classifier,
			Store:       store,
			Policy:      policy,
			Environment: cfg.Environment,
		},
	}, nil
}

func buildStore(ctx context.Context, cfg config.Config) (analysis.ResultStore, error) {
	table := strings.TrimSpace(cfg.DynamoDBTable)
	if table == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DYNAMODB_TABLE empty; using in-memory result store")
			return analysis.NewMemoryStore(), nil
		}
		table = fmt.Sprintf("%s_results", cfg.Branch)
	}
	return analysis.NewDynamoStore(ctx, cfg.AWSRegion, table)
}

func buildClassifier(ctx context.Context, cfg config.Config) (classify.Client, error) {
	if cfg.ClassifierProvider == "placeholder" {
		return classify.Placeholder{}, nil
	}
	return rekognition.New(ctx, cfg.AWSRegion)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
