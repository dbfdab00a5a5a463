package main

import (
	"context"
	"flag"
	"log"

	"github.com/p-virex/stepik-chapter-4/internal/repository"
	"github.com/p-virex/stepik-chapter-4/internal/service"
	"github.com/p-virex/stepik-chapter-4/pkg/config"
	"github.com/p-virex/stepik-chapter-4/pkg/database"
	"github.com/p-virex/stepik-chapter-4/pkg/logger"
)

// Loads the static goals/tutors dataset into an empty database. Re-running
// duplicates rows, so run it once right after applying the migrations.
func main() {
	datasetPath := flag.String("dataset", "data/seed.json", "path to the goals/tutors dataset")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	dataset, err := service.LoadDataset(*datasetPath)
	if err != nil {
		logr.Sugar().Fatalw("failed to load dataset", "error", err)
	}

	importSvc := service.NewImportService(
		repository.NewGoalRepository(db),
		repository.NewTeacherRepository(db),
		logr,
	)

	summary, err := importSvc.Run(context.Background(), dataset)
	if err != nil {
		logr.Sugar().Fatalw("import failed", "error", err)
	}

	logr.Sugar().Infow("import finished",
		"goals", summary.Goals,
		"teachers", summary.Teachers,
		"links", summary.Links,
	)
}
