package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/p-virex/stepik-chapter-4/internal/models"
	"github.com/p-virex/stepik-chapter-4/internal/repository"
	"github.com/p-virex/stepik-chapter-4/pkg/config"
	"github.com/p-virex/stepik-chapter-4/pkg/database"
	"github.com/p-virex/stepik-chapter-4/pkg/export"
	"github.com/p-virex/stepik-chapter-4/pkg/logger"
)

// Dumps stored bookings and tutoring requests into CSV and/or PDF files so
// the follow-up team can work through them offline.
func main() {
	format := flag.String("format", "csv", "output format: csv, pdf or both")
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

	ctx := context.Background()
	bookings, err := repository.NewBookingRepository(db).ListAll(ctx)
	if err != nil {
		logr.Sugar().Fatalw("failed to list bookings", "error", err)
	}
	requests, err := repository.NewRequestRepository(db).ListAll(ctx)
	if err != nil {
		logr.Sugar().Fatalw("failed to list requests", "error", err)
	}

	if err := os.MkdirAll(cfg.Export.OutputDir, 0o755); err != nil {
		logr.Sugar().Fatalw("failed to create output dir", "error", err)
	}

	stamp := time.Now().Format("20060102-150405")
	jobs := []struct {
		name  string
		title string
		data  export.Dataset
	}{
		{name: "bookings-" + stamp, title: "Bookings", data: bookingsDataset(bookings)},
		{name: "requests-" + stamp, title: "Requests", data: requestsDataset(requests)},
	}

	csvExporter := export.NewCSVExporter()
	pdfExporter := export.NewPDFExporter()

	for _, job := range jobs {
		if *format == "csv" || *format == "both" {
			payload, err := csvExporter.Render(job.data)
			if err != nil {
				logr.Sugar().Fatalw("csv export failed", "name", job.name, "error", err)
			}
			writeFile(logr, filepath.Join(cfg.Export.OutputDir, job.name+".csv"), payload)
		}
		if *format == "pdf" || *format == "both" {
			payload, err := pdfExporter.Render(job.data, job.title)
			if err != nil {
				logr.Sugar().Fatalw("pdf export failed", "name", job.name, "error", err)
			}
			writeFile(logr, filepath.Join(cfg.Export.OutputDir, job.name+".pdf"), payload)
		}
	}

	logr.Sugar().Infow("export finished", "bookings", len(bookings), "requests", len(requests))
}

func bookingsDataset(bookings []models.Booking) export.Dataset {
	headers := []string{"id", "teacher", "weekday", "time", "client", "phone"}
	rows := make([]map[string]string, 0, len(bookings))
	for _, b := range bookings {
		rows = append(rows, map[string]string{
			"id":      strconv.FormatInt(b.ID, 10),
			"teacher": b.TeacherName,
			"weekday": b.Weekday,
			"time":    b.TimeSlot,
			"client":  b.ClientName,
			"phone":   b.ClientPhone,
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}

func requestsDataset(requests []models.Request) export.Dataset {
	headers := []string{"id", "goal", "free_time", "client", "phone"}
	rows := make([]map[string]string, 0, len(requests))
	for _, r := range requests {
		rows = append(rows, map[string]string{
			"id":        strconv.FormatInt(r.ID, 10),
			"goal":      r.Goal,
			"free_time": r.FreeTime,
			"client":    r.ClientName,
			"phone":     r.ClientPhone,
		})
	}
	return export.Dataset{Headers: headers, Rows: rows}
}

func writeFile(logr *zap.Logger, path string, payload []byte) {
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		logr.Sugar().Fatalw("write export file", "path", path, "error", err)
	}
	logr.Sugar().Infow("wrote export file", "path", path)
}
