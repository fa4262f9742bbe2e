// physioplan-seed loads an exercise catalog from a YAML file into the record
// store, replacing the existing catalog. Saved programs are left alone.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/claude/physioplan/internal/config"
	"github.com/claude/physioplan/internal/models"
	"github.com/claude/physioplan/internal/storage"
	"gopkg.in/yaml.v3"
)

// catalogFile is the YAML shape of the seed file:
//
//	categories:
//	  - name: Knee
//	    exercises:
//	      - id: 1
//	        name: Squat
//	        holdTime: 10
//	        stage: Beginner
//	        weight: 5
type catalogFile struct {
	Categories []category `yaml:"categories"`
}

type category struct {
	Name      string     `yaml:"name"`
	Exercises []exercise `yaml:"exercises"`
}

type exercise struct {
	ID       int    `yaml:"id"`
	Name     string `yaml:"name"`
	HoldTime int    `yaml:"holdTime"`
	Stage    string `yaml:"stage"`
	Weight   int    `yaml:"weight"`
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	catalogPath := flag.String("catalog", "", "path to YAML catalog file (required)")
	dryRun := flag.Bool("dry-run", false, "parse and report counts without writing to the store")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *catalogPath == "" {
		fmt.Fprintf(os.Stderr, "Usage: physioplan-seed -config config.yaml -catalog catalog.yaml [-dry-run]\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	categories, err := loadCatalog(*catalogPath)
	if err != nil {
		log.Error("failed to load catalog", "path", *catalogPath, "error", err)
		os.Exit(1)
	}

	total := 0
	for _, cat := range categories {
		total += len(cat.Exercises)
	}
	log.Info("catalog parsed", "bodyParts", len(categories), "exercises", total)

	if *dryRun {
		log.Info("DRY RUN mode — store not modified")
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Store.Path)
	if err != nil {
		log.Error("failed to open store", "path", cfg.Store.Path, "error", err)
		os.Exit(1)
	}

	if err := store.ReplaceCategories(context.Background(), categories); err != nil {
		log.Error("failed to write catalog", "error", err)
		os.Exit(1)
	}
	log.Info("catalog seeded", "store", cfg.Store.Path)
}

func loadCatalog(path string) ([]models.ExerciseCategory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}
	if len(file.Categories) == 0 {
		return nil, fmt.Errorf("catalog file has no categories")
	}

	categories := make([]models.ExerciseCategory, 0, len(file.Categories))
	for _, cat := range file.Categories {
		if cat.Name == "" {
			return nil, fmt.Errorf("category with empty name")
		}
		templates := make([]models.ExerciseTemplate, 0, len(cat.Exercises))
		for _, ex := range cat.Exercises {
			if ex.Name == "" {
				return nil, fmt.Errorf("category %q: exercise with empty name", cat.Name)
			}
			stage := models.Stage(ex.Stage)
			if ex.Stage != "" && !stage.Valid() {
				return nil, fmt.Errorf("category %q, exercise %q: unknown stage %q", cat.Name, ex.Name, ex.Stage)
			}
			templates = append(templates, models.ExerciseTemplate{
				ID:       ex.ID,
				Name:     ex.Name,
				HoldTime: ex.HoldTime,
				Stage:    stage,
				Weight:   ex.Weight,
			})
		}
		categories = append(categories, models.ExerciseCategory{
			Name:      cat.Name,
			Exercises: templates,
		})
	}
	return categories, nil
}
