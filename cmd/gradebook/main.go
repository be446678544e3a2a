// Package main - демонстрационная точка входа Gradebook.
//
// Сценарий фиксированный: заполнить реестр и журнал, показать выборки
// (по возрасту, по id, рейтинг), сохранить реестр в CSV и перечитать его.
// Ошибки персистентности логируются, но не прерывают работу - политика
// "деградировать, а не падать" действует только на границе хранилища.
package main

import (
	"fmt"
	"os"

	"github.com/alem-hub/gradebook/config"
	"github.com/alem-hub/gradebook/internal/domain/grades"
	"github.com/alem-hub/gradebook/internal/domain/student"
	"github.com/alem-hub/gradebook/internal/infrastructure/persistence/csvstore"
	"github.com/alem-hub/gradebook/internal/interface/cli"
	"github.com/alem-hub/gradebook/pkg/logger"

	"github.com/fatih/color"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Output:    os.Stderr,
		Level:     logger.ParseLevel(cfg.Observability.LogLevel),
		AddCaller: cfg.App.Debug,
	}).With(logger.Component("demo"))

	if err := run(cfg, log); err != nil {
		log.Error("demo failed", logger.Err(err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *logger.Logger) error {
	registry := student.NewRegistry()
	ledger := grades.NewLedger()
	presenter := cli.NewPresenter(os.Stdout)

	// ── Seed roster ──────────────────────────────────────────────────────────

	seed := []struct {
		id   string
		name string
		age  int
	}{
		{"2021001", "张三", 20},
		{"2021002", "李四", 19},
		{"2021003", "王五", 21},
	}

	for _, row := range seed {
		s, err := student.NewStudent(row.id, row.name, row.age)
		if err != nil {
			return fmt.Errorf("seed student %s: %w", row.id, err)
		}
		if err := registry.Add(s); err != nil {
			return fmt.Errorf("add student %s: %w", row.id, err)
		}
	}

	// Студент без внешнего id получает сгенерированный
	walkIn, err := student.NewStudent(student.NewID().String(), "赵六", 22)
	if err != nil {
		return fmt.Errorf("create walk-in student: %w", err)
	}
	if err := registry.Add(walkIn); err != nil {
		return fmt.Errorf("add walk-in student: %w", err)
	}

	presenter.Roster("Student Roster", registry.All())

	// ── Age range query ──────────────────────────────────────────────────────

	young, err := registry.ByAgeRange(19, 20)
	if err != nil {
		return fmt.Errorf("age range query: %w", err)
	}
	presenter.Roster("Students Aged 19-20", young)

	// ── Scores ───────────────────────────────────────────────────────────────

	scoreRows := []struct {
		id      string
		subject string
		points  float64
	}{
		{"2021001", "Mathematics", 95.5},
		{"2021001", "English", 87.0},
		{"2021002", "Mathematics", 82.0},
		{"2021003", "Mathematics", 90.0},
	}

	for _, row := range scoreRows {
		score, err := grades.NewScore(row.subject, row.points)
		if err != nil {
			return fmt.Errorf("score %s/%s: %w", row.id, row.subject, err)
		}
		if err := ledger.AddScore(row.id, score); err != nil {
			return fmt.Errorf("record score %s/%s: %w", row.id, row.subject, err)
		}
	}

	if first, ok := registry.Get("2021001"); ok {
		scores, err := ledger.Scores(first.ID().String())
		if err != nil {
			return fmt.Errorf("scores for %s: %w", first.ID(), err)
		}
		avg, err := ledger.Average(first.ID().String())
		if err != nil {
			return fmt.Errorf("average for %s: %w", first.ID(), err)
		}
		presenter.Transcript(first, scores, avg)
	}

	// ── Ranking ──────────────────────────────────────────────────────────────

	top, err := ledger.TopStudents(cfg.Gradebook.TopN)
	if err != nil {
		return fmt.Errorf("top students: %w", err)
	}
	presenter.Ranking(top, registry.Get)

	// ── CSV round-trip ───────────────────────────────────────────────────────

	store := csvstore.NewStore(cfg.Gradebook.CSVPath, log)

	if err := store.Save(registry.All()); err != nil {
		// Деградируем: реестр в памяти остаётся рабочим
		log.Error("saving roster failed", logger.Err(err))
		color.Red("Could not save roster to %s", cfg.Gradebook.CSVPath)
	} else {
		color.Green("Roster saved to %s", cfg.Gradebook.CSVPath)
	}

	loaded, err := store.Load()
	if err != nil {
		log.Error("loading roster failed", logger.Err(err))
		color.Red("Loaded %d students before the failure", len(loaded))
	} else {
		color.Green("Round-trip OK: %d students loaded back", len(loaded))
	}

	return nil
}
