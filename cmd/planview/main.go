package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jwtly10/planview/internal/chart"
	"github.com/jwtly10/planview/internal/config"
	"github.com/jwtly10/planview/internal/format"
	"github.com/jwtly10/planview/internal/logging"
	"github.com/jwtly10/planview/internal/scheduler"
	"github.com/jwtly10/planview/internal/study"
	"github.com/jwtly10/planview/internal/watch"
)

// printJob reprints the plan whenever the overlay changes.
type printJob struct {
	cfg     *config.Config
	watcher *watch.Watcher
	overlay *study.PlanOverlay
}

func (j *printJob) Name() string { return "plan-refresh" }

func (j *printJob) Run() error {
	if !j.overlay.Refresh() {
		return nil
	}

	if j.cfg.Symbol == "" {
		if p, ok := j.watcher.Plan(); ok {
			fmt.Print(format.Plan(*p))
		} else {
			fmt.Print(j.overlay.Text())
		}
	} else {
		fmt.Print(j.overlay.Text())
	}
	fmt.Println()

	if ticker := j.overlay.Ticker(); ticker != "" {
		chart.DumpPineScript(ticker, j.overlay.Drawings())
	}

	return j.watcher.LastError()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logging.AnnounceStartup("planview")

	w := watch.New(cfg.PlanPath)
	job := &printJob{
		cfg:     cfg,
		watcher: w,
		overlay: study.NewPlanOverlay(w, cfg.Symbol, cfg.TickSize),
	}

	sched := scheduler.New()
	if err := sched.RunNow(job); err != nil {
		slog.Error("Failed to load plan", "path", cfg.PlanPath, "error", err)
		if !cfg.Watch {
			os.Exit(1)
		}
	}
	if !cfg.Watch {
		return
	}

	if err := sched.AddJob(cfg.PollSchedule, job); err != nil {
		slog.Error("Invalid poll schedule", "schedule", cfg.PollSchedule, "error", err)
		os.Exit(1)
	}
	sched.Start()
	slog.Info("Watching plan", "path", cfg.PlanPath, "schedule", cfg.PollSchedule)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	sched.Stop()
}
