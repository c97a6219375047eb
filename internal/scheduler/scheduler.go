package scheduler

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/robfig/cron/v3"

	"SignalSentinel/internal/collector"
	"SignalSentinel/internal/notifier"
	"SignalSentinel/internal/recorder"
	"SignalSentinel/internal/snapshot"
)

// Scheduler runs the daily signal batch on a cron schedule and serves
// on-demand runs triggered by Telegram commands.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Recorder  recorder.Recorder
	Snapshots *snapshot.Store
	Notifier  *notifier.TelegramNotifier
	Symbols   []string
	Ctx       context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, rec recorder.Recorder, store *snapshot.Store, tn *notifier.TelegramNotifier, symbols []string) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Recorder:  rec,
		Snapshots: store,
		Notifier:  tn,
		Symbols:   symbols,
		Ctx:       ctx,
	}
}

// RegisterAll registers the daily batch task.
func (s *Scheduler) RegisterAll(dailyCron string) error {
	if _, err := s.Cron.AddFunc(dailyCron, s.dailyTask); err != nil {
		return fmt.Errorf("register daily task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the batch task immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.dailyTask()
}

func (s *Scheduler) dailyTask() {
	log.Printf("[INFO] running signal batch for %d symbols", len(s.Symbols))
	results := s.Collector.CollectAll(s.Symbols)

	doc := snapshot.NewDocument()
	for _, r := range results {
		if r.Err != nil {
			doc.Signals[r.Symbol] = snapshot.FromError(r.Err)
			continue
		}
		doc.Signals[r.Symbol] = snapshot.Entry{Analysis: r.Analysis}

		if err := s.Recorder.RecordSignals(r.Symbol, r.Analysis); err != nil {
			log.Printf("[ERROR] record %s: %v", r.Symbol, err)
		}
	}

	if err := s.Snapshots.Save(doc); err != nil {
		log.Printf("[ERROR] save snapshot: %v", err)
	}

	s.trySend(notifier.FormatBatchReport(results))
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "/signals", "/run":
		s.dailyTask()
		return ""
	case "/status":
		return s.statusReply()
	default:
		return "Available commands:\n• /signals — run the signal batch now\n• /status — latest scores"
	}
}

func (s *Scheduler) statusReply() string {
	doc, err := s.Snapshots.Load()
	if err != nil {
		return fmt.Sprintf("failed to load snapshot: %v", err)
	}
	if len(doc.Signals) == 0 {
		return "no signals computed yet — try /signals"
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("📋 <b>Latest signals</b> | %s\n", doc.Metadata.LastUpdate.Format("2006-01-02 15:04")))
	for _, symbol := range s.Symbols {
		entry, ok := doc.Signals[symbol]
		if !ok {
			continue
		}
		if entry.Error != "" {
			b.WriteString(fmt.Sprintf("%s: error (%s)\n", symbol, entry.Message))
			continue
		}
		b.WriteString(notifier.FormatSummaryLine(symbol, entry.Analysis))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *Scheduler) trySend(text string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
