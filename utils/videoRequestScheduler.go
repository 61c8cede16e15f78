package utils

import (
	"context"
	"log"
	"time"

	"learnity/services"

	"github.com/robfig/cron/v3"
)

const stalePendingAge = 48 * time.Hour

// StartVideoRequestScheduler runs an hourly sweep that reminds the admin of
// video requests stuck in PENDING. Returns the cron so main can stop it.
func StartVideoRequestScheduler(svc services.VideoRequestService, email *EmailService) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("@hourly", func() {
		sweepStalePending(svc, email)
	})
	if err != nil {
		log.Printf("[VIDEO-REQUEST-SCHEDULER] failed to register job: %v", err)
		return c
	}

	c.Start()
	log.Println("[VIDEO-REQUEST-SCHEDULER] started, sweeping hourly")
	return c
}

func sweepStalePending(svc services.VideoRequestService, email *EmailService) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cutoff := time.Now().Add(-stalePendingAge)
	stale, err := svc.ListStalePending(ctx, cutoff)
	if err != nil {
		log.Printf("[VIDEO-REQUEST-SCHEDULER] sweep failed: %v", err)
		return
	}
	if len(stale) == 0 {
		return
	}

	if err := email.SendPendingVideoRequestDigest(stale); err != nil {
		log.Printf("[VIDEO-REQUEST-SCHEDULER] digest email failed: %v", err)
		return
	}
	log.Printf("[VIDEO-REQUEST-SCHEDULER] digest sent for %d pending requests", len(stale))
}
