package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/brickmate/leadbook/internal/entity"
	"github.com/brickmate/leadbook/internal/infra/http/middleware"
	"github.com/brickmate/leadbook/internal/logger"
)

// DigestLeadSource lists the active, not-yet-contacted leads grouped by the
// owner's email address.
type DigestLeadSource interface {
	FindDigestLeads(ctx context.Context) (map[string][]entity.Property, error)
}

type DigestMailer interface {
	SendDigest(to string, leads []entity.Property) error
}

// Scheduler runs the daily follow-up digest. Each owner with at least one
// uncontacted active lead gets a single email listing them.
type Scheduler struct {
	cron   *cron.Cron
	Leads  DigestLeadSource
	Mailer DigestMailer
	Spec   string
}

func New(leads DigestLeadSource, mailer DigestMailer, spec string) *Scheduler {
	if spec == "" {
		spec = "0 8 * * *" // every day at 08:00
	}
	return &Scheduler{
		cron:   cron.New(),
		Leads:  leads,
		Mailer: mailer,
		Spec:   spec,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.Spec, s.runDigest); err != nil {
		return err
	}
	s.cron.Start()
	logger.Log.Infof("digest scheduler started with spec %q", s.Spec)
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) runDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	byEmail, err := s.Leads.FindDigestLeads(ctx)
	if err != nil {
		logger.Log.Errorf("digest: loading leads failed: %v", err)
		return
	}

	for email, leads := range byEmail {
		if len(leads) == 0 {
			continue
		}
		if err := s.Mailer.SendDigest(email, leads); err != nil {
			middleware.RecordMailError()
			logger.Log.Warnf("digest: sending to %s failed: %v", email, err)
		}
	}
}
