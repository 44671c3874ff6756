package services

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Dosada05/sportsday-system/storage"
)

// BackupService periodically uploads a timestamped state export to the
// archive bucket. It only runs when both a cron spec and an uploader are
// configured.
type BackupService struct {
	state    *StateManager
	uploader storage.ArchiveUploader
	spec     string
	logger   *slog.Logger
	cron     *cron.Cron
}

func NewBackupService(state *StateManager, uploader storage.ArchiveUploader, spec string, logger *slog.Logger) *BackupService {
	return &BackupService{
		state:    state,
		uploader: uploader,
		spec:     spec,
		logger:   logger,
	}
}

// Start schedules the backup job. Returns an error for an invalid cron spec.
func (s *BackupService) Start() error {
	if s.uploader == nil || s.spec == "" {
		s.logger.Info("state backups disabled")
		return nil
	}
	s.cron = cron.New()
	if _, err := s.cron.AddFunc(s.spec, s.runBackup); err != nil {
		return fmt.Errorf("invalid backup cron spec %q: %w", s.spec, err)
	}
	s.cron.Start()
	s.logger.Info("state backups scheduled", "cron", s.spec)
	return nil
}

func (s *BackupService) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *BackupService) runBackup() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	data, err := s.state.Export()
	if err != nil {
		s.logger.Error("state backup export failed", "error", err)
		return
	}
	key := fmt.Sprintf("backups/state-%s.json", time.Now().UTC().Format("20060102-150405"))
	result, err := s.uploader.Upload(ctx, key, "application/json", bytes.NewReader(data))
	if err != nil {
		s.logger.Error("state backup upload failed", "key", key, "error", err)
		return
	}
	s.logger.Info("state backup uploaded", "key", result.Key, "location", result.Location)
}
