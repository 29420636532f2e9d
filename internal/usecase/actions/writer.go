// Package actions persists action items and discovery reports under the
// per-client, per-meeting directory.
package actions

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"sync"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/johnquangdev/client-meetings/internal/domain/entities"
	"github.com/johnquangdev/client-meetings/internal/infrastructure/storage"
	"github.com/johnquangdev/client-meetings/pkg/config"
)

const (
	ClientActionsFile   = "client_actions.json"
	AdviserActionsFile  = "adviser_actions.json"
	DiscoveryReportFile = "discovery_report.json"
)

// SaveError reports which files of a save could not be written
type SaveError struct {
	Dir    string
	Failed []string
	Err    error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("save failed in %s (%s): %v", e.Dir, strings.Join(e.Failed, ", "), e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}

// Meeting identifies the meeting the files belong to
type Meeting struct {
	ClientID string
	ID       string
	Date     string
	Type     string
}

// SaveResult lists the files written by Save
type SaveResult struct {
	Dir            string
	ClientActions  []entities.ActionItem
	AdviserActions []entities.ActionItem
}

// Writer writes JSON files for a meeting through a JSONStore
type Writer struct {
	store   storage.JSONStore
	folders config.ClientFolders
	logger  *zap.Logger
	now     func() time.Time
}

// NewWriter creates a writer
func NewWriter(store storage.JSONStore, folders config.ClientFolders, logger *zap.Logger) *Writer {
	if logger == nil {
		logger = zap.NewNop()
	}
	if folders == nil {
		folders = config.DefaultClientFolders()
	}
	return &Writer{store: store, folders: folders, logger: logger, now: time.Now}
}

// Dir returns the meeting directory relative to the data folder
func (w *Writer) Dir(m Meeting) string {
	return MeetingDir(w.folders, m.ClientID, m.Date, m.Type)
}

// Save writes the client and adviser action lists concurrently. Both writes
// are always attempted; failures are combined into a *SaveError.
func (w *Writer) Save(ctx context.Context, m Meeting, clientActions, adviserActions []string) (*SaveResult, error) {
	dir := w.Dir(m)
	res := &SaveResult{
		Dir:            dir,
		ClientActions:  toActionItems(clientActions, m),
		AdviserActions: toActionItems(adviserActions, m),
	}

	files := []struct {
		name  string
		items []entities.ActionItem
	}{
		{ClientActionsFile, res.ClientActions},
		{AdviserActionsFile, res.AdviserActions},
	}

	errs := make([]error, len(files))
	var wg sync.WaitGroup
	for i, f := range files {
		wg.Add(1)
		go func(i int, name string, items []entities.ActionItem) {
			defer wg.Done()
			envelope := entities.ActionItemFile{
				ClientID:    m.ClientID,
				MeetingID:   m.ID,
				MeetingDate: m.Date,
				Actions:     items,
			}
			if err := w.store.WriteJSON(ctx, path.Join(dir, name), envelope); err != nil {
				errs[i] = fmt.Errorf("%s: %w", name, err)
			}
		}(i, f.name, f.items)
	}
	wg.Wait()

	var combined error
	var failed []string
	for i, err := range errs {
		if err != nil {
			combined = multierr.Append(combined, err)
			failed = append(failed, files[i].name)
		}
	}
	if combined != nil {
		return nil, &SaveError{Dir: dir, Failed: failed, Err: combined}
	}

	w.logger.Info("action items saved",
		zap.String("client_id", m.ClientID),
		zap.String("meeting_id", m.ID),
		zap.String("dir", dir),
		zap.Int("client_actions", len(res.ClientActions)),
		zap.Int("adviser_actions", len(res.AdviserActions)),
	)
	return res, nil
}

func toActionItems(texts []string, m Meeting) []entities.ActionItem {
	items := make([]entities.ActionItem, 0, len(texts))
	for _, t := range texts {
		items = append(items, entities.NewActionItem(t, m.ID, m.Date))
	}
	return items
}

// SaveReport writes the discovery report for a meeting
func (w *Writer) SaveReport(ctx context.Context, m Meeting, report *entities.DiscoveryReport) (*entities.StoredDiscoveryReport, error) {
	stored := &entities.StoredDiscoveryReport{
		ClientID:    m.ClientID,
		MeetingID:   m.ID,
		MeetingDate: m.Date,
		MeetingType: m.Type,
		GeneratedAt: w.now().UTC(),
		Report:      *report,
	}

	dir := w.Dir(m)
	if err := w.store.WriteJSON(ctx, path.Join(dir, DiscoveryReportFile), stored); err != nil {
		return nil, &SaveError{Dir: dir, Failed: []string{DiscoveryReportFile}, Err: err}
	}

	w.logger.Info("discovery report saved",
		zap.String("client_id", m.ClientID),
		zap.String("meeting_id", m.ID),
		zap.String("dir", dir),
	)
	return stored, nil
}

// LoadReport reads a stored discovery report. A missing file yields
// entities.ErrReportNotFound.
func (w *Writer) LoadReport(ctx context.Context, m Meeting) (*entities.StoredDiscoveryReport, error) {
	var stored entities.StoredDiscoveryReport
	err := w.store.ReadJSON(ctx, path.Join(w.Dir(m), DiscoveryReportFile), &stored)
	if errors.Is(err, storage.ErrNotExist) {
		return nil, entities.ErrReportNotFound
	}
	if err != nil {
		return nil, err
	}
	if stored.MeetingID != "" && m.ID != "" && stored.MeetingID != m.ID {
		return nil, entities.ErrReportNotFound
	}
	return &stored, nil
}
