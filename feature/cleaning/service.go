package cleaning

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"floorops/core/cleaning"
	"floorops/core/sheetio"
	"floorops/core/storage"
	"floorops/feature/cleaning/models"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Service owns the live cleaning sessions. All user actions on a session are
// serialized through that session's mutex; the engine itself is not safe for
// concurrent use.
type Service struct {
	store   cleaning.AliasStore
	cache   *cleaning.DictionaryCache
	storage storage.Client
	bucket  string
	cfg     cleaning.Config
	logger  *zap.Logger

	mu       sync.RWMutex
	sessions map[string]*sessionEntry
}

type sessionEntry struct {
	mu         sync.Mutex
	controller *cleaning.Controller
	filename   string
	format     sheetio.Format
	lastAccess atomic.Int64
	searchSeq  uint64
}

// touch records activity. Atomic because the sweeper reads it without taking
// the session mutex.
func (e *sessionEntry) touch() {
	e.lastAccess.Store(time.Now().UnixNano())
}

func (e *sessionEntry) lastAccessTime() time.Time {
	return time.Unix(0, e.lastAccess.Load())
}

// NewService creates the session manager. A nil store means the dictionary
// database is unavailable; sessions then run against an empty dictionary and
// promotions stay session-local, each recorded as a warning.
func NewService(store cleaning.AliasStore, client storage.Client, bucket string, cfg cleaning.Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if store == nil {
		store = unavailableStore{}
	}
	return &Service{
		store:    store,
		cache:    cleaning.NewDictionaryCache(store, cfg.DictionaryCacheTTL()),
		storage:  client,
		bucket:   bucket,
		cfg:      cfg,
		logger:   logger,
		sessions: make(map[string]*sessionEntry),
	}
}

// CreateSession parses an uploaded spreadsheet, archives the original bytes
// and registers a new session. Empty sheets are rejected up front.
func (s *Service) CreateSession(ctx context.Context, filename string, data []byte) (*models.SessionSummary, error) {
	format, err := sheetio.DetectFormat(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cleaning.ErrEmptySheet, err)
	}
	sheet, err := sheetio.Parse(filename, data)
	if err != nil {
		return nil, err
	}

	session, err := cleaning.NewSession(uuid.NewString(), sheet)
	if err != nil {
		return nil, err
	}

	s.archiveUpload(ctx, session, filename, data)

	entry := &sessionEntry{
		controller: cleaning.NewController(session, s.store, s.logger),
		filename:   filename,
		format:     format,
	}
	entry.touch()

	s.mu.Lock()
	s.sessions[session.ID] = entry
	s.mu.Unlock()

	s.logger.Info("Cleaning session created",
		zap.String("session_id", session.ID),
		zap.String("filename", filename),
		zap.Int("rows", len(session.Rows)),
	)
	return s.summarize(entry), nil
}

// archiveUpload stores the original upload bytes keyed by session id. The
// archive is best effort: a storage failure is a warning, never a lost
// session.
func (s *Service) archiveUpload(ctx context.Context, session *cleaning.Session, filename string, data []byte) {
	if s.storage == nil {
		return
	}
	objectName := fmt.Sprintf("uploads/%s/%s", session.ID, filename)
	_, err := s.storage.PutObject(ctx, s.bucket, objectName, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{})
	if err != nil {
		s.logger.Warn("Upload archive failed",
			zap.String("session_id", session.ID),
			zap.String("object", objectName),
			zap.Error(err),
		)
		session.AddWarning("archiving the original upload failed: %v", err)
	}
}

// GetSession returns a session summary.
func (s *Service) GetSession(id string) (*models.SessionSummary, error) {
	entry, err := s.entry(id)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	entry.touch()
	return s.summarize(entry), nil
}

// AssignColumn assigns a column to a mode and runs the initial scan. The
// first assignment of a session is gated on the dictionary load; a failed
// load degrades to an empty dictionary plus a session warning so the operator
// can keep working.
func (s *Service) AssignColumn(ctx context.Context, id string, mode cleaning.Mode, column string) (*models.SessionSummary, error) {
	entry, err := s.entry(id)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	entry.touch()

	session := entry.controller.Session()
	if session.Dict == nil {
		dict, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn("Dictionary load failed, continuing with empty dictionary",
				zap.String("session_id", id),
				zap.Error(err),
			)
			session.AddWarning("loading the dictionaries failed: %v; matching runs against an empty dictionary", err)
			dict = cleaning.NewDictionary()
		}
		session.Dict = dict
	}

	if err := session.AssignColumn(mode, column); err != nil {
		return nil, err
	}
	return s.summarize(entry), nil
}

// SetActiveMode switches the mode shown to the operator.
func (s *Service) SetActiveMode(id string, mode cleaning.Mode) (*models.SessionSummary, error) {
	entry, err := s.entry(id)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	entry.touch()

	if err := entry.controller.Session().SetActiveMode(mode); err != nil {
		return nil, err
	}
	return s.summarize(entry), nil
}

// Rows returns every row with its per-mode results.
func (s *Service) Rows(id string) ([]models.RowView, error) {
	entry, err := s.entry(id)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	entry.touch()

	session := entry.controller.Session()
	views := make([]models.RowView, 0, len(session.Rows))
	for _, row := range session.Rows {
		view := models.RowView{
			ID:       row.ID,
			Original: row.OriginalData,
			Results:  make(map[string]models.ModeResultView, len(row.Results)),
		}
		for mode, res := range row.Results {
			view.Results[string(mode)] = models.ModeResultView{
				TargetText:      res.TargetText,
				Value:           res.ExtractedValue,
				Status:          string(res.Status),
				ManualOverride:  res.ManualOverride,
				SelectionSource: res.SelectionSource,
			}
		}
		views = append(views, view)
	}
	sort.Slice(views, func(i, j int) bool {
		a, _ := strconv.Atoi(views[i].ID)
		b, _ := strconv.Atoi(views[j].ID)
		return a < b
	})
	return views, nil
}

// EditRow applies a direct value edit.
func (s *Service) EditRow(id string, mode cleaning.Mode, rowID, value string) error {
	entry, err := s.entry(id)
	if err != nil {
		return err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	entry.touch()
	return entry.controller.EditRow(mode, rowID, value)
}

// SelectSpan applies a span selection.
func (s *Service) SelectSpan(id string, mode cleaning.Mode, rowID, text string) error {
	entry, err := s.entry(id)
	if err != nil {
		return err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	entry.touch()
	return entry.controller.SelectSpan(mode, rowID, text)
}

// Promote promotes a row's correction into a dictionary rule. The dictionary
// cache is invalidated on success so other sessions observe the new rule.
func (s *Service) Promote(ctx context.Context, id string, mode cleaning.Mode, rowID string) error {
	entry, err := s.entry(id)
	if err != nil {
		return err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	entry.touch()

	if err := entry.controller.Promote(ctx, mode, rowID); err != nil {
		return err
	}
	s.cache.Invalidate()
	return nil
}

// Export renders the cleaned rows, either as the JSON row shape or rebuilt in
// the upload's file format.
func (s *Service) Export(id string) (*models.ExportResponse, error) {
	entry, err := s.entry(id)
	if err != nil {
		return nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	entry.touch()

	sheet := entry.controller.Session().ExportSheet()
	return &models.ExportResponse{Headers: sheet.Headers, Rows: sheet.Rows}, nil
}

// ExportFile renders the cleaned sheet in the same container format the
// session was uploaded in.
func (s *Service) ExportFile(id string) (filename string, data []byte, err error) {
	entry, err := s.entry(id)
	if err != nil {
		return "", nil, err
	}
	entry.mu.Lock()
	defer entry.mu.Unlock()
	entry.touch()

	sheet := entry.controller.Session().ExportSheet()
	data, err = sheetio.Write(entry.format, sheet)
	if err != nil {
		return "", nil, err
	}
	return "cleaned_" + entry.filename, data, nil
}

// Delete discards a session and best-effort removes its archived upload.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	_, ok := s.sessions[id]
	if ok {
		delete(s.sessions, id)
	}
	s.mu.Unlock()
	if !ok {
		return cleaning.ErrSessionNotFound
	}

	if s.storage != nil {
		prefix := fmt.Sprintf("uploads/%s/", id)
		for obj := range s.storage.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
			if obj.Err != nil {
				s.logger.Warn("Archive listing failed", zap.String("session_id", id), zap.Error(obj.Err))
				break
			}
			if err := s.storage.RemoveObject(ctx, s.bucket, obj.Key, minio.RemoveObjectOptions{}); err != nil {
				s.logger.Warn("Archive cleanup failed", zap.String("object", obj.Key), zap.Error(err))
			}
		}
	}
	return nil
}

// OriginalUpload streams the archived upload bytes back, as uploaded.
func (s *Service) OriginalUpload(ctx context.Context, id string) (filename string, body io.ReadCloser, err error) {
	entry, err := s.entry(id)
	if err != nil {
		return "", nil, err
	}
	if s.storage == nil {
		return "", nil, fmt.Errorf("no upload archive is configured")
	}
	objectName := fmt.Sprintf("uploads/%s/%s", id, entry.filename)
	body, err = s.storage.GetObject(ctx, s.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return "", nil, fmt.Errorf("failed to fetch archived upload: %w", err)
	}
	return entry.filename, body, nil
}

// EnsureBucket creates the upload archive bucket when it does not exist yet.
func (s *Service) EnsureBucket(ctx context.Context) error {
	if s.storage == nil {
		return nil
	}
	exists, err := s.storage.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket %q: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.storage.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create bucket %q: %w", s.bucket, err)
	}
	return nil
}

// StartSweeper evicts idle sessions in the background until ctx is done.
func (s *Service) StartSweeper(ctx context.Context) {
	ttl := s.cfg.SessionTTL()
	interval := ttl / 4
	if interval < time.Minute {
		interval = time.Minute
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.sweep(ttl)
			}
		}
	}()
}

// sweep removes sessions idle longer than ttl.
func (s *Service) sweep(ttl time.Duration) {
	cutoff := time.Now().Add(-ttl)

	s.mu.Lock()
	defer s.mu.Unlock()
	for id, entry := range s.sessions {
		if entry.lastAccessTime().Before(cutoff) {
			delete(s.sessions, id)
			s.logger.Info("Idle cleaning session expired", zap.String("session_id", id))
		}
	}
}

func (s *Service) entry(id string) (*sessionEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.sessions[id]
	if !ok {
		return nil, cleaning.ErrSessionNotFound
	}
	return entry, nil
}

func (s *Service) summarize(entry *sessionEntry) *models.SessionSummary {
	session := entry.controller.Session()
	assignments := make(map[string]string, len(session.Assignments))
	for mode, column := range session.Assignments {
		assignments[string(mode)] = column
	}
	return &models.SessionSummary{
		ID:                   session.ID,
		Filename:             entry.filename,
		Format:               string(entry.format),
		Phase:                string(session.Phase()),
		ActiveMode:           string(session.ActiveMode),
		RowCount:             len(session.Rows),
		Headers:              session.Sheet.Headers,
		Assignments:          assignments,
		Warnings:             session.Warnings,
		SearchDebounceMillis: s.cfg.SearchDebounceMillis,
	}
}

// unavailableStore stands in when no database is configured: loads and
// writes fail, which the engine's degradation paths turn into warnings.
type unavailableStore struct{}

func (unavailableStore) LoadSizes(context.Context) ([]cleaning.KnownValue, error) {
	return nil, errUnavailable
}
func (unavailableStore) LoadSizeAliases(context.Context) ([]cleaning.Alias, error) {
	return nil, errUnavailable
}
func (unavailableStore) LoadProductAliases(context.Context) ([]cleaning.Alias, error) {
	return nil, errUnavailable
}
func (unavailableStore) LoadProductNames(context.Context) ([]string, error) {
	return nil, errUnavailable
}
func (unavailableStore) CreateSize(context.Context, string) error { return errUnavailable }
func (unavailableStore) CreateSizeAlias(context.Context, string, string) error {
	return errUnavailable
}
func (unavailableStore) CreateProductAlias(context.Context, string, string) error {
	return errUnavailable
}
func (unavailableStore) SearchProductNames(context.Context, string) ([]string, error) {
	return nil, errUnavailable
}

var errUnavailable = fmt.Errorf("dictionary database is not configured")
