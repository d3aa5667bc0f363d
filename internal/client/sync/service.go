// Package sync reconciles the three copies of a save: the local cache, the
// cloud slot of the platform and the live widget state.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/iudanet/gophsave/internal/client/iocli"
	"github.com/iudanet/gophsave/internal/client/remote"
	"github.com/iudanet/gophsave/internal/client/storage"
	"github.com/iudanet/gophsave/internal/models"
	"github.com/iudanet/gophsave/internal/validation"
)

//go:generate moq -out service_mock.go . Service
//go:generate moq -out remote_mock.go . Remote

// Сообщения пользователю
const (
	msgInvalidReset   = "Your save is invalid, your game will be reset."
	msgBothInvalid    = "Both your cloud save and your local save are invalid, your game will be reset."
	msgRetryError     = "Failed to get data from the cloud: %s, do you want to try again?"
	msgRetryTimeout   = "Failed to get data from the cloud, do you want to try again?"
	msgUseLocal       = "Your cloud save is invalid, do you want to load your local save instead?"
	msgLoadFromCloud  = "Your cloud save differs from your local save, do you want to load it from the cloud?"
	msgImportPrompt   = "Import Save (Copy to Export)"
	msgInvalidImport  = "Invalid save data."
	msgCloudSaveError = "Failed to save data to the cloud: %s"
)

// Default reconciliation settings
const (
	DefaultSettleDelay = 250 * time.Millisecond
	DefaultMaxRetries  = 5
)

// Service определяет интерфейс для sync.Service
type Service interface {
	// Load reconciles local and cloud saves and applies the winner to the widget
	Load(ctx context.Context) (*LoadResult, error)

	// Save flushes the widget state to the local cache and the cloud slot
	Save(ctx context.Context) (*SaveResult, error)

	// Import shows the current save to the user and applies an edited one
	Import(ctx context.Context) error

	// Status reports the state of the local cache
	Status(ctx context.Context) (*Status, error)
}

// Bridge translates between save blobs and the widget state
type Bridge interface {
	ReadBlob(ctx context.Context) (models.SaveBlob, error)
	WriteBlob(ctx context.Context, blob models.SaveBlob) error
	ExportFields(ctx context.Context) (models.SaveBlob, error)
	ImportFields(ctx context.Context, blob models.SaveBlob) error
}

// Remote is the cloud-save side of the reconciliation
type Remote interface {
	Load(ctx context.Context, slot int) (remote.LoadResult, error)
	Save(ctx context.Context, slot int, label string, blob models.SaveBlob) error
	OnPlatform() bool
}

// Config holds the reconciliation settings
type Config struct {
	Label       string
	Slot        int
	SettleDelay time.Duration // пауза между записью блоба и раскладкой полей
	MaxRetries  int           // сколько раз можно повторить запрос к облаку
}

// LoadResult contains load reconciliation results
type LoadResult struct {
	Blob    models.SaveBlob   // применённое сохранение, пусто для SourceNone
	Source  models.SaveSource // какая копия была применена
	Prompts int               // сколько раз спрашивали пользователя
	Reset   bool              // показано уведомление о сбросе
}

// SaveResult contains save flush results
type SaveResult struct {
	LocalErr  error
	RemoteErr error
	Blob      models.SaveBlob
	Remote    bool // запрос в облако был отправлен
}

// Status describes the local cache
type Status struct {
	LastFlush  time.Time // нулевое значение, если сохранений ещё не было
	Local      models.SaveBlob
	LocalValid bool
	OnPlatform bool
}

type service struct {
	bridge          Bridge
	remote          Remote
	saveStorage     storage.SaveStorage
	metadataStorage storage.MetadataStorage
	io              iocli.IO
	logger          *slog.Logger
	now             func() time.Time
	cfg             Config
}

// NewService creates a new sync service
func NewService(
	bridge Bridge,
	remote Remote,
	saveStorage storage.SaveStorage,
	metadataStorage storage.MetadataStorage,
	io iocli.IO,
	cfg Config,
	logger *slog.Logger,
) Service {
	if cfg.SettleDelay < 0 {
		cfg.SettleDelay = 0
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}

	return &service{
		bridge:          bridge,
		remote:          remote,
		saveStorage:     saveStorage,
		metadataStorage: metadataStorage,
		io:              io,
		logger:          logger,
		now:             time.Now,
		cfg:             cfg,
	}
}

// localSave копия сохранения из локального кеша
type localSave struct {
	blob  models.SaveBlob
	valid bool
}

func (l localSave) present() bool {
	return !l.blob.IsEmpty()
}

// Load runs the load-time reconciliation:
//  1. Reads the local cache
//  2. Queries the cloud slot when running on the platform, with user driven retries
//  3. Resolves conflicts, asking the user where both copies disagree
//  4. Commits the winner to the widget
//
// Invalid data is never written to the widget.
func (s *service) Load(ctx context.Context) (*LoadResult, error) {
	local, err := s.readLocal(ctx)
	if err != nil {
		return nil, err
	}

	result := &LoadResult{Source: models.SourceNone}

	if !s.remote.OnPlatform() {
		s.logger.Info("Running standalone, using local save only")
		return s.finishLocal(ctx, result, local)
	}

	for attempt := 1; ; attempt++ {
		s.logger.Info("Requesting cloud save", "slot", s.cfg.Slot, "attempt", attempt)

		res, err := s.remote.Load(ctx, s.cfg.Slot)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, remote.ErrLoadInFlight) {
				return nil, err
			}
			if errors.Is(err, remote.ErrNotAttached) {
				// Повтор не поможет: связи с хостом нет
				s.logger.Warn("Cloud host is not connected, using local save only")
				return s.finishLocal(ctx, result, local)
			}
			// Сбой транспорта обрабатываем как временную ошибку облака
			s.logger.Warn("Cloud load request failed", "error", err)
			res = remote.LoadResult{Outcome: remote.OutcomeError, Message: err.Error()}
		}

		var retryMsg string
		switch res.Outcome {
		case remote.OutcomeContent:
			return s.reconcile(ctx, result, local, res.Content)

		case remote.OutcomeError:
			if res.Benign() {
				s.logger.Info("Nothing stored in the cloud", "reason", res.Message)
				return s.finishLocal(ctx, result, local)
			}
			s.logger.Warn("Cloud returned an error", "message", res.Message)
			retryMsg = fmt.Sprintf(msgRetryError, res.Message)

		case remote.OutcomeTimeout:
			retryMsg = msgRetryTimeout
		}

		decision, err := s.askRetry(ctx, result, retryMsg, attempt)
		if err != nil {
			return nil, err
		}
		if decision == models.DecisionRetry {
			continue
		}

		if res.Outcome == remote.OutcomeTimeout {
			return s.finishLocal(ctx, result, local)
		}
		// После ошибки облака невалидный локальный кеш молча игнорируется
		if local.valid {
			return s.commit(ctx, result, local.blob, models.SourceLocal)
		}
		return result, nil
	}
}

// reconcile обрабатывает успешный ответ облака
func (s *service) reconcile(ctx context.Context, result *LoadResult, local localSave, cloud models.SaveBlob) (*LoadResult, error) {
	if cloud.IsEmpty() {
		s.logger.Info("Cloud slot is empty")
		if local.valid {
			return s.commit(ctx, result, local.blob, models.SourceLocal)
		}
		return result, nil
	}

	if err := validation.ValidateSaveErr(cloud); err != nil {
		s.logger.Warn("Cloud save is invalid", "error", err)

		if !local.valid {
			s.reset(result, msgBothInvalid)
			return result, nil
		}

		decision, err := s.choose(ctx, result, msgUseLocal, models.DecisionUseLocal, models.DecisionAbort)
		if err != nil {
			return nil, err
		}
		if decision == models.DecisionUseLocal {
			return s.commit(ctx, result, local.blob, models.SourceLocal)
		}
		// Невалидное облачное сохранение не пишем: это сброс
		s.reset(result, msgInvalidReset)
		return result, nil
	}

	if !local.valid {
		return s.commit(ctx, result, cloud, models.SourceRemote)
	}

	if local.blob == cloud {
		s.logger.Debug("Local and cloud saves match")
		return s.commit(ctx, result, cloud, models.SourceRemote)
	}

	decision, err := s.choose(ctx, result, msgLoadFromCloud, models.DecisionUseRemote, models.DecisionUseLocal)
	if err != nil {
		return nil, err
	}
	if decision == models.DecisionUseRemote {
		return s.commit(ctx, result, cloud, models.SourceRemote)
	}
	return s.commit(ctx, result, local.blob, models.SourceLocal)
}

// finishLocal применяет локальный кеш без участия облака
func (s *service) finishLocal(ctx context.Context, result *LoadResult, local localSave) (*LoadResult, error) {
	switch {
	case local.valid:
		return s.commit(ctx, result, local.blob, models.SourceLocal)
	case local.present():
		s.reset(result, msgInvalidReset)
		return result, nil
	default:
		s.logger.Info("No save found, starting fresh")
		return result, nil
	}
}

// askRetry спрашивает, повторить ли запрос к облаку.
// После исчерпания попыток ведёт себя как отказ.
func (s *service) askRetry(ctx context.Context, result *LoadResult, message string, attempt int) (models.ConflictDecision, error) {
	if attempt > s.cfg.MaxRetries {
		s.logger.Warn("Cloud load retries exhausted", "attempts", attempt)
		return models.DecisionAbort, nil
	}
	return s.choose(ctx, result, message, models.DecisionRetry, models.DecisionAbort)
}

// choose задаёт пользователю вопрос да/нет и переводит ответ в решение
func (s *service) choose(ctx context.Context, result *LoadResult, message string, yes, no models.ConflictDecision) (models.ConflictDecision, error) {
	result.Prompts++

	ok, err := s.io.Confirm(ctx, message)
	if err != nil {
		return models.DecisionAbort, fmt.Errorf("failed to get user decision: %w", err)
	}

	decision := no
	if ok {
		decision = yes
	}
	s.logger.Debug("User decision", "decision", decision.String())
	return decision, nil
}

func (s *service) reset(result *LoadResult, message string) {
	s.logger.Warn("Resetting save")
	result.Reset = true
	s.io.Notify(message)
}

// commit пишет блоб в виджет и раскладывает поля после паузы
func (s *service) commit(ctx context.Context, result *LoadResult, blob models.SaveBlob, source models.SaveSource) (*LoadResult, error) {
	if err := s.apply(ctx, blob); err != nil {
		return nil, err
	}

	result.Blob = blob
	result.Source = source
	s.logger.Info("Save loaded", "source", source, "fields", len(blob.Fields()))
	return result, nil
}

func (s *service) apply(ctx context.Context, blob models.SaveBlob) error {
	if err := s.bridge.WriteBlob(ctx, blob); err != nil {
		return fmt.Errorf("failed to write save: %w", err)
	}

	if s.cfg.SettleDelay > 0 {
		timer := time.NewTimer(s.cfg.SettleDelay)
		defer timer.Stop()

		select {
		case <-timer.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if err := s.bridge.ImportFields(ctx, blob); err != nil {
		return fmt.Errorf("failed to import save fields: %w", err)
	}
	return nil
}

// readLocal читает локальный кеш; ошибка чтения равносильна отсутствию кеша
func (s *service) readLocal(ctx context.Context) (localSave, error) {
	blob, err := s.saveStorage.LoadSave(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return localSave{}, ctx.Err()
		}
		if !errors.Is(err, storage.ErrSaveNotFound) {
			s.logger.Warn("Failed to read local save, ignoring it", "error", err)
		}
		return localSave{}, nil
	}

	local := localSave{blob: blob}
	if local.present() {
		if err := validation.ValidateSaveErr(blob); err != nil {
			s.logger.Warn("Local save is invalid", "error", err)
		} else {
			local.valid = true
		}
	}
	return local, nil
}

// Save flushes the widget state:
//  1. Collects the manifest fields into a blob
//  2. Writes the blob to the data holder
//  3. Stores it locally and posts it to the cloud concurrently
//
// A cloud failure is only reported to the user and never undoes the local save.
func (s *service) Save(ctx context.Context) (*SaveResult, error) {
	blob, err := s.bridge.ExportFields(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export save fields: %w", err)
	}

	if err := s.bridge.WriteBlob(ctx, blob); err != nil {
		return nil, fmt.Errorf("failed to write save: %w", err)
	}

	result := &SaveResult{Blob: blob, Remote: s.remote.OnPlatform()}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		result.LocalErr = s.saveStorage.StoreSave(ctx, blob)
	}()

	if result.Remote {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result.RemoteErr = s.remote.Save(ctx, s.cfg.Slot, s.cfg.Label, blob)
		}()
	}

	wg.Wait()

	if result.RemoteErr != nil {
		s.logger.Error("Failed to save to the cloud", "error", result.RemoteErr)
		s.io.Notify(fmt.Sprintf(msgCloudSaveError, result.RemoteErr))
	}

	if result.LocalErr != nil {
		s.logger.Error("Failed to save locally", "error", result.LocalErr)
		return result, fmt.Errorf("failed to store save: %w", result.LocalErr)
	}

	if err := s.metadataStorage.SaveLastFlushTimestamp(ctx, s.now().Unix()); err != nil {
		s.logger.Warn("Failed to save last flush timestamp", "error", err)
	}

	s.logger.Info("Save flushed", "fields", len(blob.Fields()), "remote", result.Remote)
	return result, nil
}

// Import exports the current fields, shows them to the user and applies the
// edited blob if it is valid.
func (s *service) Import(ctx context.Context) error {
	current, err := s.bridge.ExportFields(ctx)
	if err != nil {
		return fmt.Errorf("failed to export save fields: %w", err)
	}
	if err := s.bridge.WriteBlob(ctx, current); err != nil {
		return fmt.Errorf("failed to write save: %w", err)
	}

	answer, ok, err := s.io.Prompt(ctx, msgImportPrompt, current.String())
	if err != nil {
		return fmt.Errorf("failed to read import: %w", err)
	}

	answer = strings.TrimSpace(answer)
	if !ok || answer == "" || models.SaveBlob(answer) == current {
		s.logger.Debug("Import skipped")
		return nil
	}

	blob := models.SaveBlob(answer)
	if err := validation.ValidateSaveErr(blob); err != nil {
		s.logger.Warn("Rejected imported save", "error", err)
		s.io.Notify(msgInvalidImport)
		return nil
	}

	if err := s.apply(ctx, blob); err != nil {
		return err
	}

	s.logger.Info("Save imported", "fields", len(blob.Fields()))
	return nil
}

// Status reads the local cache and the last flush time
func (s *service) Status(ctx context.Context) (*Status, error) {
	local, err := s.readLocal(ctx)
	if err != nil {
		return nil, err
	}

	status := &Status{
		Local:      local.blob,
		LocalValid: local.valid,
		OnPlatform: s.remote.OnPlatform(),
	}

	ts, err := s.metadataStorage.GetLastFlushTimestamp(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get last flush timestamp: %w", err)
	}
	if ts > 0 {
		status.LastFlush = time.Unix(ts, 0)
	}
	return status, nil
}
