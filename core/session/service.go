// ABOUTME: Session service keeps one view controller snapshot per preview session
// ABOUTME: Restores the controller, applies load, mode, reset or upload, and saves it back

package session

import (
	"context"
	"time"

	"mdpreview-api/core/domain"
	"mdpreview-api/core/errors"
	"mdpreview-api/core/interfaces"
	"mdpreview-api/core/markdown"
	"mdpreview-api/core/upload"
	"mdpreview-api/core/view"

	"github.com/google/uuid"
)

// Export is a downloadable copy of a session document
type Export struct {
	FileName string
	Content  string
}

// SessionService handles session operations. Concurrent writes to the same
// session are last-writer-wins.
type SessionService struct {
	storage interfaces.SessionStorage
	uploads *upload.Service
	ttl     time.Duration
	logger  interfaces.Logger
}

// NewSessionService creates a new session service instance. A positive ttl
// makes sessions expire ttl after their last change.
func NewSessionService(storage interfaces.SessionStorage, uploads *upload.Service, ttl time.Duration, logger interfaces.Logger) *SessionService {
	return &SessionService{
		storage: storage,
		uploads: uploads,
		ttl:     ttl,
		logger:  logger,
	}
}

// Create starts a session with no document loaded
func (s *SessionService) Create(ctx context.Context) (*domain.Session, view.Output, error) {
	sess := domain.NewSession(s.ttl)
	if err := s.storage.Save(ctx, sess); err != nil {
		return nil, view.Output{}, err
	}

	s.logger.Debug("Session created", map[string]interface{}{
		"session_id": sess.ID,
	})

	ctrl := view.NewController()
	return sess, ctrl.Output(), nil
}

// Get retrieves a session by ID
func (s *SessionService) Get(ctx context.Context, id string) (*domain.Session, error) {
	if id == "" {
		return nil, &errors.ValidationError{Field: "id", Message: "session ID cannot be empty"}
	}

	// Validate UUID format
	if _, err := uuid.Parse(id); err != nil {
		return nil, &errors.ValidationError{Field: "id", Message: "invalid session ID format"}
	}

	sess, err := s.storage.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, &errors.NotFoundError{Resource: "session", ID: id}
	}

	if sess.IsExpired() {
		if err := s.storage.Delete(ctx, id); err != nil {
			s.logger.Warn("Failed to delete expired session", map[string]interface{}{
				"session_id": id,
				"error":      err.Error(),
			})
		}
		return nil, &errors.NotFoundError{Resource: "session", ID: id}
	}

	return sess, nil
}

// View returns the current render of the session
func (s *SessionService) View(ctx context.Context, id string) (view.Output, error) {
	_, ctrl, err := s.open(ctx, id)
	if err != nil {
		return view.Output{}, err
	}
	return ctrl.Output(), nil
}

// Load replaces the session document with markdown
func (s *SessionService) Load(ctx context.Context, id, md, fileName string) (view.Output, error) {
	sess, ctrl, err := s.open(ctx, id)
	if err != nil {
		return view.Output{}, err
	}

	out := ctrl.Load(md, fileName)
	return out, s.save(ctx, sess, ctrl)
}

// SetMode switches the session between preview and raw
func (s *SessionService) SetMode(ctx context.Context, id, mode string) (view.Output, error) {
	m, ok := markdown.ParseMode(mode)
	if !ok {
		return view.Output{}, &errors.ValidationError{Field: "mode", Message: "must be 'preview' or 'raw'"}
	}

	sess, ctrl, err := s.open(ctx, id)
	if err != nil {
		return view.Output{}, err
	}

	out, err := ctrl.SetMode(m)
	if err != nil {
		return view.Output{}, err
	}
	return out, s.save(ctx, sess, ctrl)
}

// Reset clears the session document
func (s *SessionService) Reset(ctx context.Context, id string) error {
	sess, ctrl, err := s.open(ctx, id)
	if err != nil {
		return err
	}

	ctrl.Reset()
	return s.save(ctx, sess, ctrl)
}

// Upload converts a file into the session document. When the conversion
// fails the session is saved in its reset state before the error is returned.
func (s *SessionService) Upload(ctx context.Context, id, fileName string, data []byte) (view.Output, error) {
	sess, ctrl, err := s.open(ctx, id)
	if err != nil {
		return view.Output{}, err
	}

	out, convErr := s.uploads.HandleFile(ctx, ctrl, fileName, data)
	if convErr != nil && errors.IsInputTooLarge(convErr) {
		return out, convErr
	}
	if err := s.save(ctx, sess, ctrl); err != nil {
		return out, err
	}
	return out, convErr
}

// Export returns the session document under its download name
func (s *SessionService) Export(ctx context.Context, id string) (*Export, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !sess.Loaded {
		return nil, &errors.NotFoundError{Resource: "document", ID: id}
	}

	return &Export{
		FileName: sess.Document.ExportName(),
		Content:  sess.Document.Markdown,
	}, nil
}

func (s *SessionService) open(ctx context.Context, id string) (*domain.Session, *view.Controller, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	ctrl := view.NewController()
	ctrl.Restore(sess)
	return sess, ctrl, nil
}

func (s *SessionService) save(ctx context.Context, sess *domain.Session, ctrl *view.Controller) error {
	ctrl.Snapshot(sess)
	if s.ttl > 0 {
		expires := sess.UpdatedAt.Add(s.ttl)
		sess.ExpiresAt = &expires
	}
	if err := s.storage.Save(ctx, sess); err != nil {
		s.logger.Error("Failed to save session", map[string]interface{}{
			"session_id": sess.ID,
			"error":      err.Error(),
		})
		return err
	}
	return nil
}
