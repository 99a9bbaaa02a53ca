package assets

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/vigyat/agrostore/internal/storage"
	"go.uber.org/zap"
)

const (
	keyPrefix = "images:"

	fieldData      = "data"
	fieldMediaType = "mimeType"

	genericMediaType = "application/octet-stream"
)

// Store keeps uploaded images as base64 hashes in the storage backend.
type Store struct {
	backend storage.Backend
	config  Config

	logger *zap.Logger
}

func NewStore(backend storage.Backend, config Config, logger *zap.Logger) *Store {
	return &Store{
		backend: backend,
		config:  config.withDefaults(),

		logger: logger,
	}
}

// MaxSize returns the upload size limit in bytes.
func (s *Store) MaxSize() int64 {
	return s.config.MaxSize
}

// Upload stores payload and returns its public reference.
func (s *Store) Upload(ctx context.Context, payload []byte, mediaType string) (string, error) {
	if int64(len(payload)) > s.config.MaxSize {
		return "", fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrPayloadTooLarge, len(payload), s.config.MaxSize)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("%w: empty payload", ErrValidation)
	}

	mediaType = resolveMediaType(payload, mediaType)
	id := uuid.NewString()

	if err := s.backend.HashSet(ctx, keyPrefix+id, map[string]string{
		fieldData:      base64.StdEncoding.EncodeToString(payload),
		fieldMediaType: mediaType,
	}); err != nil {
		return "", fmt.Errorf("failed to store asset: %w", err)
	}

	s.logger.Info("asset stored",
		zap.String("id", id),
		zap.String("media_type", mediaType),
		zap.Int("size", len(payload)),
	)
	return s.config.PublicPath + id, nil
}

// Get returns the stored asset or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (Asset, error) {
	fields, err := s.backend.HashGetAll(ctx, keyPrefix+id)
	if err != nil {
		return Asset{}, fmt.Errorf("failed to read asset: %w", err)
	}

	encoded, ok := fields[fieldData]
	if !ok {
		return Asset{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		s.logger.Warn("corrupt asset payload", zap.String("id", id), zap.Error(err))
		return Asset{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	mediaType := fields[fieldMediaType]
	if mediaType == "" {
		mediaType = genericMediaType
	}

	return Asset{Data: data, MediaType: mediaType}, nil
}

// Release deletes the asset a reference points at. References to anything
// other than this store are ignored.
func (s *Store) Release(ctx context.Context, reference string) error {
	id, ok := s.IDFromReference(reference)
	if !ok {
		return nil
	}

	if err := s.backend.Delete(ctx, keyPrefix+id); err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}

	s.logger.Info("asset released", zap.String("id", id))
	return nil
}

// IDFromReference extracts the asset id from a reference produced by Upload.
func (s *Store) IDFromReference(reference string) (string, bool) {
	id, ok := strings.CutPrefix(reference, s.config.PublicPath)
	if !ok || id == "" || strings.Contains(id, "/") {
		return "", false
	}
	return id, true
}

func resolveMediaType(payload []byte, declared string) string {
	declared = strings.TrimSpace(declared)
	if declared != "" && declared != genericMediaType {
		return declared
	}

	return mimetype.Detect(payload).String()
}
