package audio

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"path/filepath"
	"regexp"
	"strings"
)

const (
	MaxFileSize = 200 * 1024 * 1024 // raw studio exports get big
	filesDir    = "audio"
)

var (
	whitespaceRegex = regexp.MustCompile(`\s+`)
	unsafeRegex     = regexp.MustCompile(`[^a-zA-Z0-9\-_.]`)
)

// allowedExtensions lists the formats the studio hands over to clients.
var allowedExtensions = map[string]bool{
	".mp3":  true,
	".wav":  true,
	".flac": true,
	".aiff": true,
	".ogg":  true,
}

// Service stores and serves the finished audio files of an order.
type Service struct {
	storage Storage
}

func NewService(storage Storage) *Service {
	return &Service{storage: storage}
}

// cleanFilename strips everything that does not belong in an object key:
// whitespace collapses to a dash, anything outside [a-zA-Z0-9-_.] is dropped.
func cleanFilename(name string) string {
	name = whitespaceRegex.ReplaceAllString(name, "-")
	return unsafeRegex.ReplaceAllString(name, "")
}

// usableFilename rejects cleaned names with nothing left in them. Names made
// of dots only ("." and "..") would escape the key layout as path segments.
func usableFilename(name string) bool {
	return strings.Trim(name, ".") != ""
}

func fileKey(orderID int64, filename string) string {
	return fmt.Sprintf("%d/%s/%s", orderID, filesDir, filename)
}

func (s *Service) Upload(ctx context.Context, orderID int64, header *multipart.FileHeader) (string, error) {
	if header.Size == 0 {
		return "", ErrEmptyFile
	}
	if header.Size > MaxFileSize {
		return "", ErrFileTooLarge
	}

	name := cleanFilename(header.Filename)
	if !usableFilename(name) {
		return "", ErrInvalidName
	}
	if !allowedExtensions[strings.ToLower(filepath.Ext(name))] {
		return "", ErrInvalidType
	}

	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	key := fileKey(orderID, name)
	if err := s.storage.Save(ctx, key, file); err != nil {
		log.Printf("audio: upload failed for order %d: %v", orderID, err)
		return "", fmt.Errorf("store %s: %w", key, err)
	}
	return key, nil
}

func (s *Service) Download(ctx context.Context, orderID int64, filename string) (io.ReadCloser, error) {
	name := cleanFilename(filename)
	if !usableFilename(name) {
		return nil, ErrInvalidName
	}
	return s.storage.Open(ctx, fileKey(orderID, name))
}

func (s *Service) List(ctx context.Context, orderID int64) ([]string, error) {
	return s.storage.List(ctx, fmt.Sprintf("%d/%s", orderID, filesDir))
}

func (s *Service) Delete(ctx context.Context, orderID int64, filename string) error {
	name := cleanFilename(filename)
	if !usableFilename(name) {
		return ErrInvalidName
	}
	return s.storage.Remove(ctx, fileKey(orderID, name))
}
