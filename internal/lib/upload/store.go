// Package upload сохраняет загруженные файлы в локальный каталог
// по схеме <baseDir>/<category>/<uuid><ext> и отдаёт публичный путь /uploads/<category>/<file>.
package upload

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/magabrotheeeer/qa-platform/internal/lib/apperr"
	"github.com/magabrotheeeer/qa-platform/internal/lib/sl"
)

// Категории загрузок.
const (
	AdsImages       = "ads_images"
	MentorIcons     = "mentor_icons"
	CalculatorIcons = "calculator_icons"
	TemplatesPdf    = "templatesPdf"
)

// Допустимые типы файлов.
var (
	ImageTypes    = []string{"image/jpeg", "image/png"}
	TemplateTypes = []string{"application/pdf", "video/mp4", "video/webm", "image/jpeg", "image/png"}
)

// ErrUnsupportedType тип файла не входит в список разрешённых.
var ErrUnsupportedType = errors.New("unsupported file type")

// Store локальное файловое хранилище.
type Store struct {
	baseDir      string
	publicPrefix string
	maxSize      int64
	log          *slog.Logger
}

// NewStore создаёт хранилище. maxSize в байтах, 0 без ограничения.
func NewStore(baseDir, publicPrefix string, maxSize int64, log *slog.Logger) *Store {
	return &Store{
		baseDir:      baseDir,
		publicPrefix: "/" + strings.Trim(publicPrefix, "/"),
		maxSize:      maxSize,
		log:          log,
	}
}

// BaseDir корневой каталог для раздачи статики.
func (s *Store) BaseDir() string {
	return s.baseDir
}

// Save проверяет тип файла по содержимому и сохраняет его.
// Возвращает публичный путь вида /uploads/<category>/<file>.
func (s *Store) Save(category string, fh *multipart.FileHeader, allowed ...string) (string, error) {
	const op = "upload.Save"

	if s.maxSize > 0 && fh.Size > s.maxSize {
		return "", apperr.ValidationErr(fmt.Sprintf("file %s is too large", fh.Filename))
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = src.Close() }()

	mtype, err := mimetype.DetectReader(src)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if len(allowed) > 0 && !isAllowed(mtype, allowed) {
		return "", apperr.Wrap(apperr.Validation,
			fmt.Sprintf("file type %s is not allowed", mtype.String()), ErrUnsupportedType)
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	dir := filepath.Join(s.baseDir, category)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	name := uuid.NewString() + mtype.Extension()
	dst, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return path.Join(s.publicPrefix, category, name), nil
}

// Remove удаляет ранее сохранённый файл по публичному пути.
// Ошибки только логируются: запись в БД уже изменена, файл-сирота не критичен.
func (s *Store) Remove(publicPath string) {
	if publicPath == "" {
		return
	}
	local, ok := s.localPath(publicPath)
	if !ok {
		s.log.Warn("refusing to remove file outside uploads", slog.String("path", publicPath))
		return
	}
	if err := os.Remove(local); err != nil && !errors.Is(err, os.ErrNotExist) {
		s.log.Warn("failed to remove uploaded file", slog.String("path", publicPath), sl.Err(err))
	}
}

func (s *Store) localPath(publicPath string) (string, bool) {
	clean := path.Clean("/" + publicPath)
	rel, found := strings.CutPrefix(clean, s.publicPrefix+"/")
	if !found {
		return "", false
	}
	category, name, found := strings.Cut(rel, "/")
	if !found || name == "" || strings.Contains(name, "/") {
		return "", false
	}
	return filepath.Join(s.baseDir, category, name), true
}

func isAllowed(m *mimetype.MIME, allowed []string) bool {
	for _, a := range allowed {
		if m.Is(a) {
			return true
		}
	}
	return false
}
