package server

import (
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"github.com/ukaji3/xltables-go/internal/storage"
	"github.com/ukaji3/xltables-go/pkg/xltables"
	"github.com/ukaji3/xltables-go/pkg/xltables/models"
	"github.com/ukaji3/xltables-go/pkg/xltables/parser"
)

// FilesHandler serves the /api/excel routes.
type FilesHandler struct {
	store *storage.Store
	log   *zap.Logger
}

// UploadResponse is returned after a successful upload.
type UploadResponse struct {
	Success      bool   `json:"success"`
	Filename     string `json:"filename"`
	OriginalName string `json:"originalname"`
	Size         int64  `json:"size"`
	MimeType     string `json:"mimetype"`
	Path         string `json:"path"`
}

// ListResponse is returned by the file listing.
type ListResponse struct {
	Success bool               `json:"success"`
	Files   []storage.FileInfo `json:"files"`
}

// DeleteResponse is returned after a file is removed.
type DeleteResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Filename string `json:"filename"`
}

// ViewResponse carries header-keyed records of the first sheet.
type ViewResponse struct {
	Success  bool            `json:"success"`
	Data     []models.Record `json:"data"`
	Filename string          `json:"filename"`
}

func NewFilesHandler(store *storage.Store, log *zap.Logger) *FilesHandler {
	return &FilesHandler{store, log}
}

func (h *FilesHandler) Register(mainApp *fiber.App) {
	var app = mainApp.Group("/api/excel")

	app.Post("/upload", h.upload)
	app.Get("/files", h.list)
	app.Get("/download/:filename", h.download)
	app.Get("/view/:filename", h.view)
	app.Get("/read/:filename", h.read)
	app.Delete("/delete/:filename", h.delete)
}

func (h *FilesHandler) upload(c fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(xltables.Failure("No file uploaded", nil))
	}

	src, err := fh.Open()
	if err != nil {
		return h.fail(c, err)
	}
	defer src.Close()

	info, err := h.store.Save(fh.Filename, src)
	if err != nil {
		return h.fail(c, err)
	}

	h.log.Info("file uploaded",
		zap.String("filename", info.Filename),
		zap.String("size", humanize.Bytes(uint64(info.Size))),
		zap.String("mimetype", info.MimeType),
	)

	return c.JSON(UploadResponse{
		Success:      true,
		Filename:     info.Filename,
		OriginalName: fh.Filename,
		Size:         info.Size,
		MimeType:     info.MimeType,
		Path:         info.Path,
	})
}

func (h *FilesHandler) list(c fiber.Ctx) error {
	files, err := h.store.List()
	if err != nil {
		h.log.Error("listing uploads", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(xltables.Failure("Unable to scan files", nil))
	}
	return c.JSON(ListResponse{Success: true, Files: files})
}

func (h *FilesHandler) download(c fiber.Ctx) error {
	name, path, err := h.resolve(c)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Download(path, name)
}

func (h *FilesHandler) view(c fiber.Ctx) error {
	name, path, err := h.resolve(c)
	if err != nil {
		return h.fail(c, err)
	}

	grid, err := xltables.LoadFileGrid(path, xltables.DefaultOptions())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(ViewResponse{Success: true, Data: parser.Records(grid), Filename: name})
}

func (h *FilesHandler) read(c fiber.Ctx) error {
	name, path, err := h.resolve(c)
	if err != nil {
		return h.fail(c, err)
	}
	ext := strings.ToLower(filepath.Ext(name))

	if xltables.DetectKind(name) == xltables.KindOther {
		text, err := os.ReadFile(path)
		if err != nil {
			return h.fail(c, err)
		}
		return c.JSON(models.Response{Success: true, Filename: name, Content: string(text), Type: ext})
	}

	result, err := xltables.ExtractFile(c.Context(), path, xltables.DefaultOptions())
	if err != nil {
		return h.fail(c, err)
	}
	h.log.Debug("file extracted",
		zap.String("filename", name),
		zap.String("kind", string(result.Kind)),
		zap.String("range", result.Range),
		zap.Int("entries", result.Len()),
	)
	return c.JSON(xltables.Assemble(name, ext, result))
}

func (h *FilesHandler) delete(c fiber.Ctx) error {
	name, _, err := h.resolve(c)
	if err != nil {
		return h.fail(c, err)
	}
	if err := h.store.Delete(name); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(DeleteResponse{Success: true, Message: "File deleted successfully", Filename: name})
}

// resolve maps the :filename parameter to a stored file.
func (h *FilesHandler) resolve(c fiber.Ctx) (string, string, error) {
	name, err := url.PathUnescape(c.Params("filename"))
	if err != nil {
		return "", "", xltables.ErrFileNotFound
	}
	path, err := h.store.Path(name)
	if err != nil {
		return "", "", err
	}
	return name, path, nil
}

// fail writes the error contract for err.
func (h *FilesHandler) fail(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, xltables.ErrFileNotFound):
		return c.Status(fiber.StatusNotFound).JSON(xltables.Failure("File not found", nil))
	case errors.Is(err, xltables.ErrUnsupportedType):
		return c.Status(fiber.StatusUnsupportedMediaType).JSON(xltables.Failure("Unsupported file type", err))
	case errors.Is(err, xltables.ErrUnreadableFile):
		h.log.Warn("unreadable file", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(xltables.Failure("Error reading file", err))
	default:
		h.log.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(xltables.Failure(err.Error(), nil))
	}
}
