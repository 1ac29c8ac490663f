package handler

import (
    "context"
    "errors"
    "io"
    "net/http"
    "os"
    "path/filepath"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/train-station-reservation/internal/model"
    "github.com/iliyamo/train-station-reservation/internal/repository"
    "github.com/iliyamo/train-station-reservation/internal/utils"
)

// maxImageSize caps uploaded train images at 5 MiB.
const maxImageSize = 5 << 20

// TrainHandler serves the train catalog including image upload.
type TrainHandler struct {
    Trains *repository.TrainRepo
    // UploadDir is the root directory for uploaded images, e.g. "uploads".
    UploadDir string
}

func NewTrainHandler(r *repository.TrainRepo, uploadDir string) *TrainHandler {
    return &TrainHandler{Trains: r, UploadDir: uploadDir}
}

// Create adds a train. Carriage layout bounds are validated before the
// insert; an unknown train type id returns 404.
func (h *TrainHandler) Create(c echo.Context) error {
    var t model.Train
    if err := c.Bind(&t); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    t.Name = strings.TrimSpace(t.Name)
    if t.Name == "" || t.TrainTypeID == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and train_type required"})
    }
    if err := t.Validate(); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    if err := h.Trains.Create(ctx, &t); err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "train type not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create failed"})
    }

    detail, err := h.Trains.GetByID(ctx, t.ID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    return c.JSON(http.StatusCreated, detail)
}

// List returns trains with capacity and type name resolved. Optional
// query filters: ?name=<substring> and ?train_type=<type id>.
func (h *TrainHandler) List(c echo.Context) error {
    var f repository.TrainFilter
    f.Name = strings.TrimSpace(c.QueryParam("name"))
    var err error
    if f.TrainTypeID, err = queryID(c, "train_type"); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid train_type"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    trains, err := h.Trains.List(ctx, f)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    return c.JSON(http.StatusOK, trains)
}

// Get returns one train by id.
func (h *TrainHandler) Get(c echo.Context) error {
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
    defer cancel()

    detail, err := h.Trains.GetByID(ctx, id)
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "train not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }
    return c.JSON(http.StatusOK, detail)
}

// UploadImage attaches an image to a train. The file comes in the
// "image" multipart field, is sniffed for an image content type and is
// stored under UploadDir/trains with a slugged random name. A new
// upload replaces the previous file on disk.
func (h *TrainHandler) UploadImage(c echo.Context) error {
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }

    ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
    defer cancel()

    train, err := h.Trains.GetByID(ctx, id)
    if err != nil {
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "train not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
    }

    fh, err := c.FormFile("image")
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "image file required"})
    }
    if fh.Size > maxImageSize {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "image too large"})
    }
    src, err := fh.Open()
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "cannot read upload"})
    }
    defer src.Close()

    data, err := io.ReadAll(io.LimitReader(src, maxImageSize+1))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "cannot read upload"})
    }
    if len(data) > maxImageSize {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "image too large"})
    }
    if _, err := utils.DetectImage(data); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{
            "error":   "invalid upload",
            "details": []fieldError{{Field: "image", Reason: err.Error()}},
        })
    }

    name, err := utils.ImageFileName(train.Name, fh.Filename)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "name generation failed"})
    }
    dir := filepath.Join(h.UploadDir, "trains")
    if err := os.MkdirAll(dir, 0o755); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store failed"})
    }
    if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store failed"})
    }

    // Relative path is what gets stored and served.
    rel := filepath.ToSlash(filepath.Join("trains", name))
    if err := h.Trains.UpdateImagePath(ctx, id, rel); err != nil {
        // The file is already on disk; remove it so a failed update
        // does not leak orphans.
        _ = os.Remove(filepath.Join(dir, name))
        if errors.Is(err, repository.ErrNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "train not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
    }
    if old := train.ImagePath; old != nil && *old != rel {
        _ = os.Remove(filepath.Join(h.UploadDir, filepath.FromSlash(*old)))
    }
    return c.JSON(http.StatusOK, echo.Map{"id": id, "image": rel})
}
