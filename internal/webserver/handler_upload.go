package webserver

import (
	"encoding/base64"
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopquanao/storefront/internal/integrity"
	"github.com/shopquanao/storefront/internal/storage"
)

type UploadHandler struct {
	store storage.ObjectStore
}

func NewUploadHandler(store storage.ObjectStore) *UploadHandler {
	return &UploadHandler{store: store}
}

func (h *UploadHandler) readFormImage(c echo.Context) ([]byte, string, string, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		return nil, "", "", err
	}
	f, err := fh.Open()
	if err != nil {
		return nil, "", "", err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, "", "", err
	}
	return data, fh.Filename, fh.Header.Get("Content-Type"), nil
}

// Upload stores raw multipart image bytes and returns the public URL.
// The content hash is computed server-side; there is nothing to verify.
func (h *UploadHandler) Upload(c echo.Context) error {
	data, filename, mimetype, err := h.readFormImage(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "No file uploaded", nil)
	}

	key := storage.ObjectKey(filename)
	url, err := h.store.Put(c.Request().Context(), key, data, mimetype)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to store file", err)
	}
	return ok(c, echo.Map{
		"imageUrl": url,
		"checksum": integrity.Checksum(data),
	})
}

// ToBase64 converts a multipart image into its base64 form together
// with the checksum a client needs to submit it back later.
func (h *UploadHandler) ToBase64(c echo.Context) error {
	data, filename, mimetype, err := h.readFormImage(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "No file uploaded", nil)
	}
	return ok(c, echo.Map{
		"base64":   base64.StdEncoding.EncodeToString(data),
		"checksum": integrity.Checksum(data),
		"filename": filename,
		"size":     len(data),
		"mimetype": mimetype,
	})
}

type base64UploadPayload struct {
	Base64   string `json:"base64"`
	Checksum string `json:"checksum"`
	Filename string `json:"filename"`
	Mimetype string `json:"mimetype"`
}

// FromBase64 decodes a text-encoded image, verifies the client-supplied
// checksum over the decoded bytes and only then stores the object. On a
// mismatch both hashes are disclosed and nothing is stored.
func (h *UploadHandler) FromBase64(c echo.Context) error {
	var payload base64UploadPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "Unable to parse upload payload", err)
	}
	if payload.Base64 == "" || payload.Checksum == "" || payload.Filename == "" {
		return fail(c, http.StatusBadRequest, "Missing required fields: base64, checksum, filename", nil)
	}

	data, err := base64.StdEncoding.DecodeString(payload.Base64)
	if err != nil {
		return fail(c, http.StatusBadRequest, "Invalid base64 payload", err)
	}

	if err := integrity.Verify(data, payload.Checksum); err != nil {
		var mismatch *integrity.ChecksumMismatchError
		if errors.As(err, &mismatch) {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"message":    "Checksum mismatch",
				"expected":   mismatch.Expected,
				"calculated": mismatch.Calculated,
			})
		}
		return fail(c, http.StatusBadRequest, "Checksum verification failed", err)
	}

	key := storage.ObjectKey(payload.Filename)
	url, err := h.store.Put(c.Request().Context(), key, data, payload.Mimetype)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "Failed to store file", err)
	}
	return ok(c, echo.Map{
		"imageUrl": url,
		"checksum": payload.Checksum,
		"verified": true,
		"filename": key,
	})
}
