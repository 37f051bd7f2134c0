package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"digiraksha/internal/apperr"
	"digiraksha/internal/auth"
	"digiraksha/internal/models"
	"digiraksha/internal/repository"
	"digiraksha/internal/storage"
)

const multipartMemory = 8 << 20

// readValues collects the request fields from a multipart, urlencoded or JSON
// body together with the query string.
func (h *Handlers) readValues(w http.ResponseWriter, r *http.Request) (url.Values, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize+multipartMemory)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "multipart/form-data":
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			return nil, bodyError(err)
		}
		return r.Form, nil

	case "application/json":
		values := r.URL.Query()

		var body map[string]interface{}
		decoder := json.NewDecoder(r.Body)
		decoder.UseNumber()
		if err := decoder.Decode(&body); err != nil && !errors.Is(err, io.EOF) {
			return nil, bodyError(err)
		}

		for key, raw := range body {
			switch v := raw.(type) {
			case nil:
			case string:
				values.Set(key, v)
			case json.Number:
				values.Set(key, v.String())
			case bool:
				values.Set(key, strconv.FormatBool(v))
			default:
				return nil, apperr.Validationf("Field %s must be a scalar value", key)
			}
		}
		return values, nil

	default:
		if err := r.ParseForm(); err != nil {
			return nil, bodyError(err)
		}
		return r.Form, nil
	}
}

func bodyError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return apperr.Validation("Request body too large")
	}
	return apperr.Validation("Invalid request body")
}

// readUpload returns the first non-empty file sent under any of fields, or
// nil when none was attached. The caller closes it with closeUpload.
func (h *Handlers) readUpload(r *http.Request, fields ...string) (*storage.Object, error) {
	if r.MultipartForm == nil {
		return nil, nil
	}

	for _, field := range fields {
		files := r.MultipartForm.File[field]
		if len(files) == 0 || files[0].Filename == "" || files[0].Size == 0 {
			continue
		}

		header := files[0]
		if header.Size > h.Cfg.MaxUploadSize {
			return nil, apperr.Validationf("File exceeds the %d byte limit", h.Cfg.MaxUploadSize)
		}

		file, err := header.Open()
		if err != nil {
			return nil, apperr.Validation("Could not read uploaded file")
		}

		return &storage.Object{
			Body:        file,
			Size:        header.Size,
			FileName:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
		}, nil
	}

	return nil, nil
}

func closeUpload(obj *storage.Object) {
	if obj == nil {
		return
	}
	if closer, ok := obj.Body.(io.Closer); ok {
		closer.Close()
	}
}

// validate runs struct validation and turns the first failure into a
// client-facing message.
func (h *Handlers) validate(req interface{}) error {
	err := h.Validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperr.Validation("Invalid request")
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return apperr.Validationf("Field %s is required", fe.Field())
	case "min", "gte":
		return apperr.Validationf("Field %s must be at least %s", fe.Field(), fe.Param())
	case "max", "lte":
		return apperr.Validationf("Field %s must be at most %s", fe.Field(), fe.Param())
	default:
		return apperr.Validationf("Field %s is invalid", fe.Field())
	}
}

func optionalFloat(values url.Values, key string) (*float64, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, apperr.Validationf("Field %s must be a number", key)
	}
	return &f, nil
}

func requiredFloat(values url.Values, key string) (float64, error) {
	f, err := optionalFloat(values, key)
	if err != nil {
		return 0, err
	}
	if f == nil {
		return 0, apperr.Validationf("Field %s is required", key)
	}
	return *f, nil
}

func optionalInt(values url.Values, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.Validationf("Field %s must be an integer", key)
	}
	return n, nil
}

// readPage parses skip and limit from the query string.
func readPage(r *http.Request) (repository.Page, error) {
	query := r.URL.Query()

	skip, err := optionalInt(query, "skip", 0)
	if err != nil {
		return repository.Page{}, err
	}
	limit, err := optionalInt(query, "limit", repository.DefaultLimit)
	if err != nil {
		return repository.Page{}, err
	}

	return repository.Page{Skip: skip, Limit: limit}.Normalize(), nil
}

// readStatus accepts the new status as the status_update query parameter or
// as a status field in the body.
func (h *Handlers) readStatus(w http.ResponseWriter, r *http.Request) (string, error) {
	if status := strings.TrimSpace(r.URL.Query().Get("status_update")); status != "" {
		return status, nil
	}

	values, err := h.readValues(w, r)
	if err != nil {
		return "", err
	}

	for _, key := range []string{"status_update", "status"} {
		if status := strings.TrimSpace(values.Get(key)); status != "" {
			return status, nil
		}
	}
	return "", apperr.Validation("Field status_update is required")
}

// pathID returns the {id} path variable. Anything that is not a UUID cannot
// name a stored row.
func pathID(r *http.Request, notFound string) (string, error) {
	id := mux.Vars(r)["id"]
	if _, err := uuid.Parse(id); err != nil {
		return "", apperr.NotFound(notFound)
	}
	return id, nil
}

func currentUser(r *http.Request) (*models.User, error) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		return nil, apperr.Unauthenticated("Not authenticated", nil)
	}
	return user, nil
}

type listResponse map[string]interface{}

func newListResponse(key string, items interface{}, count int) listResponse {
	return listResponse{key: items, "count": count}
}

func trimmed(values url.Values, key string) string {
	return strings.TrimSpace(values.Get(key))
}
