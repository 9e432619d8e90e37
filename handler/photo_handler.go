package handler

import (
	"io"
	"net/http"
	"portfolio-api/common"
	"portfolio-api/model"
	"portfolio-api/service"
	"strconv"
)

const maxUploadSize = 5 << 20 // 5 MB

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
}

type PhotoHandler struct {
	Service *service.PhotoService
}

func NewPhotoHandler(photoService *service.PhotoService) *PhotoHandler {
	return &PhotoHandler{Service: photoService}
}

// UploadPhoto godoc
// @Summary      Upload a photo
// @Description  Relays the image to the hosting provider and stores the gallery entry
// @Tags         photos
// @Accept       multipart/form-data
// @Produce      json
// @Param        image formData file true "Image file (jpeg or png, max 5 MB)"
// @Param        title formData string true "Photo title"
// @Success      201 {object} model.Photo
// @Failure      400 {object} common.AppError
// @Router       /upload-photo [post]
func (h *PhotoHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) *common.AppError {
	file, appErr := readImageFile(w, r, "image")
	if appErr != nil {
		return appErr
	}
	if file == nil {
		return common.NewValidationError("No file uploaded", nil)
	}
	defer file.Close()

	title := r.FormValue("title")
	if title == "" {
		return common.NewValidationError("Title is required", nil)
	}

	photo, err := h.Service.UploadPhoto(r.Context(), title, r.FormValue("description"), r.FormValue("link"), file)
	if err != nil {
		return mapServiceError(err)
	}

	writeJSON(w, http.StatusCreated, photo)
	return nil
}

// GetAllPhotos godoc
// @Summary      List all photos
// @Description  Returns the gallery, newest first
// @Tags         photos
// @Produce      json
// @Success      200 {array} model.Photo
// @Router       /photos [get]
func (h *PhotoHandler) GetAllPhotos(w http.ResponseWriter, r *http.Request) *common.AppError {
	photos, err := h.Service.GetAllPhotos(r.Context())
	if err != nil {
		return mapServiceError(err)
	}
	if photos == nil {
		photos = []*model.Photo{}
	}

	writeJSON(w, http.StatusOK, photos)
	return nil
}

// UpdatePhoto godoc
// @Summary      Update a photo
// @Description  Updates the text fields and optionally replaces the image file
// @Tags         photos
// @Accept       multipart/form-data
// @Produce      json
// @Param        id path int true "Photo ID"
// @Success      200 {object} model.Photo
// @Failure      404 {object} common.AppError
// @Router       /update-photo/{id} [put]
func (h *PhotoHandler) UpdatePhoto(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewValidationError("Invalid photo id", err)
	}

	// The replacement file is optional on update.
	file, appErr := readImageFile(w, r, "file")
	if appErr != nil {
		return appErr
	}
	var reader io.Reader
	if file != nil {
		defer file.Close()
		reader = file
	}

	req := model.UpdatePhotoRequest{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Link:        r.FormValue("link"),
	}
	if appErr := common.ValidateStruct(&req); appErr != nil {
		return appErr
	}

	photo, svcErr := h.Service.UpdatePhoto(r.Context(), id, &req, reader)
	if svcErr != nil {
		return mapServiceError(svcErr)
	}

	writeJSON(w, http.StatusOK, photo)
	return nil
}

// DeletePhoto godoc
// @Summary      Delete a photo
// @Tags         photos
// @Produce      json
// @Param        id path int true "Photo ID"
// @Success      200 {object} map[string]string
// @Failure      404 {object} common.AppError
// @Router       /delete-photo/{id} [delete]
func (h *PhotoHandler) DeletePhoto(w http.ResponseWriter, r *http.Request) *common.AppError {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return common.NewValidationError("Invalid photo id", err)
	}

	if err := h.Service.DeletePhoto(r.Context(), id); err != nil {
		return mapServiceError(err)
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Photo deleted successfully"})
	return nil
}

// DeletePhotoByTitle godoc
// @Summary      Delete a photo by title
// @Tags         photos
// @Produce      json
// @Param        title path string true "Photo title"
// @Success      200 {object} map[string]string
// @Failure      404 {object} common.AppError
// @Router       /photo/title/{title} [delete]
func (h *PhotoHandler) DeletePhotoByTitle(w http.ResponseWriter, r *http.Request) *common.AppError {
	title := r.PathValue("title")

	if err := h.Service.DeletePhotoByTitle(r.Context(), title); err != nil {
		return mapServiceError(err)
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Photo with title '" + title + "' deleted successfully"})
	return nil
}

// readImageFile pulls the named multipart file out of the request, enforcing
// the size cap and the jpeg/png whitelist. A missing file is not an error
// here; callers decide whether the file is required.
func readImageFile(w http.ResponseWriter, r *http.Request, field string) (io.ReadCloser, *common.AppError) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize+(1<<20))
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		return nil, common.NewValidationError("Invalid multipart form or file too large", err)
	}

	file, header, err := r.FormFile(field)
	if err != nil {
		if err == http.ErrMissingFile {
			return nil, nil
		}
		return nil, common.NewValidationError("Invalid file upload", err)
	}

	if header.Size > maxUploadSize {
		file.Close()
		return nil, common.NewValidationError("File exceeds the 5 MB limit", nil)
	}
	if !allowedImageTypes[header.Header.Get("Content-Type")] {
		file.Close()
		return nil, common.NewValidationError("Unsupported file type", nil)
	}

	return file, nil
}
