package handler

import (
	"net/http"
	"portfolio-api/common"
	"portfolio-api/model"
	"portfolio-api/service"
)

type ContactHandler struct {
	Service *service.ContactService
}

func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{Service: contactService}
}

// SendMessage godoc
// @Summary      Send a contact message
// @Description  Persists the message and relays it by email to the site owner
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        request body model.ContactRequest true "Contact payload"
// @Success      201 {object} model.ContactResponse
// @Failure      400 {object} common.AppError
// @Failure      500 {object} common.AppError
// @Router       /contact [post]
func (h *ContactHandler) SendMessage(w http.ResponseWriter, r *http.Request) *common.AppError {
	var req model.ContactRequest
	if appErr := common.ValidateAndDecode(r, &req); appErr != nil {
		return appErr
	}

	contact, err := h.Service.SendMessage(&req)
	if err != nil {
		return mapServiceError(err)
	}

	writeJSON(w, http.StatusCreated, model.ContactResponse{
		Message: "Message sent successfully",
		Contact: contact,
	})
	return nil
}
