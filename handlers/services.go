package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/majjane/majjaneflow/models"
)

// ListServices lists catalog services
// @Summary      List services
// @Description  Get catalog services, optionally filtered by client.
// @Tags         services
// @Produce      json
// @Param        client_id  query     string  false  "Filter by client"
// @Success      200        {object}  Response{data=[]models.Service}
// @Router       /services [get]
// @Security     BasicAuth
func ListServices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Store.ListServices(r.URL.Query().Get("client_id")))
}

// GetService retrieves a single service by ID
// @Summary      Get service
// @Description  Get details of a specific catalog service.
// @Tags         services
// @Produce      json
// @Param        id   path      string  true  "Service ID"
// @Success      200  {object}  Response{data=models.Service}
// @Failure      404  {object}  Response{error=string}
// @Router       /services/{id} [get]
// @Security     BasicAuth
func GetService(w http.ResponseWriter, r *http.Request) {
	svc, err := Store.GetService(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "service not found")
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

// CreateService creates a new catalog service
// @Summary      Create service
// @Description  Create a new catalog service for a client.
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        service  body      models.ServiceInput  true  "Service contents"
// @Success      201      {object}  Response{data=models.Service}
// @Failure      400      {object}  Response{error=string}
// @Router       /services [post]
// @Security     BasicAuth
func CreateService(w http.ResponseWriter, r *http.Request) {
	var input models.ServiceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	writeJSON(w, http.StatusCreated, Store.CreateService(input))
}

// UpdateService updates an existing catalog service
// @Summary      Update service
// @Description  Update details of an existing catalog service.
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        id       path      string               true  "Service ID"
// @Param        service  body      models.ServiceInput  true  "Updated service contents"
// @Success      200      {object}  Response{data=models.Service}
// @Failure      400      {object}  Response{error=string}
// @Failure      404      {object}  Response{error=string}
// @Router       /services/{id} [put]
// @Security     BasicAuth
func UpdateService(w http.ResponseWriter, r *http.Request) {
	var input models.ServiceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	svc, err := Store.UpdateService(chi.URLParam(r, "id"), input)
	if err != nil {
		writeError(w, http.StatusNotFound, "service not found")
		return
	}
	writeJSON(w, http.StatusOK, svc)
}

// DeleteService deletes a catalog service
// @Summary      Delete service
// @Description  Remove a catalog service. Line items keep their own copy of description and price.
// @Tags         services
// @Produce      json
// @Param        id   path      string  true  "Service ID"
// @Success      200  {object}  Response{data=map[string]string}
// @Failure      404  {object}  Response{error=string}
// @Router       /services/{id} [delete]
// @Security     BasicAuth
func DeleteService(w http.ResponseWriter, r *http.Request) {
	if err := Store.DeleteService(chi.URLParam(r, "id")); err != nil {
		writeError(w, http.StatusNotFound, "service not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}
