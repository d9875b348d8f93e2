package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/majjane/majjaneflow/models"
	"github.com/majjane/majjaneflow/store"
)

// ListClients lists all clients
// @Summary      List clients
// @Description  Get a list of all agency clients.
// @Tags         clients
// @Produce      json
// @Success      200  {object}  Response{data=[]models.Client}
// @Router       /clients [get]
// @Security     BasicAuth
func ListClients(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Store.ListClients())
}

// GetClient retrieves a single client by ID
// @Summary      Get client
// @Description  Get details of a specific client.
// @Tags         clients
// @Produce      json
// @Param        id   path      string  true  "Client ID"
// @Success      200  {object}  Response{data=models.Client}
// @Failure      404  {object}  Response{error=string}
// @Router       /clients/{id} [get]
// @Security     BasicAuth
func GetClient(w http.ResponseWriter, r *http.Request) {
	c, err := Store.GetClient(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "client not found")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// CreateClient creates a new client
// @Summary      Create client
// @Description  Create a new agency client.
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        client  body      models.ClientInput  true  "Client contents"
// @Success      201     {object}  Response{data=models.Client}
// @Failure      400     {object}  Response{error=string}
// @Router       /clients [post]
// @Security     BasicAuth
func CreateClient(w http.ResponseWriter, r *http.Request) {
	var input models.ClientInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	writeJSON(w, http.StatusCreated, Store.CreateClient(input))
}

// UpdateClient updates an existing client
// @Summary      Update client
// @Description  Update details of an existing client.
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id      path      string              true  "Client ID"
// @Param        client  body      models.ClientInput  true  "Updated client contents"
// @Success      200     {object}  Response{data=models.Client}
// @Failure      400     {object}  Response{error=string}
// @Failure      404     {object}  Response{error=string}
// @Router       /clients/{id} [put]
// @Security     BasicAuth
func UpdateClient(w http.ResponseWriter, r *http.Request) {
	var input models.ClientInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	c, err := Store.UpdateClient(chi.URLParam(r, "id"), input)
	if err != nil {
		writeError(w, http.StatusNotFound, "client not found")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// DeleteClient deletes a client
// @Summary      Delete client
// @Description  Remove a client. Existing invoices keep their reference and are skipped by notification passes.
// @Tags         clients
// @Produce      json
// @Param        id   path      string  true  "Client ID"
// @Success      200  {object}  Response{data=map[string]string}
// @Failure      404  {object}  Response{error=string}
// @Router       /clients/{id} [delete]
// @Security     BasicAuth
func DeleteClient(w http.ResponseWriter, r *http.Request) {
	if err := Store.DeleteClient(chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "client not found")
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "deleted"})
}
