package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/Tarekrahman5500/generator-deploy-sub000/app/helpers"
	"github.com/Tarekrahman5500/generator-deploy-sub000/app/services"
	"github.com/unrolled/render"
)

type CatalogHandler struct {
	searchSvc *services.SearchService
	facetSvc  *services.FacetService
	render    *render.Render
}

func NewCatalogHandler(searchSvc *services.SearchService, facetSvc *services.FacetService, r *render.Render) *CatalogHandler {
	return &CatalogHandler{searchSvc: searchSvc, facetSvc: facetSvc, render: r}
}

func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req services.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]any{
			"error": "invalid request body",
		})
		return
	}

	if err := helpers.Validate.Struct(req); err != nil {
		_ = h.render.JSON(w, http.StatusBadRequest, map[string]any{
			"error": err.Error(),
		})
		return
	}

	result, err := h.searchSvc.Search(r.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrMalformedFilter) {
			_ = h.render.JSON(w, http.StatusBadRequest, map[string]any{
				"error": err.Error(),
			})
			return
		}
		log.Printf("search failed: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]any{
			"error": "search failed",
		})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, result)
}

func (h *CatalogHandler) Facets(w http.ResponseWriter, r *http.Request) {
	categoryIDs := helpers.SplitCSV(r.URL.Query().Get("categories"))

	facets, err := h.facetSvc.Facets(r.Context(), categoryIDs)
	if err != nil {
		log.Printf("facet aggregation failed: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]any{
			"error": "failed to compute facets",
		})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]any{
		"facets": facets,
	})
}
