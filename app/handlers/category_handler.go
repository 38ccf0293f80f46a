package handlers

import (
	"log"
	"net/http"

	"github.com/Tarekrahman5500/generator-deploy-sub000/app/repositories"
	"github.com/unrolled/render"
)

type CategoryHandler struct {
	repo   repositories.CategoryRepositoryImpl
	render *render.Render
}

func NewCategoryHandler(repo repositories.CategoryRepositoryImpl, r *render.Render) *CategoryHandler {
	return &CategoryHandler{repo: repo, render: r}
}

// Categories lists all categories in serial-number order, sub-categories
// included. The first entry is the default category used when a search
// names none.
func (h *CategoryHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.repo.GetAll(r.Context())
	if err != nil {
		log.Printf("failed to list categories: %v", err)
		_ = h.render.JSON(w, http.StatusInternalServerError, map[string]any{
			"error": "failed to list categories",
		})
		return
	}

	_ = h.render.JSON(w, http.StatusOK, map[string]any{
		"categories": categories,
	})
}
