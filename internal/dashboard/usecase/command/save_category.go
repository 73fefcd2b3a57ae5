package command

import (
	"context"
	"fmt"

	"github.com/peakstock/stockdeck/internal/catalog/domain"
)

// SaveCategoryCommand backs the category form for create and rename.
type SaveCategoryCommand struct {
	ID   uint
	Name string
}

// SaveCategoryHandler handles category create and update.
type SaveCategoryHandler struct {
	categories domain.CategoryRepository
}

// NewSaveCategoryHandler creates a new save-category handler.
func NewSaveCategoryHandler(categories domain.CategoryRepository) *SaveCategoryHandler {
	return &SaveCategoryHandler{categories: categories}
}

// Handle executes the save-category command.
func (h *SaveCategoryHandler) Handle(ctx context.Context, cmd SaveCategoryCommand) (*domain.Category, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("category name is required")
	}

	category := &domain.Category{ID: cmd.ID, Name: cmd.Name}

	if cmd.ID == 0 {
		if err := h.categories.Create(ctx, category); err != nil {
			return nil, fmt.Errorf("failed to create category: %w", err)
		}
		return category, nil
	}

	if err := h.categories.Update(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to update category %d: %w", cmd.ID, err)
	}
	return category, nil
}

// DeleteCategoryCommand removes a category.
type DeleteCategoryCommand struct {
	ID uint
}

// DeleteCategoryHandler handles the delete-category command.
type DeleteCategoryHandler struct {
	categories domain.CategoryRepository
}

// NewDeleteCategoryHandler creates a new delete-category handler.
func NewDeleteCategoryHandler(categories domain.CategoryRepository) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{categories: categories}
}

// Handle executes the delete-category command.
func (h *DeleteCategoryHandler) Handle(ctx context.Context, cmd DeleteCategoryCommand) error {
	if cmd.ID == 0 {
		return fmt.Errorf("category id is required")
	}
	if err := h.categories.Delete(ctx, cmd.ID); err != nil {
		return fmt.Errorf("failed to delete category %d: %w", cmd.ID, err)
	}
	return nil
}
