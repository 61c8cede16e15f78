package dto

import "learnity/models"

// CategoryModel is the transport shape for a course category
type CategoryModel struct {
	CategoryID  uint   `json:"category_id"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

func CategoryFromEntity(c models.CourseCategory) CategoryModel {
	return CategoryModel{
		CategoryID:  c.ID,
		Name:        c.Name,
		Description: c.Description,
	}
}

func CategoriesFromEntities(cats []models.CourseCategory) []CategoryModel {
	out := make([]CategoryModel, 0, len(cats))
	for _, c := range cats {
		out = append(out, CategoryFromEntity(c))
	}
	return out
}

func (m CategoryModel) ToEntity() models.CourseCategory {
	c := models.CourseCategory{
		Name:        m.Name,
		Description: m.Description,
	}
	c.ID = m.CategoryID
	return c
}
