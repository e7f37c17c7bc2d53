package xlautomaten

import (
	"context"
	"strconv"
)

// Category groups articles for presentation in the machine frontend.
type Category struct {
	DatabaseObject
	Name         string
	Description  *string
	Image        *string
	PreviewImage *string
	Priority     int
}

// CategoryWithArticles is a category together with the articles
// assigned to it, as returned by DeleteCategory.
type CategoryWithArticles struct {
	Category
	Articles []Article
}

// NewCategory is the input for CreateCategory. Only the name is
// required; absent optional fields are written as empty.
type NewCategory struct {
	Name         string
	Description  *string
	Image        *string
	PreviewImage *string
	Priority     *int
}

// CategoryPatch describes changes for UpdateCategory. nil fields are
// left unchanged.
type CategoryPatch struct {
	Name         *string
	Description  *string
	Image        *string
	PreviewImage *string
	Priority     *int
}

// CreateCategory creates a new category and returns it.
func (c *Client) CreateCategory(ctx context.Context, category NewCategory) (*Category, error) {
	var dto apiCategoryResponse
	if err := c.post(ctx, "category", categoryBody(category), &dto); err != nil {
		return nil, err
	}
	result, err := dto.toDomain()
	if err != nil {
		return nil, &SchemaError{Endpoint: "category", Err: err}
	}
	return &result, nil
}

// GetCategory returns a single category by id.
func (c *Client) GetCategory(ctx context.Context, id int) (*Category, error) {
	endpoint := "category/" + strconv.Itoa(id)
	var dto apiCategoryResponse
	if err := c.get(ctx, endpoint, &dto); err != nil {
		return nil, err
	}
	result, err := dto.toDomain()
	if err != nil {
		return nil, &SchemaError{Endpoint: endpoint, Err: err}
	}
	return &result, nil
}

// GetCategories returns all categories.
func (c *Client) GetCategories(ctx context.Context) ([]Category, error) {
	var dtos []apiCategoryResponse
	if err := c.get(ctx, "categories", &dtos); err != nil {
		return nil, err
	}
	return toDomainList("categories", dtos, apiCategoryResponse.toDomain)
}

// UpdateCategory applies the patch to an existing category. The
// category endpoint expects a full write, so a patch without a name
// fetches the current category first and merges the patch on top.
func (c *Client) UpdateCategory(ctx context.Context, id int, patch CategoryPatch) (*Category, error) {
	var update NewCategory
	if patch.Name != nil && *patch.Name != "" {
		update = NewCategory{
			Name:         *patch.Name,
			Description:  patch.Description,
			Image:        patch.Image,
			PreviewImage: patch.PreviewImage,
			Priority:     patch.Priority,
		}
	} else {
		current, err := c.GetCategory(ctx, id)
		if err != nil {
			return nil, err
		}
		update = mergeCategory(current, patch)
	}

	endpoint := "category/" + strconv.Itoa(id)
	var dto apiCategoryResponse
	if err := c.put(ctx, endpoint, categoryBody(update), &dto); err != nil {
		return nil, err
	}
	result, err := dto.toDomain()
	if err != nil {
		return nil, &SchemaError{Endpoint: endpoint, Err: err}
	}
	return &result, nil
}

// DeleteCategory deletes a category and returns its last state together
// with the articles that were assigned to it. The articles themselves
// survive the deletion.
func (c *Client) DeleteCategory(ctx context.Context, id int) (*CategoryWithArticles, error) {
	endpoint := "category/" + strconv.Itoa(id)
	var dto apiCategoryWithArticles
	if err := c.del(ctx, endpoint, &dto); err != nil {
		return nil, err
	}
	result, err := dto.toDomain()
	if err != nil {
		return nil, &SchemaError{Endpoint: endpoint, Err: err}
	}
	return &result, nil
}
