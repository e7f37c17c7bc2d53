package xlautomaten

// apiCategory is the category wire shape. Only the name is guaranteed
// on minimal responses.
type apiCategory struct {
	Name        *string `json:"name" validate:"required"`
	Description *string `json:"description"`
	MainImg     *string `json:"main_img"`
	PreviewImg  *string `json:"preview_img"`
	Priority    *int    `json:"priority"`
}

type apiCategoryResponse struct {
	apiCategory
	apiDatabaseObject
}

// apiCategoryWithArticles is the delete-category response, which
// carries the articles that were assigned to the category.
type apiCategoryWithArticles struct {
	apiCategoryResponse
	Articles []apiArticleResponse `json:"articles"`
}

func (w apiCategoryResponse) toDomain() (Category, error) {
	base, err := w.apiDatabaseObject.toDomain()
	if err != nil {
		return Category{}, err
	}
	return Category{
		DatabaseObject: base,
		Name:           deref(w.Name),
		Description:    optionalStr(w.Description),
		Image:          optionalStr(w.MainImg),
		PreviewImage:   optionalStr(w.PreviewImg),
		Priority:       valueOr(w.Priority, 0),
	}, nil
}

func (w apiCategoryWithArticles) toDomain() (CategoryWithArticles, error) {
	category, err := w.apiCategoryResponse.toDomain()
	if err != nil {
		return CategoryWithArticles{}, err
	}
	articles := make([]Article, len(w.Articles))
	for i, dto := range w.Articles {
		article, err := dto.toDomain()
		if err != nil {
			return CategoryWithArticles{}, err
		}
		articles[i] = article
	}
	return CategoryWithArticles{Category: category, Articles: articles}, nil
}

// categoryBody serializes a category write. Unlike most entities the
// category request always carries every field; absent optionals are
// sent as explicit nulls (or zero for the priority).
func categoryBody(cat NewCategory) map[string]any {
	return map[string]any{
		"name":        cat.Name,
		"description": strOrNull(deref(cat.Description)),
		"main_img":    strOrNull(deref(cat.Image)),
		"preview_img": strOrNull(deref(cat.PreviewImage)),
		"priority":    valueOr(cat.Priority, 0),
	}
}

// mergeCategory overlays a patch on the current server state, producing
// the full write input the category endpoint expects.
func mergeCategory(current *Category, patch CategoryPatch) NewCategory {
	merged := NewCategory{
		Name:         current.Name,
		Description:  clonePtr(current.Description),
		Image:        clonePtr(current.Image),
		PreviewImage: clonePtr(current.PreviewImage),
		Priority:     ptr(current.Priority),
	}
	if patch.Name != nil {
		merged.Name = *patch.Name
	}
	if patch.Description != nil {
		merged.Description = patch.Description
	}
	if patch.Image != nil {
		merged.Image = patch.Image
	}
	if patch.PreviewImage != nil {
		merged.PreviewImage = patch.PreviewImage
	}
	if patch.Priority != nil {
		merged.Priority = patch.Priority
	}
	return merged
}
