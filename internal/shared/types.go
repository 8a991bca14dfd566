package shared

// Asynq task type names. Kept here so cmd/worker and the enqueuing services
// agree without importing each other.
const (
	TypeProcessRecipeImage = "recipe:process_image"
	TypeWarmListCaches     = "content:warm_list_caches"
)

// Asynq queue names
const (
	QueueDefault = "default"
	QueueImages  = "images"
)

// Content types stored in user_content_relations
const (
	ContentTypeRecipe  = "recipe"
	ContentTypeArticle = "article"
)

// Relation kinds stored in user_content_relations
const (
	RelationFavourite = "favourite"
	RelationAuthored  = "authored"
)
