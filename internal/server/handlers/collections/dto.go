package collections

// Record is a stored entity: its own fields plus id, createdAt and updatedAt.
type Record map[string]any

type SuccessResponse struct {
	Success bool `json:"success"`
}
