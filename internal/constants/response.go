package constants

// Standard Response Field Keys
const (
	// Pagination fields
	ResponseFieldItems      = "items"
	ResponseFieldTotal      = "total"
	ResponseFieldPage       = "page"
	ResponseFieldPerPage    = "per_page"
	ResponseFieldTotalPages = "total_pages"

	// Common response fields
	ResponseFieldMessage = "message"
	ResponseFieldDetails = "details"
)

// BuildListResponse builds the standard paginated list envelope.
func BuildListResponse(items any, total int64, page, perPage, totalPages int) map[string]any {
	return map[string]any{
		ResponseFieldItems:      items,
		ResponseFieldTotal:      total,
		ResponseFieldPage:       page,
		ResponseFieldPerPage:    perPage,
		ResponseFieldTotalPages: totalPages,
	}
}

func BuildErrorResponse(message string, details any) map[string]any {
	response := map[string]any{
		ResponseFieldMessage: message,
	}

	if details != nil {
		response[ResponseFieldDetails] = details
	}

	return response
}

func BuildSuccessResponse(message string) map[string]any {
	return map[string]any{
		ResponseFieldMessage: message,
	}
}
