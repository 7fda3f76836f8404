package visits

// PageMeta describes one page of a result.
type PageMeta struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// Paginate returns the 1-based page of records. Page and limit below 1 are
// treated as 1; pages past the end are empty.
func Paginate(records []Record, page, limit int) ([]Record, PageMeta) {
	page = max(page, 1)
	limit = max(limit, 1)
	total := len(records)

	meta := PageMeta{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: total / limit,
	}
	if total%limit != 0 {
		meta.Pages++
	}

	if page > meta.Pages {
		return []Record{}, meta
	}
	start := (page - 1) * limit
	end := min(start+limit, total)
	return records[start:end], meta
}
