package projection

// SearchResult is a search hit list with its size.
type SearchResult[T any] struct {
	Count int `json:"count"`
	Data  []T `json:"data"`
}

func NewSearchResult[T any](data []T) SearchResult[T] {
	if data == nil {
		data = []T{}
	}
	return SearchResult[T]{Count: len(data), Data: data}
}
