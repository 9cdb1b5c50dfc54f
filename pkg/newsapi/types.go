package newsapi

// Article is a single news article as returned by the API.
type Article struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
	Source      struct {
		Name string `json:"name"`
	} `json:"source"`
}

// Result is the uniform lookup outcome.
type Result struct {
	Success  bool
	Message  string
	Articles []Article
}

type apiResponse struct {
	Status   string    `json:"status"`
	Articles []Article `json:"articles"`
}
