package oneapi

// Movie as served by The One API /movie endpoints.
type Movie struct {
	ID                         string  `json:"_id"`
	Name                       string  `json:"name"`
	RuntimeInMinutes           float64 `json:"runtimeInMinutes"`
	BudgetInMillions           float64 `json:"budgetInMillions"`
	BoxOfficeRevenueInMillions float64 `json:"boxOfficeRevenueInMillions"`
	AcademyAwardNominations    int     `json:"academyAwardNominations"`
	AcademyAwardWins           int     `json:"academyAwardWins"`
	RottenTomatoesScore        float64 `json:"rottenTomatoesScore"`
}

// Character as served by The One API /character endpoints.
type Character struct {
	ID      string `json:"_id"`
	Height  string `json:"height"`
	Race    string `json:"race"`
	Gender  string `json:"gender"`
	Birth   string `json:"birth"`
	Spouse  string `json:"spouse"`
	Death   string `json:"death"`
	Realm   string `json:"realm"`
	Hair    string `json:"hair"`
	Name    string `json:"name"`
	WikiURL string `json:"wikiUrl,omitempty"`
}

// Response is The One API list wrapper.
type Response[T any] struct {
	Docs   []T   `json:"docs"`
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset,omitempty"`
	Page   int   `json:"page,omitempty"`
	Pages  int   `json:"pages,omitempty"`
}
