package domain

// JobLocation describes where a job listing is based.
type JobLocation struct {
	Name       string `json:"name"`
	Country    string `json:"country,omitempty"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
}

// JobListing is a single job search result.
type JobListing struct {
	ID               string      `json:"id"`
	Title            string      `json:"title"`
	CompanyName      string      `json:"companyName"`
	Location         JobLocation `json:"location"`
	ListedAt         int64       `json:"listedAt"`
	ApplyURL         string      `json:"applyUrl"`
	Description      string      `json:"description"`
	EmploymentStatus string      `json:"employmentStatus,omitempty"`
	ExperienceLevel  string      `json:"experienceLevel,omitempty"`
	Industries       []string    `json:"industries,omitempty"`
}

// JobPaging carries result-set paging metadata.
type JobPaging struct {
	Count int `json:"count"`
	Start int `json:"start"`
	Total int `json:"total"`
}

// JobSearchResult is a page of job listings plus metadata.
type JobSearchResult struct {
	Listings []JobListing `json:"elements"`
	Paging   JobPaging    `json:"paging"`

	// SearchID identifies the search on the provider side.
	SearchID string `json:"searchId,omitempty"`
}

// DefaultJobCount is the listing count used when a query does not set
// one.
const DefaultJobCount = 25

// JobQuery describes a job search request.
type JobQuery struct {
	// Keywords is the free-text search term.
	Keywords string

	// Location restricts results geographically; empty means anywhere.
	Location string

	// Count caps the number of listings returned.
	Count int
}
