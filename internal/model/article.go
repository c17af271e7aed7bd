package model

import "time"

// ArticleMetadata is appended to proxied article responses under _metadata.
type ArticleMetadata struct {
	FetchedAt     time.Time `json:"fetchedAt"`
	ExecutionTime string    `json:"executionTime"`
	Country       string    `json:"country"`
}

// ArticleHealth reports article-proxy configuration presence without leaking
// secrets; the upstream URL path is masked.
type ArticleHealth struct {
	Configured  bool   `json:"configured"`
	UpstreamURL string `json:"upstreamUrl,omitempty"`
	HasAuth     bool   `json:"hasAuth"`
	CompanyCode bool   `json:"companyCode"`
}
