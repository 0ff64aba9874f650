package cfbd

import "time"

const (
	providerName       = "cfbd"
	defaultBaseURL     = "https://api.collegefootballdata.com"
	defaultHTTPTimeout = 10 * time.Second
	defaultSeasonType  = "regular"
	fbsClassification  = "fbs"
	maxErrorBody       = 512
)
