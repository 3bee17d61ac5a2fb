// Package dto holds the request and response bodies of the v1 API.
package dto

// SolutionInfo describes one registered solution.
type SolutionInfo struct {
	Day  int    `json:"day"`
	Name string `json:"name"`
}

// SolutionListResponse is the body of GET /api/v1/solutions.
type SolutionListResponse struct {
	Data []SolutionInfo `json:"data"`
}

// SolveResponse is the body of POST /api/v1/solutions/{day}/{part}.
type SolveResponse struct {
	Day       int    `json:"day"`
	Part      string `json:"part"`
	Name      string `json:"name"`
	Answer    string `json:"answer"`
	Numeric   bool   `json:"numeric"`
	ElapsedNS int64  `json:"elapsed_ns"`
	Elapsed   string `json:"elapsed"`
}
