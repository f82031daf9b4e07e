package dto

import "career-compass/internal/domain/path"

type CareerPathsResponse struct {
	Paths  []path.CareerPath `json:"paths"`
	Cached bool              `json:"cached"`
	Count  int               `json:"count"`
}

func NewCareerPathsResponse(paths []path.CareerPath, cached bool) CareerPathsResponse {
	if paths == nil {
		paths = []path.CareerPath{}
	}
	return CareerPathsResponse{Paths: paths, Cached: cached, Count: len(paths)}
}
