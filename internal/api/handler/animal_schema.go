package handler

import "github.com/wildquiz/wildquiz-api/internal/core/domain"

type animalRequest struct {
	Name               string   `json:"name"                validate:"required,min=2,max=100"`
	Species            string   `json:"species"             validate:"required,max=150"`
	Habitat            string   `json:"habitat"             validate:"required,max=200"`
	Diet               string   `json:"diet"                validate:"required,max=200"`
	ConservationStatus string   `json:"conservation_status" validate:"required,oneof=least_concern near_threatened vulnerable endangered critically_endangered extinct_in_wild"`
	FunFacts           []string `json:"fun_facts"           validate:"omitempty,max=10,dive,max=300"`
	ImageURL           string   `json:"image_url"           validate:"omitempty,url"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listAnimalsResponse struct {
	Data       []domain.Animal    `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

func paginate(total int64, page, limit int) paginationResponse {
	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}
	return paginationResponse{Total: total, Page: page, Limit: limit, TotalPages: totalPages}
}
