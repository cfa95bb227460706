package http

import "github.com/CampusAssist-QA/campus-qa-backend/internal/qa/service"

type Handler struct {
	askService *service.AskService
}

func New(askService *service.AskService) *Handler {
	return &Handler{askService: askService}
}

type askReq struct {
	Question string `json:"question"`
}
