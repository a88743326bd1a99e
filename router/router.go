// Copyright (c) 2026 bky3227.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/bky3227/skill-checkpoint-server/handlers"
	"github.com/bky3227/skill-checkpoint-server/middleware"
)

func NewRouter(db *sql.DB) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	questionHandler := handlers.NewQuestionHandler(db)
	answerHandler := handlers.NewAnswerHandler(db)

	// Liveness check
	mux.HandleFunc("GET /test", func(w http.ResponseWriter, r *http.Request) {
		middleware.JSONResponse(w, http.StatusOK, "Server API is working 🚀")
	})

	// Question CRUD and search. The literal /questions/search pattern
	// takes precedence over /questions/{id} in ServeMux matching.
	mux.HandleFunc("POST /questions", middleware.WithLogging(questionHandler.CreateQuestion))
	mux.HandleFunc("GET /questions", middleware.WithLogging(questionHandler.ListQuestions))
	mux.HandleFunc("GET /questions/search", middleware.WithLogging(questionHandler.SearchQuestions))
	mux.HandleFunc("GET /questions/{id}", middleware.WithLogging(questionHandler.GetQuestion))
	mux.HandleFunc("PUT /questions/{id}", middleware.WithLogging(questionHandler.UpdateQuestion))
	mux.HandleFunc("DELETE /questions/{id}", middleware.WithLogging(questionHandler.DeleteQuestion))
	mux.HandleFunc("POST /questions/{id}/vote", middleware.WithLogging(questionHandler.VoteQuestion))

	// Answers nested under a question
	mux.HandleFunc("POST /questions/{id}/answers", middleware.WithLogging(questionHandler.CreateAnswer))
	mux.HandleFunc("GET /questions/{id}/answers", middleware.WithLogging(questionHandler.ListAnswers))
	mux.HandleFunc("DELETE /questions/{id}/answers", middleware.WithLogging(questionHandler.DeleteAnswers))

	// Voting on an individual answer
	mux.HandleFunc("POST /answers/{id}/vote", middleware.WithLogging(answerHandler.VoteAnswer))

	return mux
}
