// Copyright (c) 2026 bky3227.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/bky3227/skill-checkpoint-server/middleware"
	"github.com/bky3227/skill-checkpoint-server/models"
)

type AnswerHandler struct {
	db *sql.DB
}

func NewAnswerHandler(db *sql.DB) *AnswerHandler {
	return &AnswerHandler{db: db}
}

// VoteAnswer handles POST /answers/{id}/vote. Same contract as the
// question vote, scoped to the answers table.
func (h *AnswerHandler) VoteAnswer(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Answer not found.")
		return
	}

	var req models.VoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Vote != models.VoteUp && req.Vote != models.VoteDown {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid vote value.")
		return
	}

	res, err := h.db.Exec(`
		UPDATE answers
		SET vote_count = COALESCE(vote_count, 0) + $1
		WHERE id = $2
	`, req.Vote, id)

	if err != nil {
		slog.Error("failed to vote answer", "error", err, "id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Unable to vote answer.")
		return
	}

	affected, err := res.RowsAffected()
	if err != nil {
		slog.Error("failed to read affected rows", "error", err, "id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Unable to vote answer.")
		return
	}
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Answer not found.")
		return
	}

	slog.Info("answer vote recorded", "id", id, "vote", req.Vote)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Vote on the answer has been recorded successfully.",
	})
}
