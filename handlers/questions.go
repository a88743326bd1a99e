// Copyright (c) 2026 bky3227.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bky3227/skill-checkpoint-server/middleware"
	"github.com/bky3227/skill-checkpoint-server/models"
)

type QuestionHandler struct {
	db *sql.DB
}

func NewQuestionHandler(db *sql.DB) *QuestionHandler {
	return &QuestionHandler{db: db}
}

// parseID converts the {id} path value to an integer. A non-numeric or
// non-positive id can never identify a row, so callers report not found.
func parseID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// questionExists is the parent-question pre-check shared by the nested
// answer endpoints. It is not wrapped in a transaction with the write
// that follows; a concurrent delete of the parent in between is an
// accepted race.
func (h *QuestionHandler) questionExists(id int) (bool, error) {
	var found int
	err := h.db.QueryRow("SELECT id FROM questions WHERE id = $1", id).Scan(&found)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// CreateQuestion handles POST /questions
func (h *QuestionHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if req.Title == "" || req.Description == "" || req.Category == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid request data.")
		return
	}

	_, err := h.db.Exec(`
		INSERT INTO questions (title, description, category)
		VALUES ($1, $2, $3)
	`, req.Title, req.Description, req.Category)

	if err != nil {
		slog.Error("failed to insert question", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Unable to create question.")
		return
	}

	slog.Info("question created", "title", req.Title, "category", req.Category)

	middleware.JSONResponse(w, http.StatusCreated, models.MessageResponse{
		Message: "Question created successfully.",
	})
}

// ListQuestions handles GET /questions
func (h *QuestionHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT id, title, description, category
		FROM questions
		ORDER BY id ASC
	`)
	if err != nil {
		slog.Error("failed to query questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Unable to fetch questions.")
		return
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.Title, &q.Description, &q.Category); err != nil {
			slog.Error("failed to scan question", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Unable to fetch questions.")
			return
		}
		questions = append(questions, q)
	}

	middleware.JSONResponse(w, http.StatusOK, models.DataResponse{Data: questions})
}

// SearchQuestions handles GET /questions/search
func (h *QuestionHandler) SearchQuestions(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	category := r.URL.Query().Get("category")

	if title == "" && category == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid search parameters.")
		return
	}

	query := `
		SELECT id, title, description, category
		FROM questions
		WHERE 1=1`
	args := []interface{}{}

	// Title matches as a case-insensitive substring. LOWER/LIKE is the
	// ILIKE spelling both engines understand.
	if title != "" {
		args = append(args, "%"+title+"%")
		query += fmt.Sprintf(" AND LOWER(title) LIKE LOWER($%d)", len(args))
	}

	// Category matches exactly.
	if category != "" {
		args = append(args, category)
		query += fmt.Sprintf(" AND category = $%d", len(args))
	}

	rows, err := h.db.Query(query, args...)
	if err != nil {
		slog.Error("failed to search questions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Unable to fetch a question.")
		return
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		var q models.Question
		if err := rows.Scan(&q.ID, &q.Title, &q.Description, &q.Category); err != nil {
			slog.Error("failed to scan question", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Unable to fetch a question.")
			return
		}
		questions = append(questions, q)
	}

	middleware.JSONResponse(w, http.StatusOK, models.DataResponse{Data: questions})
}

// GetQuestion handles GET /questions/{id}
func (h *QuestionHandler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found.")
		return
	}

	var q models.Question
	err := h.db.QueryRow(`
		SELECT id, title, description, category
		FROM questions
		WHERE id = $1
	`, id).Scan(&q.ID, &q.Title, &q.Description, &q.Category)

	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found.")
		return
	}
	if err != nil {
		slog.Error("failed to query question", "error", err, "id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Unable to fetch questions.")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.DataResponse{Data: q})
}

// UpdateQuestion handles PUT /questions/{id}. All three columns are
// overwritten unconditionally; there is no partial update.
func (h *QuestionHandler) UpdateQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found.")
		return
	}

	var req models.CreateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Title == "" || req.Description == "" || req.Category == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid request data.")
		return
	}

	res, err := h.db.Exec(`
		UPDATE questions
		SET title = $1, description = $2, category = $3
		WHERE id = $4
	`, req.Title, req.Description, req.Category, id)

	if err != nil {
		slog.Error("failed to update question", "error", err, "id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Unable to update question.")
		return
	}

	affected, err := res.RowsAffected()
	if err != nil {
		slog.Error("failed to read affected rows", "error", err, "id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Unable to update question.")
		return
	}
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found.")
		return
	}

	slog.Info("question updated", "id", id)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Question updated successfully.",
	})
}

// DeleteQuestion handles DELETE /questions/{id}. Answers under the
// question are left in place; only DELETE /questions/{id}/answers
// removes them.
func (h *QuestionHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found.")
		return
	}

	res, err := h.db.Exec("DELETE FROM questions WHERE id = $1", id)
	if err != nil {
		slog.Error("failed to delete question", "error", err, "id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Unable to delete question.")
		return
	}

	affected, err := res.RowsAffected()
	if err != nil {
		slog.Error("failed to read affected rows", "error", err, "id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Unable to delete question.")
		return
	}
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found.")
		return
	}

	slog.Info("question deleted", "id", id)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Question post has been deleted successfully.",
	})
}

// VoteQuestion handles POST /questions/{id}/vote
func (h *QuestionHandler) VoteQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found.")
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

	// Single atomic expression so concurrent votes serialize in the
	// database instead of racing a read-modify-write.
	res, err := h.db.Exec(`
		UPDATE questions
		SET vote_count = COALESCE(vote_count, 0) + $1
		WHERE id = $2
	`, req.Vote, id)

	if err != nil {
		slog.Error("failed to vote question", "error", err, "id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Unable to vote question.")
		return
	}

	affected, err := res.RowsAffected()
	if err != nil {
		slog.Error("failed to read affected rows", "error", err, "id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Unable to vote question.")
		return
	}
	if affected == 0 {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found.")
		return
	}

	slog.Info("question vote recorded", "id", id, "vote", req.Vote)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Vote on the question has been recorded successfully.",
	})
}

// CreateAnswer handles POST /questions/{id}/answers
func (h *QuestionHandler) CreateAnswer(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found.")
		return
	}

	var req models.CreateAnswerRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.Content == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid request data.")
		return
	}

	exists, err := h.questionExists(id)
	if err != nil {
		slog.Error("failed to query question", "error", err, "id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Unable to create answers.")
		return
	}
	if !exists {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found.")
		return
	}

	_, err = h.db.Exec(`
		INSERT INTO answers (question_id, content)
		VALUES ($1, $2)
	`, id, req.Content)

	if err != nil {
		slog.Error("failed to insert answer", "error", err, "question_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Unable to create answers.")
		return
	}

	slog.Info("answer created", "question_id", id)

	middleware.JSONResponse(w, http.StatusCreated, models.MessageResponse{
		Message: "Answer created successfully.",
	})
}

// ListAnswers handles GET /questions/{id}/answers
func (h *QuestionHandler) ListAnswers(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found.")
		return
	}

	exists, err := h.questionExists(id)
	if err != nil {
		slog.Error("failed to query question", "error", err, "id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Unable to fetch answers.")
		return
	}
	if !exists {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found.")
		return
	}

	rows, err := h.db.Query(`
		SELECT id, content
		FROM answers
		WHERE question_id = $1
	`, id)

	if err != nil {
		slog.Error("failed to query answers", "error", err, "question_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Unable to fetch answers.")
		return
	}
	defer rows.Close()

	answers := []models.Answer{}
	for rows.Next() {
		var a models.Answer
		if err := rows.Scan(&a.ID, &a.Content); err != nil {
			slog.Error("failed to scan answer", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Unable to fetch answers.")
			return
		}
		answers = append(answers, a)
	}

	middleware.JSONResponse(w, http.StatusOK, models.DataResponse{Data: answers})
}

// DeleteAnswers handles DELETE /questions/{id}/answers. Succeeds with
// the generic message even when the question had no answers.
func (h *QuestionHandler) DeleteAnswers(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found.")
		return
	}

	exists, err := h.questionExists(id)
	if err != nil {
		slog.Error("failed to query question", "error", err, "id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Unable to delete answers.")
		return
	}
	if !exists {
		middleware.ErrorResponse(w, http.StatusNotFound, "Question not found.")
		return
	}

	_, err = h.db.Exec("DELETE FROM answers WHERE question_id = $1", id)
	if err != nil {
		slog.Error("failed to delete answers", "error", err, "question_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Unable to delete answers.")
		return
	}

	slog.Info("answers deleted", "question_id", id)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "All answers for the question have been deleted successfully.",
	})
}
