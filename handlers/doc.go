// Copyright (c) 2026 bky3227.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Q&A board API.

# Handler Types

Each handler is a struct holding the database connection:

  - QuestionHandler: Question CRUD, search, voting, and the nested
    answer endpoints
  - AnswerHandler: Voting on an individual answer

Handlers are created via constructor functions that accept *sql.DB:

	questionHandler := handlers.NewQuestionHandler(db)

# Question Endpoints

	POST   /questions               → CreateQuestion
	GET    /questions               → ListQuestions (ordered by id)
	GET    /questions/search        → SearchQuestions (?title= and/or ?category=)
	GET    /questions/{id}          → GetQuestion
	PUT    /questions/{id}          → UpdateQuestion (full overwrite)
	DELETE /questions/{id}          → DeleteQuestion (answers untouched)
	POST   /questions/{id}/vote     → VoteQuestion

# Answer Endpoints

Answers exist only under a question; each nested endpoint checks the
parent first and returns 404 when it is missing:

	POST   /questions/{id}/answers  → CreateAnswer
	GET    /questions/{id}/answers  → ListAnswers
	DELETE /questions/{id}/answers  → DeleteAnswers (bulk)

	POST   /answers/{id}/vote       → VoteAnswer

# Error Mapping

Every handler converts failures at its own boundary: malformed or
missing input → 400, absent entity → 404, any database failure → 500
with a generic message. The underlying error is logged via slog and
never sent to the client. No retries.

# Voting

Vote requests accept only {"vote": 1} or {"vote": -1}. The delta is
applied as one UPDATE with COALESCE(vote_count, 0) + delta, so
concurrent votes on the same row never lose updates.
*/
package handlers
