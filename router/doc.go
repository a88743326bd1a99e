// Copyright (c) 2026 bky3227.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Q&A board API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db)

# Endpoints

Liveness:

	GET /test

Questions:

	POST   /questions               - Create question
	GET    /questions               - List all questions
	GET    /questions/search        - Search by title and/or category
	GET    /questions/{id}          - Get single question
	PUT    /questions/{id}          - Update question
	DELETE /questions/{id}          - Delete question
	POST   /questions/{id}/vote     - Vote on question

Answers (nested under a question):

	POST   /questions/{id}/answers  - Create answer
	GET    /questions/{id}/answers  - List answers
	DELETE /questions/{id}/answers  - Delete all answers

	POST   /answers/{id}/vote       - Vote on answer

# Handler Initialization

The router creates handler instances with dependency injection:

	questionHandler := handlers.NewQuestionHandler(db)
	answerHandler := handlers.NewAnswerHandler(db)

Both handlers receive the shared database connection opened in main.
*/
package router
