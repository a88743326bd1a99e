// Copyright (c) 2026 bky3227.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateQuestionRequest: title, description, category
  - CreateAnswerRequest: content
  - VoteRequest: vote (must be 1 or -1)

# Response Types

Every endpoint responds with one of two shapes:

  - DataResponse: {"data": ...} for reads (single object or array)
  - MessageResponse: {"message": "..."} for write acknowledgments and
    all errors

The read/write asymmetry is part of the API contract and must be kept.

# Domain Types

Internal data structures:

  - Question: id, title, description, category
  - Answer: id, content

Both tables also carry a vote_count column that vote endpoints mutate;
it is not echoed back in read responses.

# Constants

Vote deltas:

	VoteUp   = 1
	VoteDown = -1
*/
package models
