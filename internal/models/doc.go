// Package models lists the OpenAI chat models that can serve as a
// summary source for the current API key.
package models
