// Package summary provides keyword summary sources: fixed offline templates,
// OpenAI and Gemini chat models, the Wikipedia page summary API, and readable
// text extracted from an arbitrary web page.
package summary
