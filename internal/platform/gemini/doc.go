// Package gemini implements generation.Backend on Google's Gemini API using
// the google.golang.org/genai client.
//
// This package is an infrastructure adapter: it translates the application's
// prompts, fixed sampling/safety settings and conversation turns into genai
// requests, and maps genai responses back to plain text or to the sentinel
// errors of the generation package.
//
// Key components:
//
// 1. Backend:
//   - Implements generation.Backend
//   - Holds a text-generation handle bound to the fixed GenerateContentConfig
//   - Holds a vision-capable handle that no operation currently uses
//
// 2. Conversion:
//   - generation.Settings to genai.GenerateContentConfig and safety settings
//   - domain.ConversationTurn history to genai chat history
//
// 3. Error handling:
//   - Blocked prompts and SAFETY finish reasons become generation.ErrContentBlocked
//   - Missing candidates or text become generation.ErrEmptyResponse
//   - Nothing is retried
package gemini
