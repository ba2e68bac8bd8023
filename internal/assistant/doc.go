// Package assistant implements the diary companion operations: reflective
// question generation, emotion analysis, counseling chat, interactive writing
// prompts and keyword extraction.
//
// Every operation formats a fixed Japanese prompt, sends it to a
// generation.Backend and converts the reply into a typed value. Operations
// never return errors. When the backend fails, the reply is empty, or its JSON
// cannot be decoded, the failure is logged (with credentials redacted) and a
// fixed fallback value is returned instead.
//
// An Assistant holds no per-call state and is safe for concurrent use.
package assistant
