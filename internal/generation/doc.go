// Package generation defines the boundary between the diary assistant and an
// external LLM service (Gemini by default). It owns the Backend interface,
// the fixed sampling and safety settings applied to every call, the sentinel
// errors backends report, and the tolerant JSON extraction used to read
// structured answers out of conversational model output.
package generation
