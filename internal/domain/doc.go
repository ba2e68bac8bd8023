// Package domain contains the value types exchanged between the diary
// application and the AI assistant: reflective questions, emotion analyses and
// conversation turns. Every value is request-scoped; nothing here is persisted.
package domain
