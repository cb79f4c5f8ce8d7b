// Package progadvisor provides a CLI and chat assistant for comparing
// master's degree programs. It ingests program pages and their linked
// curriculum PDFs, splits the text into retrieval chunks, answers
// free-text questions by lexical vector similarity, and recommends
// elective courses by matching a user's skill list against extracted
// course titles.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., http/,
// goquery/, pdfcpu/, tfidf/, sqlite/).
package progadvisor
