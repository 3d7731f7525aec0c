// Package cli implements the interactive StudyShare terminal client.
//
// The entry point is App, which owns the service stack and a bufio.Reader
// over stdin. App.Run restores any persisted session and hands control to a
// read-eval-print loop (see runREPL) dispatching to one method per command.
//
// Input helpers (GetSimpleText, GetInt, GetPassword, GetMultiline, GetList)
// keep the prompt format uniform across commands. Passwords are read without
// echo and wiped after use.
package cli
