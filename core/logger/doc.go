// Package logger provides a structured logging facility based on Zap.
//
// New builds a logger from the Log configuration section: the debug level
// uses Zap's development preset, every other level the production preset,
// and the encoding is either json or console.
//
// # Context Awareness
//
// WithRayID attaches the request's ray id from a Fiber context so that the
// lines of one HTTP import can be correlated. WithBatch tags one import call
// with its kind and a generated batch id; importers log through it.
//
// # Usage
//
//	log, _ := logger.New(&cfg.Log)
//	l := logger.WithBatch(log, "games")
//	l.Info("Import finished", zap.Int("accepted", n))
package logger
