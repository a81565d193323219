// Package games implements the game import feature.
//
// A payload is a JSON array of games:
//
//	[{"Name":"Foo","Price":9.99,"ReleaseDate":"2020-01-01",
//	  "Developer":"Acme","Genre":"RPG","Tags":["a","b"]}]
//
// # Pipeline
//
// Each record is checked in a fixed order: field rules, release date
// (yyyy-MM-dd), a non-empty tag list. Only then are the developer and genre
// resolved through the batch registries and the tags linked; blank tag names
// are skipped, and a record left without any tag link is rejected.
//
// Developers, genres and tags are deduplicated by exact name within one call,
// so two games naming "Acme" share one Developer. Nothing is shared across calls.
//
// Accepted games are written in one Store.AddGames call after the loop and
// reported as "Added {Name} ({Genre}) with {N} tags"; rejected ones as "Invalid Data".
//
// # Components
//
//   - Service: ImportGames
//   - Handler: POST /games/import (body: JSON, response: text report)
//   - Feature: registers the handler with the loader
package games
