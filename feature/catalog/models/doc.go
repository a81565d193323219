// Package models contains the persisted storefront entities.
//
// These are GORM models: Developer, Genre and Tag are referenced by Game;
// a User owns Cards; a Purchase references an existing Card and Game.
// The game_tags join table holds one GameTag row per (Game, Tag) link.
//
// CardType and PurchaseType are closed string enumerations. Their parse
// functions differ on purpose: card types match ignoring case, purchase
// types match exactly.
package models
