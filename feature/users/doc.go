// Package users implements the user import feature.
//
// A payload is a JSON array of users, each with its cards:
//
//	[{"Username":"kcarroll","FullName":"Kathy Carroll","Email":"kcarroll@example.com",
//	  "Age":52,"Cards":[{"Number":"2844 3311 3796 4444","CVC":"137","Type":"Debit"}]}]
//
// A card type matches Debit or Credit ignoring case. One bad card rejects the
// whole user, as does an empty card list. Accepted users are written in one
// Store.AddUsers call and reported as "Imported {Username} with {N} cards".
package users
