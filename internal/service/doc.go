// Package service holds the two workflows of the application. CardService
// lists, adds, edits and deletes cards, validating input with the card form
// rules before anything reaches the store. TrainingService picks a random
// card and evaluates answers.
//
// Services depend on the store.CardStore interface only; the API and the
// command line share them.
package service
