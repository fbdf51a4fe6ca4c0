// Package events carries card lifecycle notifications from the card service to
// interested components, such as the image store that deletes files no card
// references any more. Dispatch is synchronous and in-process.
package events
