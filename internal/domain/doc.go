// Package domain contains the core business entities, value objects, and
// domain logic of the application: the Card entity, the card form validator,
// and the rules used to judge a training answer. It is independent of any
// specific infrastructure or delivery mechanism.
package domain
