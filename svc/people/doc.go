// Package people is a small registry domain built on validated factories.
//
// NewFactory declares how an Input becomes a Person. The same factory backs
// the HTTP handler (POST /people and POST /people/check) and the batch
// checker used by the valdi command.
package people
