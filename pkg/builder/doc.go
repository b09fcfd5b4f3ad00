// Package builder assembles USP values field by field.
//
// Every buildable type has a builder with chained setters and a terminal
// Build. Setters mutate the builder and return it; a builder belongs to a
// single goroutine and must not be used after Build.
//
//	rec, err := builder.NewRecordBuilder().
//		WithToID("proto::agent").
//		WithFromID("proto::controller").
//		AsDisconnectRecord("Bye", 0).
//		Build()
//
// Build reports the first missing required field as a *BuildError wrapping
// ErrMissingField. Setters that take a closed set of names (MQTT and STOMP
// versions, payload security, the supported data model enums) check the
// name immediately and return a *BuildError wrapping ErrInvalidValue
// instead of the builder.
//
// Error codes are accepted as int64 and normalized with errcode.Normalize.
// Empty error messages are kept empty; renderers fill in the registry text.
package builder
