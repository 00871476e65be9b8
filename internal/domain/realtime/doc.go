// Package realtime defines the remotely-managed configuration record and the
// coercion rules between its untyped stored form (string value plus type tag)
// and the four supported Go primitives.
//
// Encoding a caller default into a record:
//
//	rec, err := realtime.Encode(accountID, "feature.x", 42)
//	// rec.Value == "42", rec.Type == realtime.TypeInt
//
// Decoding a stored record into the requested type:
//
//	n, err := realtime.Decode[int](rec)
//
// Decoding dispatches on the record's Type tag first, producing a [Value]
// (a closed sum over [StringValue], [IntValue], [BoolValue], [DoubleValue]),
// and only then converts that value to the requested Go type.
package realtime
