// Package validate implements the field validation rules for vehicle records.
//
// Every rule is a pure predicate over a raw string: no I/O, no side effects,
// no mutation of the argument, and no panics — an empty or unparseable value
// simply fails with a human-readable message. Case normalization needed for a
// check (the plate is matched uppercase, the chassis case-insensitively) is
// applied internally; callers that want the normalized value for display use
// the Normalize helpers explicitly.
//
// The rules come from the Brazilian vehicle registry domain:
//
//   - Plate: Mercosul (ABC1D23) or legacy (ABC1234) format.
//   - Chassis: 17-character VIN, letters I, O and Q excluded.
//   - Renavam: exactly 11 decimal digits, leading zeros significant.
//   - Model/Make: 2-50 characters of (accented) letters, digits, spaces,
//     hyphens and periods.
//   - Year: a 4-digit string between 1900 and next year. The length check is
//     deliberate and stricter than the numeric range: "99" and "020000" fail
//     even when their numeric value would pass.
//
// The set of validated fields is a closed enum. Check dispatches through a
// switch rather than a map of functions, so adding a field is a compile-time
// checked change.
package validate
