package easyeda

import "strings"

// splitFields splits a `~`-delimited shape record into its designator and
// field list. Field 0 is returned separately since pin records treat it
// specially (it further splits on `^^`).
func splitFields(record string) (designator string, fields []string) {
	fields = strings.Split(record, "~")
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], fields
}

// splitPinSegments splits a pin record's field-0 body into its `^^`-
// delimited segments, each of which is itself `~`-delimited.
func splitPinSegments(field0Body string) [][]string {
	rawSegments := strings.Split(field0Body, "^^")
	segments := make([][]string, len(rawSegments))
	for i, seg := range rawSegments {
		segments[i] = strings.Split(seg, "~")
	}
	return segments
}

// field returns fields[i] or "" if out of range, since vendor records
// routinely omit trailing optional fields.
func field(fields []string, i int) string {
	if i < 0 || i >= len(fields) {
		return ""
	}
	return fields[i]
}

// isFilled reports the fill semantics shared by every shape record: a
// field is "filled" iff it is non-empty and not the literal "none".
func isFilled(fillField string) bool {
	return fillField != "" && fillField != "none"
}
