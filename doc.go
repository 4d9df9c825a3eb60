// Package j1979 decodes OBD-II responses framed per SAE J1979.
//
// It turns the raw, already ISO-TP-reassembled byte payload an ECU
// sends back for a diagnostic request into supported-PID lists,
// emission signal values, DTC strings and VIN strings. It does not
// talk to a bus, schedule requests or provision its own dictionary —
// see the transport package for a collaborator that does the first,
// and Dictionary for the third.
package j1979
