// Package scpi implements the IEEE-488.2 status-reporting core shared by
// SCPI-speaking instruments: the hierarchical register tree (condition,
// event, enable, and transition-filter sub-registers), the bounded error
// queue, and the mandatory common commands (*CLS, *ESE, *ESR?, *IDN?, *OPC,
// *RST, *SRE, *STB?, *TST?, *WAI) that read and mutate them.
//
// The package does not talk to a bus, parse SCPI text, or decode command
// parameters; it is the state machine a command dispatcher calls into once
// it has already recognized a common command and decoded its arguments.
package scpi
