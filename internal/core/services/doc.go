// Package services contains the core business logic, implementing the
// driving ports on top of the driven ports. Services hold no
// infrastructure code; every external capability enters through an
// interface so the logic is testable with stubs.
package services
