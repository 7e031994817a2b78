// Package driver contains the Driver aggregate. A driver is identified by an
// integer id assigned by the external location feed and carries only its
// last-known position and the moment that position was reported. Positions are
// mutated exclusively through the location-ingestion path; scheduling never
// moves a driver.
package driver
