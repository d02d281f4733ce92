package config

import "time"

// Defaults carries the per-portal baseline a binary starts from.
type Defaults struct {
	Port        int
	APIBaseURL  string
	SessionFile string
}

const (
	defaultAPITimeout     = 15 * time.Second
	defaultLoginPerMinute = 10
)

// CustomerDefaults returns the customer portal baseline.
func CustomerDefaults() Defaults {
	return Defaults{
		Port:        8080,
		APIBaseURL:  "http://localhost:8001",
		SessionFile: "customer-session.json",
	}
}

// DriverDefaults returns the driver portal baseline.
func DriverDefaults() Defaults {
	return Defaults{
		Port:        8081,
		APIBaseURL:  "http://127.0.0.1:8002/api/driver",
		SessionFile: "driver-session.json",
	}
}
