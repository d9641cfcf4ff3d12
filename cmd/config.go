package cmd

type Config struct {
	HTTPPort   string
	HTTPAPIKey string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	FedexKey                  string
	FedexPassword             string
	FedexAccountNumber        string
	FedexMeterNumber          string
	FedexFreightAccountNumber string
	FedexUseTestServer        bool

	TrackingJobEnabled bool
}
