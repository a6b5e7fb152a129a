package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// OperatorID restricts intake to a single actor. Empty disables the check.
	OperatorID string

	// SessionTTLMinutes enables the idle session sweeper when positive.
	// Zero means sessions never expire.
	SessionTTLMinutes int
}
